package combinator

import (
	"fmt"
	"io"
	"strings"

	"github.com/clarete/combinator/ascii"
)

// Observer is notified around every attempt of the parsers it's
// attached to
type Observer interface {
	// Enter is called before the parser identified by `id` runs,
	// with the scanner at the start position of the attempt
	Enter(id string, s *Scanner)

	// Exit is called once the attempt is over, with the scanner
	// where the attempt left it and its outcome
	Exit(id string, s *Scanner, m Match)
}

// Observable is implemented by every parser of this package
type Observable interface {
	Observe(observers ...Observer)
}

// Tracer is an Observer that writes one indented line per event to
// its output.  The indentation follows the nesting of the attempts,
// so a single tracer can be attached to all the rules of a grammar.
type Tracer struct {
	output     io.Writer
	depth      int
	previewLen int
	indent     string
	theme      *ascii.Theme
}

// NewTracer creates a tracer writing to `w` with the default settings
func NewTracer(w io.Writer) *Tracer {
	return NewTracerFromConfig(w, NewConfig())
}

// NewTracerFromConfig creates a tracer writing to `w` configured by
// the `trace.*` settings of `cfg`
func NewTracerFromConfig(w io.Writer, cfg *Config) *Tracer {
	t := &Tracer{
		output:     w,
		previewLen: cfg.GetInt("trace.preview_len"),
		indent:     cfg.GetString("trace.indent"),
	}
	if cfg.GetBool("trace.colors") {
		t.theme = &ascii.DefaultTheme
	}
	return t
}

// Attach registers the tracer with each one of `parsers`
func (t *Tracer) Attach(parsers ...Observable) {
	for _, p := range parsers {
		p.Observe(t)
	}
}

// Depth returns how many attempts are currently open
func (t *Tracer) Depth() int { return t.depth }

func (t *Tracer) Enter(id string, s *Scanner) {
	t.writel(id, s)
	t.depth++
}

func (t *Tracer) Exit(id string, s *Scanner, m Match) {
	t.depth--
	if m.Success {
		t.writel(t.paint(t.color(true), "+")+id, s)
	} else {
		t.writel(t.paint(t.color(false), "-")+id, s)
	}
}

func (t *Tracer) writel(id string, s *Scanner) {
	preview := `"` + escapeLiteral(s.Preview(t.previewLen)) + `"`
	fmt.Fprintf(t.output, "%s%s: %s\n",
		strings.Repeat(t.indent, max(t.depth, 0)),
		id,
		t.paint(t.muted(), preview))
}

func (t *Tracer) color(success bool) string {
	if t.theme == nil {
		return ""
	}
	if success {
		return t.theme.Success
	}
	return t.theme.Failure
}

func (t *Tracer) muted() string {
	if t.theme == nil {
		return ""
	}
	return t.theme.Muted
}

func (t *Tracer) paint(color, s string) string { return ascii.Paint(color, s) }
