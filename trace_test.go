package combinator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/combinator/ascii"
)

func TestTracer(t *testing.T) {
	t.Run("single rule", func(t *testing.T) {
		var out strings.Builder
		r := Define("ab", Seq(Lit('a'), Lit('b')))
		NewTracer(&out).Attach(r)

		parse(t, r, "abc")
		assert.Equal(t, "ab: \"abc\"\n+ab: \"c\"\n", out.String())
	})

	t.Run("nesting is indented", func(t *testing.T) {
		var out strings.Builder
		inner := Define("inner", Lit('a'))
		outer := Define("outer", Seq(inner, Lit('c')))
		tracer := NewTracer(&out)
		tracer.Attach(outer, inner)

		parse(t, outer, "ac")
		assert.Equal(t, strings.Join([]string{
			`outer: "ac"`,
			`  inner: "ac"`,
			`  +inner: "c"`,
			`+outer: ""`,
		}, "\n")+"\n", out.String())
		assert.Equal(t, 0, tracer.Depth())

		out.Reset()
		parse(t, outer, "x\ny")
		assert.Equal(t, strings.Join([]string{
			`outer: "x\ny"`,
			`  inner: "x\ny"`,
			`  -inner: "x\ny"`,
			`-outer: "x\ny"`,
		}, "\n")+"\n", out.String())
	})

	t.Run("configured preview and indentation", func(t *testing.T) {
		var out strings.Builder
		cfg := NewConfig()
		cfg.SetInt("trace.preview_len", 3)
		cfg.SetString("trace.indent", "..")
		inner := Define("inner", OneOrMore(Char(Digit)))
		outer := Define("outer", inner)
		NewTracerFromConfig(&out, cfg).Attach(outer, inner)

		parse(t, outer, "123456")
		assert.Equal(t, strings.Join([]string{
			`outer: "123"`,
			`..inner: "123"`,
			`..+inner: ""`,
			`+outer: ""`,
		}, "\n")+"\n", out.String())
	})

	t.Run("colors", func(t *testing.T) {
		var out strings.Builder
		cfg := NewConfig()
		cfg.SetBool("trace.colors", true)
		r := Define("a", Lit('a'))
		NewTracerFromConfig(&out, cfg).Attach(r)

		parse(t, r, "b")
		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "a: "+ascii.Gray+`"b"`+ascii.Reset, lines[0])
		assert.Equal(t, ascii.Red+"-"+ascii.Reset+"a: "+ascii.Gray+`"b"`+ascii.Reset, lines[1])
	})

	t.Run("depth survives aborted parses", func(t *testing.T) {
		var out strings.Builder
		r := Define("boom", Do(Lit('a'), Raise(assert.AnError)))
		tracer := NewTracer(&out)
		tracer.Attach(r)

		_, err := MatchString(r, "a")
		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 0, tracer.Depth())
	})

	t.Run("a match rejected by its action is traced as a failure", func(t *testing.T) {
		var out strings.Builder
		r := Define("r", Lit('a'))
		r.Act(Raise(assert.AnError))
		NewTracer(&out).Attach(r)

		m, err := MatchString(r, "a")
		require.ErrorIs(t, err, assert.AnError)
		assert.False(t, m.Success)
		assert.Equal(t, "r: \"a\"\n-r: \"a\"\n", out.String())
	})
}

type recordingObserver struct {
	events []string
}

func (o *recordingObserver) Enter(id string, s *Scanner) {
	o.events = append(o.events, "enter "+id)
}

func (o *recordingObserver) Exit(id string, s *Scanner, m Match) {
	if m.Success {
		o.events = append(o.events, "match "+id+" "+m.Value())
		return
	}
	o.events = append(o.events, "fail "+id)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	a, b := Lit('a'), Lit('b')
	a.Observe(obs)
	b.Observe(obs)

	parse(t, Choice(a, b), "b")
	assert.Equal(t, []string{"enter 'a'", "fail 'a'", "enter 'b'", "match 'b' b"}, obs.events)
}
