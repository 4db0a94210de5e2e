package combinator

import (
	"io"
	"strings"

	"github.com/clarete/combinator/ascii"
)

// FormatToken tells a FormatFunc which part of a description it's
// formatting
type FormatToken int

const (
	FormatToken_None FormatToken = iota
	FormatToken_Operator
	FormatToken_Operand
	FormatToken_Literal
)

type FormatFunc func(input string, token FormatToken) string

// composite is implemented by parsers built out of other parsers
type composite interface {
	children() []Parser
}

// Describe returns a tree with `p` and all the parsers reachable from
// it.  Rules are expanded the first time they show up and referenced
// by name afterwards, so recursive grammars have finite descriptions.
func Describe(p Parser) string {
	return describe(p, func(input string, _ FormatToken) string { return input })
}

// DescribeColors is like Describe but paints the output with the
// colors of `theme`
func DescribeColors(p Parser, theme ascii.Theme) string {
	colors := map[FormatToken]string{
		FormatToken_Operator: theme.Operator,
		FormatToken_Operand:  theme.Operand,
		FormatToken_Literal:  theme.Literal,
	}
	return describe(p, func(input string, token FormatToken) string {
		return ascii.Paint(colors[token], input)
	})
}

// DescribeTo writes the description of `p` to `w`
func DescribeTo(w io.Writer, p Parser) error {
	_, err := io.WriteString(w, Describe(p))
	return err
}

func describe(p Parser, format FormatFunc) string {
	gp := &grammarPrinter{format: format, seen: map[*Rule]struct{}{}}
	gp.node(p, "")
	return gp.out.String()
}

type grammarPrinter struct {
	out    strings.Builder
	format FormatFunc
	seen   map[*Rule]struct{}
}

// node finishes the line the caller started with the label of `p` and
// writes its children below it, each line prefixed by `pad`
func (gp *grammarPrinter) node(p Parser, pad string) {
	var kids []Parser
	switch n := p.(type) {
	case *Rule:
		label := gp.format("Rule ", FormatToken_Operator) + gp.format(n.Name(), FormatToken_Operand)
		_, seen := gp.seen[n]
		switch {
		case n.Body() == nil:
			label += " (undefined)"
		case seen:
			label += " (see above)"
		default:
			gp.seen[n] = struct{}{}
			kids = []Parser{n.Body()}
		}
		gp.line(label)
	case *ActionParser:
		gp.line(gp.format("Do", FormatToken_Operator))
		kids = n.children()
	case composite:
		gp.line(gp.format(p.String(), FormatToken_Operator))
		kids = n.children()
	default:
		gp.line(gp.format(p.String(), FormatToken_Literal))
	}

	for i, kid := range kids {
		branch, below := "├── ", "│   "
		if i == len(kids)-1 {
			branch, below = "└── ", "    "
		}
		gp.out.WriteString(pad + branch)
		gp.node(kid, pad+below)
	}
}

func (gp *grammarPrinter) line(s string) {
	gp.out.WriteString(s)
	gp.out.WriteByte('\n')
}

var literalSanitizer = strings.NewReplacer(
	`\`, `\\`,
	string('\n'), `\n`,
	string('\r'), `\r`,
	string('\t'), `\t`,
)

func escapeLiteral(s string) string {
	return literalSanitizer.Replace(s)
}
