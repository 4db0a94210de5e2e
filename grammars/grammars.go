// Package grammars holds small grammars built with the combinator
// package.  They are used by the command line tool and as end to end
// tests of the engine.
package grammars

import (
	"sort"

	c "github.com/clarete/combinator"
)

// Grammar is a named entry point into a graph of parsers
type Grammar struct {
	Name        string
	Description string
	Root        c.Parser

	// Rules holds every rule of the grammar, so tracers can be
	// attached to all of them at once
	Rules []*c.Rule
}

// Observables returns the rules of the grammar as values tracers can
// be attached to
func (g *Grammar) Observables() []c.Observable {
	out := make([]c.Observable, len(g.Rules))
	for i, r := range g.Rules {
		out[i] = r
	}
	return out
}

var registry = map[string]func() *Grammar{
	"arithmetic": Arithmetic,
	"bracket":    Bracket,
	"csv":        CSV,
	"numbers":    NumberList,
	"words":      Words,
}

// Names returns the names of all the available grammars, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds a fresh copy of the grammar registered as `name`
func Lookup(name string) (*Grammar, bool) {
	fn, ok := registry[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Words matches runs of letters, digits and spaces
func Words() *Grammar {
	words := c.Define("words", c.OneOrMore(c.Choice(c.Char(c.LetterOrDigit).Named("letterOrDigit"), c.Lit(' '))))
	return &Grammar{
		Name:        "words",
		Description: "letters, digits and spaces",
		Root:        words,
		Rules:       []*c.Rule{words},
	}
}

// Bracket matches a bracketed word followed by optional spaces and an
// opening parenthesis, like `[all] (`
func Bracket() *Grammar {
	body := c.Define("body", c.OneOrMore(c.Char(c.LetterOrDigit).Named("letterOrDigit")))
	bracket := c.Define("bracket", c.Seq(c.Lit('['), body, c.Lit(']'), c.ZeroOrMore(c.Lit(' ')), c.Lit('(')))
	return &Grammar{
		Name:        "bracket",
		Description: "a bracketed word followed by an opening parenthesis",
		Root:        bracket,
		Rules:       []*c.Rule{bracket, body},
	}
}

// NumberList matches comma separated real numbers spanning the whole
// input, like `1,2.5,30`
func NumberList() *Grammar {
	number := realNumber()
	list := c.Define("list", c.Seq(number, c.ZeroOrMore(c.Seq(c.Lit(','), number)), c.End()))
	return &Grammar{
		Name:        "numbers",
		Description: "comma separated real numbers",
		Root:        list,
		Rules:       []*c.Rule{list, number},
	}
}

func realNumber() *c.Rule {
	digits := c.OneOrMore(c.Char(c.Digit).Named("digit"))
	return c.Define("real", c.Seq(digits, c.Optional(c.Seq(c.Lit('.'), digits))))
}

// CSV matches lines of comma separated fields.  Fields can't contain
// commas or line breaks.  A line break ends a record, so a break at the
// very end of the input doesn't start an empty one, but a blank line
// in the middle of the input is a record with a single empty field.
func CSV() *Grammar {
	g, _ := csvGrammar(nil)
	return g
}

func csvGrammar(onField func(c.Match) error) (*Grammar, *c.Rule) {
	field := c.Define("field", c.ZeroOrMore(c.Difference(c.Char(c.AnyRune).Named("any"), c.Choice(c.Lit(','), c.EOL()))))
	if onField != nil {
		field.Act(onField)
	}
	record := c.Define("record", c.Difference(c.List(field, c.Lit(',')), c.End()))
	file := c.Define("file", c.Seq(c.Optional(c.List(record, c.EOL())), c.Optional(c.EOL()), c.End()))
	return &Grammar{
		Name:        "csv",
		Description: "lines of comma separated fields",
		Root:        file,
		Rules:       []*c.Rule{file, record, field},
	}, record
}

// CSVRecords parses `input` with the CSV grammar and returns its
// fields grouped by record
func CSVRecords(input string) ([][]string, bool, error) {
	var (
		records [][]string
		fields  []string
	)
	g, record := csvGrammar(c.AppendTo(&fields))
	record.Act(func(c.Match) error {
		records = append(records, fields)
		fields = nil
		return nil
	})
	m, err := c.MatchString(g.Root, input)
	if err != nil || !m.Success {
		return nil, false, err
	}
	return records, true, nil
}
