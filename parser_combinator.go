package combinator

import "fmt"

// SequenceParser matches all its items, one after the other
type SequenceParser struct {
	hooks
	items []Parser
}

// Seq returns a parser that matches each one of `items` in order.
// The match spans all the items, and if any of them fails nothing is
// consumed.
func Seq(items ...Parser) *SequenceParser {
	for _, item := range items {
		mustParser("Seq", item)
	}
	return &SequenceParser{items: items}
}

// And is the same as Seq
func And(items ...Parser) *SequenceParser { return Seq(items...) }

func (p *SequenceParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *SequenceParser) String() string                  { return "Sequence" }
func (p *SequenceParser) children() []Parser              { return p.items }

func (p *SequenceParser) parseMain(s *Scanner) (Match, error) {
	acc := s.EmptyMatch()
	for _, item := range p.items {
		m, err := item.Parse(s)
		if err != nil || !m.Success {
			return m, err
		}
		acc = acc.Concat(m)
	}
	return acc, nil
}

// ChoiceParser matches the first of its alternatives that succeeds
type ChoiceParser struct {
	hooks
	items []Parser
}

// Choice returns a parser that tries each one of `items` in order,
// all of them from the same position, returning the first that
// succeeds.  It fails if no alternatives match.
func Choice(items ...Parser) *ChoiceParser {
	for _, item := range items {
		mustParser("Choice", item)
	}
	return &ChoiceParser{items: items}
}

// Or is the same as Choice
func Or(items ...Parser) *ChoiceParser { return Choice(items...) }

func (p *ChoiceParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *ChoiceParser) String() string                  { return "Choice" }
func (p *ChoiceParser) children() []Parser              { return p.items }

func (p *ChoiceParser) parseMain(s *Scanner) (Match, error) {
	start := s.Offset()
	for _, item := range p.items {
		m, err := item.Parse(s)
		if err != nil || m.Success {
			return m, err
		}
		s.Seek(start)
	}
	return s.NoMatch(), nil
}

// RepetitionParser matches its item between min and max times.  A
// negative max means there's no upper bound.
//
// Every iteration must consume input: once the item succeeds with an
// empty match the repetition stops, since the item would keep
// matching empty from the same position forever.
type RepetitionParser struct {
	hooks
	item     Parser
	min, max int
}

// Repeat returns a parser that matches `item` at least `min` and at
// most `max` times, as many times as possible.  Use a negative max for
// no upper bound.
func Repeat(item Parser, min, max int) *RepetitionParser {
	mustParser("Repeat", item)
	if min < 0 || (max >= 0 && max < min) {
		panic(contractf("Repeat", "invalid bounds {%d,%d}", min, max))
	}
	return &RepetitionParser{item: item, min: min, max: max}
}

// ZeroOrMore returns a parser that matches `item` as many times as
// possible.  It never fails.
func ZeroOrMore(item Parser) *RepetitionParser { return Repeat(item, 0, -1) }

// OneOrMore returns a parser that matches `item` once and then as many
// times as possible
func OneOrMore(item Parser) *RepetitionParser { return Repeat(item, 1, -1) }

// Optional returns a parser that matches `item` or succeeds with an
// empty match without consuming input.  It never fails.
func Optional(item Parser) *RepetitionParser { return Repeat(item, 0, 1) }

func (p *RepetitionParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *RepetitionParser) children() []Parser              { return []Parser{p.item} }

func (p *RepetitionParser) String() string {
	switch {
	case p.min == 0 && p.max < 0:
		return "ZeroOrMore"
	case p.min == 1 && p.max < 0:
		return "OneOrMore"
	case p.min == 0 && p.max == 1:
		return "Optional"
	case p.max < 0:
		return fmt.Sprintf("Repeat{%d,}", p.min)
	default:
		return fmt.Sprintf("Repeat{%d,%d}", p.min, p.max)
	}
}

func (p *RepetitionParser) parseMain(s *Scanner) (Match, error) {
	acc := s.EmptyMatch()
	count := 0
	for p.max < 0 || count < p.max {
		m, err := p.item.Parse(s)
		if err != nil {
			return m, err
		}
		if !m.Success {
			break
		}
		acc = acc.Concat(m)
		count++
		if m.Length == 0 {
			count = max(count, p.min)
			break
		}
	}
	if count < p.min {
		return s.NoMatch(), nil
	}
	return acc, nil
}

// NotParser succeeds, consuming one rune, where its item fails
type NotParser struct {
	hooks
	item Parser
}

// Not returns a parser that succeeds where `item` fails.  A successful
// negation consumes exactly one rune, so it fails at the end of the
// input.  Terminal parsers without actions or observers are negated in
// place, and negating them twice gives back the original parser.
func Not(item Parser) Parser {
	mustParser("Not", item)
	if n, ok := item.(negatable); ok && !n.hooked() {
		return n.negate()
	}
	return &NotParser{item: item}
}

func (p *NotParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *NotParser) String() string                  { return "Not" }
func (p *NotParser) children() []Parser              { return []Parser{p.item} }

func (p *NotParser) parseMain(s *Scanner) (Match, error) {
	start := s.Offset()
	m, err := p.item.Parse(s)
	if err != nil {
		return m, err
	}
	s.Seek(start)
	if m.Success || s.AtEnd() {
		return s.NoMatch(), nil
	}
	s.Read()
	return s.MakeMatch(start, 1), nil
}

// DifferenceParser matches its first item unless the second one
// matches at least as much input from the same position
type DifferenceParser struct {
	hooks
	item, except Parser
}

// Difference returns a parser that matches `item` but not `except`
func Difference(item, except Parser) *DifferenceParser {
	mustParser("Difference", item)
	mustParser("Difference", except)
	return &DifferenceParser{item: item, except: except}
}

func (p *DifferenceParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *DifferenceParser) String() string                  { return "Difference" }
func (p *DifferenceParser) children() []Parser              { return []Parser{p.item, p.except} }

func (p *DifferenceParser) parseMain(s *Scanner) (Match, error) {
	start := s.Offset()
	m, err := p.item.Parse(s)
	if err != nil || !m.Success {
		return m, err
	}
	end := s.Offset()
	s.Seek(start)
	e, err := p.except.Parse(s)
	if err != nil {
		return e, err
	}
	if e.Success && e.Length >= m.Length {
		return s.NoMatch(), nil
	}
	s.Seek(end)
	return m, nil
}

// ListParser matches items separated by a separator
type ListParser struct {
	hooks
	item, sep Parser
}

// List returns a parser that matches one or more `item`s separated by
// `sep`.  A trailing separator is left unconsumed.
func List(item, sep Parser) *ListParser {
	mustParser("List", item)
	mustParser("List", sep)
	return &ListParser{item: item, sep: sep}
}

func (p *ListParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *ListParser) String() string                  { return "List" }
func (p *ListParser) children() []Parser              { return []Parser{p.item, p.sep} }

func (p *ListParser) parseMain(s *Scanner) (Match, error) {
	acc, err := p.item.Parse(s)
	if err != nil || !acc.Success {
		return acc, err
	}
	for {
		mark := s.Offset()
		sep, err := p.sep.Parse(s)
		if err != nil {
			return sep, err
		}
		if !sep.Success {
			break
		}
		item, err := p.item.Parse(s)
		if err != nil {
			return item, err
		}
		if !item.Success {
			s.Seek(mark)
			break
		}
		acc = acc.Concat(sep).Concat(item)
		if s.Offset() == mark {
			break
		}
	}
	return acc, nil
}
