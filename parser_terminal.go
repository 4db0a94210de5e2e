package combinator

import (
	"fmt"
	"strconv"
)

// CharParser matches a single rune accepted by its tester
type CharParser struct {
	hooks
	negation
	name   string
	tester Tester
}

// Char returns a parser that matches one rune accepted by `t`
func Char(t Tester) *CharParser {
	if t == nil {
		panic(contractf("Char", "nil tester"))
	}
	return &CharParser{name: "char", tester: t}
}

// Lit returns a parser that matches the rune `c`
func Lit(c rune) *CharParser {
	return &CharParser{name: strconv.QuoteRune(c), tester: Is(c)}
}

// Range returns a parser that matches one rune between `lo` and `hi`,
// both inclusive
func Range(lo, hi rune) *CharParser {
	return &CharParser{name: fmt.Sprintf("[%s-%s]", escapeLiteral(string(lo)), escapeLiteral(string(hi))), tester: InRange(lo, hi)}
}

// Named replaces the identity of the parser in traces and
// descriptions
func (p *CharParser) Named(name string) *CharParser {
	p.name = name
	return p
}

func (p *CharParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *CharParser) String() string                  { return p.prefix() + p.name }

func (p *CharParser) parseMain(s *Scanner) (Match, error) {
	start := s.Offset()
	if s.AtEnd() || p.tester(s.Peek()) == p.negated {
		return s.NoMatch(), nil
	}
	s.Read()
	return s.MakeMatch(start, 1), nil
}

func (p *CharParser) negate() Parser {
	if p.origin != nil {
		return p.origin
	}
	return &CharParser{negation: negation{negated: !p.negated, origin: p}, name: p.name, tester: p.tester}
}

// StringParser matches a literal string
type StringParser struct {
	hooks
	negation
	literal []rune
}

// String returns a parser that matches `literal`
func String(literal string) *StringParser {
	return &StringParser{literal: []rune(literal)}
}

func (p *StringParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *StringParser) String() string                  { return fmt.Sprintf("%s%q", p.prefix(), string(p.literal)) }

func (p *StringParser) parseMain(s *Scanner) (Match, error) {
	start := s.Offset()
	return p.decide(s, start, p.expect(s, start)), nil
}

func (p *StringParser) expect(s *Scanner, start int) Match {
	for _, c := range p.literal {
		if s.AtEnd() || s.Peek() != c {
			s.Seek(start)
			return s.NoMatch()
		}
		s.Read()
	}
	return s.MakeMatch(start, len(p.literal))
}

func (p *StringParser) negate() Parser {
	if p.origin != nil {
		return p.origin
	}
	return &StringParser{negation: negation{negated: !p.negated, origin: p}, literal: p.literal}
}

// EOLParser matches a line ending: CR, LF or CR followed by LF
type EOLParser struct {
	hooks
	negation
}

// EOL returns a parser that matches a line ending
func EOL() *EOLParser { return &EOLParser{} }

func (p *EOLParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *EOLParser) String() string                  { return p.prefix() + "eol" }

func (p *EOLParser) parseMain(s *Scanner) (Match, error) {
	start := s.Offset()
	return p.decide(s, start, p.expect(s, start)), nil
}

func (p *EOLParser) expect(s *Scanner, start int) Match {
	switch s.Peek() {
	case '\n':
		s.Read()
	case '\r':
		s.Read()
		if s.Peek() == '\n' {
			s.Read()
		}
	default:
		return s.NoMatch()
	}
	return s.MakeMatch(start, s.Offset()-start)
}

func (p *EOLParser) negate() Parser {
	if p.origin != nil {
		return p.origin
	}
	return &EOLParser{negation: negation{negated: !p.negated, origin: p}}
}

// EndParser succeeds with an empty match once the entire input has
// been consumed
type EndParser struct {
	hooks
	negation
}

// End returns a parser that only matches at the end of the input
func End() *EndParser { return &EndParser{} }

func (p *EndParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *EndParser) String() string                  { return p.prefix() + "end" }

func (p *EndParser) parseMain(s *Scanner) (Match, error) {
	m := s.NoMatch()
	if s.AtEnd() {
		m = s.EmptyMatch()
	}
	return p.decide(s, s.Offset(), m), nil
}

func (p *EndParser) negate() Parser {
	if p.origin != nil {
		return p.origin
	}
	return &EndParser{negation: negation{negated: !p.negated, origin: p}}
}
