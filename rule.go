package combinator

import (
	"fmt"
	"sync/atomic"
)

var ruleCount atomic.Int64

// Rule is a named slot holding a parser.  A rule can be used within
// other parsers before its body is set, which is what allows a
// grammar to have productions that refer to themselves or to each
// other.
type Rule struct {
	hooks
	name string
	body Parser
}

// NewRule creates a rule without a body.  When `name` is empty, the
// rule is named after a process wide counter.
func NewRule(name string) *Rule {
	if name == "" {
		name = fmt.Sprintf("rule#%d", ruleCount.Add(1))
	}
	return &Rule{name: name}
}

// Define creates a rule named `name` with `body` already set
func Define(name string, body Parser) *Rule {
	return NewRule(name).Set(body)
}

// Set assigns the body of the rule.  It can be called again to
// replace it.
func (r *Rule) Set(body Parser) *Rule {
	mustParser("Rule.Set", body)
	r.body = body
	return r
}

// Body returns the parser the rule delegates to, or nil if it hasn't
// been set yet
func (r *Rule) Body() Parser { return r.body }

// Name returns the name of the rule
func (r *Rule) Name() string { return r.name }

func (r *Rule) Parse(s *Scanner) (Match, error) { return r.parse(r, s) }
func (r *Rule) String() string                  { return r.name }

func (r *Rule) parseMain(s *Scanner) (Match, error) {
	if r.body == nil {
		panic(contractf(r.name, "rule used before its body was set"))
	}
	return r.body.Parse(s)
}

// ActionParser runs actions when the parser it wraps succeeds
type ActionParser struct {
	hooks
	item Parser
}

// Do wraps `item` in a parser that calls `actions`, in order, every
// time `item` succeeds
func Do(item Parser, actions ...Action) *ActionParser {
	mustParser("Do", item)
	p := &ActionParser{item: item}
	p.Act(actions...)
	return p
}

func (p *ActionParser) Parse(s *Scanner) (Match, error) { return p.parse(p, s) }
func (p *ActionParser) String() string                  { return p.item.String() }
func (p *ActionParser) children() []Parser              { return []Parser{p.item} }

func (p *ActionParser) parseMain(s *Scanner) (Match, error) {
	return p.item.Parse(s)
}
