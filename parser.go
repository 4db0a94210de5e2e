package combinator

// Parser is the unit every grammar is built from.
type Parser interface {
	// Parse attempts to match a prefix of the input remaining in
	// `s`.  On success the scanner is left right after the match.
	// On failure the returned match has Success set to false and
	// the scanner is left where it was before the call.  The error
	// is only set when an action attached to the parser, or to any
	// parser nested within it, fails.
	Parse(s *Scanner) (Match, error)

	// String returns the identity of the parser used in traces
	// and grammar descriptions.
	String() string
}

// matcher is implemented by every parser node.  parseMain holds the
// node specific matching logic and doesn't have to care about
// rollback, observers or actions, as these are handled by parse.
type matcher interface {
	Parser
	parseMain(s *Scanner) (Match, error)
}

// hooks holds the observers and actions attached to a parser node.
// Every parser type embeds it.
type hooks struct {
	actions   []Action
	observers []Observer
}

// Act registers actions to be called, in order, every time the parser
// succeeds.
func (h *hooks) Act(actions ...Action) {
	h.actions = append(h.actions, actions...)
}

// Observe registers observers to be notified before and after every
// attempt of the parser.
func (h *hooks) Observe(observers ...Observer) {
	h.observers = append(h.observers, observers...)
}

// parse wraps the matching logic of `m` with the guarantees every
// parser provides: rolling the scanner back on failure, running the
// actions on success and notifying the observers around the attempt.
// Observers see the outcome after the actions ran, so a match turned
// down by a failing action is reported as a failure.
func (h *hooks) parse(m matcher, s *Scanner) (Match, error) {
	start := s.Offset()
	for _, o := range h.observers {
		o.Enter(m.String(), s)
	}

	match, err := m.parseMain(s)
	if err == nil && match.Success {
		if s.Offset() != start+match.Length {
			panic(contractf(m.String(), "scanner at %d after a match of %s", s.Offset(), match.span()))
		}
		err = h.runActions(m, match)
	}
	if err != nil || !match.Success {
		s.Seek(start)
		match = s.NoMatch()
	}

	for i := len(h.observers) - 1; i >= 0; i-- {
		h.observers[i].Exit(m.String(), s, match)
	}
	return match, err
}

func (h *hooks) hooked() bool {
	return len(h.actions)+len(h.observers) > 0
}

func (h *hooks) runActions(m matcher, match Match) error {
	for _, action := range h.actions {
		if err := action(match); err != nil {
			if isActionError(err) {
				return err
			}
			return &ActionError{Parser: m.String(), Match: match, Err: err}
		}
	}
	return nil
}

// negatable is implemented by parsers that can swap success and
// failure on their own.  When negated, a successful attempt consumes
// exactly one rune.  Parsers with actions or observers attached are
// never negated in place, their hooks would be lost otherwise.
type negatable interface {
	Parser
	negate() Parser
	hooked() bool
}

// negation is embedded by terminal parsers to hold the negate flag.
// A negated copy remembers the parser it was made from, which is what
// negating it again gives back.
type negation struct {
	negated bool
	origin  Parser
}

// decide applies the negate flag to the outcome of a terminal
// attempt that started at `start`.  A negated success consumes one
// rune, so it fails at the end of the input.
func (n negation) decide(s *Scanner, start int, matched Match) Match {
	if !n.negated {
		return matched
	}
	s.Seek(start)
	if matched.Success || s.AtEnd() {
		return s.NoMatch()
	}
	s.Read()
	return s.MakeMatch(start, 1)
}

func (n negation) prefix() string {
	if n.negated {
		return "!"
	}
	return ""
}

// MatchString runs `p` over a fresh scanner created for `input`
func MatchString(p Parser, input string) (Match, error) {
	return p.Parse(NewScanner(input))
}

func mustParser(op string, p Parser) {
	if p == nil {
		panic(contractf(op, "nil parser"))
	}
}
