package combinator

import "fmt"

// Match is the outcome of one parse attempt.  A successful match
// spans Length runes starting at Offset within the input of the
// scanner that produced it.  A failed match has Length -1.
type Match struct {
	Success bool
	Offset  int
	Length  int

	scanner *Scanner
}

// End returns the offset right after the last rune of the match
func (m Match) End() int {
	if m.Length < 0 {
		return m.Offset
	}
	return m.Offset + m.Length
}

// Empty reports whether the match succeeded without consuming input.
// It panics on a failed match.
func (m Match) Empty() bool {
	if !m.Success {
		panic(contractf("Match.Empty", "no match at %d", m.Offset))
	}
	return m.Length == 0
}

// Value returns the slice of the input covered by the match, as seen
// through the scanner filter.  It panics on a failed match.
func (m Match) Value() string {
	if !m.Success {
		panic(contractf("Match.Value", "no match at %d", m.Offset))
	}
	return m.scanner.Substring(m.Offset, m.Length)
}

// Scanner returns the scanner the match was produced by
func (m Match) Scanner() *Scanner { return m.scanner }

// Concat merges `other` into `m`.  Both matches must have succeeded
// on the same scanner, and unless one of them is empty, `other` must
// start right where `m` ends.
func (m Match) Concat(other Match) Match {
	if !m.Success || !other.Success {
		panic(contractf("Match.Concat", "can't concatenate a failed match"))
	}
	if m.scanner != other.scanner {
		panic(contractf("Match.Concat", "matches come from different scanners"))
	}
	if other.Length == 0 {
		return m
	}
	if m.Length == 0 {
		return other
	}
	if other.Offset != m.End() {
		panic(contractf("Match.Concat", "%s is not adjacent to %s", other.span(), m.span()))
	}
	m.Length += other.Length
	return m
}

func (m Match) span() string {
	if m.Length <= 0 {
		return fmt.Sprintf("%d", m.Offset)
	}
	return fmt.Sprintf("%d..%d", m.Offset, m.End())
}

// String returns the human readable representation of a match
func (m Match) String() string {
	if !m.Success {
		return fmt.Sprintf("<no match @ %d>", m.Offset)
	}
	return fmt.Sprintf("%q @ %s", m.Value(), m.span())
}
