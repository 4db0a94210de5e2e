package combinator

// EOF is what Peek returns once the entire input has been consumed
const EOF = -1

// Scanner holds the input of a parse run and the cursor parsers read
// it from.  Parsers backtrack by seeking the cursor back to where an
// attempt started.  A scanner must not be shared by parses running at
// the same time.
type Scanner struct {
	input  []rune
	offset int
	filter Filter
}

// NewScanner creates a scanner positioned at the start of `input`
func NewScanner(input string) *Scanner {
	return &Scanner{input: []rune(input)}
}

// NewScannerAt creates a scanner positioned at the rune `offset` of
// `input`.  It panics if offset is out of the input bounds.
func NewScannerAt(input string, offset int) *Scanner {
	s := NewScanner(input)
	s.Seek(offset)
	return s
}

// SetFilter installs a function that transforms every rune the
// scanner hands out.  A nil filter disables filtering.
func (s *Scanner) SetFilter(f Filter) {
	s.filter = f
}

// Offset returns the position of the cursor, in runes
func (s *Scanner) Offset() int { return s.offset }

// Len returns the length of the input, in runes
func (s *Scanner) Len() int { return len(s.input) }

// AtEnd reports whether the entire input has been consumed
func (s *Scanner) AtEnd() bool { return s.offset == len(s.input) }

// Peek returns the filtered rune under the cursor, or EOF if the
// entire input has been consumed.  It does not move the cursor.
func (s *Scanner) Peek() rune {
	if s.AtEnd() {
		return EOF
	}
	return s.apply(s.input[s.offset])
}

// Read advances the cursor by one rune.  It panics at the end of the
// input.
func (s *Scanner) Read() {
	if s.AtEnd() {
		panic(contractf("Scanner.Read", "read past the end of the input (%d)", s.offset))
	}
	s.offset++
}

// Seek moves the cursor to `offset`.  It panics if offset is out of
// the input bounds.
func (s *Scanner) Seek(offset int) {
	if offset < 0 || offset > len(s.input) {
		panic(contractf("Scanner.Seek", "offset %d out of bounds 0..%d", offset, len(s.input)))
	}
	s.offset = offset
}

// Substring returns `length` filtered runes starting at `offset`
func (s *Scanner) Substring(offset, length int) string {
	if offset < 0 || length < 0 || offset+length > len(s.input) {
		panic(contractf("Scanner.Substring", "range %d+%d out of bounds 0..%d", offset, length, len(s.input)))
	}
	out := make([]rune, length)
	for i, r := range s.input[offset : offset+length] {
		out[i] = s.apply(r)
	}
	return string(out)
}

// Remaining returns the input from the cursor to the end
func (s *Scanner) Remaining() string {
	return s.Substring(s.offset, len(s.input)-s.offset)
}

// Preview returns at most `n` runes of the input starting at the
// cursor.  It's meant for diagnostics.
func (s *Scanner) Preview(n int) string {
	rest := len(s.input) - s.offset
	if n < 0 || n > rest {
		n = rest
	}
	return s.Substring(s.offset, n)
}

// NoMatch returns a failed match at the cursor
func (s *Scanner) NoMatch() Match {
	return Match{Offset: s.offset, Length: -1, scanner: s}
}

// EmptyMatch returns a successful match of length zero at the cursor
func (s *Scanner) EmptyMatch() Match {
	return Match{Success: true, Offset: s.offset, scanner: s}
}

// MakeMatch returns a successful match spanning `length` runes from
// `offset`
func (s *Scanner) MakeMatch(offset, length int) Match {
	if offset < 0 || length < 0 || offset+length > len(s.input) {
		panic(contractf("Scanner.MakeMatch", "range %d+%d out of bounds 0..%d", offset, length, len(s.input)))
	}
	return Match{Success: true, Offset: offset, Length: length, scanner: s}
}

func (s *Scanner) apply(r rune) rune {
	if s.filter == nil {
		return r
	}
	return s.filter(r)
}

// NewScannerFromConfig creates a scanner for `input` with the filter
// named by the `scanner.filter` setting installed.
func NewScannerFromConfig(input string, cfg *Config) (*Scanner, error) {
	f, err := FilterByName(cfg.GetString("scanner.filter"))
	if err != nil {
		return nil, err
	}
	s := NewScanner(input)
	s.SetFilter(f)
	return s, nil
}
