package combinator

import (
	"fmt"
	"strings"
	"unicode"
)

// Tester decides whether a single rune is accepted by a character
// parser.  Testers must not have side effects.
type Tester func(r rune) bool

// Filter transforms the runes a scanner hands out to parsers, like
// folding them to lower case.  Filters must not have side effects.
type Filter func(r rune) rune

var (
	Digit         Tester = unicode.IsDigit
	Letter        Tester = unicode.IsLetter
	Punct         Tester = unicode.IsPunct
	Separator     Tester = func(r rune) bool { return unicode.Is(unicode.Z, r) }
	Symbol        Tester = unicode.IsSymbol
	Upper         Tester = unicode.IsUpper
	Lower         Tester = unicode.IsLower
	Space         Tester = unicode.IsSpace
	LetterOrDigit Tester = func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	AnyRune       Tester = func(r rune) bool { return r != EOF }
)

// Is returns a tester that only accepts `c`
func Is(c rune) Tester {
	return func(r rune) bool { return r == c }
}

// InRange returns a tester that accepts runes between `lo` and `hi`,
// both inclusive
func InRange(lo, hi rune) Tester {
	if lo > hi {
		panic(contractf("InRange", "empty range `%c-%c`", lo, hi))
	}
	return func(r rune) bool { return r >= lo && r <= hi }
}

// OneOf returns a tester that accepts any of the runes in `set`
func OneOf(set string) Tester {
	return func(r rune) bool { return r != EOF && strings.ContainsRune(set, r) }
}

var (
	LowerCase Filter = unicode.ToLower
	UpperCase Filter = unicode.ToUpper
)

// FilterByName returns the filter registered under `name`.  The name
// "none" (and the empty string) map to a nil filter.
func FilterByName(name string) (Filter, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "lower":
		return LowerCase, nil
	case "upper":
		return UpperCase, nil
	default:
		return nil, fmt.Errorf("unknown filter `%s`", name)
	}
}
