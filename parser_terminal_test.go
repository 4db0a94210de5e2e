package combinator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharParser(t *testing.T) {
	t.Run("consumes one accepted rune", func(t *testing.T) {
		s := NewScanner("7up")
		m, err := Char(Digit).Parse(s)
		require.NoError(t, err)
		assert.True(t, m.Success)
		assert.Equal(t, "7", m.Value())
		assert.Equal(t, 1, s.Offset())
	})

	t.Run("rejected rune is not consumed", func(t *testing.T) {
		s := NewScanner("up")
		m, err := Char(Digit).Parse(s)
		require.NoError(t, err)
		assert.False(t, m.Success)
		assert.Equal(t, 0, s.Offset())
	})

	t.Run("fails at the end of the input", func(t *testing.T) {
		for _, p := range []Parser{Char(AnyRune), Not(Lit('a'))} {
			s := NewScanner("")
			m, err := p.Parse(s)
			require.NoError(t, err)
			assert.False(t, m.Success, p.String())
		}
	})

	t.Run("negated", func(t *testing.T) {
		p := Not(Lit('a'))
		assert.Equal(t, "!'a'", p.String())

		s := NewScanner("ba")
		m, err := p.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, "b", m.Value())
		m, err = p.Parse(s)
		require.NoError(t, err)
		assert.False(t, m.Success)
		assert.Equal(t, 1, s.Offset())
	})

	t.Run("double negation gives back the same language", func(t *testing.T) {
		for _, p := range []Parser{Lit('a'), Char(Digit), Range('a', 'f'), String("a"), EOL()} {
			pp := Not(Not(p))
			for _, input := range []string{"a", "b", "5", "\n", "\r", " "} {
				expected, err := MatchString(p, input)
				require.NoError(t, err)
				actual, err := MatchString(pp, input)
				require.NoError(t, err)
				assert.Equal(t, expected.Success, actual.Success, "%s on %q", p, input)
				assert.Equal(t, expected.Length, actual.Length, "%s on %q", p, input)
			}
		}
	})

	t.Run("double negation without hooks is the parser itself", func(t *testing.T) {
		for _, p := range []Parser{Lit('a'), String("ab"), EOL(), End()} {
			assert.Same(t, p, Not(Not(p)), p.String())
		}
	})

	t.Run("negation keeps the actions of the negated parser", func(t *testing.T) {
		var got []string
		a := Lit('a')
		a.Act(AppendTo(&got))

		m, err := MatchString(Not(Not(a)), "a")
		require.NoError(t, err)
		assert.True(t, m.Success)
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("negation keeps the observers of the negated parser", func(t *testing.T) {
		var out bytes.Buffer
		b := Lit('b')
		NewTracer(&out).Attach(b)

		m, err := MatchString(Not(b), "x")
		require.NoError(t, err)
		assert.Equal(t, "x", m.Value())
		assert.Contains(t, out.String(), "-'b'")
	})

	t.Run("negated copy with hooks is wrapped when negated again", func(t *testing.T) {
		var got []string
		na := Not(Lit('a')).(*CharParser)
		na.Act(AppendTo(&got))

		m, err := MatchString(Not(na), "b")
		require.NoError(t, err)
		assert.False(t, m.Success)
		assert.Equal(t, []string{"b"}, got)
	})

	t.Run("range", func(t *testing.T) {
		p := Range('0', '9')
		assert.Equal(t, "[0-9]", p.String())
		m, err := MatchString(p, "5")
		require.NoError(t, err)
		assert.True(t, m.Success)
	})

	t.Run("nil tester", func(t *testing.T) {
		assertContractPanic(t, func() { Char(nil) })
	})

	t.Run("follows the scanner filter", func(t *testing.T) {
		s := NewScanner("A")
		s.SetFilter(LowerCase)
		m, err := Lit('a').Parse(s)
		require.NoError(t, err)
		assert.True(t, m.Success)
	})
}

func TestStringParser(t *testing.T) {
	t.Run("matches the literal", func(t *testing.T) {
		s := NewScanner("abcd")
		m, err := String("abc").Parse(s)
		require.NoError(t, err)
		assert.Equal(t, "abc", m.Value())
		assert.Equal(t, 3, s.Offset())
	})

	t.Run("rolls back on mismatch", func(t *testing.T) {
		s := NewScanner("abd")
		m, err := String("abc").Parse(s)
		require.NoError(t, err)
		assert.False(t, m.Success)
		assert.Equal(t, 0, s.Offset())
	})

	t.Run("end of input short circuits the comparison", func(t *testing.T) {
		s := NewScannerAt("xab", 1)
		m, err := String("abc").Parse(s)
		require.NoError(t, err)
		assert.False(t, m.Success)
		assert.Equal(t, 1, s.Offset())
	})

	t.Run("empty literal matches empty", func(t *testing.T) {
		m, err := MatchString(String(""), "abc")
		require.NoError(t, err)
		assert.True(t, m.Empty())
	})

	t.Run("negated consumes one rune", func(t *testing.T) {
		p := Not(String("ab"))
		assert.Equal(t, `!"ab"`, p.String())

		m, err := MatchString(p, "ac")
		require.NoError(t, err)
		assert.Equal(t, "a", m.Value())

		m, err = MatchString(p, "ab")
		require.NoError(t, err)
		assert.False(t, m.Success)
	})

	t.Run("multi byte runes", func(t *testing.T) {
		m, err := MatchString(String("ção"), "ção!")
		require.NoError(t, err)
		assert.Equal(t, 3, m.Length)
	})
}

func TestEOLParser(t *testing.T) {
	for _, test := range []struct {
		input   string
		success bool
		length  int
	}{
		{"\n", true, 1},
		{"\r", true, 1},
		{"\r\n", true, 2},
		{"\n\r", true, 1},
		{"\r\r", true, 1},
		{"a\n", false, -1},
		{"", false, -1},
	} {
		s := NewScanner(test.input)
		m, err := EOL().Parse(s)
		require.NoError(t, err)
		assert.Equal(t, test.success, m.Success, "%q", test.input)
		assert.Equal(t, test.length, m.Length, "%q", test.input)
		if !test.success {
			assert.Equal(t, 0, s.Offset())
		}
	}

	t.Run("negated", func(t *testing.T) {
		m, err := MatchString(Not(EOL()), "a\n")
		require.NoError(t, err)
		assert.Equal(t, "a", m.Value())

		m, err = MatchString(Not(EOL()), "\r\n")
		require.NoError(t, err)
		assert.False(t, m.Success)
	})
}

func TestEndParser(t *testing.T) {
	s := NewScannerAt("ab", 1)
	m, err := End().Parse(s)
	require.NoError(t, err)
	assert.False(t, m.Success)

	s.Read()
	m, err = End().Parse(s)
	require.NoError(t, err)
	assert.True(t, m.Empty())
	assert.Equal(t, 2, m.Offset)

	m, err = MatchString(Not(End()), "x")
	require.NoError(t, err)
	assert.Equal(t, "x", m.Value())
}
