package combinator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/combinator/ascii"
)

func TestDescribe(t *testing.T) {
	t.Run("terminals and combinators", func(t *testing.T) {
		p := Seq(Lit('a'), Choice(String("bc"), Range('0', '9')), ZeroOrMore(Not(EOL())), End())
		assert.Equal(t, strings.Join([]string{
			"Sequence",
			"├── 'a'",
			"├── Choice",
			`│   ├── "bc"`,
			"│   └── [0-9]",
			"├── ZeroOrMore",
			"│   └── !eol",
			"└── end",
		}, "\n")+"\n", Describe(p))
	})

	t.Run("recursive rules are expanded once", func(t *testing.T) {
		nested := NewRule("nested")
		nested.Set(Seq(Lit('('), Optional(nested), Lit(')')))
		assert.Equal(t, strings.Join([]string{
			"Rule nested",
			"└── Sequence",
			"    ├── '('",
			"    ├── Optional",
			"    │   └── Rule nested (see above)",
			"    └── ')'",
		}, "\n")+"\n", Describe(nested))
	})

	t.Run("undefined rules and actions", func(t *testing.T) {
		p := Do(Seq(NewRule("later"), Difference(Char(Letter), Lit('x'))), AppendTo(&[]string{}))
		assert.Equal(t, strings.Join([]string{
			"Do",
			"└── Sequence",
			"    ├── Rule later (undefined)",
			"    └── Difference",
			"        ├── char",
			"        └── 'x'",
		}, "\n")+"\n", Describe(p))
	})

	t.Run("escapes line breaks", func(t *testing.T) {
		assert.Equal(t, "'\\n'\n", Describe(Lit('\n')))
		assert.Equal(t, "[\\t-\\r]\n", Describe(Range('\t', '\r')))
	})

	t.Run("colors and writers", func(t *testing.T) {
		out := DescribeColors(Define("r", Lit('a')), ascii.DefaultTheme)
		assert.Equal(t, ascii.Purple+"Rule "+ascii.Reset+ascii.Pink+"r"+ascii.Reset+"\n"+
			"└── "+ascii.Orange+"'a'"+ascii.Reset+"\n", out)

		var w strings.Builder
		require.NoError(t, DescribeTo(&w, List(Lit('a'), Lit(','))))
		assert.Equal(t, "List\n├── 'a'\n└── ','\n", w.String())
	})
}
