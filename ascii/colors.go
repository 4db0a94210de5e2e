// Package ascii provides terminal ANSI color codes semantic names for
// colors so they can be grouped in themes.
package ascii

const (
	Reset  = "\033[0m"
	Red    = "\033[1;31m"
	Yellow = "\033[1;33m"
	Green  = "\033[1;32m"
	Cyan   = "\033[1;36m"
	Gray   = "\033[90m" // Bright black, actually

	// 256-color palette
	Orange = "\033[38;5;208m"
	Purple = "\033[1;38;5;99m"
	Pink   = "\033[1;38;5;127m"
)

// Theme defines semantic color mappings
type Theme struct {
	// Outcome of an attempt
	Success string
	Failure string

	// UI elements
	Muted  string // secondary/dimmed text, like input previews
	Accent string // highlighted text, like rule names

	// Grammar printer
	Operator string
	Operand  string
	Literal  string
}

// DefaultTheme provides a sensible default color mapping.
var DefaultTheme = Theme{
	Success: Green,
	Failure: Red,

	Muted:  Gray,
	Accent: Cyan,

	Operator: Purple,
	Operand:  Pink,
	Literal:  Orange,
}

// Paint wraps `s` with `color` and a reset code.  An empty color
// leaves `s` untouched.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + Reset
}
