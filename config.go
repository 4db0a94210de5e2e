package combinator

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Config holds the settings read by the tracer and scanner
// constructors.  Each setting is a bool, an int or a string, and keeps
// the type it was first assigned with.
type Config struct {
	values map[string]any
}

// NewConfig creates a new configuration object primed with the
// default values expected by the tracer and the scanner constructors.
func NewConfig() *Config {
	c := &Config{values: map[string]any{}}
	// how many runes of the remaining input each trace line shows
	c.SetInt("trace.preview_len", 20)
	// padding written once per nesting level
	c.SetString("trace.indent", "  ")
	// colorize trace markers with ANSI codes
	c.SetBool("trace.colors", false)
	// name of the filter installed in new scanners: none, lower or upper
	c.SetString("scanner.filter", "none")
	return c
}

// Debug writes every setting and its value to `w`, one per line
func (c *Config) Debug(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := make([]string, 0, len(c.values))
	width := 0
	for k := range c.values {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := c.values[k]
		format := "%s%s : %v (%T)\n"
		if _, ok := v.(string); ok {
			format = "%s%s : %q (%T)\n"
		}
		fmt.Fprintf(w, format, k, strings.Repeat(" ", width-len(k)), v, v)
	}
}

func (c *Config) SetBool(path string, v bool)     { setting(c, path, v) }
func (c *Config) SetInt(path string, v int)       { setting(c, path, v) }
func (c *Config) SetString(path string, v string) { setting(c, path, v) }

func (c *Config) GetBool(path string) bool     { return lookup[bool](c, path) }
func (c *Config) GetInt(path string) int       { return lookup[int](c, path) }
func (c *Config) GetString(path string) string { return lookup[string](c, path) }

// setting stores `v` under `path`, refusing to change the type of a
// setting that already exists
func setting[T bool | int | string](c *Config, path string, v T) {
	if old, ok := c.values[path]; ok {
		if _, same := old.(T); !same {
			panic(fmt.Sprintf("Can't assign `%T` to `%s` of type `%T`", v, path, old))
		}
	}
	c.values[path] = v
}

func lookup[T bool | int | string](c *Config, path string) T {
	v, ok := c.values[path]
	if !ok {
		var zero T
		panic(fmt.Sprintf("%T setting `%s` does not exist", zero, path))
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("Can't retrieve `%T` from `%s` of type `%T`", t, path, v))
	}
	return t
}
