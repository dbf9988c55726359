// Package ascii provides terminal ANSI color codes and a small theme
// type for coloring the diagnostic lines slimfmt's STDERR_ASSERT mode
// writes to stderr.
package ascii

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	Reset   = "\033[0m"
	Red     = "\033[1;31m"
	Yellow  = "\033[1;33m"
	Green   = "\033[1;32m"
	Blue    = "\033[1;34m"
	Cyan    = "\033[1;36m"
	Gray    = "\033[90m" // Bright black, actually
	Magenta = "\033[1;35m"
	Bold    = "\033[1m"
)

// Severity buckets the diagnostic kinds a format call can raise into
// the handful of color groups a theme actually needs to distinguish:
// Fatal aborts the rest of the scan, Dropped throws away one field's
// output, Mismatch substitutes a sentinel and keeps going, Notice is
// purely informational (unconsumed arguments).
type Severity int

const (
	SeverityFatal Severity = iota
	SeverityDropped
	SeverityMismatch
	SeverityNotice
)

// Theme assigns a color to each diagnostic severity, plus two general
// accents an embedding application can reuse outside diagnostic output.
// ForSeverity falls back to Muted; nothing in this module reads Accent.
type Theme struct {
	Fatal    string // TruncatedField, ArgUnderflow
	Dropped  string // BadSpec, BadBase
	Mismatch string // CategoryMismatch
	Notice   string // ArgOverflow

	Muted  string
	Accent string
}

// DefaultTheme is the color mapping used when no theme file is loaded.
var DefaultTheme = Theme{
	Fatal:    Red,
	Dropped:  Yellow,
	Mismatch: Magenta,
	Notice:   Cyan,

	Muted:  Gray,
	Accent: Cyan,
}

// ForSeverity returns the color t assigns to sev, falling back to
// Muted for a severity value outside the known range.
func (t Theme) ForSeverity(sev Severity) string {
	switch sev {
	case SeverityFatal:
		return t.Fatal
	case SeverityDropped:
		return t.Dropped
	case SeverityMismatch:
		return t.Mismatch
	case SeverityNotice:
		return t.Notice
	default:
		return t.Muted
	}
}

// Color wraps format/args in fmt.Sprintf, bracketed by color and Reset.
func Color(color, format string, args ...any) string {
	return fmt.Sprintf(color+format+Reset, args...)
}

// namedColors maps the palette names usable in a theme file to their
// escape sequences, so a YAML theme can say "red" instead of an
// escape literal.
var namedColors = map[string]string{
	"reset":   Reset,
	"red":     Red,
	"yellow":  Yellow,
	"green":   Green,
	"blue":    Blue,
	"cyan":    Cyan,
	"gray":    Gray,
	"magenta": Magenta,
	"bold":    Bold,
}

// themeDoc is the on-disk shape a theme YAML file is unmarshaled into:
// every field is a palette name (see namedColors), and any field left
// empty falls back to DefaultTheme's value.
type themeDoc struct {
	Fatal    string `yaml:"fatal"`
	Dropped  string `yaml:"dropped"`
	Mismatch string `yaml:"mismatch"`
	Notice   string `yaml:"notice"`

	Muted  string `yaml:"muted"`
	Accent string `yaml:"accent"`
}

// resolve looks up name in namedColors, falling back to fallback when
// name is empty or unrecognized.
func resolve(name, fallback string) string {
	if name == "" {
		return fallback
	}
	if c, ok := namedColors[name]; ok {
		return c
	}
	return fallback
}

// LoadTheme reads a YAML theme file from path and merges it over
// DefaultTheme, so a file only needs to name the fields it overrides.
func LoadTheme(path string) (*Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ascii: reading theme %s: %w", path, err)
	}

	var doc themeDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("ascii: parsing theme %s: %w", path, err)
	}

	t := DefaultTheme
	t.Fatal = resolve(doc.Fatal, t.Fatal)
	t.Dropped = resolve(doc.Dropped, t.Dropped)
	t.Mismatch = resolve(doc.Mismatch, t.Mismatch)
	t.Notice = resolve(doc.Notice, t.Notice)
	t.Muted = resolve(doc.Muted, t.Muted)
	t.Accent = resolve(doc.Accent, t.Accent)
	return &t, nil
}
