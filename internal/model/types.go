// Package model defines shared data structures.
package model

// CharsetOptions selects the character categories and exclusions for a password.
type CharsetOptions struct {
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// Config defines generator settings resolved from flags and the config file.
type Config struct {
	Length  int
	Options CharsetOptions
}

// StrengthTier is a coarse classification of password entropy.
type StrengthTier int

// Strength tiers, weakest first.
const (
	Weak StrengthTier = iota
	Fair
	Good
	VeryStrong
)

// String returns the display label for the tier.
func (t StrengthTier) String() string {
	switch t {
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Weak"
	}
}

// Fraction returns the share of the strength bar filled for the tier.
func (t StrengthTier) Fraction() float64 {
	switch t {
	case Fair:
		return 0.50
	case Good:
		return 0.75
	case VeryStrong:
		return 1.00
	default:
		return 0.25
	}
}

// GeneratedPassword is the result of one generation.
type GeneratedPassword struct {
	Text        string
	Length      int
	CharsetSize int
	EntropyBits float64
	Strength    StrengthTier
}

// HistoryEntry is one saved password.
type HistoryEntry struct {
	Password  string `json:"password"`
	Timestamp string `json:"timestamp"`
}

// Theme is the persisted colour scheme preference.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored value to a Theme. Unknown values fall back to light.
func ParseTheme(value string) Theme {
	if Theme(value) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
