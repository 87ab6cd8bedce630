package app

import "github.com/verte-zerg/safemate/internal/model"

// Option identifies one charset toggle.
type Option int

// Charset toggles in display order.
const (
	OptUppercase Option = iota
	OptLowercase
	OptNumbers
	OptSymbols
	OptExcludeSimilar
	OptExcludeAmbiguous
)

// AllOptions lists every toggle in display order.
var AllOptions = []Option{
	OptUppercase,
	OptLowercase,
	OptNumbers,
	OptSymbols,
	OptExcludeSimilar,
	OptExcludeAmbiguous,
}

// Label returns the toggle caption.
func (o Option) Label() string {
	switch o {
	case OptUppercase:
		return "Uppercase (A-Z)"
	case OptLowercase:
		return "Lowercase (a-z)"
	case OptNumbers:
		return "Numbers (0-9)"
	case OptSymbols:
		return "Symbols (!@#$)"
	case OptExcludeSimilar:
		return "Exclude similar (0 O o l 1 I)"
	case OptExcludeAmbiguous:
		return "Exclude ambiguous (\" ' ` ;)"
	default:
		return ""
	}
}

func (o Option) field(opts *model.CharsetOptions) *bool {
	switch o {
	case OptUppercase:
		return &opts.Uppercase
	case OptLowercase:
		return &opts.Lowercase
	case OptNumbers:
		return &opts.Numbers
	case OptSymbols:
		return &opts.Symbols
	case OptExcludeSimilar:
		return &opts.ExcludeSimilar
	case OptExcludeAmbiguous:
		return &opts.ExcludeAmbiguous
	default:
		return nil
	}
}
