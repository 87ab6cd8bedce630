package generator

import (
	"strings"

	"github.com/verte-zerg/safemate/internal/model"
)

// Category alphabets, concatenated in this order.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Exclusion sets.
const (
	SimilarChars   = "0Ool1I"
	AmbiguousChars = "\"'`;"
)

// BuildCharset assembles the alphabet for opts. It returns "" when no category is
// enabled or exclusions remove every character.
func BuildCharset(opts model.CharsetOptions) string {
	var b strings.Builder
	if opts.Uppercase {
		b.WriteString(UppercaseChars)
	}
	if opts.Lowercase {
		b.WriteString(LowercaseChars)
	}
	if opts.Numbers {
		b.WriteString(NumberChars)
	}
	if opts.Symbols {
		b.WriteString(SymbolChars)
	}
	charset := b.String()
	if opts.ExcludeSimilar {
		charset = without(charset, SimilarChars)
	}
	if opts.ExcludeAmbiguous {
		charset = without(charset, AmbiguousChars)
	}
	return charset
}

func without(charset, excluded string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(excluded, r) {
			return -1
		}
		return r
	}, charset)
}

// Class groups a character by the category alphabet it came from.
type Class int

// Character classes.
const (
	ClassOther Class = iota
	ClassUpper
	ClassLower
	ClassNumber
	ClassSymbol
)

// ClassOf reports which category alphabet contains r.
func ClassOf(r rune) Class {
	switch {
	case strings.ContainsRune(UppercaseChars, r):
		return ClassUpper
	case strings.ContainsRune(LowercaseChars, r):
		return ClassLower
	case strings.ContainsRune(NumberChars, r):
		return ClassNumber
	case strings.ContainsRune(SymbolChars, r):
		return ClassSymbol
	default:
		return ClassOther
	}
}
