package generator

import (
	"math"

	"github.com/verte-zerg/safemate/internal/model"
)

// Tier boundaries in bits.
const (
	fairBits       = 40
	goodBits       = 60
	veryStrongBits = 80
)

// Entropy returns length*log2(charsetSize), or 0 when either input is not positive.
func Entropy(length, charsetSize int) float64 {
	if length <= 0 || charsetSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(charsetSize))
}

// ClassifyStrength maps entropy bits to a tier.
func ClassifyStrength(bits float64) model.StrengthTier {
	switch {
	case bits < fairBits:
		return model.Weak
	case bits < goodBits:
		return model.Fair
	case bits < veryStrongBits:
		return model.Good
	default:
		return model.VeryStrong
	}
}
