// Package generator builds passwords from a secure random source.
package generator

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/verte-zerg/safemate/internal/model"
)

var (
	// ErrEmptyCharset is returned when the options leave no usable characters.
	ErrEmptyCharset = errors.New("select at least one character type")
	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("password length must not be negative")
)

// RandomSource fills buf with uniformly distributed values from a
// cryptographically secure source.
type RandomSource interface {
	Fill(buf []uint32) error
}

// CryptoSource reads from crypto/rand.
type CryptoSource struct{}

// Fill implements RandomSource.
func (CryptoSource) Fill(buf []uint32) error {
	raw := make([]byte, 4*len(buf))
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range buf {
		buf[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return nil
}

// Generator produces passwords.
type Generator struct {
	src RandomSource
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{src: CryptoSource{}}
}

// NewWithSource returns a Generator that draws from src.
func NewWithSource(src RandomSource) *Generator {
	return &Generator{src: src}
}

// Generate draws length characters from the charset built from opts.
func (g *Generator) Generate(opts model.CharsetOptions, length int) (model.GeneratedPassword, error) {
	charset := BuildCharset(opts)
	if charset == "" {
		return model.GeneratedPassword{}, ErrEmptyCharset
	}
	if length < 0 {
		return model.GeneratedPassword{}, ErrInvalidLength
	}
	size := len(charset)
	if length == 0 {
		return model.GeneratedPassword{CharsetSize: size, Strength: model.Weak}, nil
	}

	indexes, err := g.sample(length, size)
	if err != nil {
		return model.GeneratedPassword{}, err
	}
	text := make([]byte, length)
	for i, idx := range indexes {
		text[i] = charset[idx]
	}

	bits := Entropy(length, size)
	return model.GeneratedPassword{
		Text:        string(text),
		Length:      length,
		CharsetSize: size,
		EntropyBits: bits,
		Strength:    ClassifyStrength(bits),
	}, nil
}

// sample returns count indexes in [0, size). Values at or above the largest
// multiple of size that fits in 32 bits are redrawn so every index is equally likely.
func (g *Generator) sample(count, size int) ([]uint32, error) {
	n := uint64(size)
	limit := uint64(math.MaxUint32+1) - (uint64(math.MaxUint32+1) % n)

	out := make([]uint32, 0, count)
	buf := make([]uint32, count)
	for len(out) < count {
		need := buf[:count-len(out)]
		if err := g.src.Fill(need); err != nil {
			return nil, fmt.Errorf("failed to draw random values: %w", err)
		}
		for _, v := range need {
			if uint64(v) >= limit {
				continue
			}
			out = append(out, uint32(uint64(v)%n))
		}
	}
	return out, nil
}
