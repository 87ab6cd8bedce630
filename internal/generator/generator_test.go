package generator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/safemate/internal/model"
)

type seqSource struct {
	values []uint32
	pos    int
	calls  int
}

func (s *seqSource) Fill(buf []uint32) error {
	s.calls++
	for i := range buf {
		buf[i] = s.values[s.pos%len(s.values)]
		s.pos++
	}
	return nil
}

type failingSource struct{}

func (failingSource) Fill([]uint32) error { return errors.New("boom") }

func allOptions() model.CharsetOptions {
	return model.CharsetOptions{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

func TestBuildCharsetOrderAndExclusions(t *testing.T) {
	tests := []struct {
		name string
		opts model.CharsetOptions
		want string
	}{
		{name: "none", opts: model.CharsetOptions{}, want: ""},
		{name: "upper", opts: model.CharsetOptions{Uppercase: true}, want: UppercaseChars},
		{name: "lower_numbers", opts: model.CharsetOptions{Lowercase: true, Numbers: true}, want: LowercaseChars + NumberChars},
		{name: "all", opts: allOptions(), want: UppercaseChars + LowercaseChars + NumberChars + SymbolChars},
		{name: "numbers_similar", opts: model.CharsetOptions{Numbers: true, ExcludeSimilar: true}, want: "23456789"},
		{name: "symbols_ambiguous", opts: model.CharsetOptions{Symbols: true, ExcludeAmbiguous: true}, want: "!@#$%^&*()_+-=[]{}|:,.<>?"},
		{name: "exclusions_only", opts: model.CharsetOptions{ExcludeSimilar: true, ExcludeAmbiguous: true}, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildCharset(tc.opts); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBuildCharsetNeverContainsExcluded(t *testing.T) {
	for mask := 1; mask < 16; mask++ {
		opts := model.CharsetOptions{
			Uppercase:        mask&1 != 0,
			Lowercase:        mask&2 != 0,
			Numbers:          mask&4 != 0,
			Symbols:          mask&8 != 0,
			ExcludeSimilar:   true,
			ExcludeAmbiguous: true,
		}
		charset := BuildCharset(opts)
		if charset == "" {
			t.Fatalf("mask %d: expected non-empty charset", mask)
		}
		if strings.ContainsAny(charset, SimilarChars+AmbiguousChars) {
			t.Fatalf("mask %d: charset %q contains excluded characters", mask, charset)
		}
	}
}

func TestGenerateEmptyCharset(t *testing.T) {
	src := &seqSource{values: []uint32{0}}
	gen := NewWithSource(src)
	_, err := gen.Generate(model.CharsetOptions{ExcludeSimilar: true}, 12)
	if !errors.Is(err, ErrEmptyCharset) {
		t.Fatalf("expected ErrEmptyCharset, got %v", err)
	}
	if src.calls != 0 {
		t.Fatalf("expected no random draws, got %d", src.calls)
	}
}

func TestGenerateLengthEdges(t *testing.T) {
	gen := NewWithSource(&seqSource{values: []uint32{0}})
	if _, err := gen.Generate(allOptions(), -1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	res, err := gen.Generate(allOptions(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "" || res.EntropyBits != 0 || res.Strength != model.Weak {
		t.Fatalf("unexpected zero-length result: %+v", res)
	}
}

func TestGenerateLengthAndAlphabet(t *testing.T) {
	gen := New()
	opts := model.CharsetOptions{Lowercase: true, Numbers: true, ExcludeSimilar: true}
	charset := BuildCharset(opts)
	for _, length := range []int{1, 8, 16, 64, 128} {
		res, err := gen.Generate(opts, length)
		if err != nil {
			t.Fatalf("generate %d: %v", length, err)
		}
		if len(res.Text) != length || res.Length != length {
			t.Fatalf("expected length %d, got %d", length, len(res.Text))
		}
		for _, r := range res.Text {
			if !strings.ContainsRune(charset, r) {
				t.Fatalf("character %q not in charset %q", r, charset)
			}
		}
		if res.CharsetSize != len(charset) {
			t.Fatalf("expected charset size %d, got %d", len(charset), res.CharsetSize)
		}
	}
}

func TestGenerateMapsSamplesToCharset(t *testing.T) {
	gen := NewWithSource(&seqSource{values: []uint32{0, 1, 27, 10}})
	res, err := gen.Generate(model.CharsetOptions{Numbers: true}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "0170" {
		t.Fatalf("expected 0170, got %q", res.Text)
	}
}

func TestGenerateRedrawsBiasedSamples(t *testing.T) {
	// 2^32 % 10 == 6, so the top six values are rejected.
	src := &seqSource{values: []uint32{math.MaxUint32 - 5, 3, 4}}
	gen := NewWithSource(src)
	res, err := gen.Generate(model.CharsetOptions{Numbers: true}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "34" {
		t.Fatalf("expected 34, got %q", res.Text)
	}
	if src.calls != 2 {
		t.Fatalf("expected a refill for rejected samples, got %d fills", src.calls)
	}
}

func TestGenerateSourceFailure(t *testing.T) {
	gen := NewWithSource(failingSource{})
	if _, err := gen.Generate(allOptions(), 8); err == nil {
		t.Fatalf("expected error from failing source")
	}
}

func TestGenerateUniqueness(t *testing.T) {
	gen := New()
	a, err := gen.Generate(allOptions(), 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.Generate(allOptions(), 32)
	if err != nil {
		t.Fatal(err)
	}
	if a.Text == b.Text {
		t.Fatalf("two generated passwords are identical: %q", a.Text)
	}
}

func TestClassOf(t *testing.T) {
	cases := map[rune]Class{'A': ClassUpper, 'z': ClassLower, '7': ClassNumber, '#': ClassSymbol, '~': ClassOther}
	for r, want := range cases {
		if got := ClassOf(r); got != want {
			t.Fatalf("ClassOf(%q) = %d, want %d", r, got, want)
		}
	}
}
