package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/safemate/internal/generator"
	"github.com/verte-zerg/safemate/internal/model"
)

func TestBuildStyledRunesUsesClassStyles(t *testing.T) {
	st := newStyles(model.ThemeDark)
	runes := buildStyledRunes("A1!", st.classes)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[0].s != st.classes[generator.ClassUpper].Render("A") {
		t.Fatalf("expected upper style for first rune")
	}
	if runes[1].s != st.classes[generator.ClassNumber].Render("1") {
		t.Fatalf("expected number style for second rune")
	}
	if runes[2].s != st.classes[generator.ClassSymbol].Render("!") {
		t.Fatalf("expected symbol style for third rune")
	}
}

func TestWrapStyledRunesBreaksAtWidth(t *testing.T) {
	runes := buildStyledRunes("abcdefghij", nil)
	out := wrapStyledRunes(runes, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "abcd" || lines[1] != "efgh" || lines[2] != "ij" {
		t.Fatalf("unexpected wrap: %q", lines)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	runes := buildStyledRunes("abc", nil)
	if got := wrapStyledRunes(runes, 0); got != "abc" {
		t.Fatalf("expected unwrapped output, got %q", got)
	}
}
