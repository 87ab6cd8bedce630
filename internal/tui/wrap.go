package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/safemate/internal/generator"
)

type styledRune struct {
	s     string
	width int
}

func buildStyledRunes(password string, classes map[generator.Class]lipgloss.Style) []styledRune {
	runes := []rune(password)
	out := make([]styledRune, 0, len(runes))
	for _, r := range runes {
		style, ok := classes[generator.ClassOf(r)]
		if !ok {
			style = lipgloss.NewStyle()
		}
		out = append(out, styledRune{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks runes into lines no wider than width. Passwords have
// no word boundaries, so lines break at any rune.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	lineWidth := 0
	for _, item := range runes {
		if lineWidth+item.width > width && lineWidth > 0 {
			out.WriteRune('\n')
			lineWidth = 0
		}
		out.WriteString(item.s)
		lineWidth += item.width
	}
	return out.String()
}
