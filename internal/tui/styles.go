package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/safemate/internal/generator"
	"github.com/verte-zerg/safemate/internal/model"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	upper  lipgloss.Color
	lower  lipgloss.Color
	number lipgloss.Color
	symbol lipgloss.Color
	weak   lipgloss.Color
	fair   lipgloss.Color
	good   lipgloss.Color
	strong lipgloss.Color
	border lipgloss.Color
}

var (
	lightPalette = palette{
		text:   "#1F1F1F",
		muted:  "#6E6E6E",
		accent: "#8A5A00",
		upper:  "#1D4ED8",
		lower:  "#1F1F1F",
		number: "#B45309",
		symbol: "#BE123C",
		weak:   "#DC2626",
		fair:   "#D97706",
		good:   "#2563EB",
		strong: "#16A34A",
		border: "#B0B0B0",
	}
	darkPalette = palette{
		text:   "#F0F0F0",
		muted:  "#8C8C8C",
		accent: "#C89A3A",
		upper:  "#7AA2F7",
		lower:  "#F0F0F0",
		number: "#E0AF68",
		symbol: "#F7768E",
		weak:   "#FF4D4F",
		fair:   "#FAAD14",
		good:   "#40A9FF",
		strong: "#52C41A",
		border: "#4A4A4A",
	}
)

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	pressed  lipgloss.Style
	card     lipgloss.Style
	toast    lipgloss.Style
	classes  map[generator.Class]lipgloss.Style
	tiers    map[model.StrengthTier]lipgloss.Style
}

func newStyles(t model.Theme) styles {
	p := lightPalette
	if t == model.ThemeDark {
		p = darkPalette
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	return styles{
		title:    fg(p.accent).Bold(true),
		text:     fg(p.text),
		muted:    fg(p.muted),
		selected: fg(p.accent).Bold(true),
		pressed:  fg(p.strong),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		toast: lipgloss.NewStyle().
			Foreground(p.text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.accent),
		classes: map[generator.Class]lipgloss.Style{
			generator.ClassUpper:  fg(p.upper),
			generator.ClassLower:  fg(p.lower),
			generator.ClassNumber: fg(p.number),
			generator.ClassSymbol: fg(p.symbol),
			generator.ClassOther:  fg(p.text),
		},
		tiers: map[model.StrengthTier]lipgloss.Style{
			model.Weak:       fg(p.weak),
			model.Fair:       fg(p.fair),
			model.Good:       fg(p.good),
			model.VeryStrong: fg(p.strong),
		},
	}
}
