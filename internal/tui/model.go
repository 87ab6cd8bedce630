// Package tui provides the Bubble Tea password generator interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/safemate/internal/app"
	"github.com/verte-zerg/safemate/internal/history"
	"github.com/verte-zerg/safemate/internal/model"
)

const (
	toastDuration  = 3 * time.Second
	strengthCells  = 20
	sliderCells    = 24
	passwordColumn = 40
)

type pane int

const (
	paneOptions pane = iota
	paneHistory
)

// Row 0 of the options pane is the length slider; rows 1..n are the toggles.
const lengthRow = 0

type copyDoneMsg struct {
	notice app.Notice
}

type toastExpiredMsg struct {
	id int
}

// Model implements the Bubble Tea generator UI. It only translates input into
// Controller calls and renders the results.
type Model struct {
	ctrl *app.Controller

	width  int
	height int

	focus      pane
	optionRow  int
	historyRow int

	toast   string
	toastID int

	help   help.Model
	styles styles
}

// NewModel constructs a generator TUI model.
func NewModel(ctrl *app.Controller) *Model {
	return &Model{
		ctrl:   ctrl,
		help:   help.New(),
		styles: newStyles(ctrl.Theme()),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case copyDoneMsg:
		return m, m.showToast(msg.notice)
	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, keys.tab):
		m.switchPane()
		return nil
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
		return nil
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
		return nil
	case key.Matches(msg, keys.left):
		return m.adjustLength(-1)
	case key.Matches(msg, keys.right):
		return m.adjustLength(1)
	case key.Matches(msg, keys.toggle):
		if m.focus != paneOptions || m.optionRow == lengthRow {
			return nil
		}
		return m.showToast(m.ctrl.ToggleOption(app.AllOptions[m.optionRow-1]))
	case key.Matches(msg, keys.regenerate):
		return m.showToast(m.ctrl.Regenerate())
	case key.Matches(msg, keys.save):
		return m.showToast(m.ctrl.Save(ctx))
	case key.Matches(msg, keys.copy):
		return m.copySelection()
	case key.Matches(msg, keys.delete):
		return m.deleteSelection(ctx)
	case key.Matches(msg, keys.clear):
		cmd := m.showToast(m.ctrl.ClearHistory(ctx))
		m.historyRow = 0
		if m.focus == paneHistory {
			m.focus = paneOptions
		}
		return cmd
	case key.Matches(msg, keys.export):
		return m.showToast(m.ctrl.Export())
	case key.Matches(msg, keys.theme):
		cmd := m.showToast(m.ctrl.ToggleTheme(ctx))
		m.styles = newStyles(m.ctrl.Theme())
		return cmd
	default:
		return nil
	}
}

func (m *Model) switchPane() {
	if m.focus == paneOptions && len(m.ctrl.History()) > 0 {
		m.focus = paneHistory
		return
	}
	m.focus = paneOptions
}

func (m *Model) moveCursor(delta int) {
	if m.focus == paneHistory {
		m.historyRow = clamp(m.historyRow+delta, 0, len(m.ctrl.History())-1)
		return
	}
	m.optionRow = clamp(m.optionRow+delta, 0, len(app.AllOptions))
}

func (m *Model) adjustLength(delta int) tea.Cmd {
	if m.focus != paneOptions || m.optionRow != lengthRow {
		return nil
	}
	return m.showToast(m.ctrl.SetLength(m.ctrl.Config().Length + delta))
}

func (m *Model) copySelection() tea.Cmd {
	if m.focus == paneHistory {
		text, err := m.ctrl.HistoryPassword(m.historyRow)
		if err != nil {
			return nil
		}
		return m.copyCmd(text, app.NoticeHistoryCopied)
	}
	text, ok := m.ctrl.CurrentText()
	if !ok {
		return nil
	}
	return m.copyCmd(text, app.NoticeCopied)
}

func (m *Model) copyCmd(text string, success app.Notice) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return copyDoneMsg{notice: ctrl.Copy(text, success)}
	}
}

func (m *Model) deleteSelection(ctx context.Context) tea.Cmd {
	if m.focus != paneHistory {
		return nil
	}
	notice, err := m.ctrl.DeleteHistory(ctx, m.historyRow)
	if err != nil {
		return nil
	}
	remaining := len(m.ctrl.History())
	if remaining == 0 {
		m.focus = paneOptions
		m.historyRow = 0
	} else if m.historyRow >= remaining {
		m.historyRow = remaining - 1
	}
	return m.showToast(notice)
}

func (m *Model) showToast(notice app.Notice) tea.Cmd {
	if notice == "" || notice == app.NoticeEmptyCharset {
		// The empty-charset message is shown inline in place of the password.
		return nil
	}
	m.toastID++
	m.toast = string(notice)
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.styles.title.Render("SafeMate Password Generator") + "  " + m.styles.muted.Render(themeLabel(m.ctrl.Theme())),
		m.styles.card.Render(m.renderPassword()),
		m.renderStrength(),
		m.renderOptions(),
		m.renderHistory(),
	}
	if m.toast != "" {
		sections = append(sections, m.styles.toast.Render(m.toast))
	}
	sections = append(sections, m.help.View(keys))
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}

func (m *Model) renderPassword() string {
	res, ok := m.ctrl.Current()
	if !ok {
		return m.styles.muted.Render(string(app.NoticeEmptyCharset))
	}
	runes := buildStyledRunes(res.Text, m.styles.classes)
	return wrapStyledRunes(runes, m.contentWidth())
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width)*0.70) - 4
	if w < 8 {
		w = 8
	}
	return w
}

func (m *Model) renderStrength() string {
	res, ok := m.ctrl.Current()
	if !ok {
		bar := m.styles.muted.Render(strings.Repeat("░", strengthCells))
		return fmt.Sprintf("Strength %s  %s", bar, m.styles.muted.Render("Entropy: 0.0 bits"))
	}
	filled := int(res.Strength.Fraction() * strengthCells)
	tierStyle := m.styles.tiers[res.Strength]
	bar := tierStyle.Render(strings.Repeat("█", filled)) + m.styles.muted.Render(strings.Repeat("░", strengthCells-filled))
	return fmt.Sprintf("Strength %s %s  %s",
		bar,
		tierStyle.Render(res.Strength.String()),
		m.styles.muted.Render(fmt.Sprintf("Entropy: %.1f bits", res.EntropyBits)),
	)
}

func (m *Model) renderOptions() string {
	lines := make([]string, 0, len(app.AllOptions)+1)
	length := m.ctrl.Config().Length
	filled := (length - app.MinLength) * sliderCells / (app.MaxLength - app.MinLength)
	slider := strings.Repeat("■", filled) + strings.Repeat("·", sliderCells-filled)
	lines = append(lines, m.optionLine(lengthRow, fmt.Sprintf("Length  %s %d", slider, length)))
	for i, opt := range app.AllOptions {
		box := "[ ]"
		label := opt.Label()
		if m.ctrl.Enabled(opt) {
			box = m.styles.pressed.Render("[x]")
		}
		lines = append(lines, m.optionLine(i+1, box+" "+label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) optionLine(row int, text string) string {
	if m.focus == paneOptions && m.optionRow == row {
		return m.styles.selected.Render("> ") + text
	}
	return "  " + text
}

func (m *Model) renderHistory() string {
	entries := m.ctrl.History()
	header := m.styles.title.Render(fmt.Sprintf("History (%d/%d)", len(entries), history.Capacity))
	if len(entries) == 0 {
		return header + "\n" + m.styles.muted.Render("  No saved passwords")
	}
	lines := []string{header}
	for i, entry := range entries {
		pw := runewidth.FillRight(runewidth.Truncate(entry.Password, passwordColumn, "…"), passwordColumn)
		line := fmt.Sprintf("%2d  %s  %s", i, pw, m.styles.muted.Render(entry.Timestamp))
		if m.focus == paneHistory && m.historyRow == i {
			lines = append(lines, m.styles.selected.Render("> ")+line)
			continue
		}
		lines = append(lines, "  "+line)
	}
	return strings.Join(lines, "\n")
}

func themeLabel(t model.Theme) string {
	if t == model.ThemeDark {
		return "dark theme"
	}
	return "light theme"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
