// Package app owns the generator session state and maps user intents to operations.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/safemate/internal/generator"
	"github.com/verte-zerg/safemate/internal/history"
	"github.com/verte-zerg/safemate/internal/logger"
	"github.com/verte-zerg/safemate/internal/model"
	"github.com/verte-zerg/safemate/internal/theme"
)

// Slider bounds for the password length.
const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16
)

// Notice is a transient message for the user. Empty means nothing to show.
type Notice string

// User-facing notices.
const (
	NoticeEmptyCharset   Notice = "Select at least one character type"
	NoticeGenerateFailed Notice = "Failed to generate password"
	NoticeCopied         Notice = "Password copied to clipboard!"
	NoticeHistoryCopied  Notice = "Password copied!"
	NoticeCopyFailed     Notice = "Could not access the clipboard"
	NoticeSaved          Notice = "Password saved to history!"
	NoticeSaveFailed     Notice = "Failed to update history"
	NoticeCleared        Notice = "History cleared!"
	NoticeNothingExport  Notice = "No history to export!"
	NoticeExportFailed   Notice = "Failed to export history"
	NoticeThemeFailed    Notice = "Failed to save theme"
)

// Deps groups the collaborators of a Controller.
type Deps struct {
	Generator  *generator.Generator
	History    *history.History
	Theme      *theme.Preference
	Clipboard  Clipboard
	Logger     *logger.Logger
	ExportPath string
}

// Controller is the single owner of the session state.
type Controller struct {
	gen        *generator.Generator
	history    *history.History
	theme      *theme.Preference
	clip       Clipboard
	log        *logger.Logger
	exportPath string

	cfg        model.Config
	current    model.GeneratedPassword
	hasCurrent bool
}

// New constructs a Controller and generates the first password.
func New(cfg model.Config, deps Deps) *Controller {
	c := &Controller{
		gen:        deps.Generator,
		history:    deps.History,
		theme:      deps.Theme,
		clip:       deps.Clipboard,
		log:        deps.Logger,
		exportPath: deps.ExportPath,
		cfg:        cfg,
	}
	if c.gen == nil {
		c.gen = generator.New()
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	c.cfg.Length = clampLength(c.cfg.Length)
	c.Regenerate()
	return c
}

func clampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Config returns the active generator settings.
func (c *Controller) Config() model.Config {
	return c.cfg
}

// Enabled reports whether opt is pressed.
func (c *Controller) Enabled(opt Option) bool {
	opts := c.cfg.Options
	if f := opt.field(&opts); f != nil {
		return *f
	}
	return false
}

// Current returns the displayed password, if any.
func (c *Controller) Current() (model.GeneratedPassword, bool) {
	return c.current, c.hasCurrent
}

// Theme returns the active theme.
func (c *Controller) Theme() model.Theme {
	if c.theme == nil {
		return model.ThemeLight
	}
	return c.theme.Current()
}

// History returns the saved entries, most recent first.
func (c *Controller) History() []model.HistoryEntry {
	return c.history.Entries()
}

// ExportPath returns where Export writes.
func (c *Controller) ExportPath() string {
	return c.exportPath
}

// SetLength moves the slider and regenerates.
func (c *Controller) SetLength(n int) Notice {
	c.cfg.Length = clampLength(n)
	return c.Regenerate()
}

// ToggleOption flips a charset toggle and regenerates.
func (c *Controller) ToggleOption(opt Option) Notice {
	if f := opt.field(&c.cfg.Options); f != nil {
		*f = !*f
	}
	return c.Regenerate()
}

// Regenerate draws a new password from the current settings.
func (c *Controller) Regenerate() Notice {
	res, err := c.gen.Generate(c.cfg.Options, c.cfg.Length)
	if err != nil {
		c.current = model.GeneratedPassword{}
		c.hasCurrent = false
		if errors.Is(err, generator.ErrEmptyCharset) {
			return NoticeEmptyCharset
		}
		c.log.Error().Err(err).Msg("failed to generate password")
		return NoticeGenerateFailed
	}
	c.current = res
	c.hasCurrent = true
	return ""
}

// Save appends the displayed password to the history.
func (c *Controller) Save(ctx context.Context) Notice {
	if !c.hasCurrent || c.current.Text == "" {
		return ""
	}
	if _, err := c.history.Save(ctx, c.current.Text); err != nil {
		c.log.Error().Err(err).Msg("failed to save history")
		return NoticeSaveFailed
	}
	return NoticeSaved
}

// CurrentText returns the displayed password for copying.
func (c *Controller) CurrentText() (string, bool) {
	if !c.hasCurrent || c.current.Text == "" {
		return "", false
	}
	return c.current.Text, true
}

// HistoryPassword returns the password saved at index i.
func (c *Controller) HistoryPassword(i int) (string, error) {
	entry, err := c.history.At(i)
	if err != nil {
		return "", err
	}
	return entry.Password, nil
}

// Copy writes text to the clipboard. Failures are logged and reported as a notice,
// never returned. It touches no session state, so it may run off the event loop.
func (c *Controller) Copy(text string, success Notice) Notice {
	if c.clip == nil {
		return NoticeCopyFailed
	}
	if err := c.clip.Write(text); err != nil {
		c.log.Warn().Err(err).Msg("failed to write clipboard")
		return NoticeCopyFailed
	}
	return success
}

// DeleteHistory removes the entry at index i. An out-of-range index is a caller bug
// and is returned as history.ErrIndexOutOfRange.
func (c *Controller) DeleteHistory(ctx context.Context, i int) (Notice, error) {
	if err := c.history.DeleteAt(ctx, i); err != nil {
		if errors.Is(err, history.ErrIndexOutOfRange) {
			return "", err
		}
		c.log.Error().Err(err).Int("index", i).Msg("failed to delete history entry")
		return NoticeSaveFailed, nil
	}
	return "", nil
}

// ClearHistory drops every saved entry.
func (c *Controller) ClearHistory(ctx context.Context) Notice {
	if err := c.history.Clear(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to clear history")
		return NoticeSaveFailed
	}
	return NoticeCleared
}

// Export writes the history as CSV to the export path.
func (c *Controller) Export() Notice {
	if err := c.history.WriteExport(c.exportPath); err != nil {
		if errors.Is(err, history.ErrEmptyHistory) {
			return NoticeNothingExport
		}
		c.log.Error().Err(err).Str("path", c.exportPath).Msg("failed to export history")
		return NoticeExportFailed
	}
	return Notice(fmt.Sprintf("History exported as CSV: %s", c.exportPath))
}

// ToggleTheme flips and persists the theme.
func (c *Controller) ToggleTheme(ctx context.Context) Notice {
	if c.theme == nil {
		return ""
	}
	if _, err := c.theme.Toggle(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to save theme")
		return NoticeThemeFailed
	}
	return ""
}
