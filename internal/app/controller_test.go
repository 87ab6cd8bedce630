package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/safemate/internal/generator"
	"github.com/verte-zerg/safemate/internal/history"
	"github.com/verte-zerg/safemate/internal/logger"
	"github.com/verte-zerg/safemate/internal/model"
	"github.com/verte-zerg/safemate/internal/theme"
)

type memKV struct {
	values  map[string]string
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type fakeClipboard struct {
	written []string
	err     error
}

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

func newController(t *testing.T, kv *memKV, clip Clipboard) *Controller {
	t.Helper()
	ctx := context.Background()
	h, err := history.Load(ctx, kv)
	require.NoError(t, err)
	pref, err := theme.Load(ctx, kv)
	require.NoError(t, err)
	cfg := model.Config{
		Length:  DefaultLength,
		Options: model.CharsetOptions{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
	}
	return New(cfg, Deps{
		Generator:  generator.New(),
		History:    h,
		Theme:      pref,
		Clipboard:  clip,
		Logger:     logger.Nop(),
		ExportPath: filepath.Join(t.TempDir(), history.DefaultExportName),
	})
}

func TestNewGeneratesInitialPassword(t *testing.T) {
	c := newController(t, newMemKV(), &fakeClipboard{})
	res, ok := c.Current()
	require.True(t, ok)
	assert.Len(t, res.Text, DefaultLength)
	assert.Equal(t, 88, res.CharsetSize)
}

func TestSetLengthClamps(t *testing.T) {
	c := newController(t, newMemKV(), &fakeClipboard{})
	c.SetLength(1)
	assert.Equal(t, MinLength, c.Config().Length)
	c.SetLength(1000)
	assert.Equal(t, MaxLength, c.Config().Length)
	res, _ := c.Current()
	assert.Len(t, res.Text, MaxLength)
}

func TestToggleOffEveryCategory(t *testing.T) {
	c := newController(t, newMemKV(), &fakeClipboard{})
	var notice Notice
	for _, opt := range []Option{OptUppercase, OptLowercase, OptNumbers, OptSymbols} {
		notice = c.ToggleOption(opt)
	}
	assert.Equal(t, NoticeEmptyCharset, notice)
	_, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, Notice(""), c.Save(context.Background()))
	assert.Empty(t, c.History())

	assert.Equal(t, Notice(""), c.ToggleOption(OptNumbers))
	assert.True(t, c.Enabled(OptNumbers))
	res, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, 10, res.CharsetSize)
}

func TestSaveCopyDeleteClear(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	clip := &fakeClipboard{}
	c := newController(t, kv, clip)

	assert.Equal(t, NoticeSaved, c.Save(ctx))
	first, _ := c.CurrentText()
	c.Regenerate()
	assert.Equal(t, NoticeSaved, c.Save(ctx))
	second, _ := c.CurrentText()
	require.Len(t, c.History(), 2)
	assert.Equal(t, second, c.History()[0].Password)
	assert.Contains(t, kv.values, history.StorageKey)

	text, err := c.HistoryPassword(1)
	require.NoError(t, err)
	assert.Equal(t, NoticeHistoryCopied, c.Copy(text, NoticeHistoryCopied))
	assert.Equal(t, []string{first}, clip.written)

	_, err = c.DeleteHistory(ctx, 5)
	assert.ErrorIs(t, err, history.ErrIndexOutOfRange)
	_, err = c.DeleteHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, c.History(), 1)
	assert.Equal(t, first, c.History()[0].Password)

	assert.Equal(t, NoticeCleared, c.ClearHistory(ctx))
	assert.Empty(t, c.History())
	assert.NotContains(t, kv.values, history.StorageKey)
}

func TestCopyFailureIsSwallowed(t *testing.T) {
	c := newController(t, newMemKV(), &fakeClipboard{err: errors.New("no display")})
	text, ok := c.CurrentText()
	require.True(t, ok)
	assert.Equal(t, NoticeCopyFailed, c.Copy(text, NoticeCopied))

	c = newController(t, newMemKV(), nil)
	assert.Equal(t, NoticeCopyFailed, c.Copy("x", NoticeCopied))
}

func TestSaveStorageFailureKeepsPassword(t *testing.T) {
	kv := newMemKV()
	c := newController(t, kv, &fakeClipboard{})
	kv.failSet = true
	assert.Equal(t, NoticeSaveFailed, c.Save(context.Background()))
	_, ok := c.Current()
	assert.True(t, ok)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	c := newController(t, newMemKV(), &fakeClipboard{})
	assert.Equal(t, NoticeNothingExport, c.Export())
	_, err := os.Stat(c.ExportPath())
	assert.True(t, os.IsNotExist(err))

	c.Save(ctx)
	notice := c.Export()
	assert.True(t, strings.HasPrefix(string(notice), "History exported as CSV"))
	data, err := os.ReadFile(c.ExportPath())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Password,Timestamp\n"))
}

func TestToggleThemeTwice(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	c := newController(t, kv, &fakeClipboard{})
	assert.Equal(t, model.ThemeLight, c.Theme())
	c.ToggleTheme(ctx)
	assert.Equal(t, model.ThemeDark, c.Theme())
	assert.Equal(t, "dark", kv.values[theme.StorageKey])
	c.ToggleTheme(ctx)
	assert.Equal(t, model.ThemeLight, c.Theme())
	assert.Equal(t, "light", kv.values[theme.StorageKey])

	kv.failSet = true
	assert.Equal(t, NoticeThemeFailed, c.ToggleTheme(ctx))
}
