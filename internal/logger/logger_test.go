package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesRoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "tui")
	l.Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "tui", line["role"])
	assert.Equal(t, "hello", line["message"])
	assert.Contains(t, line, "time")
}

func TestNewFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "safemate.log")
	l, closeFn, err := NewFileLogger(path, "cli")
	require.NoError(t, err)
	l.Warn().Msg("first")
	require.NoError(t, closeFn())

	l, closeFn, err = NewFileLogger(path, "cli")
	require.NoError(t, err)
	l.Warn().Msg("second")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte("\n")))
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("ignored")
	})
}
