package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExportName is the suggested export filename.
const DefaultExportName = "password_history.csv"

// ExportCSV encodes the history as a header row followed by one quoted row per entry.
// Embedded double quotes are doubled.
func (h *History) ExportCSV() (string, error) {
	if len(h.entries) == 0 {
		return "", ErrEmptyHistory
	}
	var b strings.Builder
	b.WriteString("Password,Timestamp\n")
	for _, entry := range h.entries {
		fmt.Fprintf(&b, "%s,%s\n", quoteField(entry.Password), quoteField(entry.Timestamp))
	}
	return b.String(), nil
}

func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// WriteExport writes the CSV export to path. No file is created when the history is empty.
func (h *History) WriteExport(path string) error {
	payload, err := h.ExportCSV()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "export-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp export: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if _, err := writer.WriteString(payload); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
