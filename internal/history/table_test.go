package history

import (
	"testing"

	"github.com/verte-zerg/safemate/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	entries := []model.HistoryEntry{
		{Password: "Ab1!", Timestamp: "1/1/2024, 12:00:00 PM"},
		{Password: "longer-password", Timestamp: "1/2/2024, 9:30:00 AM"},
	}
	lines := FormatTable(entries)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "#  Password         Timestamp" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "0  Ab1!             1/1/2024, 12:00:00 PM" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "1  longer-password  1/2/2024, 9:30:00 AM" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
