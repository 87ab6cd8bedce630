// Package history keeps the bounded, most-recent-first log of saved passwords.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/safemate/internal/model"
)

const (
	// StorageKey is the key the history is persisted under.
	StorageKey = "passwordHistory"
	// Capacity is the maximum number of kept entries.
	Capacity = 20
	// TimestampLayout formats entry timestamps, e.g. "1/1/2024, 12:00:00 PM".
	TimestampLayout = "1/2/2006, 3:04:05 PM"
)

var (
	// ErrIndexOutOfRange is returned when deleting a position that does not exist.
	ErrIndexOutOfRange = errors.New("history index out of range")
	// ErrEmptyHistory is returned when exporting with nothing saved.
	ErrEmptyHistory = errors.New("no history to export")
	// ErrEmptyPassword is returned when saving an empty password.
	ErrEmptyPassword = errors.New("no password to save")
)

// KV is the string key-value storage the history persists to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// History owns the in-memory entries and mirrors every mutation to storage.
type History struct {
	kv      KV
	entries []model.HistoryEntry
	now     func() time.Time
}

// Load reads the persisted history. A missing key yields an empty history.
func Load(ctx context.Context, kv KV) (*History, error) {
	h := &History{kv: kv, now: time.Now}
	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if !ok {
		return h, nil
	}
	var entries []model.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	h.entries = entries
	return h, nil
}

// SetClock replaces the clock used to stamp saved entries.
func (h *History) SetClock(now func() time.Time) {
	h.now = now
}

// Entries returns a copy of the entries, most recent first.
func (h *History) Entries() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at index i.
func (h *History) At(i int) (model.HistoryEntry, error) {
	if i < 0 || i >= len(h.entries) {
		return model.HistoryEntry{}, ErrIndexOutOfRange
	}
	return h.entries[i], nil
}

// Save stamps password with the current time and appends it.
func (h *History) Save(ctx context.Context, password string) (model.HistoryEntry, error) {
	if password == "" {
		return model.HistoryEntry{}, ErrEmptyPassword
	}
	entry := model.HistoryEntry{
		Password:  password,
		Timestamp: h.now().Format(TimestampLayout),
	}
	return entry, h.Append(ctx, entry)
}

// Append inserts entry at the head and evicts the oldest entries beyond Capacity.
func (h *History) Append(ctx context.Context, entry model.HistoryEntry) error {
	entries := make([]model.HistoryEntry, 0, len(h.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, h.entries...)
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	h.entries = entries
	return h.persist(ctx)
}

// DeleteAt removes the entry at index i (0 is the most recent).
func (h *History) DeleteAt(ctx context.Context, i int) error {
	if i < 0 || i >= len(h.entries) {
		return ErrIndexOutOfRange
	}
	entries := make([]model.HistoryEntry, 0, len(h.entries)-1)
	entries = append(entries, h.entries[:i]...)
	entries = append(entries, h.entries[i+1:]...)
	h.entries = entries
	return h.persist(ctx)
}

// Clear drops every entry and removes the persisted record.
func (h *History) Clear(ctx context.Context) error {
	h.entries = nil
	if err := h.kv.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (h *History) persist(ctx context.Context) error {
	entries := h.entries
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := h.kv.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
