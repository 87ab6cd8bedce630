// Package theme persists the light/dark preference.
package theme

import (
	"context"
	"fmt"

	"github.com/verte-zerg/safemate/internal/model"
)

// StorageKey is the key the preference is persisted under.
const StorageKey = "theme"

// KV is the storage the preference persists to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Preference holds the current theme.
type Preference struct {
	kv      KV
	current model.Theme
}

// Load reads the stored theme, defaulting to light.
func Load(ctx context.Context, kv KV) (*Preference, error) {
	raw, _, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return &Preference{kv: kv, current: model.ParseTheme(raw)}, nil
}

// Current returns the active theme.
func (p *Preference) Current() model.Theme {
	return p.current
}

// Toggle flips the theme and persists it. The in-memory value changes even when
// persisting fails.
func (p *Preference) Toggle(ctx context.Context) (model.Theme, error) {
	p.current = p.current.Toggled()
	if err := p.kv.Set(ctx, StorageKey, string(p.current)); err != nil {
		return p.current, fmt.Errorf("failed to save theme: %w", err)
	}
	return p.current, nil
}
