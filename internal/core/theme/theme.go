// Package theme manages the persisted light/dark preference.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Theme is a visual theme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is the theme used when nothing is stored.
const Default = Dark

// ErrNotSet is returned by a Store that holds no preference.
var ErrNotSet = errors.New("theme preference not set")

// Parse validates a theme name.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q (want %q or %q)", s, Light, Dark)
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Store persists the theme preference.
type Store interface {
	// Get returns the stored theme, or ErrNotSet.
	Get(ctx context.Context) (Theme, error)
	Set(ctx context.Context, t Theme) error
}

// Load returns the stored theme, falling back to Default when none is
// stored or the stored value is not a known theme.
func Load(ctx context.Context, s Store) (Theme, error) {
	t, err := s.Get(ctx)
	if errors.Is(err, ErrNotSet) {
		return Default, nil
	}
	if err != nil {
		return Default, err
	}
	if _, err := Parse(string(t)); err != nil {
		return Default, nil
	}
	return t, nil
}

// Toggle flips the current theme and persists the result immediately.
func Toggle(ctx context.Context, s Store, current Theme) (Theme, error) {
	next := current.Opposite()
	if err := s.Set(ctx, next); err != nil {
		return current, fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	theme Theme
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.theme == "" {
		return "", ErrNotSet
	}
	return m.theme, nil
}

func (m *MemoryStore) Set(_ context.Context, t Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = t
	return nil
}
