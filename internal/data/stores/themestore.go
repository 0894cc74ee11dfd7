package stores

import (
	"context"

	"github.com/colonyops/reel/internal/core/kv"
	"github.com/colonyops/reel/internal/core/theme"
)

// ThemeKey is the preference key holding the theme.
const ThemeKey = "theme"

// ThemeStore implements theme.Store on top of a kv.KV.
type ThemeStore struct {
	prefs *kv.TypedKV[theme.Theme]
}

var _ theme.Store = (*ThemeStore)(nil)

// NewThemeStore creates a theme store backed by store.
func NewThemeStore(store kv.KV) *ThemeStore {
	return &ThemeStore{prefs: kv.Scoped[theme.Theme](store, "")}
}

// Get returns the stored theme, or theme.ErrNotSet.
func (s *ThemeStore) Get(ctx context.Context) (theme.Theme, error) {
	t, err := s.prefs.Get(ctx, ThemeKey)
	if IsNotFoundError(err) {
		return "", theme.ErrNotSet
	}
	return t, err
}

// Set persists t.
func (s *ThemeStore) Set(ctx context.Context, t theme.Theme) error {
	return s.prefs.Set(ctx, ThemeKey, t)
}
