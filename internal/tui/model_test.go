package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corereviews "github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/styles"
	"github.com/colonyops/reel/internal/core/theme"
	reviewsview "github.com/colonyops/reel/internal/tui/views/reviews"
	"github.com/colonyops/reel/internal/tui/views/watchlist"
	"github.com/colonyops/reel/pkg/tuitest"
)

type fakeSource struct {
	reviews   corereviews.Collection
	reviewErr error
	watchlist []corereviews.WatchlistEntry
	watchErr  error
}

func (f fakeSource) FetchReviews(context.Context) (corereviews.Collection, error) {
	return f.reviews, f.reviewErr
}

func (f fakeSource) FetchWatchlist(context.Context) ([]corereviews.WatchlistEntry, error) {
	return f.watchlist, f.watchErr
}

type failingThemes struct{}

func (failingThemes) Get(context.Context) (theme.Theme, error) { return "", theme.ErrNotSet }
func (failingThemes) Set(context.Context, theme.Theme) error   { return errors.New("read-only") }

func testSource() fakeSource {
	return fakeSource{
		reviews: corereviews.NewCollection([]corereviews.Record{
			{Title: "Alien", Primary: corereviews.Opinion{Rating: corereviews.Score(9), Notes: "great"}},
			{Title: "Heat", Primary: corereviews.Opinion{Rating: corereviews.Absent()}},
		}),
		watchlist: []corereviews.WatchlistEntry{{Title: "Ran"}},
	}
}

func newModel(src Source, transition time.Duration) Model {
	return New(Options{
		Source:     src,
		Themes:     theme.NewMemoryStore(),
		Pages:      corereviews.DefaultPageOptions(),
		Reviewers:  reviewsview.Reviewers{Primary: "Ben", Secondary: "Laza"},
		Transition: transition,
		Build:      BuildInfo{Version: "v0.1.0", Commit: "abcdef123"},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tuitest.WindowSize(100, 30))
	return m
}

// loadAll runs the initial fetch commands and feeds their results back.
func loadAll(t *testing.T, m Model) Model {
	t.Helper()
	for _, c := range m.initCmds {
		m, _ = update(t, m, c())
	}
	return m
}

func render(m Model) string {
	return tuitest.Plain(m.content())
}

func TestModel_InitStartsBothFetches(t *testing.T) {
	m := newModel(testSource(), 0)
	require.Len(t, m.initCmds, 2)
	assert.Equal(t, 2, m.pending)
	assert.NotNil(t, m.Init())

	var sawReviews, sawWatchlist bool
	for _, c := range m.initCmds {
		switch msg := c().(type) {
		case reviewsview.LoadedMsg:
			sawReviews = msg.ID == 1
		case watchlist.LoadedMsg:
			sawWatchlist = msg.ID == 1
		}
	}
	assert.True(t, sawReviews)
	assert.True(t, sawWatchlist)
}

func TestModel_LoadingThenLoaded(t *testing.T) {
	m := sized(t, newModel(testSource(), 0))
	assert.Contains(t, render(m), "Loading reviews...")

	m = loadAll(t, m)
	assert.Equal(t, 0, m.pending)
	out := render(m)
	assert.Contains(t, out, "Alien")
	assert.Contains(t, out, "v0.1.0 (abcdef1)")
}

func TestModel_FailuresAreIndependent(t *testing.T) {
	src := testSource()
	src.reviewErr = errors.New("fetch reviews: unexpected shape")
	m := loadAll(t, sized(t, newModel(src, 0)))

	assert.Contains(t, render(m), "Error: fetch reviews: unexpected shape")

	m, _ = update(t, m, tuitest.Key(tea.KeyTab))
	require.Equal(t, TabWatchlist, m.Tab())
	out := render(m)
	assert.Contains(t, out, "Ran")
	assert.NotContains(t, out, "Error")
}

func TestModel_RefetchDropsStaleResponses(t *testing.T) {
	m := sized(t, newModel(testSource(), 0))
	stale := m.initCmds

	m, cmd := update(t, m, tuitest.Rune('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, uint64(2), m.loadSeq)
	assert.Equal(t, 2, m.pending)

	for _, c := range stale {
		m, _ = update(t, m, c())
	}
	assert.Equal(t, 2, m.pending, "generation 1 responses do not settle generation 2")
	assert.False(t, m.reviews.Loaded())
}

func TestModel_TabSwitchFades(t *testing.T) {
	m := loadAll(t, sized(t, newModel(testSource(), DefaultTransition)))

	m, cmd := update(t, m, tuitest.Key(tea.KeyTab))
	require.NotNil(t, cmd)
	assert.Equal(t, TabReviews, m.Tab(), "tab changes only after the delay")
	assert.True(t, m.transition.Fading())

	m, _ = update(t, m, tuitest.Key(tea.KeyTab))
	assert.True(t, m.transition.Fading())

	m, _ = update(t, m, transitionDoneMsg{seq: 1, target: TabWatchlist})
	assert.Equal(t, TabWatchlist, m.Tab())
	assert.False(t, m.transition.Fading())
}

func TestModel_ThemeToggle(t *testing.T) {
	t.Cleanup(func() { styles.Apply(theme.Default) })

	m := loadAll(t, sized(t, newModel(testSource(), 0)))
	require.Equal(t, theme.Dark, m.Theme())

	m, cmd := update(t, m, tuitest.Rune('t'))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, theme.Light, m.Theme())
	assert.Equal(t, theme.Light, styles.CurrentTheme)
}

func TestModel_ThemeSaveFailureKeepsTheme(t *testing.T) {
	m := New(Options{Source: testSource(), Themes: failingThemes{}})
	m = sized(t, m)

	_, cmd := update(t, m, tuitest.Rune('t'))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, theme.Dark, m.Theme())
	assert.Contains(t, render(m), "Theme not saved")
}

func TestModel_SearchCapturesGlobalKeys(t *testing.T) {
	m := loadAll(t, sized(t, newModel(testSource(), 0)))

	m, _ = update(t, m, tuitest.Rune('/'))
	m, _ = update(t, m, tuitest.Rune('q'))
	m, _ = update(t, m, tuitest.Rune('t'))

	assert.Equal(t, theme.Dark, m.Theme())
	assert.Equal(t, "qt", m.reviews.Controller().State().Search)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(testSource(), 0)
	_, cmd := update(t, m, tuitest.Rune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
