package reviews

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corereviews "github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/pkg/tuitest"
)

var testNames = Reviewers{Primary: "Ben", Secondary: "Laza"}

type fakeSource struct {
	col corereviews.Collection
	err error
}

func (f fakeSource) FetchReviews(context.Context) (corereviews.Collection, error) {
	return f.col, f.err
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tuitest.Key(tea.KeyEnter)
	case "esc":
		return tuitest.Key(tea.KeyEscape)
	case "right":
		return tuitest.Key(tea.KeyRight)
	case "left":
		return tuitest.Key(tea.KeyLeft)
	}
	return tuitest.Rune(rune(s[0]))
}

func press(v View, keys ...string) View {
	for _, k := range keys {
		v, _ = v.Update(keyPress(k))
	}
	return v
}

func loadedView(t *testing.T, col corereviews.Collection) View {
	t.Helper()
	v := New(fakeSource{col: col}, corereviews.DefaultPageOptions(), testNames)
	v.SetSize(100, 40)
	v, cmd := v.Reload(1)
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	require.True(t, v.Loaded())
	return v
}

func TestLoad_CarriesID(t *testing.T) {
	msg := Load(fakeSource{col: numbered(2)}, 7)()
	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(7), loaded.ID)
	assert.Equal(t, 2, loaded.Collection.Len())
}

func TestReload_NilSource(t *testing.T) {
	v := New(nil, corereviews.DefaultPageOptions(), testNames)
	_, cmd := v.Reload(1)
	assert.Nil(t, cmd)
}

func TestHandleLoaded_DropsStaleGenerations(t *testing.T) {
	v := New(nil, corereviews.DefaultPageOptions(), testNames)
	v, _ = v.Reload(2)

	v = v.handleLoaded(LoadedMsg{ID: 1, Collection: numbered(5)})
	assert.False(t, v.Loaded(), "old generation ignored")

	v = v.handleLoaded(LoadedMsg{ID: 2, Collection: numbered(3)})
	assert.Equal(t, 3, v.ctrl.ViewModel().Total)
}

func TestView_ErrorReplacesView(t *testing.T) {
	v := New(fakeSource{err: errors.New("fetch reviews: network failure: status 500")}, corereviews.DefaultPageOptions(), testNames)
	v, cmd := v.Reload(1)
	v, _ = v.Update(cmd())

	out := tuitest.Plain(v.View())
	assert.Equal(t, "Error: fetch reviews: network failure: status 500", out)

	v = press(v, "enter", "f")
	assert.False(t, v.IsDetailOpen())
}

func TestView_RendersTableAndKey(t *testing.T) {
	v := loadedView(t, corereviews.NewCollection([]corereviews.Record{
		record("Alien", 9, "great", ""),
		record("Heat", 7.5, "", "tense"),
	}))

	out := tuitest.Plain(v.View())
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Alien")
	assert.Contains(t, out, "7.5")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "Recent: Heat · Alien")
	assert.Contains(t, out, "Ben's Review")
	assert.Contains(t, out, "No Review")
}

func TestView_SortAndFilterKeys(t *testing.T) {
	v := loadedView(t, corereviews.NewCollection([]corereviews.Record{
		record("Alien", 9, "great", ""),
		record("Heat", 7.5, "", ""),
		record("Brazil", 8, "odd", ""),
	}))

	v = press(v, "1")
	assert.Equal(t, []string{"Heat", "Brazil", "Alien"}, titles(v.ctrl.ViewModel().Items))
	v = press(v, "1")
	assert.Equal(t, []string{"Alien", "Brazil", "Heat"}, titles(v.ctrl.ViewModel().Items))

	v = press(v, "f")
	assert.Equal(t, corereviews.CategoryWithAnyReview, v.ctrl.State().Category)
	assert.Equal(t, []string{"Alien", "Brazil"}, titles(v.ctrl.ViewModel().Items))
	assert.Contains(t, tuitest.Plain(v.View()), "With Reviews")
}

func TestView_SearchIsLive(t *testing.T) {
	v := loadedView(t, numbered(45))
	v = press(v, "right")
	require.Equal(t, 2, v.ctrl.State().Page)

	v = press(v, "/")
	require.True(t, v.HasEditorFocus())

	v = press(v, "1", "2")
	assert.Equal(t, "12", v.ctrl.State().Search)
	assert.Equal(t, 1, v.ctrl.State().Page)
	assert.Equal(t, []string{"Movie 12"}, titles(v.ctrl.ViewModel().Items))

	v = press(v, "enter")
	assert.False(t, v.HasEditorFocus())
	assert.Equal(t, "12", v.ctrl.State().Search, "enter keeps the term")

	v = press(v, "/", "esc")
	assert.Empty(t, v.ctrl.State().Search, "esc clears the term")
	assert.Len(t, v.ctrl.ViewModel().Items, 20)
}

func TestView_DetailOpensAndCloses(t *testing.T) {
	v := loadedView(t, corereviews.NewCollection([]corereviews.Record{
		record("Alien", 9, "great", ""),
	}))

	v = press(v, "enter")
	require.True(t, v.IsDetailOpen())
	bg := v.View()
	assert.Contains(t, tuitest.Plain(v.Overlay(bg, 100, 40)), "Alien")

	v = press(v, "esc")
	assert.False(t, v.IsDetailOpen())
	assert.Equal(t, bg, v.Overlay(bg, 100, 40))
}
