package reviews

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corereviews "github.com/colonyops/reel/internal/core/reviews"
)

func record(title string, primary float64, primaryNotes, secondaryNotes string) corereviews.Record {
	return corereviews.Record{
		Title:     title,
		Primary:   corereviews.Opinion{Rating: corereviews.Score(primary), Notes: primaryNotes},
		Secondary: corereviews.Opinion{Rating: corereviews.Absent(), Notes: secondaryNotes},
	}
}

func numbered(n int) corereviews.Collection {
	records := make([]corereviews.Record, n)
	for i := range records {
		records[i] = record(fmt.Sprintf("Movie %02d", i+1), float64(i), "", "")
	}
	return corereviews.NewCollection(records)
}

func titles(records []corereviews.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestRender_IsPure(t *testing.T) {
	col := numbered(45)
	state := corereviews.DefaultQueryState().ToggleSort(corereviews.SortTitle)
	opts := corereviews.DefaultPageOptions()

	first := Render(col, state, opts)
	second := Render(col, state, opts)

	if diff := cmp.Diff(titles(first.Items), titles(second.Items)); diff != "" {
		t.Fatalf("render differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Page, second.Page)
	assert.Equal(t, "title ↓", first.SortLabel)
	assert.Equal(t, 45, first.Total)
}

func TestRender_EmptyTexts(t *testing.T) {
	opts := corereviews.DefaultPageOptions()

	empty := Render(corereviews.NewCollection(nil), corereviews.DefaultQueryState(), opts)
	assert.Equal(t, emptyCollectionText, empty.EmptyText)
	assert.Equal(t, 0, empty.Page.TotalPages)

	none := Render(numbered(3), corereviews.DefaultQueryState().WithSearch("zzz"), opts)
	assert.Equal(t, noMatchesText, none.EmptyText)

	some := Render(numbered(3), corereviews.DefaultQueryState(), opts)
	assert.Empty(t, some.EmptyText)
	assert.Empty(t, some.SortLabel)
}

func TestController_MatchesRender(t *testing.T) {
	col := numbered(45)
	opts := corereviews.DefaultPageOptions()
	c := NewController(opts)
	c.SetCollection(col)

	c.ToggleSort(corereviews.SortPrimaryRating)
	c.NextPage()

	want := Render(col, c.State(), opts)
	got := c.ViewModel()
	if diff := cmp.Diff(titles(want.Items), titles(got.Items)); diff != "" {
		t.Fatalf("controller view differs from Render (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, got.Page.Page)
}

func TestController_Paging(t *testing.T) {
	c := NewController(corereviews.DefaultPageOptions())
	c.SetCollection(numbered(45))

	c.PrevPage()
	assert.Equal(t, 1, c.State().Page, "prev on page 1 stays")

	c.NextPage()
	c.NextPage()
	assert.Equal(t, 3, c.State().Page)
	assert.Len(t, c.ViewModel().Items, 5)

	c.NextPage()
	assert.Equal(t, 3, c.State().Page, "next on last page stays")
}

func TestController_SearchAndCategoryResetPage(t *testing.T) {
	c := NewController(corereviews.DefaultPageOptions())
	c.SetCollection(numbered(45))
	c.NextPage()

	c.SetSearch("movie")
	assert.Equal(t, 1, c.State().Page)

	c.NextPage()
	c.CycleCategory()
	assert.Equal(t, 1, c.State().Page)
	assert.Equal(t, corereviews.CategoryWithAnyReview, c.State().Category)
}

func TestController_DirectionToggleKeepsPage(t *testing.T) {
	c := NewController(corereviews.DefaultPageOptions())
	c.SetCollection(numbered(45))

	c.ToggleSort(corereviews.SortTitle)
	c.NextPage()
	c.ToggleSort(corereviews.SortTitle)

	assert.Equal(t, corereviews.Ascending, c.State().Direction)
	assert.Equal(t, 2, c.State().Page)
}

func TestController_SearchOnlyIgnoresCategory(t *testing.T) {
	opts := corereviews.DefaultPageOptions()
	opts.SearchOnly = true
	c := NewController(opts)
	c.SetCollection(numbered(3))

	c.CycleCategory()
	assert.Equal(t, corereviews.CategoryAll, c.State().Category)
}

func TestController_CursorClamps(t *testing.T) {
	c := NewController(corereviews.DefaultPageOptions())
	c.SetCollection(numbered(3))

	c.Move(-5)
	assert.Equal(t, 0, c.Cursor())
	c.Move(10)
	assert.Equal(t, 2, c.Cursor())

	sel, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Movie 03", sel.Title)
}

func TestController_RefetchKeepsStateAndClampsPage(t *testing.T) {
	c := NewController(corereviews.DefaultPageOptions())
	c.SetCollection(numbered(45))
	c.ToggleSort(corereviews.SortTitle)
	c.NextPage()
	c.NextPage()

	c.SetCollection(numbered(25))
	assert.Equal(t, corereviews.SortTitle, c.State().SortKey)
	assert.Equal(t, 2, c.State().Page)
}

func TestController_ErrorState(t *testing.T) {
	c := NewController(corereviews.DefaultPageOptions())
	assert.False(t, c.Loaded())

	c.SetCollection(numbered(3))
	c.SetError(errors.New("boom"))
	assert.True(t, c.Loaded())
	require.Error(t, c.Err())

	_, ok := c.Selected()
	assert.False(t, ok, "nothing is selectable while the error is shown")

	c.SetCollection(numbered(3))
	assert.NoError(t, c.Err())
}
