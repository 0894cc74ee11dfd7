package reviews

import (
	"fmt"

	corereviews "github.com/colonyops/reel/internal/core/reviews"
)

const (
	emptyCollectionText = "No reviews yet"
	noMatchesText       = "No matching reviews"
)

// Reviewers names the two reviewer columns.
type Reviewers struct {
	Primary   string
	Secondary string
}

// ViewModel is everything the reviews tab needs to draw one frame.
type ViewModel struct {
	corereviews.Result
	Total     int    // records in the whole collection
	SortLabel string // e.g. "title ↓", empty when unsorted
	EmptyText string // set when the current page has no items
}

// Render derives the view model for c under s. It is pure: the same inputs
// always produce the same output.
func Render(c corereviews.Collection, s corereviews.QueryState, opts corereviews.PageOptions) ViewModel {
	return viewModel(corereviews.Query(c, s, opts), c.Len())
}

func viewModel(res corereviews.Result, total int) ViewModel {
	vm := ViewModel{Result: res, Total: total}
	if res.State.SortKey != corereviews.SortNone {
		vm.SortLabel = fmt.Sprintf("%s %s", res.State.SortKey, res.State.Direction.Arrow())
	}
	if len(res.Items) == 0 {
		vm.EmptyText = noMatchesText
		if total == 0 {
			vm.EmptyText = emptyCollectionText
		}
	}
	return vm
}

// Controller owns the query state and cursor for the reviews tab.
// It contains pure data logic with no Bubble Tea dependencies.
type Controller struct {
	opts   corereviews.PageOptions
	engine *corereviews.Engine
	state  corereviews.QueryState
	vm     ViewModel
	cursor int
	loaded bool
	err    error
}

// NewController creates a controller with an empty collection.
func NewController(opts corereviews.PageOptions) *Controller {
	c := &Controller{
		opts:   opts,
		state:  corereviews.DefaultQueryState(),
		engine: corereviews.NewEngine(corereviews.NewCollection(nil), opts),
	}
	c.refresh()
	return c
}

// SetCollection replaces the data set and clears any error. The query state
// is kept so a refetch does not lose the user's sort or search.
func (c *Controller) SetCollection(col corereviews.Collection) {
	c.engine = corereviews.NewEngine(col, c.opts)
	c.err = nil
	c.loaded = true
	c.refresh()
	if last := c.vm.Page.TotalPages; last > 0 && c.state.Page > last {
		s := c.state
		s.Page = last
		c.setState(s)
	}
}

// SetError records a load failure. The error replaces the whole view.
func (c *Controller) SetError(err error) {
	c.err = err
	c.loaded = true
}

// Err returns the last load error.
func (c *Controller) Err() error {
	return c.err
}

// Loaded reports whether a load has completed, successfully or not.
func (c *Controller) Loaded() bool {
	return c.loaded
}

// State returns the current query state.
func (c *Controller) State() corereviews.QueryState {
	return c.state
}

// ViewModel returns the view for the current state.
func (c *Controller) ViewModel() ViewModel {
	return c.vm
}

// Cursor returns the selected row within the current page.
func (c *Controller) Cursor() int {
	return c.cursor
}

// ToggleSort selects or flips a sort key.
func (c *Controller) ToggleSort(key corereviews.SortKey) {
	c.setState(c.state.ToggleSort(key))
}

// SetSearch updates the title search.
func (c *Controller) SetSearch(term string) {
	if term == c.state.Search {
		return
	}
	c.setState(c.state.WithSearch(term))
}

// CycleCategory advances to the next category. It is a no-op for the
// search-only variant.
func (c *Controller) CycleCategory() {
	if c.opts.SearchOnly {
		return
	}
	c.setState(c.state.WithCategory(c.state.Category.Next()))
}

// NextPage moves forward when there is a next page.
func (c *Controller) NextPage() {
	c.setState(c.state.NextPage(c.vm.Page))
}

// PrevPage moves back, stopping at page 1.
func (c *Controller) PrevPage() {
	c.setState(c.state.PrevPage())
}

// Move shifts the cursor by delta within the current page.
func (c *Controller) Move(delta int) {
	c.cursor += delta
	c.clampCursor()
}

// Selected returns the record under the cursor.
func (c *Controller) Selected() (corereviews.Record, bool) {
	if c.err != nil || len(c.vm.Items) == 0 {
		return corereviews.Record{}, false
	}
	return c.vm.Items[c.cursor], true
}

func (c *Controller) setState(s corereviews.QueryState) {
	pageChanged := s.Page != c.state.Page
	c.state = s
	c.refresh()
	if pageChanged {
		c.cursor = 0
	}
}

func (c *Controller) refresh() {
	c.vm = viewModel(c.engine.Query(c.state), c.engine.Collection().Len())
	c.state = c.vm.State
	c.clampCursor()
}

func (c *Controller) clampCursor() {
	n := len(c.vm.Items)
	if c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}
