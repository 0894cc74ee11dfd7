package reviews

import "github.com/colonyops/reel/pkg/kv"

// DefaultRecentCount is the size of the recent strip.
const DefaultRecentCount = 5

// PageOptions captures the differences between review page variants.
type PageOptions struct {
	PageSize    int
	ShowRecent  bool
	RecentCount int
	// SearchOnly hides the category selector; every query runs as CategoryAll.
	SearchOnly bool
}

// DefaultPageOptions returns the full-featured page variant.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		PageSize:    DefaultPageSize,
		ShowRecent:  true,
		RecentCount: DefaultRecentCount,
	}
}

func (o PageOptions) withDefaults() PageOptions {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.RecentCount <= 0 {
		o.RecentCount = DefaultRecentCount
	}
	return o
}

// Result is one derived view of a collection.
type Result struct {
	State  QueryState
	Items  []Record // the current page
	Page   PageInfo
	Recent []Record // nil unless the variant shows the recent strip
}

// Query runs sort, then filter, then paginate over c. It is a pure function
// of its inputs.
func Query(c Collection, state QueryState, opts PageOptions) Result {
	opts = opts.withDefaults()
	state = normalize(state, opts)
	return build(matching(c, state), c, state, opts)
}

func matching(c Collection, state QueryState) []Record {
	sorted := Sort(c.records, state.SortKey, state.Direction)
	return Filter(sorted, state.Search, state.Category)
}

func build(filtered []Record, c Collection, state QueryState, opts PageOptions) Result {
	items, info := Paginate(filtered, state.Page, opts.PageSize)
	res := Result{State: state, Items: items, Page: info}
	if opts.ShowRecent {
		res.Recent = c.Recent(opts.RecentCount)
	}
	return res
}

func normalize(state QueryState, opts PageOptions) QueryState {
	if opts.SearchOnly {
		state.Category = CategoryAll
	}
	state.Page = max(state.Page, 1)
	return state
}

// viewKey identifies a filtered, sorted sequence. Page is excluded so
// paging reuses the cached sequence.
type viewKey struct {
	SortKey   SortKey
	Direction Direction
	Search    string
	Category  Category
}

// Engine answers queries over one collection and memoizes the sorted,
// filtered sequence per viewKey. Results are identical to Query.
type Engine struct {
	collection Collection
	opts       PageOptions
	cache      *kv.Store[viewKey, []Record]
}

// NewEngine creates an engine over c.
func NewEngine(c Collection, opts PageOptions) *Engine {
	return &Engine{
		collection: c,
		opts:       opts.withDefaults(),
		cache:      kv.New[viewKey, []Record](),
	}
}

// Collection returns the collection the engine queries.
func (e *Engine) Collection() Collection {
	return e.collection
}

// Options returns the page variant options.
func (e *Engine) Options() PageOptions {
	return e.opts
}

// Query returns the view for state.
func (e *Engine) Query(state QueryState) Result {
	state = normalize(state, e.opts)
	key := viewKey{
		SortKey:   state.SortKey,
		Direction: state.Direction,
		Search:    state.Search,
		Category:  state.Category,
	}

	filtered := e.cache.GetOrCompute(key, func() []Record {
		return matching(e.collection, state)
	})
	return build(filtered, e.collection, state, e.opts)
}
