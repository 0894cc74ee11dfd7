package reviews

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultPageSize is the number of records per page.
const DefaultPageSize = 20

// SortKey selects the field records are ordered by.
type SortKey int

const (
	SortNone SortKey = iota
	SortTitle
	SortPrimaryRating
	SortSecondaryRating
)

var sortKeyNames = map[SortKey]string{
	SortNone:            "none",
	SortTitle:           "title",
	SortPrimaryRating:   "primary",
	SortSecondaryRating: "secondary",
}

func (k SortKey) String() string {
	if s, ok := sortKeyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseSortKey parses a sort key name as printed by String.
func ParseSortKey(s string) (SortKey, error) {
	for k, name := range sortKeyNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	if s == "" {
		return SortNone, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q (want none, title, primary or secondary)", s)
}

// Direction is the sort order. The zero value is Descending.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}

// Arrow returns a one-character indicator for the direction.
func (d Direction) Arrow() string {
	if d == Ascending {
		return "↑"
	}
	return "↓"
}

// Category restricts records by which reviewers wrote notes.
type Category int

const (
	CategoryAll Category = iota
	CategoryWithAnyReview
	CategoryWithoutAnyReview
	CategoryWithPrimaryReview
	CategoryWithSecondaryReview
)

// Categories lists every category in selector order.
var Categories = []Category{
	CategoryAll,
	CategoryWithAnyReview,
	CategoryWithoutAnyReview,
	CategoryWithPrimaryReview,
	CategoryWithSecondaryReview,
}

var categoryNames = map[Category]string{
	CategoryAll:                 "all",
	CategoryWithAnyReview:       "with-reviews",
	CategoryWithoutAnyReview:    "without-reviews",
	CategoryWithPrimaryReview:   "primary-reviews",
	CategoryWithSecondaryReview: "secondary-reviews",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory parses a category name as printed by String.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryAll, nil
	}
	for c, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}
	return CategoryAll, fmt.Errorf("unknown filter %q", s)
}

// Next returns the following category, wrapping around.
func (c Category) Next() Category {
	i := slices.Index(Categories, c)
	return Categories[(i+1)%len(Categories)]
}

// Matches reports whether r belongs to the category.
func (c Category) Matches(r Record) bool {
	p, s := r.Primary.HasReview(), r.Secondary.HasReview()
	switch c {
	case CategoryWithAnyReview:
		return p || s
	case CategoryWithoutAnyReview:
		return !p && !s
	case CategoryWithPrimaryReview:
		return p
	case CategoryWithSecondaryReview:
		return s
	default:
		return true
	}
}

// QueryState is the user-controlled set of parameters that drive a view.
type QueryState struct {
	SortKey   SortKey
	Direction Direction
	Search    string
	Category  Category
	Page      int
}

// DefaultQueryState returns the state a fresh view starts with.
func DefaultQueryState() QueryState {
	return QueryState{
		SortKey:   SortNone,
		Direction: Descending,
		Category:  CategoryAll,
		Page:      1,
	}
}

// ToggleSort selects key. Selecting the active key flips the direction;
// a new key starts descending and returns to page 1. Flipping direction
// keeps the current page.
func (q QueryState) ToggleSort(key SortKey) QueryState {
	if q.SortKey == key {
		if q.Direction == Descending {
			q.Direction = Ascending
		} else {
			q.Direction = Descending
		}
		return q
	}
	q.SortKey = key
	q.Direction = Descending
	q.Page = 1
	return q
}

// WithSearch sets the search term and returns to page 1.
func (q QueryState) WithSearch(term string) QueryState {
	q.Search = term
	q.Page = 1
	return q
}

// WithCategory sets the category and returns to page 1.
func (q QueryState) WithCategory(c Category) QueryState {
	q.Category = c
	q.Page = 1
	return q
}

// NextPage advances one page when info reports a next page.
func (q QueryState) NextPage(info PageInfo) QueryState {
	if info.HasNext {
		q.Page = info.Page + 1
	}
	return q
}

// PrevPage goes back one page, stopping at 1.
func (q QueryState) PrevPage() QueryState {
	q.Page = max(q.Page-1, 1)
	return q
}

// Sort returns a new slice of records ordered by key. Absent ratings order
// as 0. Descending is the exact reverse of the stable ascending order.
// SortNone keeps arrival order. The input is never modified.
func Sort(records []Record, key SortKey, dir Direction) []Record {
	out := slices.Clone(records)
	if key == SortNone {
		return out
	}

	slices.SortStableFunc(out, compareBy(key))
	if dir == Descending {
		slices.Reverse(out)
	}
	return out
}

func compareBy(key SortKey) func(a, b Record) int {
	switch key {
	case SortPrimaryRating:
		return func(a, b Record) int {
			return compareFloat(a.Primary.Rating.OrZero(), b.Primary.Rating.OrZero())
		}
	case SortSecondaryRating:
		return func(a, b Record) int {
			return compareFloat(a.Secondary.Rating.OrZero(), b.Secondary.Rating.OrZero())
		}
	default:
		return func(a, b Record) int {
			return strings.Compare(a.Title, b.Title)
		}
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Filter returns records whose title contains search (case-insensitive)
// and that match the category. An empty search matches every title.
func Filter(records []Record, search string, c Category) []Record {
	needle := strings.ToLower(search)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !strings.Contains(strings.ToLower(r.Title), needle) {
			continue
		}
		if !c.Matches(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// PageInfo describes one page of a filtered sequence.
type PageInfo struct {
	Page       int
	PageSize   int
	Total      int // length of the filtered sequence
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate returns the half-open window [(page-1)*size, page*size) of
// records, clamped to the available length. Pages below 1 read as 1.
func Paginate(records []Record, page, size int) ([]Record, PageInfo) {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = max(page, 1)
	total := len(records)

	info := PageInfo{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
		HasPrev:    page > 1,
		HasNext:    page*size < total,
	}

	start := min((page-1)*size, total)
	end := min(page*size, total)
	return slices.Clone(records[start:end]), info
}
