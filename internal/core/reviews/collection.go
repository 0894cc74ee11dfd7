package reviews

import "slices"

// Collection is an immutable, arrival-ordered set of review records.
// A refetch replaces the whole collection.
type Collection struct {
	records []Record
}

// NewCollection creates a collection from records in arrival order.
func NewCollection(records []Record) Collection {
	return Collection{records: slices.Clone(records)}
}

// Len returns the number of records.
func (c Collection) Len() int {
	return len(c.records)
}

// Records returns a copy of the records in arrival order.
func (c Collection) Records() []Record {
	return slices.Clone(c.records)
}

// Find returns the first record whose title contains term,
// case-insensitively.
func (c Collection) Find(term string) (Record, bool) {
	matches := Filter(c.records, term, CategoryAll)
	if len(matches) == 0 {
		return Record{}, false
	}
	return matches[0], true
}

// Recent returns the last n records by arrival order, newest first.
func (c Collection) Recent(n int) []Record {
	if n <= 0 || len(c.records) == 0 {
		return []Record{}
	}
	start := max(len(c.records)-n, 0)
	out := slices.Clone(c.records[start:])
	slices.Reverse(out)
	return out
}
