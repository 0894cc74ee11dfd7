package reviews

import (
	"fmt"

	"github.com/colonyops/reel/internal/core/sheets"
)

// Shape selects which record type a sheet row maps to.
type Shape string

const (
	ShapeReview    Shape = "review"
	ShapeWatchlist Shape = "watchlist"
)

// AbsentPolicy decides what an empty rating cell becomes.
type AbsentPolicy string

const (
	// AbsentKeep keeps empty ratings absent ("N/A").
	AbsentKeep AbsentPolicy = "absent"
	// AbsentZero turns empty ratings into a present 0.
	AbsentZero AbsentPolicy = "zero"
)

// ParseAbsentPolicy validates a policy name. Empty means AbsentKeep.
func ParseAbsentPolicy(s string) (AbsentPolicy, error) {
	switch AbsentPolicy(s) {
	case "", AbsentKeep:
		return AbsentKeep, nil
	case AbsentZero:
		return AbsentZero, nil
	default:
		return "", fmt.Errorf("unknown absent rating policy %q (want %q or %q)", s, AbsentKeep, AbsentZero)
	}
}

// Review sheet column layout.
const (
	colTitle = iota
	colPrimaryRating
	colPrimaryNotes
	colPrimaryRevised
	colPrimaryReason
	colSecondaryRating
	colSecondaryNotes
	colSecondaryRevised
	colSecondaryReason
)

// Mapper turns generic sheet rows into typed records. It never fails:
// missing or malformed cells become empty strings or absent ratings.
type Mapper struct {
	absent AbsentPolicy
}

// NewMapper creates a mapper with the given absent-rating policy.
func NewMapper(policy AbsentPolicy) Mapper {
	if policy == "" {
		policy = AbsentKeep
	}
	return Mapper{absent: policy}
}

// Review maps a row in the review shape.
func (m Mapper) Review(row sheets.Row) Record {
	return Record{
		Title: row.Cell(colTitle).String(""),
		Primary: Opinion{
			Rating:         m.rating(row.Cell(colPrimaryRating)),
			Notes:          row.Cell(colPrimaryNotes).String(""),
			RevisedRating:  m.rating(row.Cell(colPrimaryRevised)),
			RevisionReason: row.Cell(colPrimaryReason).String(""),
		},
		Secondary: Opinion{
			Rating:         m.rating(row.Cell(colSecondaryRating)),
			Notes:          row.Cell(colSecondaryNotes).String(""),
			RevisedRating:  m.rating(row.Cell(colSecondaryRevised)),
			RevisionReason: row.Cell(colSecondaryReason).String(""),
		},
	}
}

// Watchlist maps a row in the watchlist shape.
func (m Mapper) Watchlist(row sheets.Row) WatchlistEntry {
	return WatchlistEntry{Title: row.Cell(colTitle).String("")}
}

// Collection maps every row of a review table.
func (m Mapper) Collection(table sheets.Table) Collection {
	records := make([]Record, len(table.Rows))
	for i, row := range table.Rows {
		records[i] = m.Review(row)
	}
	return Collection{records: records}
}

// WatchlistEntries maps every row of a watchlist table.
func (m Mapper) WatchlistEntries(table sheets.Table) []WatchlistEntry {
	entries := make([]WatchlistEntry, len(table.Rows))
	for i, row := range table.Rows {
		entries[i] = m.Watchlist(row)
	}
	return entries
}

func (m Mapper) rating(c *sheets.Cell) Rating {
	if v, ok := c.Float(); ok {
		return Score(v)
	}
	if m.absent == AbsentZero {
		return Score(0)
	}
	return Absent()
}
