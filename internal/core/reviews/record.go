// Package reviews holds the movie review records and the pure query
// functions (sort, filter, paginate) used to derive views from them.
package reviews

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NotApplicable is how an absent rating renders.
const NotApplicable = "N/A"

// Rating is a score that may be absent. An absent rating is distinct from
// a present rating of zero.
type Rating struct {
	Value   float64
	Present bool
}

// Score returns a present rating.
func Score(v float64) Rating {
	return Rating{Value: v, Present: true}
}

// Absent returns an absent rating.
func Absent() Rating {
	return Rating{}
}

// OrZero returns the rating value, treating absent as 0.
func (r Rating) OrZero() float64 {
	if !r.Present {
		return 0
	}
	return r.Value
}

// String renders the rating, or "N/A" when absent.
func (r Rating) String() string {
	if !r.Present {
		return NotApplicable
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// MarshalJSON encodes an absent rating as null.
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Present {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON decodes null as an absent rating.
func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Absent()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Score(v)
	return nil
}

// Opinion is one reviewer's take on a movie.
type Opinion struct {
	Rating         Rating `json:"rating"`
	Notes          string `json:"notes"`
	RevisedRating  Rating `json:"revised_rating"`
	RevisionReason string `json:"revision_reason"`
}

// HasReview reports whether the opinion carries written notes.
func (o Opinion) HasReview() bool {
	return strings.TrimSpace(o.Notes) != ""
}

// Record is one movie's review entry.
type Record struct {
	Title     string  `json:"title"`
	Primary   Opinion `json:"primary"`
	Secondary Opinion `json:"secondary"`
}

// Coverage describes which reviewers wrote notes for a record.
type Coverage int

const (
	CoverageNone Coverage = iota
	CoveragePrimary
	CoverageSecondary
	CoverageBoth
)

// Coverage reports which reviewers wrote notes.
func (r Record) Coverage() Coverage {
	p, s := r.Primary.HasReview(), r.Secondary.HasReview()
	switch {
	case p && s:
		return CoverageBoth
	case p:
		return CoveragePrimary
	case s:
		return CoverageSecondary
	default:
		return CoverageNone
	}
}

// WatchlistEntry is a movie queued to be watched.
type WatchlistEntry struct {
	Title string `json:"title"`
}
