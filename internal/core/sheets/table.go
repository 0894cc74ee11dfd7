// Package sheets fetches and decodes tabular data published by the Google
// Sheets visualization endpoint (gviz/tq with tqx=out:json).
package sheets

import (
	"math"
	"strconv"
	"strings"
)

// Column describes a single column of a decoded table.
type Column struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Cell is a single table value. A nil *Cell is an absent value.
//
// V holds the raw value pre-typed by the source format: string, float64,
// bool or nil. F holds the source's formatted rendering, when it sends one.
type Cell struct {
	V any    `json:"v"`
	F string `json:"f,omitempty"`
}

// Row is an ordered sequence of cells.
type Row struct {
	C []*Cell `json:"c"`
}

// Table is the generic row/column table decoded from a response body.
type Table struct {
	Cols []Column `json:"cols,omitempty"`
	Rows []Row    `json:"rows"`
}

// Cell returns the cell at column i, or nil when the column is absent.
func (r Row) Cell(i int) *Cell {
	if i < 0 || i >= len(r.C) {
		return nil
	}
	return r.C[i]
}

// Present reports whether the cell carries a non-null value.
func (c *Cell) Present() bool {
	return c != nil && c.V != nil
}

// String returns the cell as text. Absent cells return def.
// Numbers prefer the formatted value sent by the source, so a title
// stored as a number (e.g. "1917") reads back the way it was typed.
func (c *Cell) String(def string) string {
	if !c.Present() {
		return def
	}

	switch v := c.V.(type) {
	case string:
		return v
	case float64:
		if c.F != "" {
			return c.F
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		if c.F != "" {
			return c.F
		}
		return def
	}
}

// Float reads the cell as a finite number. Strings are parsed from their
// leading numeric prefix, so "8/10" reads as 8. ok is false for absent,
// unparsable or non-finite values.
func (c *Cell) Float() (f float64, ok bool) {
	if !c.Present() {
		return 0, false
	}

	switch v := c.V.(type) {
	case float64:
		f = v
	case string:
		prefix := leadingNumber(strings.TrimSpace(v))
		if prefix == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// leadingNumber returns the longest prefix of s that forms a decimal
// number with optional sign, fraction and exponent.
func leadingNumber(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}

	return s[:i]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
