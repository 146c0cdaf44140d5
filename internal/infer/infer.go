// Package infer classifies table columns as numeric or text and
// extracts the parsed numeric observations for numeric columns.
package infer

import (
	"math"
	"strconv"
	"strings"

	"godescribe/domain/table"
)

// nullMarkers are the cell spellings treated as missing, beyond the
// empty string. Comparison is done after trimming, case-sensitively,
// matching the spellings common in exported datasets.
var nullMarkers = map[string]struct{}{
	"null": {},
	"NULL": {},
	"Null": {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"NaN":  {},
	"nan":  {},
}

// Column is one classified column: its kind, the parsed observations
// for numeric columns (missing cells dropped, row order preserved), and
// the raw non-missing cells for text columns.
type Column struct {
	Name         string
	Kind         table.ColumnKind
	Observations []float64
	Cells        []string
	Missing      int
}

// Classify inspects every column of the table. A column is numeric iff
// every non-missing cell parses as a finite base-10 number; an
// all-missing column counts as numeric with zero observations so it
// still gets an (all-NaN) summary row. Anything else is text.
func Classify(t *table.Table) []Column {
	cols := make([]Column, len(t.Headers))
	for i, name := range t.Headers {
		cols[i] = classifyColumn(name, t.ColumnAt(i))
	}
	return cols
}

func classifyColumn(name string, cells []string) Column {
	col := Column{Name: name, Kind: table.KindNumeric}
	obs := make([]float64, 0, len(cells))
	nonMissing := make([]string, 0, len(cells))

	numeric := true
	for _, cell := range cells {
		trimmed := strings.TrimSpace(cell)
		if IsMissing(trimmed) {
			col.Missing++
			continue
		}
		nonMissing = append(nonMissing, trimmed)
		if !numeric {
			continue
		}
		v, ok := ParseNumeric(trimmed)
		if !ok {
			numeric = false
			continue
		}
		obs = append(obs, v)
	}

	if numeric {
		col.Observations = obs
		return col
	}
	col.Kind = table.KindText
	col.Cells = nonMissing
	return col
}

// IsMissing reports whether a trimmed cell counts as a missing value.
func IsMissing(cell string) bool {
	if cell == "" {
		return true
	}
	_, ok := nullMarkers[cell]
	return ok
}

// ParseNumeric parses a cell as a base-10 number: optional sign,
// optional decimal point, optional exponent. Infinities, NaN spellings
// and hex floats are rejected; they are not tabular numbers.
func ParseNumeric(cell string) (float64, bool) {
	if strings.ContainsAny(cell, "xX") {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
