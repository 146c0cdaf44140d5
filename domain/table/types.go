// Package table holds the raw, column-oriented representation of a
// parsed dataset. A Table is immutable once built: readers construct it
// through a Builder and everything downstream only projects from it.
package table

// ColumnKind classifies a column after type inference.
type ColumnKind string

const (
	// KindNumeric marks a column whose every non-missing cell parses as
	// a finite base-10 number. An all-missing column is numeric too; it
	// surfaces as an all-NaN summary rather than being dropped.
	KindNumeric ColumnKind = "numeric"

	// KindText marks everything else. Text columns are excluded from
	// the result matrix and only appear in categorical profiles.
	KindText ColumnKind = "text"
)

// Row is one record, positionally aligned with the table header.
type Row []string

// Table is an ordered header plus rows of raw string cells. Invariant:
// len(row) == len(Headers) for every row (the Builder pads and
// truncates on the way in).
type Table struct {
	Headers []string
	Rows    []Row
	Report  ParseReport
}

// Column projects all cells for the named column in row order.
func (t *Table) Column(name string) ([]string, bool) {
	for i, h := range t.Headers {
		if h == name {
			return t.ColumnAt(i), true
		}
	}
	return nil, false
}

// ColumnAt projects the column at header position i.
func (t *Table) ColumnAt(i int) []string {
	cells := make([]string, len(t.Rows))
	for j, row := range t.Rows {
		cells[j] = row[i]
	}
	return cells
}

// ParseReport counts the anomalies a reader recovered from while
// building the table. None of these abort a parse; callers surface the
// counts next to the result so a best-effort table can still render.
type ParseReport struct {
	// PaddedRows had fewer fields than the header and were right-padded
	// with empty cells.
	PaddedRows int `json:"padded_rows"`

	// TruncatedRows had more fields than the header; the extras were cut.
	TruncatedRows int `json:"truncated_rows"`

	// SkippedRows could not be reconciled with the header at all
	// (typically unparseable quoting) and were dropped.
	SkippedRows int `json:"skipped_rows"`

	// RenamedColumns counts duplicate header names that were suffixed
	// to stay unique.
	RenamedColumns int `json:"renamed_columns"`
}

// Anomalies is the total number of recovered irregularities.
func (r ParseReport) Anomalies() int {
	return r.PaddedRows + r.TruncatedRows + r.SkippedRows + r.RenamedColumns
}
