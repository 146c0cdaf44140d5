package table

import (
	"fmt"
	"strings"
)

// Builder assembles a Table from raw records, normalizing every record
// to the header width and keeping an anomaly count as it goes. All
// readers (CSV, Excel, JSON) funnel through it so padding, truncation
// and duplicate-header policy stay identical across formats.
type Builder struct {
	headers []string
	rows    []Row
	report  ParseReport
}

// NewBuilder starts a table from a raw header record. Header cells are
// trimmed; duplicate names are deterministically suffixed so later
// columns never shadow earlier data: a, a_2, a_3, ...
func NewBuilder(rawHeader []string) *Builder {
	b := &Builder{headers: make([]string, 0, len(rawHeader))}
	seen := make(map[string]int, len(rawHeader))
	for _, h := range rawHeader {
		name := strings.TrimSpace(h)
		if n := seen[name]; n > 0 {
			b.report.RenamedColumns++
			renamed := fmt.Sprintf("%s_%d", name, n+1)
			// The suffixed name could itself collide with a real header.
			for seen[renamed] > 0 {
				n++
				renamed = fmt.Sprintf("%s_%d", name, n+1)
			}
			seen[name] = n + 1
			seen[renamed]++
			b.headers = append(b.headers, renamed)
			continue
		}
		seen[name]++
		b.headers = append(b.headers, name)
	}
	return b
}

// Headers returns the deduplicated header names.
func (b *Builder) Headers() []string {
	return b.headers
}

// Append adds one record, right-padding short records with empty cells
// and truncating long ones to the header width.
func (b *Builder) Append(record []string) {
	width := len(b.headers)
	row := make(Row, width)
	switch {
	case len(record) < width:
		copy(row, record)
		b.report.PaddedRows++
	case len(record) > width:
		copy(row, record[:width])
		b.report.TruncatedRows++
	default:
		copy(row, record)
	}
	b.rows = append(b.rows, row)
}

// Skip records one row that could not be reconciled with the header.
func (b *Builder) Skip() {
	b.report.SkippedRows++
}

// Build finalizes the table. The builder must not be reused afterwards.
func (b *Builder) Build() *Table {
	return &Table{
		Headers: b.headers,
		Rows:    b.rows,
		Report:  b.report,
	}
}
