package summary

import (
	"encoding/json"
	"fmt"
	"math"

	"godescribe/domain/table"
)

// ResultMatrix is the statistic-by-column grid produced by one
// analysis. Rows follow the fixed statistic order; columns follow the
// first-seen order of numeric columns in the source header. The matrix
// is immutable after construction and is built from its inputs rather
// than from any iteration order, so identical input always yields an
// identical matrix.
type ResultMatrix struct {
	columns []string
	cells   map[string]Summary
}

// NewResultMatrix builds a matrix from ordered column names and their
// summaries. The inputs are copied; mutating them afterwards does not
// affect the matrix.
func NewResultMatrix(columns []string, cells map[string]Summary) (*ResultMatrix, error) {
	m := &ResultMatrix{
		columns: make([]string, len(columns)),
		cells:   make(map[string]Summary, len(columns)),
	}
	copy(m.columns, columns)
	for _, col := range columns {
		s, ok := cells[col]
		if !ok {
			return nil, fmt.Errorf("missing summary for column %q", col)
		}
		m.cells[col] = s
	}
	return m, nil
}

// Columns returns the ordered numeric column labels.
func (m *ResultMatrix) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// Index returns the ordered statistic labels.
func (m *ResultMatrix) Index() []string {
	return Index()
}

// Value is the two-level lookup value(statistic, column). The second
// return is false when either label is unknown; a present-but-undefined
// statistic comes back as (NaN, true).
func (m *ResultMatrix) Value(stat, column string) (float64, bool) {
	s, ok := m.cells[column]
	if !ok {
		return math.NaN(), false
	}
	return s.Value(stat)
}

// Summary returns the whole summary for one column.
func (m *ResultMatrix) Summary(column string) (Summary, bool) {
	s, ok := m.cells[column]
	return s, ok
}

// matrixJSON is the wire shape: ordered label lists plus a two-level
// map. NaN cells serialize as null since JSON has no NaN literal.
type matrixJSON struct {
	Index   []string                       `json:"index"`
	Columns []string                       `json:"columns"`
	Data    map[string]map[string]*float64 `json:"data"`
}

// MarshalJSON implements the serialization contract
// {index, columns, data: {column: {statistic: number|null}}}.
func (m *ResultMatrix) MarshalJSON() ([]byte, error) {
	out := matrixJSON{
		Index:   m.Index(),
		Columns: m.Columns(),
		Data:    make(map[string]map[string]*float64, len(m.columns)),
	}
	for _, col := range m.columns {
		s := m.cells[col]
		row := make(map[string]*float64, len(statIndex))
		for _, stat := range statIndex {
			v, _ := s.Value(stat)
			row[stat] = nanToNull(v)
		}
		out.Data[col] = row
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds a matrix from its wire shape; null cells come
// back as NaN so the (statistic, column) -> value mapping round-trips.
func (m *ResultMatrix) UnmarshalJSON(data []byte) error {
	var in matrixJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	cells := make(map[string]Summary, len(in.Columns))
	for _, col := range in.Columns {
		row, ok := in.Data[col]
		if !ok {
			return fmt.Errorf("matrix data missing column %q", col)
		}
		cells[col] = Summary{
			Count:  nullToNaN(row[StatCount]),
			Mean:   nullToNaN(row[StatMean]),
			Std:    nullToNaN(row[StatStd]),
			Min:    nullToNaN(row[StatMin]),
			Q1:     nullToNaN(row[StatQ1]),
			Median: nullToNaN(row[StatMedian]),
			Q3:     nullToNaN(row[StatQ3]),
			Max:    nullToNaN(row[StatMax]),
		}
	}
	rebuilt, err := NewResultMatrix(in.Columns, cells)
	if err != nil {
		return err
	}
	*m = *rebuilt
	return nil
}

func nanToNull(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func nullToNaN(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// profileJSON mirrors ColumnProfile with nullable numeric extras so a
// NaN skewness or kurtosis never breaks encoding.
type profileJSON struct {
	Name         string       `json:"name"`
	Kind         string       `json:"kind"`
	Observations int          `json:"observations"`
	Missing      int          `json:"missing"`
	Sum          *float64     `json:"sum,omitempty"`
	Skewness     *float64     `json:"skewness,omitempty"`
	Kurtosis     *float64     `json:"kurtosis,omitempty"`
	Cardinality  int          `json:"cardinality,omitempty"`
	Mode         string       `json:"mode,omitempty"`
	ModeFreq     int          `json:"mode_frequency,omitempty"`
	Entropy      *float64     `json:"entropy,omitempty"`
	TopValues    []ValueCount `json:"top_values,omitempty"`
}

// MarshalJSON replaces undefined numeric extras with null/omission.
func (p ColumnProfile) MarshalJSON() ([]byte, error) {
	out := profileJSON{
		Name:         p.Name,
		Kind:         string(p.Kind),
		Observations: p.Observations,
		Missing:      p.Missing,
		Cardinality:  p.Cardinality,
		Mode:         p.Mode,
		ModeFreq:     p.ModeFrequency,
		TopValues:    p.TopValues,
	}
	if p.Kind == table.KindNumeric {
		out.Sum = nanToNull(p.Sum)
		out.Skewness = nanToNull(p.Skewness)
		out.Kurtosis = nanToNull(p.Kurtosis)
	} else {
		e := p.Entropy
		out.Entropy = &e
	}
	return json.Marshal(out)
}
