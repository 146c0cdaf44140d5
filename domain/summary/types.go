// Package summary holds the descriptive-statistics result types: the
// per-column seven-statistic Summary, the statistic-by-column
// ResultMatrix, and the extended column profiles.
package summary

import (
	"math"

	"godescribe/domain/table"
)

// Statistic labels, in the fixed presentation order of the matrix rows.
const (
	StatCount  = "count"
	StatMean   = "mean"
	StatStd    = "std"
	StatMin    = "min"
	StatQ1     = "25%"
	StatMedian = "50%"
	StatQ3     = "75%"
	StatMax    = "max"
)

// statIndex is the canonical row order. Index() hands out copies.
var statIndex = []string{
	StatCount, StatMean, StatStd, StatMin, StatQ1, StatMedian, StatQ3, StatMax,
}

// Index returns the statistic labels in matrix row order.
func Index() []string {
	out := make([]string, len(statIndex))
	copy(out, statIndex)
	return out
}

// Summary is the descriptive profile of one numeric column. Count is a
// float64 so every matrix cell has a uniform type. All statistics
// except Count are NaN when Count == 0, and Std is NaN when Count < 2
// (sample standard deviation is undefined for a single observation).
type Summary struct {
	Count  float64
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Value looks up one statistic by its label.
func (s Summary) Value(stat string) (float64, bool) {
	switch stat {
	case StatCount:
		return s.Count, true
	case StatMean:
		return s.Mean, true
	case StatStd:
		return s.Std, true
	case StatMin:
		return s.Min, true
	case StatQ1:
		return s.Q1, true
	case StatMedian:
		return s.Median, true
	case StatQ3:
		return s.Q3, true
	case StatMax:
		return s.Max, true
	}
	return math.NaN(), false
}

// ValueCount is one entry of a categorical frequency breakdown.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnProfile carries the extended per-column statistics that live
// beside the matrix: totals and shape for numeric columns, frequency
// structure for text columns. JSON encoding is defined in matrix.go so
// undefined (NaN) extras serialize as null.
type ColumnProfile struct {
	Name         string
	Kind         table.ColumnKind
	Observations int
	Missing      int

	// Numeric extras. NaN when not computable for the observation count.
	Sum      float64
	Skewness float64
	Kurtosis float64

	// Categorical extras, populated for text columns.
	Cardinality   int
	Mode          string
	ModeFrequency int
	Entropy       float64
	TopValues     []ValueCount
}
