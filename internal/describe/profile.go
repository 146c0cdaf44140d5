package describe

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"godescribe/domain/summary"
	"godescribe/domain/table"
	"godescribe/internal/infer"
)

// topValueLimit caps the frequency breakdown carried in a text profile.
const topValueLimit = 10

// Profile computes the extended profile for a classified column. The
// result sits beside the matrix; nothing here feeds the fixed
// statistic rows.
func Profile(col infer.Column) summary.ColumnProfile {
	if col.Kind == table.KindNumeric {
		return numericProfile(col)
	}
	return textProfile(col)
}

func numericProfile(col infer.Column) summary.ColumnProfile {
	p := summary.ColumnProfile{
		Name:         col.Name,
		Kind:         table.KindNumeric,
		Observations: len(col.Observations),
		Missing:      col.Missing,
		Sum:          math.NaN(),
		Skewness:     math.NaN(),
		Kurtosis:     math.NaN(),
	}
	if len(col.Observations) == 0 {
		return p
	}

	p.Sum, _ = stats.Sum(col.Observations)
	if len(col.Observations) >= 3 {
		p.Skewness = stat.Skew(col.Observations, nil)
	}
	if len(col.Observations) >= 4 {
		p.Kurtosis = stat.ExKurtosis(col.Observations, nil)
	}
	return p
}

func textProfile(col infer.Column) summary.ColumnProfile {
	p := summary.ColumnProfile{
		Name:         col.Name,
		Kind:         table.KindText,
		Observations: len(col.Cells),
		Missing:      col.Missing,
	}
	if len(col.Cells) == 0 {
		return p
	}

	freq := make(map[string]int, len(col.Cells))
	for _, cell := range col.Cells {
		freq[cell]++
	}
	p.Cardinality = len(freq)

	counts := make([]summary.ValueCount, 0, len(freq))
	for value, count := range freq {
		counts = append(counts, summary.ValueCount{Value: value, Count: count})
	}
	// Count descending, then value ascending, so the breakdown is
	// reproducible across runs.
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})

	p.Mode = counts[0].Value
	p.ModeFrequency = counts[0].Count
	if len(counts) > topValueLimit {
		counts = counts[:topValueLimit]
	}
	p.TopValues = counts

	total := float64(len(col.Cells))
	entropy := 0.0
	for _, count := range freq {
		prob := float64(count) / total
		entropy -= prob * math.Log2(prob)
	}
	p.Entropy = entropy

	return p
}
