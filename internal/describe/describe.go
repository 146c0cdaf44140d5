// Package describe computes per-column descriptive statistics: the
// seven-statistic summary behind the result matrix plus the extended
// numeric and categorical profiles.
package describe

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"godescribe/domain/summary"
)

// Describe computes the summary of one numeric column from its ordered
// observations. It is a pure function: no observation set is mutated
// and no state is kept between calls.
//
// Edge cases follow sample-statistics convention exactly: zero
// observations yield NaN for everything but count, and a single
// observation yields NaN std with all quantiles equal to the value.
func Describe(obs []float64) summary.Summary {
	nan := math.NaN()
	s := summary.Summary{
		Count: float64(len(obs)),
		Mean:  nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan,
	}
	if len(obs) == 0 {
		return s
	}

	s.Mean, _ = stats.Mean(obs)
	s.Min, _ = stats.Min(obs)
	s.Max, _ = stats.Max(obs)
	if len(obs) >= 2 {
		s.Std, _ = stats.StandardDeviationSample(obs)
	}

	sorted := make([]float64, len(obs))
	copy(sorted, obs)
	sort.Float64s(sorted)
	s.Q1 = Quantile(sorted, 0.25)
	s.Median = Quantile(sorted, 0.5)
	s.Q3 = Quantile(sorted, 0.75)

	return s
}

// Quantile estimates quantile q from ascending-sorted observations by
// linear interpolation between order statistics: rank r = q*(n-1),
// interpolating between floor(r) and ceil(r). A single observation is
// every quantile of itself.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	r := q * float64(n-1)
	lo := int(math.Floor(r))
	hi := int(math.Ceil(r))
	if lo == hi {
		return sorted[lo]
	}
	frac := r - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
