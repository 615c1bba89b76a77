// Package stats accumulates summary statistics over repeated bid
// generation runs, backing the simulate command's report.
package stats

import (
	"math"
	"sort"
)

// RunResult records the outcome of a single generation run.
type RunResult struct {
	Total      int   // Sum of the generated bids
	Seed       int64 // RNG seed for this run (for replay)
	Valid      bool  // Did the generated set pass validation?
	Infeasible bool  // Did the generator report an infeasible configuration?
}

// Totals tracks the distribution of generated bid totals along with
// validity counters.
type Totals struct {
	Runs   int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // All totals, for median/percentile calculation

	Valid      int
	Invalid    int
	Infeasible int

	MinTotal int
	MaxTotal int
}

// Add records one generation run.
func (s *Totals) Add(result RunResult) {
	s.Runs++
	if result.Infeasible {
		s.Infeasible++
		return
	}
	if result.Valid {
		s.Valid++
	} else {
		s.Invalid++
	}

	total := float64(result.Total)
	s.Sum += total
	s.Sum2 += total * total
	s.Values = append(s.Values, total)

	if len(s.Values) == 1 || result.Total < s.MinTotal {
		s.MinTotal = result.Total
	}
	if len(s.Values) == 1 || result.Total > s.MaxTotal {
		s.MaxTotal = result.Total
	}
}

// Generated returns the number of runs that produced a bid set.
func (s *Totals) Generated() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean of the generated totals.
func (s *Totals) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Sum / float64(len(s.Values))
}

// Variance returns the sample variance of the generated totals.
func (s *Totals) Variance() float64 {
	n := len(s.Values)
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(n)*mean*mean) / float64(n-1)
}

// StdDev returns the sample standard deviation.
func (s *Totals) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Totals) StdError() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(len(s.Values)))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Totals) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median generated total.
func (s *Totals) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the p-th percentile (0..1) of the generated
// totals, linearly interpolated between samples.
func (s *Totals) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Merge folds another accumulator into this one, for combining
// per-worker results.
func (s *Totals) Merge(other *Totals) {
	if other.Generated() > 0 {
		if s.Generated() == 0 || other.MinTotal < s.MinTotal {
			s.MinTotal = other.MinTotal
		}
		if s.Generated() == 0 || other.MaxTotal > s.MaxTotal {
			s.MaxTotal = other.MaxTotal
		}
	}
	s.Runs += other.Runs
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Valid += other.Valid
	s.Invalid += other.Invalid
	s.Infeasible += other.Infeasible
}
