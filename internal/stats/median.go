package stats

import (
	mstats "github.com/aclements/go-moremath/stats"
)

// Median returns the median of xs using linear interpolation between the
// two middle observations when the count is even. This matches the
// convention of the dataframe tooling the extract was previously cleaned
// with, so imputed values are bit-comparable across implementations.
//
// The median of an empty slice is undefined; callers must guard. The
// cleaner never calls Median for an all-missing column.
func Median(xs []float64) float64 {
	s := mstats.Sample{Xs: xs}
	return s.Quantile(0.5)
}
