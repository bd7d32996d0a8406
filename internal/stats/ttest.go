package stats

import (
	"fmt"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/nao1215/asbscan/internal/model"
)

// WelchTTest runs a two-sided two-sample t-test with unequal variances
// (Welch) on the given samples. The null hypothesis of equal means is
// rejected when the p-value falls below alpha.
//
// Degenerate samples surface as errors from the underlying routine:
// mstats.ErrSampleSize when either sample has fewer than two values and
// mstats.ErrZeroVariance when both samples are constant. The pipeline
// downgrades these to warnings.
func WelchTTest(high, low []float64, alpha float64) (*model.WelchTTestResult, error) {
	res, err := mstats.TwoSampleWelchTTest(
		mstats.Sample{Xs: high},
		mstats.Sample{Xs: low},
		mstats.LocationDiffers,
	)
	if err != nil {
		return nil, fmt.Errorf("welch t-test: %w", err)
	}

	return &model.WelchTTestResult{
		Statistic:        res.T,
		PValue:           res.P,
		DegreesOfFreedom: res.DoF,
		HighGroupSize:    len(high),
		LowGroupSize:     len(low),
		Alpha:            alpha,
		RejectNull:       res.P < alpha,
	}, nil
}

// TopBottomSplit extracts the counts of the n most frequent and n least
// frequent categories from a descending frequency table. When the table
// has fewer than n entries each group is capped at the table size, which
// reproduces the reference behavior of overlapping groups for small
// tables. ErrNotEnoughGroups is returned when either side would be empty.
func TopBottomSplit(ft *model.FrequencyTable, n int) (high, low []float64, err error) {
	if ft == nil || ft.Len() == 0 {
		return nil, nil, ErrNotEnoughGroups
	}

	high = ft.Top(n)
	low = ft.Bottom(n)
	if len(high) == 0 || len(low) == 0 {
		return nil, nil, ErrNotEnoughGroups
	}

	return high, low, nil
}
