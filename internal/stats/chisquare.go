package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nao1215/asbscan/internal/model"
)

// ChiSquareGoodnessOfFit tests observed category counts against a uniform
// distribution. For k categories the expected frequency is total/k, the
// statistic is the usual sum of squared deviations over expectations, and
// the p-value is the upper tail of the chi-square distribution with k-1
// degrees of freedom.
//
// The null hypothesis is rejected when the p-value falls below alpha.
// With fewer than two categories the degrees of freedom would be zero and
// ErrNotEnoughGroups is returned; with an all-zero table the expected
// frequencies are undefined and ErrNoObservations is returned.
func ChiSquareGoodnessOfFit(observed []float64, alpha float64) (*model.ChiSquareResult, error) {
	k := len(observed)
	if k < 2 {
		return nil, ErrNotEnoughGroups
	}

	total := 0.0
	for _, o := range observed {
		total += o
	}
	if total == 0 {
		return nil, ErrNoObservations
	}

	expected := total / float64(k)
	statistic := 0.0
	for _, o := range observed {
		d := o - expected
		statistic += d * d / expected
	}

	dof := k - 1
	dist := distuv.ChiSquared{K: float64(dof)}
	p := dist.Survival(statistic)

	return &model.ChiSquareResult{
		Statistic:        statistic,
		PValue:           p,
		DegreesOfFreedom: dof,
		Alpha:            alpha,
		RejectNull:       p < alpha,
	}, nil
}
