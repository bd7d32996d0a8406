// Package stats implements the statistical routines of the analysis:
// the imputation median, the chi-square goodness-of-fit test over borough
// incident counts, and the Welch two-sample t-test between high-count and
// low-count boroughs.
//
// The heavy lifting is delegated: quantiles and the t-test come from
// aclements/go-moremath, the chi-square tail probability from gonum's
// distuv. This package adapts them to the model's result records and
// turns their degenerate-input conditions (too few groups, zero variance)
// into errors the pipeline downgrades to warnings.
package stats
