package model

// ChiSquareResult holds the outcome of the chi-square goodness-of-fit test
// of incident counts per borough against a uniform distribution.
type ChiSquareResult struct {
	// Statistic is the chi-square test statistic.
	Statistic float64 `json:"statistic"`

	// PValue is the probability of observing a statistic at least this
	// extreme under the null hypothesis.
	PValue float64 `json:"p_value"`

	// DegreesOfFreedom is the number of categories minus one.
	DegreesOfFreedom int `json:"degrees_of_freedom"`

	// Alpha is the significance threshold the decision was made against.
	Alpha float64 `json:"alpha"`

	// RejectNull is true when PValue < Alpha, i.e. the incident counts
	// are not uniformly distributed across boroughs.
	RejectNull bool `json:"reject_null"`
}

// WelchTTestResult holds the outcome of the Welch two-sample t-test
// comparing incident counts of the highest-count boroughs against the
// lowest-count boroughs.
type WelchTTestResult struct {
	// Statistic is the t statistic.
	Statistic float64 `json:"statistic"`

	// PValue is the two-sided p-value.
	PValue float64 `json:"p_value"`

	// DegreesOfFreedom is the Welch-Satterthwaite approximated degrees
	// of freedom. Fractional by construction.
	DegreesOfFreedom float64 `json:"degrees_of_freedom"`

	// HighGroupSize and LowGroupSize are the sample sizes of the two
	// groups. Usually 10 each; smaller when the table has fewer boroughs.
	HighGroupSize int `json:"high_group_size"`
	LowGroupSize  int `json:"low_group_size"`

	// Alpha is the significance threshold the decision was made against.
	Alpha float64 `json:"alpha"`

	// RejectNull is true when PValue < Alpha, i.e. high-count boroughs
	// differ significantly from low-count boroughs.
	RejectNull bool `json:"reject_null"`
}
