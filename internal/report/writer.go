package report

import (
	"io"

	"github.com/nao1215/asbscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations render an analysis report in a specific format.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.AnalysisReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.AnalysisReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// chiSquareConclusion renders the goodness-of-fit decision as a sentence.
func chiSquareConclusion(r *model.ChiSquareResult) string {
	if r.RejectNull {
		return "Reject H0: incidents are not uniformly distributed across boroughs."
	}
	return "Fail to reject H0: incidents are consistent with a uniform distribution across boroughs."
}

// tTestConclusion renders the Welch t-test decision as a sentence.
func tTestConclusion(r *model.WelchTTestResult) string {
	if r.RejectNull {
		return "Reject H0: high-incident boroughs differ significantly from low-incident boroughs."
	}
	return "Fail to reject H0: no significant difference between high- and low-incident boroughs."
}
