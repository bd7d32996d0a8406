package stats

import (
	"math"
	"testing"
)

// TestMedian tests the median calculation.
func TestMedian(t *testing.T) {
	t.Parallel()

	t.Run("odd number of values returns middle value", func(t *testing.T) {
		t.Parallel()

		got := Median([]float64{3, 1, 2})

		if got != 2 {
			t.Errorf("expected median 2, got %g", got)
		}
	})

	t.Run("even number of values interpolates between middle pair", func(t *testing.T) {
		t.Parallel()

		got := Median([]float64{1, 2, 3, 4})

		if got != 2.5 {
			t.Errorf("expected median 2.5, got %g", got)
		}
	})

	t.Run("single value is its own median", func(t *testing.T) {
		t.Parallel()

		got := Median([]float64{7})

		if got != 7 {
			t.Errorf("expected median 7, got %g", got)
		}
	})

	t.Run("unsorted input is handled", func(t *testing.T) {
		t.Parallel()

		got := Median([]float64{9, 1, 5, 3, 7})

		if got != 5 {
			t.Errorf("expected median 5, got %g", got)
		}
	})

	t.Run("empty input is undefined", func(t *testing.T) {
		t.Parallel()

		got := Median(nil)

		if !math.IsNaN(got) {
			t.Errorf("expected NaN for empty input, got %g", got)
		}
	})
}
