package stats

import (
	"errors"
	"math"
	"testing"
)

// TestChiSquareGoodnessOfFit tests the uniform goodness-of-fit test.
func TestChiSquareGoodnessOfFit(t *testing.T) {
	t.Parallel()

	t.Run("strongly skewed counts reject the null", func(t *testing.T) {
		t.Parallel()

		result, err := ChiSquareGoodnessOfFit([]float64{100, 10, 5}, 0.05)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// expected = 115/3; statistic is large for this skew
		if result.Statistic <= 0 {
			t.Errorf("expected positive statistic, got %g", result.Statistic)
		}
		if result.PValue >= 0.05 {
			t.Errorf("expected p-value below 0.05, got %g", result.PValue)
		}
		if !result.RejectNull {
			t.Error("expected null hypothesis to be rejected")
		}
		if result.DegreesOfFreedom != 2 {
			t.Errorf("expected 2 degrees of freedom, got %d", result.DegreesOfFreedom)
		}
	})

	t.Run("perfectly uniform counts do not reject", func(t *testing.T) {
		t.Parallel()

		result, err := ChiSquareGoodnessOfFit([]float64{50, 50, 50, 50}, 0.05)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Statistic != 0 {
			t.Errorf("expected zero statistic, got %g", result.Statistic)
		}
		if result.PValue < 0.999 {
			t.Errorf("expected p-value near 1, got %g", result.PValue)
		}
		if result.RejectNull {
			t.Error("expected null hypothesis to stand")
		}
	})

	t.Run("known statistic value", func(t *testing.T) {
		t.Parallel()

		// expected = 30 per category; statistic = (100+100+400)/30 = 20
		result, err := ChiSquareGoodnessOfFit([]float64{40, 40, 10}, 0.05)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.Abs(result.Statistic-20) > 1e-9 {
			t.Errorf("expected statistic 20, got %g", result.Statistic)
		}
	})

	t.Run("single category returns ErrNotEnoughGroups", func(t *testing.T) {
		t.Parallel()

		_, err := ChiSquareGoodnessOfFit([]float64{42}, 0.05)

		if !errors.Is(err, ErrNotEnoughGroups) {
			t.Errorf("expected ErrNotEnoughGroups, got %v", err)
		}
	})

	t.Run("empty input returns ErrNotEnoughGroups", func(t *testing.T) {
		t.Parallel()

		_, err := ChiSquareGoodnessOfFit(nil, 0.05)

		if !errors.Is(err, ErrNotEnoughGroups) {
			t.Errorf("expected ErrNotEnoughGroups, got %v", err)
		}
	})

	t.Run("all-zero counts return ErrNoObservations", func(t *testing.T) {
		t.Parallel()

		_, err := ChiSquareGoodnessOfFit([]float64{0, 0, 0}, 0.05)

		if !errors.Is(err, ErrNoObservations) {
			t.Errorf("expected ErrNoObservations, got %v", err)
		}
	})
}
