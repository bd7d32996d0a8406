package stats

import (
	"errors"
	"testing"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/nao1215/asbscan/internal/model"
)

// TestWelchTTest tests the two-sample Welch t-test wrapper.
func TestWelchTTest(t *testing.T) {
	t.Parallel()

	t.Run("clearly separated samples reject the null", func(t *testing.T) {
		t.Parallel()

		high := []float64{100, 105, 98, 110, 102}
		low := []float64{10, 12, 9, 11, 10}

		result, err := WelchTTest(high, low, 0.05)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.PValue >= 0.05 {
			t.Errorf("expected p-value below 0.05, got %g", result.PValue)
		}
		if !result.RejectNull {
			t.Error("expected null hypothesis to be rejected")
		}
		if result.HighGroupSize != 5 || result.LowGroupSize != 5 {
			t.Errorf("expected group sizes 5/5, got %d/%d",
				result.HighGroupSize, result.LowGroupSize)
		}
	})

	t.Run("overlapping samples do not reject", func(t *testing.T) {
		t.Parallel()

		high := []float64{10, 12, 11, 9, 10}
		low := []float64{11, 9, 10, 12, 10}

		result, err := WelchTTest(high, low, 0.05)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.RejectNull {
			t.Errorf("expected null hypothesis to stand, p=%g", result.PValue)
		}
	})

	t.Run("sample with fewer than two values errors", func(t *testing.T) {
		t.Parallel()

		_, err := WelchTTest([]float64{1}, []float64{2, 3}, 0.05)

		if !errors.Is(err, mstats.ErrSampleSize) {
			t.Errorf("expected ErrSampleSize, got %v", err)
		}
	})

	t.Run("two constant samples error on zero variance", func(t *testing.T) {
		t.Parallel()

		_, err := WelchTTest([]float64{5, 5, 5}, []float64{5, 5, 5}, 0.05)

		if !errors.Is(err, mstats.ErrZeroVariance) {
			t.Errorf("expected ErrZeroVariance, got %v", err)
		}
	})
}

// TestTopBottomSplit tests extraction of high and low count groups.
func TestTopBottomSplit(t *testing.T) {
	t.Parallel()

	newTable := func(counts ...int) *model.FrequencyTable {
		entries := make([]model.FrequencyEntry, len(counts))
		for i, c := range counts {
			entries[i] = model.FrequencyEntry{Value: string(rune('A' + i)), Count: c}
		}
		return &model.FrequencyTable{Column: "borough", Entries: entries}
	}

	t.Run("splits a large table into disjoint groups", func(t *testing.T) {
		t.Parallel()

		ft := newTable(50, 40, 30, 20, 10)

		high, low, err := TopBottomSplit(ft, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantHigh := []float64{50, 40}
		wantLow := []float64{20, 10}
		for i, v := range wantHigh {
			if high[i] != v {
				t.Errorf("high[%d]: got %g, expected %g", i, high[i], v)
			}
		}
		for i, v := range wantLow {
			if low[i] != v {
				t.Errorf("low[%d]: got %g, expected %g", i, low[i], v)
			}
		}
	})

	t.Run("small table caps both groups at the table size", func(t *testing.T) {
		t.Parallel()

		ft := newTable(9, 5, 1)

		high, low, err := TopBottomSplit(ft, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(high) != 3 || len(low) != 3 {
			t.Errorf("expected capped group sizes 3/3, got %d/%d", len(high), len(low))
		}
	})

	t.Run("empty table returns ErrNotEnoughGroups", func(t *testing.T) {
		t.Parallel()

		_, _, err := TopBottomSplit(&model.FrequencyTable{Column: "borough"}, 10)

		if !errors.Is(err, ErrNotEnoughGroups) {
			t.Errorf("expected ErrNotEnoughGroups, got %v", err)
		}
	})

	t.Run("nil table returns ErrNotEnoughGroups", func(t *testing.T) {
		t.Parallel()

		_, _, err := TopBottomSplit(nil, 10)

		if !errors.Is(err, ErrNotEnoughGroups) {
			t.Errorf("expected ErrNotEnoughGroups, got %v", err)
		}
	})
}
