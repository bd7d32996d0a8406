package clean

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/nao1215/asbscan/internal/stats"
)

// ImputeNumeric replaces missing cells of every numeric column with that
// column's median over its observed values. It returns the new frame, the
// median used per imputed column, and warnings for columns that could not
// be imputed.
//
// Policy for an all-missing numeric column: its median is undefined, so
// the column is left untouched and a warning is recorded. Fabricating a
// fill value would invent data, and failing the run would break the
// "data-quality issues never abort" contract.
func ImputeNumeric(df dataframe.DataFrame) (dataframe.DataFrame, map[string]float64, []string) {
	medians := make(map[string]float64)
	var warnings []string

	names := df.Names()
	types := df.Types()

	for i, name := range names {
		if types[i] != series.Int && types[i] != series.Float {
			continue
		}

		values := df.Col(name).Float()
		observed := make([]float64, 0, len(values))
		missing := 0
		for _, v := range values {
			if math.IsNaN(v) {
				missing++
				continue
			}
			observed = append(observed, v)
		}

		if missing == 0 {
			continue
		}
		if len(observed) == 0 {
			warnings = append(warnings,
				fmt.Sprintf("column %q is entirely missing; median undefined, values left missing", name))
			continue
		}

		median := stats.Median(observed)
		medians[name] = median

		df = df.Mutate(imputedSeries(name, types[i], values, median))
	}

	return df, medians, warnings
}

// imputedSeries rebuilds a numeric column with missing cells filled.
// An Int column whose median is a whole number stays Int so the cleaned
// CSV round-trips without a spurious float upgrade; a fractional median
// forces Float, matching how the column would have loaded with that
// value present.
func imputedSeries(name string, t series.Type, values []float64, median float64) series.Series {
	if t == series.Int && median == math.Trunc(median) {
		records := make([]string, len(values))
		for i, v := range values {
			if math.IsNaN(v) {
				v = median
			}
			records[i] = strconv.FormatInt(int64(v), 10)
		}
		return series.New(records, series.Int, name)
	}

	filled := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			v = median
		}
		filled[i] = v
	}
	return series.New(filled, series.Float, name)
}

// ImputeCategorical replaces missing cells of every textual column with
// the given sentinel value. It returns the new frame and the number of
// filled cells per modified column.
func ImputeCategorical(df dataframe.DataFrame, sentinel string) (dataframe.DataFrame, map[string]int) {
	filled := make(map[string]int)

	names := df.Names()
	types := df.Types()

	for i, name := range names {
		if types[i] != series.String {
			continue
		}

		col := df.Col(name)
		missing := col.IsNaN()
		count := 0
		for _, m := range missing {
			if m {
				count++
			}
		}
		if count == 0 {
			continue
		}

		records := col.Records()
		for j, m := range missing {
			if m {
				records[j] = sentinel
			}
		}

		filled[name] = count
		df = df.Mutate(series.New(records, series.String, name))
	}

	return df, filled
}
