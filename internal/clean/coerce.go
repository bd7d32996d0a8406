package clean

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// hourLayout is the 24-hour clock layout the hour column is recorded in.
const hourLayout = "15:04"

// CoerceNumeric reinterprets every cell of the named column as a float.
// Cells that do not parse become the missing marker; coercion never
// fails. The column's series type becomes Float regardless of what was
// inferred at load time. A table without the column is returned
// unchanged.
func CoerceNumeric(df dataframe.DataFrame, column string) dataframe.DataFrame {
	idx := columnIndex(df, column)
	if idx < 0 {
		return df
	}

	col := df.Col(column)
	records := col.Records()
	missing := col.IsNaN()

	values := make([]float64, len(records))
	for i, r := range records {
		if missing[i] {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
		if err != nil {
			values[i] = math.NaN()
			continue
		}
		values[i] = v
	}

	return df.Mutate(series.New(values, series.Float, column))
}

// CoerceHour parses every cell of the named column as a 24-hour HH:MM
// clock time and keeps only the hour component as an integer 0-23.
// Non-conforming cells ("25:99", free text, bare numbers) become the
// missing marker; already-missing cells stay missing. A table without
// the column is returned unchanged.
func CoerceHour(df dataframe.DataFrame, column string) dataframe.DataFrame {
	idx := columnIndex(df, column)
	if idx < 0 {
		return df
	}

	col := df.Col(column)
	records := col.Records()
	missing := col.IsNaN()

	// Built as strings so the Int series constructor marks the bad
	// cells NA instead of zeroing them.
	hours := make([]string, len(records))
	for i, r := range records {
		if missing[i] {
			hours[i] = "NaN"
			continue
		}
		t, err := time.Parse(hourLayout, strings.TrimSpace(r))
		if err != nil {
			hours[i] = "NaN"
			continue
		}
		hours[i] = strconv.Itoa(t.Hour())
	}

	return df.Mutate(series.New(hours, series.Int, column))
}

// columnIndex returns the position of the named column, or -1.
func columnIndex(df dataframe.DataFrame, column string) int {
	for i, n := range df.Names() {
		if n == column {
			return i
		}
	}
	return -1
}
