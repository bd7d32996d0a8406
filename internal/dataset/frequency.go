package dataset

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/nao1215/asbscan/internal/model"
)

// ValueCounts builds the value-frequency table of one column, sorted
// descending by count. Ties are broken by value so the order is stable
// across runs. Missing cells are not counted; after cleaning there are
// none in categorical columns anyway.
func ValueCounts(df dataframe.DataFrame, column string) (*model.FrequencyTable, error) {
	if !HasColumn(df, column) {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}

	col := df.Col(column)
	records := col.Records()
	missing := col.IsNaN()

	counts := make(map[string]int, 32)
	for i, v := range records {
		if missing[i] {
			continue
		}
		counts[v]++
	}

	entries := make([]model.FrequencyEntry, 0, len(counts))
	for v, c := range counts {
		entries = append(entries, model.FrequencyEntry{Value: v, Count: c})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})

	return &model.FrequencyTable{Column: column, Entries: entries}, nil
}
