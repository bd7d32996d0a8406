// Package chart renders the descriptive visualizations of the analysis
// as an ECharts HTML dashboard: incident-type frequencies, the
// hour-of-day histogram, and borough frequencies.
//
// Design decision: The charts are a side effect for the analyst, not an
// input to anything downstream, so the package exposes chart builders
// plus one Render function and returns nothing the pipeline consumes.
// An HTML page stands in for the interactive plot windows of desktop
// plotting toolkits; it is self-contained and opens in any browser.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/nao1215/asbscan/internal/model"
)

// hoursPerDay fixes the histogram's category axis to a full day.
const hoursPerDay = 24

// FrequencyBar builds a horizontal bar chart of a value-frequency table,
// most frequent value at the top.
func FrequencyBar(title string, ft *model.FrequencyTable) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
	)

	// Reversed so the largest count renders at the top after the axis
	// swap; a category axis draws its first item at the bottom.
	labels := make([]string, ft.Len())
	data := make([]opts.BarData, ft.Len())
	for i, e := range ft.Entries {
		j := ft.Len() - 1 - i
		labels[j] = e.Value
		data[j] = opts.BarData{Value: e.Count}
	}

	bar.SetXAxis(labels).AddSeries("incidents", data)
	bar.XYReversal()

	return bar
}

// HourHistogram builds a 24-bin histogram of incident hours with a
// smoothed density overlay. The x-axis is fixed to 0-23 regardless of
// which hours actually occur. Missing hours are ignored; the hours slice
// is expected to contain integer hour values in [0,23].
func HourHistogram(title string, hours []float64) *charts.Bar {
	counts := make([]int, hoursPerDay)
	total := 0
	for _, h := range hours {
		hour := int(h)
		if hour < 0 || hour >= hoursPerDay {
			continue
		}
		counts[hour]++
		total++
	}

	labels := make([]string, hoursPerDay)
	bars := make([]opts.BarData, hoursPerDay)
	density := make([]opts.LineData, hoursPerDay)
	for h := 0; h < hoursPerDay; h++ {
		labels[h] = fmt.Sprintf("%02d", h)
		bars[h] = opts.BarData{Value: counts[h]}

		d := 0.0
		if total > 0 {
			d = float64(counts[h]) / float64(total)
		}
		density[h] = opts.LineData{Value: d}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
	)
	bar.SetXAxis(labels).AddSeries("incidents", bars)

	line := charts.NewLine()
	line.SetXAxis(labels).AddSeries("density", density,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	bar.Overlap(line)

	return bar
}

// Render writes the given charts as one HTML page.
func Render(w io.Writer, cs ...components.Charter) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(cs...)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}
