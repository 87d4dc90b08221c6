package report

import (
	"fmt"
	"io"

	"plinko_backend/internal/model"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart рисует столбчатую диаграмму по лункам для одного слота сброса
func Chart(w io.Writer, start string, tally model.Tally, normalize bool) error {
	return newBar(start, tally, normalize).Render(w)
}

// ChartAll рисует страницу с диаграммами по всем слотам A..I
func ChartAll(w io.Writer, tallies model.SlotTallies, normalize bool) error {
	page := components.NewPage()
	page.PageTitle = "Plinko"

	for _, start := range model.DropLabels {
		tally, ok := tallies[start]
		if !ok {
			continue
		}
		page.AddCharts(newBar(start, tally, normalize))
	}
	return page.Render(w)
}

func newBar(start string, tally model.Tally, normalize bool) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    start,
			Subtitle: fmt.Sprintf("%d trials", tally.Total()),
		}),
	)

	freq := tally.Frequencies()
	items := make([]opts.BarData, 0, model.SlotCount)
	for i, l := range model.LandingLabels {
		if normalize {
			items = append(items, opts.BarData{Value: freq[i]})
		} else {
			items = append(items, opts.BarData{Value: tally[l]})
		}
	}

	bar.SetXAxis(model.LandingLabels[:]).AddSeries(start, items)
	return bar
}
