package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"plinko_backend/internal/model"
)

// Ширина полоски при 100% попаданий
const barWidth = 40

// Table печатает счётчик одного слота: лунка, значение, полоска
func Table(w io.Writer, start string, tally model.Tally, normalize bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "drop %s\ttrials %d\t\n", start, tally.Total())

	freq := tally.Frequencies()
	for i, l := range model.LandingLabels {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l, value(tally[l], freq[i], normalize), strings.Repeat("#", int(freq[i]*barWidth+0.5)))
	}
	return tw.Flush()
}

// TableAll печатает матрицу: строки слоты сброса A..I, колонки лунки a..i
func TableAll(w io.Writer, tallies model.SlotTallies, normalize bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, l := range model.LandingLabels {
		fmt.Fprintf(tw, "%s\t", l)
	}
	fmt.Fprintln(tw)

	for _, start := range model.DropLabels {
		tally, ok := tallies[start]
		if !ok {
			continue
		}
		freq := tally.Frequencies()
		fmt.Fprintf(tw, "%s\t", start)
		for i, l := range model.LandingLabels {
			fmt.Fprintf(tw, "%s\t", value(tally[l], freq[i], normalize))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// ExactTable печатает точные вероятности лунок
func ExactTable(w io.Writer, start string, dist model.Distribution) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "drop %s\texact\t\n", start)
	for i, l := range model.LandingLabels {
		fmt.Fprintf(tw, "%s\t%.6f\t%s\n", l, dist[i], strings.Repeat("#", int(dist[i]*barWidth+0.5)))
	}
	return tw.Flush()
}

// Fit печатает результат хи-квадрат
func Fit(w io.Writer, fit model.FitResult) error {
	_, err := fmt.Fprintf(w, "chi2 = %.4f, df = %d, p = %.4f\n", fit.Statistic, fit.DF, fit.PValue)
	return err
}

func value(count int, freq float64, normalize bool) string {
	if normalize {
		return fmt.Sprintf("%.4f", freq)
	}
	return fmt.Sprintf("%d", count)
}
