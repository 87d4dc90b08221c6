package report

import (
	"bytes"
	"strings"
	"testing"

	"plinko_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTally() model.Tally {
	t := model.NewTally()
	t["d"], t["e"], t["f"] = 1, 2, 1
	return t
}

func TestTableRawAndNormalized(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, "E", sampleTally(), false))
	out := buf.String()

	assert.Contains(t, out, "drop E")
	assert.Contains(t, out, "trials 4")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+model.SlotCount)
	assert.True(t, strings.HasPrefix(lines[5], "e"))
	assert.Contains(t, lines[5], "2")
	assert.Contains(t, lines[5], strings.Repeat("#", 20))

	buf.Reset()
	require.NoError(t, Table(&buf, "E", sampleTally(), true))
	assert.Contains(t, buf.String(), "0.5000")
}

func TestTableAllListsEverySlot(t *testing.T) {
	tallies := model.SlotTallies{}
	for _, l := range model.DropLabels {
		tallies[l] = sampleTally()
	}

	var buf bytes.Buffer
	require.NoError(t, TableAll(&buf, tallies, true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+model.SlotCount)
	assert.Contains(t, lines[0], "a")
	assert.Contains(t, lines[9], "I")
	assert.Contains(t, lines[9], "0.2500")
}

func TestExactTableAndFit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExactTable(&buf, "E", model.Distribution{0, 0, 0, 0.25, 0.5, 0.25}))
	assert.Contains(t, buf.String(), "0.500000")

	buf.Reset()
	require.NoError(t, Fit(&buf, model.FitResult{Statistic: 1.5, DF: 8, PValue: 0.99}))
	assert.Equal(t, "chi2 = 1.5000, df = 8, p = 0.9900\n", buf.String())
}

func TestChartRendersHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, "E", sampleTally(), true))
	out := buf.String()

	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "4 trials")
}

func TestChartAllRendersEverySlot(t *testing.T) {
	tallies := model.SlotTallies{}
	for _, l := range model.DropLabels {
		tallies[l] = sampleTally()
	}

	var buf bytes.Buffer
	require.NoError(t, ChartAll(&buf, tallies, false))
	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.GreaterOrEqual(t, strings.Count(out, "4 trials"), model.SlotCount)
}
