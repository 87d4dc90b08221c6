package plinko

import (
	"context"
	"errors"
	"math"
	"testing"

	"plinko_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binomial12 C(12, k) / 2^12
func binomial12(k int) float64 {
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(12-i) / float64(i+1)
	}
	return c / 4096
}

func TestExactDistributionSumsToOne(t *testing.T) {
	board := model.BuildBoard()
	for _, start := range model.DropLabels {
		dist, err := ExactDistribution(board, start)
		require.NoError(t, err)

		sum := 0.0
		for _, p := range dist {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-12, start)
	}
}

func TestExactDistributionCenter(t *testing.T) {
	dist, err := ExactDistribution(model.BuildBoard(), "E")
	require.NoError(t, err)

	for k := 0; k < model.SlotCount; k++ {
		assert.InDelta(t, dist[k], dist[model.SlotCount-1-k], 1e-12, "slot %d", k)
	}
	// d..f чистый binomial(12, 0.5)
	for k := 3; k <= 5; k++ {
		assert.InDelta(t, binomial12(k+2), dist[k], 1e-12, "slot %d", k)
	}
	// Путь 9 влево и 3 вправо уходит в -1, возвращается в 1 и заканчивает в c
	assert.InDelta(t, binomial12(4)+1.0/4096, dist[2], 1e-12)
	assert.InDelta(t, binomial12(4)+1.0/4096, dist[6], 1e-12)

	want := [model.SlotCount]int{66, 232, 496, 792, 924, 792, 496, 232, 66}
	for k, n := range want {
		assert.InDelta(t, float64(n)/4096, dist[k], 1e-12, "slot %d", k)
	}
}

// bitsCoin монетки по битам числа: бит i отвечает за ряд i
type bitsCoin struct {
	bits  int
	calls int
}

func (c *bitsCoin) Intn(int) int {
	d := (c.bits >> c.calls) & 1
	c.calls++
	return d
}

func TestExactDistributionMatchesEnumeration(t *testing.T) {
	board := model.BuildBoard()
	for _, start := range model.DropLabels {
		tally := model.NewTally()
		for bits := 0; bits < 1<<model.PegRows; bits++ {
			trial, err := Walk(board, start, &bitsCoin{bits: bits})
			require.NoError(t, err)
			tally.Add(trial.Landing)
		}

		dist, err := ExactDistribution(board, start)
		require.NoError(t, err)
		for k, n := range tally.Counts() {
			assert.InDelta(t, float64(n)/4096, dist[k], 1e-12, "start %s slot %d", start, k)
		}
	}
}

func TestExactDistributionEdge(t *testing.T) {
	board := model.BuildBoard()
	distA, err := ExactDistribution(board, "A")
	require.NoError(t, err)
	distI, err := ExactDistribution(board, "I")
	require.NoError(t, err)

	// Из A шайба отражается от левой стенки: лунка 2k собирает пути в +2k и -2k
	assert.InDelta(t, binomial12(6), distA[0], 1e-12)
	for k := 1; k <= 6; k++ {
		assert.InDelta(t, 2*binomial12(6+k), distA[k], 1e-12, "slot %d", k)
	}
	assert.Zero(t, distA[7])
	assert.Zero(t, distA[8])

	for k := 0; k < model.SlotCount; k++ {
		assert.InDelta(t, distA[k], distI[model.SlotCount-1-k], 1e-12)
	}
}

func TestExactDistributionInvalidSlot(t *testing.T) {
	_, err := ExactDistribution(model.BuildBoard(), "X")
	assert.True(t, errors.Is(err, model.ErrInvalidSlot))
}

func TestCenterDropMatchesDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulation")
	}

	s := newTestService(1, 20240601)
	const trials = 100000
	tally, err := s.RunTrials(context.Background(), "E", trials)
	require.NoError(t, err)
	require.Equal(t, trials, tally.Total())

	exact, err := s.Exact("E")
	require.NoError(t, err)

	fit, err := s.Fit(tally, exact)
	require.NoError(t, err)
	assert.Equal(t, 8, fit.DF)
	assert.Greater(t, fit.PValue, 0.01, "chi2=%.3f", fit.Statistic)

	// Симметрия вокруг e
	freq := tally.Frequencies()
	for k := 0; k < 4; k++ {
		assert.InDelta(t, freq[k], freq[model.SlotCount-1-k], 0.01, "slot %d", k)
	}
	// d..f стенку не чувствуют, там binomial(12, 0.5)
	for k := 3; k <= 5; k++ {
		assert.InDelta(t, binomial12(k+2), freq[k], 0.01, "slot %d", k)
	}
}

func TestEdgeDropSkewsTowardNearEdge(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulation")
	}

	s := newTestService(4, 77)
	const trials = 100000
	tally, err := s.RunTrials(context.Background(), "A", trials)
	require.NoError(t, err)

	freq := tally.Frequencies()

	// Без стенки симметричное блуждание из колонки 0 дало бы a и b только binomial(12,6)+binomial(12,7)
	unbounded := binomial12(6) + binomial12(7)
	assert.Greater(t, freq[0]+freq[1], unbounded+0.1)

	// В дальние лунки из A не попасть за 12 рядов
	assert.Zero(t, tally["h"])
	assert.Zero(t, tally["i"])

	exact, err := s.Exact("A")
	require.NoError(t, err)
	fit, err := s.Fit(tally, exact)
	require.NoError(t, err)
	assert.Equal(t, 6, fit.DF)
	assert.Greater(t, fit.PValue, 0.01, "chi2=%.3f", fit.Statistic)
}

func TestGoodnessOfFit(t *testing.T) {
	exact := model.Distribution{0, 0, 0, 0.25, 0.5, 0.25, 0, 0, 0}

	perfect := model.NewTally()
	perfect["d"], perfect["e"], perfect["f"] = 25, 50, 25
	fit, err := GoodnessOfFit(perfect, exact)
	require.NoError(t, err)
	assert.Equal(t, 2, fit.DF)
	assert.InDelta(t, 0, fit.Statistic, 1e-12)
	assert.InDelta(t, 1, fit.PValue, 1e-9)

	skewed := model.NewTally()
	skewed["d"], skewed["e"], skewed["f"] = 100, 0, 0
	fit, err = GoodnessOfFit(skewed, exact)
	require.NoError(t, err)
	assert.Less(t, fit.PValue, 1e-6)

	impossible := model.NewTally()
	impossible["a"] = 1
	fit, err = GoodnessOfFit(impossible, exact)
	require.NoError(t, err)
	assert.True(t, math.IsInf(fit.Statistic, 1))
	assert.Zero(t, fit.PValue)

	_, err = GoodnessOfFit(model.NewTally(), exact)
	assert.True(t, errors.Is(err, model.ErrInvalidCount))
}
