package plinko

import (
	"fmt"
	"math"

	"plinko_backend/internal/model"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Exact считает точное распределение лунок для слота start.
// Перебор по рядам с тем же правилом границ, что и в Walk.
func (s *serv) Exact(start string) (model.Distribution, error) {
	return ExactDistribution(s.board, start)
}

func ExactDistribution(board *model.Board, start string) (model.Distribution, error) {
	var dist model.Distribution

	_, col, err := board.Locate(start)
	if err != nil {
		return dist, err
	}

	probs := make([]float64, board.Width())
	probs[col] = 1

	for i := 0; i < model.PegRows; i++ {
		next := make([]float64, board.Width())
		for c, p := range probs {
			if p == 0 {
				continue
			}
			next[clampColumn(c-1, board.Width())] += p / 2
			next[clampColumn(c+1, board.Width())] += p / 2
		}
		probs = next
	}

	for c, p := range probs {
		if p == 0 {
			continue
		}
		idx := model.SlotIndex(board.LabelAt(model.LandingRow, c))
		if idx < 0 {
			return dist, fmt.Errorf("%w: probability %.6f lands on column %d", model.ErrSimulation, p, c)
		}
		dist[idx] += p
	}

	return dist, nil
}

// Fit Проверка хи-квадрат: совпадает ли эмпирический счётчик с точным распределением.
// Лунки с нулевой ожидаемой вероятностью не входят в статистику.
func (s *serv) Fit(tally model.Tally, exact model.Distribution) (model.FitResult, error) {
	return GoodnessOfFit(tally, exact)
}

func GoodnessOfFit(tally model.Tally, exact model.Distribution) (model.FitResult, error) {
	total := tally.Total()
	if total == 0 {
		return model.FitResult{}, fmt.Errorf("%w: empty tally", model.ErrInvalidCount)
	}

	counts := tally.Counts()
	var obs, exp []float64
	for i, p := range exact {
		if p == 0 {
			if counts[i] != 0 {
				// Попадание туда, куда попасть нельзя
				return model.FitResult{Statistic: math.Inf(1), DF: 0, PValue: 0}, nil
			}
			continue
		}
		obs = append(obs, float64(counts[i]))
		exp = append(exp, p*float64(total))
	}

	df := len(obs) - 1
	if df < 1 {
		return model.FitResult{Statistic: 0, DF: 0, PValue: 1}, nil
	}

	chi := stat.ChiSquare(obs, exp)
	return model.FitResult{
		Statistic: chi,
		DF:        df,
		PValue:    distuv.ChiSquared{K: float64(df)}.Survival(chi),
	}, nil
}
