package plinko

import (
	"context"
	"fmt"
	"math/rand"

	"plinko_backend/internal/model"
	"plinko_backend/pkg/rng"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Раз в столько бросков воркер проверяет отмену контекста
const ctxCheckEvery = 4096

// RunTrials выполняет count бросков из слота start и возвращает счётчик по лункам.
// Первая же ошибка броска прерывает всю серию, частичный счётчик не возвращается.
func (s *serv) RunTrials(ctx context.Context, start string, count int) (model.Tally, error) {
	if _, _, err := s.board.Locate(start); err != nil {
		return nil, err
	}
	if count < 0 || count > s.cfg.MaxTrials() {
		return nil, fmt.Errorf("%w: %d (allowed 0..%d)", model.ErrInvalidCount, count, s.cfg.MaxTrials())
	}

	workers := s.cfg.Workers()
	if workers > count {
		workers = count
	}

	log.WithFields(log.Fields{
		"start":   start,
		"count":   count,
		"workers": workers,
	}).Debug("running trials")

	var (
		tally model.Tally
		err   error
	)
	if workers <= 1 {
		tally, err = runBatch(ctx, s.board, start, count, s.rnd)
	} else {
		tally, err = s.runParallel(ctx, start, count, workers)
	}
	if err != nil {
		return nil, err
	}

	s.statsRepo.UpdateState(start, tally)

	return tally, nil
}

// RunAllSlots выполняет по count бросков из каждого слота A..I
func (s *serv) RunAllSlots(ctx context.Context, count int) (model.SlotTallies, error) {
	res := make(model.SlotTallies, model.SlotCount)
	for _, label := range model.DropLabels {
		tally, err := s.RunTrials(ctx, label, count)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", label, err)
		}
		res[label] = tally
	}
	return res, nil
}

// runParallel делит серию между воркерами, у каждого свой генератор.
// Сиды воркеров берутся из общего генератора сервиса, так что при заданном seed результат повторяется.
func (s *serv) runParallel(ctx context.Context, start string, count, workers int) (model.Tally, error) {
	baseSeed := s.rnd.Int63()
	tallies := make([]model.Tally, workers)
	chunk := count / workers
	rem := count % workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		n := chunk
		if w < rem {
			n++
		}
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(rng.WorkerSeed(baseSeed, w)))
			t, err := runBatch(gctx, s.board, start, n, rnd)
			if err != nil {
				return err
			}
			tallies[w] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := model.NewTally()
	for _, t := range tallies {
		total.Merge(t)
	}
	return total, nil
}

func runBatch(ctx context.Context, board *model.Board, start string, count int, coin rng.Coin) (model.Tally, error) {
	tally := model.NewTally()
	for i := 0; i < count; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		trial, err := Walk(board, start, coin)
		if err != nil {
			return nil, err
		}
		tally.Add(trial.Landing)
	}
	return tally, nil
}
