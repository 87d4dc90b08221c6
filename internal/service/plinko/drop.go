package plinko

import (
	"context"
	"fmt"

	"plinko_backend/internal/model"
	"plinko_backend/pkg/rng"
)

const (
	// Куда возвращаем шайбу, если она ушла за левый край
	leftClampColumn = 1
	// Куда возвращаем шайбу, если она ушла за правый край
	rightClampColumn = 15
)

// Simulate выполняет один бросок и возвращает лунку a..i
func (s *serv) Simulate(_ context.Context, start string) (string, error) {
	trial, err := Walk(s.board, start, s.rnd)
	if err != nil {
		return "", err
	}
	return trial.Landing, nil
}

// Drop выполняет один бросок и возвращает путь, при show ещё и нарисованное поле
func (s *serv) Drop(_ context.Context, start string, show bool) (*model.DropResult, error) {
	trial, err := Walk(s.board, start, s.rnd)
	if err != nil {
		return nil, err
	}

	res := &model.DropResult{
		Start:   trial.Start,
		Landing: trial.Landing,
		Path:    trial.Path,
	}
	if show {
		res.Board = s.board.RenderPath(trial.Path, s.cfg.Mark())
	}

	tally := model.NewTally()
	tally.Add(trial.Landing)
	s.statsRepo.UpdateState(trial.Start, tally)

	return res, nil
}

// Walk Один спуск шайбы из слота start по неизменяемому полю.
// На каждом из 12 рядов одна монетка: 0 влево, 1 вправо.
func Walk(board *model.Board, start string, coin rng.Coin) (*model.Trial, error) {
	_, col, err := board.Locate(start)
	if err != nil {
		return nil, err
	}

	trial := &model.Trial{
		Start: start,
		Row:   model.DropRow + 1,
		Col:   col,
		Path:  make([]model.Cell, 0, model.PegRows+1),
	}
	trial.Path = append(trial.Path, model.Cell{Row: trial.Row, Col: trial.Col})

	for i := 0; i < model.PegRows; i++ {
		if coin.Intn(2) == 0 {
			trial.Col--
		} else {
			trial.Col++
		}
		trial.Row++
		trial.Col = clampColumn(trial.Col, board.Width())
		trial.Steps++
		trial.Path = append(trial.Path, model.Cell{Row: trial.Row, Col: trial.Col})
	}

	if err := land(board, trial); err != nil {
		return nil, err
	}
	return trial, nil
}

// land проверяет, что шайба дошла до нижнего ряда и стоит на букве
func land(board *model.Board, trial *model.Trial) error {
	if trial.Row != model.LandingRow || trial.Steps != model.PegRows {
		return fmt.Errorf("%w: stopped at row %d after %d steps", model.ErrSimulation, trial.Row, trial.Steps)
	}

	landing := board.LabelAt(trial.Row, trial.Col)
	if !model.IsLandingLabel(landing) {
		return fmt.Errorf("%w: column %d holds %q, not a landing slot", model.ErrSimulation, trial.Col, landing)
	}
	trial.Landing = landing
	return nil
}

// clampColumn Граница поля: ниже 0 ставим в 1, правее края в 15
func clampColumn(col, width int) int {
	if col < 0 {
		col = leftClampColumn
	}
	if col > width-1 {
		col = rightClampColumn
	}
	return col
}
