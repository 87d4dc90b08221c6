package plinko

import (
	"plinko_backend/internal/config"
	"plinko_backend/internal/model"
	"plinko_backend/internal/repository"
	repoModel "plinko_backend/internal/repository/stats_repo/model"
	"plinko_backend/internal/service"
	"plinko_backend/pkg/rng"
)

type serv struct {
	cfg       config.SimulationConfig
	board     *model.Board
	rnd       rng.Source
	statsRepo repository.StatsRepository
}

// NewPlinkoService Создать сервис бросков по готовому полю.
// rnd используется из разных горутин, поэтому должен быть потокобезопасным (rng.Locked).
func NewPlinkoService(
	cfg config.SimulationConfig,
	board *model.Board,
	rnd rng.Source,
	statsRepo repository.StatsRepository,
) service.PlinkoService {
	return &serv{
		cfg:       cfg,
		board:     board,
		rnd:       rnd,
		statsRepo: statsRepo,
	}
}

func (s *serv) Board() *model.Board {
	return s.board
}

func (s *serv) Stats() repoModel.ServedStats {
	return s.statsRepo.ServedStats()
}
