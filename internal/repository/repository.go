package repository

import (
	"plinko_backend/internal/model"
	repoModel "plinko_backend/internal/repository/stats_repo/model"
)

// StatsRepository Счётчики обслуженных бросков в памяти процесса.
// Между запусками ничего не сохраняется.
type StatsRepository interface {
	UpdateState(start string, tally model.Tally)
	ServedStats() repoModel.ServedStats
}
