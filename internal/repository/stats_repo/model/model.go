package model

import (
	"time"

	plinkoModel "plinko_backend/internal/model"
)

// ServedStats Состояние счётчиков процесса
type ServedStats struct {
	TotalTrials int // Сколько всего бросков сделано
	TotalRuns   int // Сколько серий бросков запущено

	BySlot map[string]plinkoModel.Tally // Попадания по лункам для каждого слота сброса

	LastRunAt time.Time // Время последней серии
}
