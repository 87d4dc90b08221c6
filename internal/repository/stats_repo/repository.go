package stats_repo

import (
	"sync"
	"time"

	"plinko_backend/internal/model"
	repoModel "plinko_backend/internal/repository/stats_repo/model"
)

// StateRepo Реализация репозитория для хранения счётчиков бросков
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.ServedStats
}

// NewStatsRepository Конструктор репозитория с пустым состоянием
func NewStatsRepository() *StateRepo {
	bySlot := make(map[string]model.Tally, model.SlotCount)
	for _, l := range model.DropLabels {
		bySlot[l] = model.NewTally()
	}
	return &StateRepo{
		state: repoModel.ServedStats{
			BySlot: bySlot,
		},
	}
}

// UpdateState Учитывает серию бросков из слота start
func (r *StateRepo) UpdateState(start string, tally model.Tally) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	slot, ok := r.state.BySlot[start]
	if !ok {
		return
	}
	slot.Merge(tally)

	r.state.TotalRuns++
	r.state.TotalTrials += tally.Total()
	r.state.LastRunAt = time.Now()
}

// ServedStats Возвращает копию состояния, которую можно менять снаружи
func (r *StateRepo) ServedStats() repoModel.ServedStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := r.state
	res.BySlot = make(map[string]model.Tally, len(r.state.BySlot))
	for slot, tally := range r.state.BySlot {
		cp := model.NewTally()
		cp.Merge(tally)
		res.BySlot[slot] = cp
	}
	return res
}
