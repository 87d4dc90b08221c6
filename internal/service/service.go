package service

import (
	"context"
	"plinko_backend/internal/model"
	repoModel "plinko_backend/internal/repository/stats_repo/model"
)

type PlinkoService interface {
	Board() *model.Board
	Simulate(ctx context.Context, start string) (string, error)
	Drop(ctx context.Context, start string, show bool) (*model.DropResult, error)
	RunTrials(ctx context.Context, start string, count int) (model.Tally, error)
	RunAllSlots(ctx context.Context, count int) (model.SlotTallies, error)
	Exact(start string) (model.Distribution, error)
	Fit(tally model.Tally, exact model.Distribution) (model.FitResult, error)
	Stats() repoModel.ServedStats
}
