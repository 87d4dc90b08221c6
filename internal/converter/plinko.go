package converter

import (
	dto "plinko_backend/internal/api/dto/plinko"
	"plinko_backend/internal/model"
	repoModel "plinko_backend/internal/repository/stats_repo/model"
)

func ToDropResponse(res model.DropResult) dto.DropResponse {
	path := make([]dto.Cell, len(res.Path))
	for i, c := range res.Path {
		path[i] = dto.Cell{Row: c.Row, Col: c.Col}
	}
	return dto.DropResponse{
		Start:   res.Start,
		Landing: res.Landing,
		Path:    path,
		Board:   res.Board,
	}
}

func ToTallyResponse(start string, tally model.Tally, normalize bool) dto.TallyResponse {
	resp := dto.TallyResponse{
		Start:  start,
		Trials: tally.Total(),
	}
	if normalize {
		freq := tally.Frequencies()
		resp.Freqs = make(map[string]float64, model.SlotCount)
		for i, l := range model.LandingLabels {
			resp.Freqs[l] = freq[i]
		}
		return resp
	}

	resp.Counts = make(map[string]int, model.SlotCount)
	for _, l := range model.LandingLabels {
		resp.Counts[l] = tally[l]
	}
	return resp
}

func ToAllSlotsResponse(tallies model.SlotTallies, normalize bool) dto.AllSlotsResponse {
	resp := dto.AllSlotsResponse{Slots: make([]dto.TallyResponse, 0, len(tallies))}
	for _, start := range model.DropLabels {
		if tally, ok := tallies[start]; ok {
			resp.Slots = append(resp.Slots, ToTallyResponse(start, tally, normalize))
		}
	}
	return resp
}

func ToExactResponse(start string, dist model.Distribution) dto.ExactResponse {
	probs := make(map[string]float64, model.SlotCount)
	for i, l := range model.LandingLabels {
		probs[l] = dist[i]
	}
	return dto.ExactResponse{Start: start, Probs: probs}
}

func ToStatsResponse(st repoModel.ServedStats) dto.StatsResponse {
	bySlot := make(map[string]map[string]int, len(st.BySlot))
	for slot, tally := range st.BySlot {
		bySlot[slot] = map[string]int(tally)
	}
	return dto.StatsResponse{
		TotalTrials: st.TotalTrials,
		TotalRuns:   st.TotalRuns,
		BySlot:      bySlot,
	}
}
