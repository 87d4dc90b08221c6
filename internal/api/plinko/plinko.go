package plinko

import (
	"errors"
	"net/http"
	"strconv"

	dto "plinko_backend/internal/api/dto/plinko"
	"plinko_backend/internal/converter"
	"plinko_backend/internal/model"
	"plinko_backend/internal/report"
	"plinko_backend/internal/service"
	"plinko_backend/pkg/req"
	"plinko_backend/pkg/resp"

	log "github.com/sirupsen/logrus"
)

type HandlerDeps struct {
	Serv service.PlinkoService
	// Количество бросков для графика, если в запросе не задано
	DefaultTrials int
}

type Handler struct {
	serv          service.PlinkoService
	defaultTrials int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, defaultTrials: deps.DefaultTrials}
}

// Board отдаёт поле построчно
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.BoardResponse{Rows: h.serv.Board().Rows()})
}

// Drop один бросок, при show ещё и нарисованный путь
func (h *Handler) Drop(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DropRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Drop(r.Context(), payload.Slot, payload.Show)
	if err != nil {
		writeError(w, "Drop", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDropResponse(*result))
}

// Trials серия бросков из одного слота
func (h *Handler) Trials(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.TrialsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tally, err := h.serv.RunTrials(r.Context(), payload.Slot, payload.Count)
	if err != nil {
		writeError(w, "Trials", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTallyResponse(payload.Slot, tally, payload.Normalize))
}

// AllSlots серии бросков из всех слотов A..I
func (h *Handler) AllSlots(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AllSlotsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tallies, err := h.serv.RunAllSlots(r.Context(), payload.Count)
	if err != nil {
		writeError(w, "AllSlots", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAllSlotsResponse(tallies, payload.Normalize))
}

// Exact точное распределение для ?slot=
func (h *Handler) Exact(w http.ResponseWriter, r *http.Request) {
	slot := r.URL.Query().Get("slot")
	dist, err := h.serv.Exact(slot)
	if err != nil {
		writeError(w, "Exact", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToExactResponse(slot, dist))
}

// Stats счётчики бросков, обслуженных процессом
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// Chart HTML-график. Без ?slot= рисуются все слоты.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count := h.defaultTrials
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid count", http.StatusBadRequest)
			return
		}
		count = n
	}
	normalize := q.Get("normalize") != "false"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	slot := q.Get("slot")
	if slot == "" {
		tallies, err := h.serv.RunAllSlots(r.Context(), count)
		if err != nil {
			writeError(w, "Chart", err)
			return
		}
		if err := report.ChartAll(w, tallies, normalize); err != nil {
			log.Println("Chart render error:", err)
		}
		return
	}

	tally, err := h.serv.RunTrials(r.Context(), slot, count)
	if err != nil {
		writeError(w, "Chart", err)
		return
	}
	if err := report.Chart(w, slot, tally, normalize); err != nil {
		log.Println("Chart render error:", err)
	}
}

// writeError ошибки ввода отдаются как 400, остальное 500
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidSlot), errors.Is(err, model.ErrInvalidCount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println(op+" error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
