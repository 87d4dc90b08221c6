package plinko

type DropRequest struct {
	Slot string `json:"slot"` // Слот сброса A..I
	Show bool   `json:"show"` // Вернуть поле с отмеченным путём
}

type DropResponse struct {
	Start   string   `json:"start"`           // Слот сброса
	Landing string   `json:"landing"`         // Лунка a..i
	Path    []Cell   `json:"path"`            // Пройденные ячейки
	Board   []string `json:"board,omitempty"` // Поле с путём, если просили
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type TrialsRequest struct {
	Slot      string `json:"slot"`      // Слот сброса A..I
	Count     int    `json:"count"`     // Количество бросков
	Normalize bool   `json:"normalize"` // Доли вместо количества
}

type AllSlotsRequest struct {
	Count     int  `json:"count"`     // Количество бросков на каждый слот
	Normalize bool `json:"normalize"` // Доли вместо количества
}

type TallyResponse struct {
	Start  string             `json:"start"`            // Слот сброса
	Trials int                `json:"trials"`           // Всего бросков
	Counts map[string]int     `json:"counts,omitempty"` // Попадания по лункам
	Freqs  map[string]float64 `json:"freqs,omitempty"`  // Доли по лункам
}

type AllSlotsResponse struct {
	Slots []TallyResponse `json:"slots"` // В порядке A..I
}

type ExactResponse struct {
	Start string             `json:"start"`
	Probs map[string]float64 `json:"probs"` // Точные вероятности по лункам
}

type BoardResponse struct {
	Rows []string `json:"rows"`
}

type StatsResponse struct {
	TotalTrials int                       `json:"total_trials"`
	TotalRuns   int                       `json:"total_runs"`
	BySlot      map[string]map[string]int `json:"by_slot"`
}
