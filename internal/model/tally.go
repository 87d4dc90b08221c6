package model

// Tally Счётчик попаданий по лункам a..i.
// Все 9 ключей присутствуют всегда, даже с нулём.
type Tally map[string]int

// NewTally создаёт счётчик с нулями по всем лункам
func NewTally() Tally {
	t := make(Tally, SlotCount)
	for _, l := range LandingLabels {
		t[l] = 0
	}
	return t
}

// Add учитывает одно попадание
func (t Tally) Add(label string) {
	t[label]++
}

// Merge прибавляет другой счётчик к текущему
func (t Tally) Merge(other Tally) {
	for l, n := range other {
		t[l] += n
	}
}

// Total Общее количество бросков
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Counts Значения в порядке a..i
func (t Tally) Counts() []int {
	res := make([]int, SlotCount)
	for i, l := range LandingLabels {
		res[i] = t[l]
	}
	return res
}

// Frequencies Доли count/total в порядке a..i. При нуле бросков все доли нулевые.
func (t Tally) Frequencies() []float64 {
	res := make([]float64, SlotCount)
	total := t.Total()
	if total == 0 {
		return res
	}
	for i, l := range LandingLabels {
		res[i] = float64(t[l]) / float64(total)
	}
	return res
}

// SlotTallies Счётчики по каждому слоту сброса A..I
type SlotTallies map[string]Tally

// Distribution Точные вероятности попадания в лунки a..i
type Distribution [SlotCount]float64

// FitResult Результат проверки хи-квадрат
type FitResult struct {
	Statistic float64
	DF        int
	PValue    float64
}
