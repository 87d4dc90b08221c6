package model

import (
	"fmt"
	"strings"
)

const (
	// SlotCount Количество слотов сверху и снизу
	SlotCount = 9
	// PegRows Ряды с колышками между слотами
	PegRows = 12
	// BoardRows Всего рядов: ряд слотов сброса + поле колышков + ряд лунок
	BoardRows = PegRows + 2
	// BoardCols Ширина поля: 9 слотов и 8 колышков между ними
	BoardCols = SlotCount*2 - 1

	// DropRow Ряд со слотами сброса A..I
	DropRow = 0
	// LandingRow Ряд с лунками a..i
	LandingRow = BoardRows - 1

	PegMark       = 'o'
	SeparatorMark = '|'
	BlankMark     = ' '
)

// DropLabels Метки слотов сброса в порядке слева направо
var DropLabels = func() (l [SlotCount]string) {
	for i := range l {
		l[i] = string(rune('A' + i))
	}
	return
}()

// LandingLabels Метки лунок в порядке слева направо
var LandingLabels = func() (l [SlotCount]string) {
	for i := range l {
		l[i] = string(rune('a' + i))
	}
	return
}()

// Board Неизменяемое поле Плинко 14x17.
// После BuildBoard ячейки не меняются, путь броска хранится отдельно в Trial.
type Board struct {
	cells [BoardRows][BoardCols]byte
}

// BuildBoard строит фиксированную раскладку поля без случайности
func BuildBoard() *Board {
	b := &Board{}

	for c := 0; c < BoardCols; c++ {
		// Верхний ряд: буквы на чётных колонках, колышки между ними
		// Нижний ряд: строчные буквы на чётных, разделители на нечётных
		if c%2 == 0 {
			b.cells[DropRow][c] = byte('A' + c/2)
			b.cells[LandingRow][c] = byte('a' + c/2)
		} else {
			b.cells[DropRow][c] = PegMark
			b.cells[LandingRow][c] = SeparatorMark
		}

		// Поле колышков одинаково во всех 12 рядах
		for r := DropRow + 1; r < LandingRow; r++ {
			if c%2 == 0 {
				b.cells[r][c] = PegMark
			} else {
				b.cells[r][c] = BlankMark
			}
		}
	}

	return b
}

// Locate возвращает координаты слота сброса по его метке
func (b *Board) Locate(label string) (row, col int, err error) {
	if len(label) == 1 {
		for c := 0; c < BoardCols; c += 2 {
			if b.cells[DropRow][c] == label[0] {
				return DropRow, c, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlot, label)
}

// LabelAt возвращает символ ячейки. Координаты вне поля дают пустую строку.
func (b *Board) LabelAt(row, col int) string {
	if row < 0 || row >= BoardRows || col < 0 || col >= BoardCols {
		return ""
	}
	return string(b.cells[row][col])
}

// Width Ширина поля в колонках
func (b *Board) Width() int {
	return BoardCols
}

// Rows возвращает поле построчно
func (b *Board) Rows() []string {
	rows := make([]string, BoardRows)
	for r := range b.cells {
		rows[r] = string(b.cells[r][:])
	}
	return rows
}

// RenderPath рисует путь броска на копии поля. Само поле не меняется.
func (b *Board) RenderPath(path []Cell, mark byte) []string {
	grid := b.cells
	for _, p := range path {
		if p.Row < 0 || p.Row >= BoardRows || p.Col < 0 || p.Col >= BoardCols {
			continue
		}
		grid[p.Row][p.Col] = mark
	}

	rows := make([]string, BoardRows)
	for r := range grid {
		rows[r] = string(grid[r][:])
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// IsLandingLabel проверяет, что метка одна из a..i
func IsLandingLabel(label string) bool {
	for _, l := range LandingLabels {
		if l == label {
			return true
		}
	}
	return false
}

// SlotIndex Индекс лунки (0..8) по её метке, -1 если метка не лунка
func SlotIndex(label string) int {
	for i, l := range LandingLabels {
		if l == label {
			return i
		}
	}
	return -1
}
