package model

// Cell Координата на поле
type Cell struct {
	Row int
	Col int
}

// Trial Один бросок шайбы. Путь принадлежит только этому броску.
type Trial struct {
	Start   string // Слот сброса A..I
	Row     int    // Текущий ряд
	Col     int    // Текущая колонка
	Steps   int    // Сколько рядов пройдено
	Path    []Cell // Пройденные ячейки, только для отрисовки
	Landing string // Лунка a..i, заполняется в конце
}

// DropResult Результат одиночного броска для клиента
type DropResult struct {
	Start   string
	Landing string
	Path    []Cell
	Board   []string // Поле с отмеченным путём, если просили показать
}
