package model

import "errors"

var (
	// ErrInvalidSlot стартовая метка не входит в A..I
	ErrInvalidSlot = errors.New("invalid drop slot")
	// ErrSimulation нарушен инвариант спуска (не дошли до нижнего ряда ровно за 12 шагов)
	ErrSimulation = errors.New("simulation failed")
	// ErrInvalidCount количество бросков отрицательное или больше лимита
	ErrInvalidCount = errors.New("invalid trial count")
)
