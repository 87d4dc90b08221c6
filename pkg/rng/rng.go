package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Coin Подбрасывание монетки на колышке: Intn(2) == 0 значит влево
type Coin interface {
	Intn(n int) int
}

// Source Источник случайности для бросков. *rand.Rand подходит напрямую.
type Source interface {
	Coin
	Int63() int64
}

// New возвращает генератор на заданном сиде. Сид 0 означает сид от времени.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Locked Генератор, который можно делить между горутинами
type Locked struct {
	mtx sync.Mutex
	rnd *rand.Rand
}

// NewLocked оборачивает генератор на сиде в мьютекс
func NewLocked(seed int64) *Locked {
	return &Locked{rnd: New(seed)}
}

func (l *Locked) Intn(n int) int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.rnd.Intn(n)
}

func (l *Locked) Int63() int64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.rnd.Int63()
}

// WorkerSeed сид для i-го воркера, чтобы последовательности не пересекались
func WorkerSeed(base int64, i int) int64 {
	return base + int64(i)*1337
}
