package rng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministicForSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(2), b.Intn(2))
	}
}

func TestLockedMatchesPlainGenerator(t *testing.T) {
	locked := NewLocked(7)
	plain := New(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, plain.Int63(), locked.Int63())
	}
}

func TestLockedConcurrentUse(t *testing.T) {
	locked := NewLocked(1)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := locked.Intn(2)
				if n != 0 && n != 1 {
					t.Errorf("unexpected draw %d", n)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestWorkerSeedDiffers(t *testing.T) {
	assert.NotEqual(t, WorkerSeed(100, 0), WorkerSeed(100, 1))
	assert.Equal(t, int64(100), WorkerSeed(100, 0))
}
