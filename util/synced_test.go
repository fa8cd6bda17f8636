package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounter(t *testing.T) {
	sc := NewSafeCounter()
	assert.Equal(t, 0, sc.Value())
	assert.Equal(t, 1, sc.Increment())

	var wg sync.WaitGroup
	iterations := 1000
	wg.Add(iterations)
	for i := 0; i < iterations; i++ {
		go func() {
			defer wg.Done()
			sc.Increment()
		}()
	}
	wg.Wait()
	assert.Equal(t, iterations+1, sc.Value())
}

func TestSafeFlag(t *testing.T) {
	t.Run("Basic Operations", func(t *testing.T) {
		f := NewSafeFlag()
		assert.False(t, f.Value())

		assert.True(t, f.TryAcquire())
		assert.True(t, f.Value())
		assert.False(t, f.TryAcquire())

		f.Release()
		assert.False(t, f.Value())
		assert.True(t, f.TryAcquire())
	})

	t.Run("Single Flight", func(t *testing.T) {
		f := NewSafeFlag()
		winners := NewSafeCounter()

		var wg sync.WaitGroup
		callers := 100
		wg.Add(callers)
		for i := 0; i < callers; i++ {
			go func() {
				defer wg.Done()
				if f.TryAcquire() {
					winners.Increment()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, winners.Value())
		assert.True(t, f.Value())
	})
}
