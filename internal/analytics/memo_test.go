package analytics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemo(t *testing.T) {
	var m Memo[string, int]
	calls := 0
	compute := func(v int) func() int {
		return func() int {
			calls++
			return v
		}
	}

	assert.Equal(t, 1, m.Get("k1", compute(1)))
	assert.Equal(t, 1, m.Get("k1", compute(99)))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 2, m.Get("k2", compute(2)))
	assert.Equal(t, 2, calls)

	m.Invalidate()
	assert.Equal(t, 3, m.Get("k2", compute(3)))
	assert.Equal(t, 3, calls)
}

func TestMemoConcurrent(t *testing.T) {
	var m Memo[int, int]
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := j % 4
				got := m.Get(key, func() int { return key * 10 })
				assert.Equal(t, key*10, got)
			}
		}()
	}
	wg.Wait()
}
