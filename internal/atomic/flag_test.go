package atomic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	f := NewFlag(true)
	assert.True(t, f.Live())
	assert.True(t, f.Swap(false))
	assert.False(t, f.Live())
	assert.False(t, f.Swap(false))
	assert.False(t, NewFlag(false).Live())
}

func TestFlagSwapOnce(t *testing.T) {
	f := NewFlag(true)
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.Swap(false) {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, won)
}
