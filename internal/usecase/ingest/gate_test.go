package ingest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateNeverExceedsCapacity(t *testing.T) {
	const capacity = 4
	const tasks = 20

	gate := NewGate(capacity)

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, gate.Admit(context.Background()))
			defer gate.Release()

			cur := atomic.AddInt32(&active, 1)
			for {
				prev := atomic.LoadInt32(&maxActive)
				if cur <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&maxActive), int32(capacity))
	assert.Positive(t, atomic.LoadInt32(&maxActive))
}

func TestGateAdmitHonorsContext(t *testing.T) {
	gate := NewGate(1)
	require.NoError(t, gate.Admit(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := gate.Admit(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	gate.Release()
	assert.NoError(t, gate.Admit(context.Background()))
}

func TestGateCoercesInvalidCapacity(t *testing.T) {
	assert.Equal(t, 1, NewGate(0).Capacity())
	assert.Equal(t, 1, NewGate(-3).Capacity())
	assert.Equal(t, 8, NewGate(8).Capacity())
}
