package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	var wg sync.WaitGroup
	count := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(context.Background(), func() {
			defer wg.Done()
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}
	wg.Wait()
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	defer p.Stop()
	v, err := Do(context.Background(), p, func() int { return 42 })
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestSubmitAfterStop(t *testing.T) {
	p := NewPool(1)
	p.Stop()
	p.Stop()
	require.ErrorIs(t, p.Submit(context.Background(), func() {}), ErrPoolStopped)

	_, err := Do(context.Background(), p, func() string { return "x" })
	require.ErrorIs(t, err, ErrPoolStopped)
}

func TestSubmitHonoursContext(t *testing.T) {
	p := NewPool(1)
	defer p.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), func() {
		close(started)
		<-release
	}))
	<-started

	// 唯一的 worker 忙碌中，Submit 應在 ctx 逾時後返回
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, p.Submit(ctx, func() {}), context.DeadlineExceeded)
	close(release)
}
