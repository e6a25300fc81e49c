// Package worker 提供固定數量 goroutine 的工作池，用於限制 CPU 密集工作 (bcrypt) 的併發量
package worker

import (
	"context"
	"errors"
	"sync"
)

var ErrPoolStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a bounded worker pool.
type Pool interface {
	// Submit 等待空閒 worker 接手 t；ctx 結束或工作池已停止時回傳錯誤
	Submit(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{
		jobs: make(chan Task),
		done: make(chan struct{}),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs     chan Task
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func (p *pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			if job != nil {
				job()
			}
		case <-p.done:
			return
		}
	}
}

func (p *pool) Submit(ctx context.Context, t Task) error {
	select {
	case <-p.done:
		return ErrPoolStopped
	default:
	}
	select {
	case p.jobs <- t:
		return nil
	case <-p.done:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop 不再接受新工作，等待執行中的工作結束；可重複呼叫
func (p *pool) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
	p.wg.Wait()
}

// Do 在工作池中執行 fn 並等待結果
func Do[T any](ctx context.Context, p Pool, fn func() T) (T, error) {
	var zero T
	out := make(chan T, 1)
	if err := p.Submit(ctx, func() { out <- fn() }); err != nil {
		return zero, err
	}
	select {
	case v := <-out:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
