package filter

import (
	"context"
	"sync"
)

// workerPool implements WorkerPool with a fixed number of goroutines.
type workerPool struct {
	work chan func()
	done chan struct{}
	wg   sync.WaitGroup

	// mu orders Submit against Stop: a job accepted under the read lock is
	// queued before done closes, so the draining workers always see it.
	mu      sync.RWMutex
	stopped bool
}

// NewWorkerPool starts a pool of workers goroutines. A non-positive count
// starts one.
func NewWorkerPool(workers int) WorkerPool {
	if workers <= 0 {
		workers = 1
	}

	p := &workerPool{
		work: make(chan func(), workers*2),
		done: make(chan struct{}),
	}
	for range workers {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case fn := <-p.work:
			fn()
		case <-p.done:
			// drain what was queued before Stop
			for {
				select {
				case fn := <-p.work:
					fn()
				default:
					return
				}
			}
		}
	}
}

func (p *workerPool) Submit(ctx context.Context, work func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.work <- work:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *workerPool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.done)
	}
	p.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
