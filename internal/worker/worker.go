package worker

import "sync"

// Task is a unit of work executed by the pool.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines. The HTTP layer
// uses it for fire-and-forget cache invalidation.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool starts a pool with n workers. n <= 0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop closes the queue and waits for in-flight tasks.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
