package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Task is one unit of work, e.g. loading a single overlay.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

type Pool struct {
	numWorkers int
	tasks      chan Task
	wg         sync.WaitGroup
}

func NewPool(numWorkers int, bufferSize int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan Task, bufferSize),
	}
}

func (p *Pool) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			if err := task.Run(ctx); err != nil {
				slog.Warn("task failed", "task", task.Name, "worker", id, "error", err)
			}
		}
	}
}

func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

// Stop stops accepting tasks and waits for running ones to return.
func (p *Pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
