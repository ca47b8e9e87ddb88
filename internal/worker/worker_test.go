package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func countingTask(n *atomic.Int64) Task {
	return Task{
		Name: "count",
		Run: func(ctx context.Context) error {
			n.Add(1)
			return nil
		},
	}
}

func TestPool_StartStop(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(2, 10)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	for i := 0; i < 5; i++ {
		pool.Submit(countingTask(&processed))
	}

	time.Sleep(50 * time.Millisecond)

	cancel()
	pool.Stop()

	if processed.Load() != 5 {
		t.Errorf("expected 5 tasks processed, got %d", processed.Load())
	}
}

func TestPool_FailingTaskDoesNotStopWorker(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(1, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	pool.Submit(Task{
		Name: "broken feed",
		Run: func(ctx context.Context) error {
			return errors.New("unexpected status code: 503")
		},
	})
	pool.Submit(countingTask(&processed))

	pool.Stop()

	if processed.Load() != 1 {
		t.Errorf("expected the task after a failure to run, got %d", processed.Load())
	}
}

func TestPool_TasksRunIndependently(t *testing.T) {
	pool := NewPool(2, 2)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	release := make(chan struct{})
	fastDone := make(chan struct{})

	pool.Submit(Task{
		Name: "slow",
		Run: func(ctx context.Context) error {
			<-release
			return nil
		},
	})
	pool.Submit(Task{
		Name: "fast",
		Run: func(ctx context.Context) error {
			close(fastDone)
			return nil
		},
	})

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Error("fast task was blocked behind the slow one")
	}

	close(release)
	cancel()
	pool.Stop()
}

func TestPool_GracefulShutdown(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(2, 50)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	for i := 0; i < 20; i++ {
		pool.Submit(Task{
			Name: fmt.Sprintf("task_%d", i),
			Run: func(ctx context.Context) error {
				time.Sleep(10 * time.Millisecond)
				processed.Add(1)
				return nil
			},
		})
	}

	cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pool.Stop() timed out")
	}

	t.Logf("processed %d tasks before shutdown", processed.Load())
}

func TestPool_ContextCancellation(t *testing.T) {
	var completed atomic.Int64
	pool := NewPool(2, 10)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	for i := 0; i < 2; i++ {
		pool.Submit(Task{
			Name: "wait",
			Run: func(ctx context.Context) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(5 * time.Second):
					completed.Add(1)
					return nil
				}
			},
		})
	}

	time.Sleep(50 * time.Millisecond)
	cancel()
	pool.Stop()

	if completed.Load() != 0 {
		t.Errorf("expected cancelled tasks to return early, %d completed", completed.Load())
	}
}

func TestNewPool_AtLeastOneWorker(t *testing.T) {
	pool := NewPool(0, 1)
	if pool.numWorkers != 1 {
		t.Errorf("expected 1 worker, got %d", pool.numWorkers)
	}
}
