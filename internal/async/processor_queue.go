package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Processor is what a worker runs for each job.
type Processor interface {
	Process(ctx context.Context, resumeID uuid.UUID) error
}

type ProcessorQueue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.Process(ctx, job.ResumeID)
					cancel()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "resume_id", job.ResumeID, "error", err)
					} else {
						q.logger.Info("processed resume", "worker_id", workerID, "resume_id", job.ResumeID,
							"queued_for_ms", time.Since(job.SubmittedAt).Milliseconds())
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue applies backpressure when the channel is full, but never blocks
// while holding the mutex: a stalled send there would freeze every other
// Enqueue and deadlock Shutdown. The send itself stays under the lock so it
// can never race a close of the channel.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	warned := false
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			q.logger.Warn("cannot enqueue: queue is shutting down", "resume_id", job.ResumeID)
			return nil
		}
		select {
		case q.ch <- job:
			q.mu.Unlock()
			q.logger.Info("queued resume for processing", "resume_id", job.ResumeID)
			return nil
		default:
		}
		q.mu.Unlock()

		if !warned {
			q.logger.Warn("queue full, applying backpressure", "resume_id", job.ResumeID)
			warned = true
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
