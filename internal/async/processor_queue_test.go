package async

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	mu        sync.Mutex
	processed []uuid.UUID
	block     chan struct{} // when set, Process waits on it
}

func (p *recordingProcessor) Process(_ context.Context, resumeID uuid.UUID) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, resumeID)
	return nil
}

func (p *recordingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestQueueProcessesEverythingBeforeShutdown(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(2), WithQueueSize(16))

	ids := make([]uuid.UUID, 8)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{ResumeID: ids[i], SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, len(ids), proc.count())
	assert.ElementsMatch(t, ids, proc.processed)
}

func TestEnqueueAfterShutdownIsDropped(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// must not panic on the closed channel; the job is dropped with a log line
	require.NoError(t, q.Enqueue(context.Background(), Job{ResumeID: uuid.New()}))
	assert.Zero(t, proc.count())
}

func TestEnqueueOnFullQueueDoesNotBlockShutdown(t *testing.T) {
	proc := &recordingProcessor{block: make(chan struct{})}
	defer close(proc.block)

	// one job wedges the worker, one fills the channel
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1), WithQueueSize(1))
	require.NoError(t, q.Enqueue(context.Background(), Job{ResumeID: uuid.New(), SubmittedAt: time.Now()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{ResumeID: uuid.New(), SubmittedAt: time.Now()}))

	// a backpressured producer spins against the full channel
	enqueueCtx, enqueueCancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- q.Enqueue(enqueueCtx, Job{ResumeID: uuid.New(), SubmittedAt: time.Now()})
	}()
	time.Sleep(20 * time.Millisecond)

	// shutdown must not wait on the producer's send
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	q.Shutdown(ctx)
	assert.Less(t, time.Since(start), time.Second)

	// and the producer unwinds instead of hanging forever
	enqueueCancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("backpressured enqueue never returned")
	}
}

func TestEnqueueGivesUpWhenCallerContextDies(t *testing.T) {
	proc := &recordingProcessor{block: make(chan struct{})}
	defer close(proc.block)

	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1), WithQueueSize(1))
	require.NoError(t, q.Enqueue(context.Background(), Job{ResumeID: uuid.New(), SubmittedAt: time.Now()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{ResumeID: uuid.New(), SubmittedAt: time.Now()}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, Job{ResumeID: uuid.New(), SubmittedAt: time.Now()})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	sctx, scancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer scancel()
	q.Shutdown(sctx)
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(&recordingProcessor{}, quietLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}

func TestShutdownHonorsContext(t *testing.T) {
	proc := &recordingProcessor{block: make(chan struct{})}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1), WithQueueSize(4))
	require.NoError(t, q.Enqueue(context.Background(), Job{ResumeID: uuid.New(), SubmittedAt: time.Now()}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	q.Shutdown(ctx) // worker is stuck; shutdown must give up at the deadline
	assert.Less(t, time.Since(start), time.Second)

	close(proc.block)
}
