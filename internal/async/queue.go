package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	processor "github.com/brpayflow/boleto-tracker/internal/pipeline"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry, etc).
type Job struct {
	FileID      uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

var ErrQueueFull = errors.New("processing queue is full")
var ErrQueueClosed = errors.New("processing queue is shut down")

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
			q.queueSize = n
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

// ProcessorQueue runs the extraction pipeline on a bounded worker
// pool, so a directory ingest or a watcher burst does not hold the
// gRPC handler while every document is processed.
type ProcessorQueue struct {
	proc      *processor.Processor
	logger    *slog.Logger
	workers   int
	queueSize int
	timeout   time.Duration

	jobs   chan Job
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(proc *processor.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:      proc,
		logger:    logger,
		workers:   4,
		queueSize: 256,
		timeout:   3 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.queueSize)

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		start := time.Now()
		jobID, boletoID, err := q.proc.ProcessFile(ctx, job.FileID)
		cancel()
		if err != nil {
			q.logger.Error("queue.process.failed",
				"worker", id, "file_id", job.FileID, "job_id", jobID,
				"wait_ms", start.Sub(job.SubmittedAt).Milliseconds(), "err", err,
			)
			continue
		}
		q.logger.Info("queue.process.ok",
			"worker", id, "file_id", job.FileID, "job_id", jobID, "boleto_id", boletoID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Enqueue submits a job without blocking; a full queue is reported to
// the caller instead of stalling the ingest path.
func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, bounded
// by ctx.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out with jobs in flight")
	}
}
