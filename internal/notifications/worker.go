package notifications

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/mailer"
	"github.com/sbilibin2017/gw-parent-profile/internal/queue"
)

// Consumer reserves the next job on the queue.
type Consumer interface {
	Consume(ctx context.Context) (*queue.Delivery, error)
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

const (
	sendTimeout     = 30 * time.Second
	maxRetryBackoff = 5 * time.Minute
)

// Worker consumes email jobs and sends them. A single fetch loop feeds a
// fixed pool of goroutines.
type Worker struct {
	consumer    Consumer
	sender      Sender
	renderer    *Renderer
	concurrency int
	maxAttempts int
	backoff     time.Duration
	now         func() time.Time
}

// Option is a functional option for Worker.
type Option func(*Worker)

// WithConcurrency sets the number of jobs handled at once.
func WithConcurrency(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.concurrency = n
		}
	}
}

// WithMaxAttempts sets how many times a job is tried before it is dead-lettered.
func WithMaxAttempts(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.maxAttempts = n
		}
	}
}

// WithRetryBackoff sets the delay after the first failed attempt. It doubles
// on every further failure.
func WithRetryBackoff(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.backoff = d
		}
	}
}

// NewWorker creates a worker. Defaults: 4 goroutines, 5 attempts, 1s backoff.
func NewWorker(consumer Consumer, sender Sender, renderer *Renderer, opts ...Option) *Worker {
	w := &Worker{
		consumer:    consumer,
		sender:      sender,
		renderer:    renderer,
		concurrency: 4,
		maxAttempts: 5,
		backoff:     time.Second,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run consumes until ctx is cancelled, then waits for in-flight jobs.
func (w *Worker) Run(ctx context.Context) error {
	deliveries := make(chan *queue.Delivery)

	var wg sync.WaitGroup
	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range deliveries {
				w.handle(ctx, d)
			}
		}()
	}

	logger.Log.Infow("notification worker started", "concurrency", w.concurrency)

fetch:
	for {
		d, err := w.consumer.Consume(ctx)
		if ctx.Err() != nil {
			break
		}
		if errors.Is(err, queue.ErrNoJob) {
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to consume job", "error", err)
			if sleep(ctx, w.backoff) != nil {
				break
			}
			continue
		}

		select {
		case deliveries <- d:
		case <-ctx.Done():
			// Unacked; the queue redelivers it.
			break fetch
		}
	}

	close(deliveries)
	wg.Wait()
	logger.Log.Infow("notification worker stopped")
	return nil
}

// handle sends one job. It returns without acking when ctx is cancelled
// while waiting, leaving the job for redelivery.
func (w *Worker) handle(ctx context.Context, d *queue.Delivery) {
	// Acks and sends must complete even during shutdown.
	finish := context.WithoutCancel(ctx)

	job, err := d.Job()
	if err != nil {
		logger.Log.Errorw("malformed job", "error", err)
		w.reject(finish, d, "malformed: "+err.Error())
		return
	}

	msg, err := w.renderer.Render(job)
	if err != nil {
		logger.Log.Errorw("failed to render job", "job_id", job.ID, "error", err)
		w.reject(finish, d, "render: "+err.Error())
		return
	}

	if wait := job.NotBefore.Sub(w.now()); wait > 0 {
		if sleep(ctx, wait) != nil {
			logger.Log.Infow("job left for redelivery", "job_id", job.ID)
			return
		}
	}

	backoff := w.backoff
	for attempt := 1; ; attempt++ {
		sendCtx, cancel := context.WithTimeout(finish, sendTimeout)
		err = w.sender.Send(sendCtx, msg)
		cancel()

		if err == nil {
			if err := d.Ack(finish); err != nil {
				logger.Log.Errorw("failed to ack job", "job_id", job.ID, "error", err)
			}
			logger.Log.Infow("email job done", "job_id", job.ID, "type", job.Type, "attempts", attempt)
			return
		}

		logger.Log.Warnw("email job attempt failed", "job_id", job.ID, "attempt", attempt, "error", err)
		if attempt >= w.maxAttempts {
			w.reject(finish, d, err.Error())
			return
		}

		if sleep(ctx, backoff) != nil {
			logger.Log.Infow("job left for redelivery", "job_id", job.ID)
			return
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

func (w *Worker) reject(ctx context.Context, d *queue.Delivery, reason string) {
	if err := d.Reject(ctx, reason); err != nil {
		logger.Log.Errorw("failed to dead-letter job", "reason", reason, "error", err)
		return
	}
	logger.Log.Warnw("job dead-lettered", "reason", reason)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
