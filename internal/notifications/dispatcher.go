package notifications

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// Publisher puts a job on the queue.
type Publisher interface {
	Publish(ctx context.Context, job models.EmailJob) error
}

// DeferFunc schedules fn to run once the caller's unit of work succeeds.
type DeferFunc func(ctx context.Context, fn func(ctx context.Context))

const publishTimeout = 5 * time.Second

// Dispatcher queues emails on behalf of request handlers. Failures are
// logged and never returned.
type Dispatcher struct {
	publisher  Publisher
	deferFn    DeferFunc
	alertDelay time.Duration
}

// NewDispatcher returns a dispatcher publishing through publisher. Jobs are
// handed to deferFn, typically middlewares.OnCommit; nil publishes at once.
func NewDispatcher(publisher Publisher, deferFn DeferFunc, alertDelay time.Duration) *Dispatcher {
	if deferFn == nil {
		deferFn = func(ctx context.Context, fn func(context.Context)) { fn(ctx) }
	}
	return &Dispatcher{
		publisher:  publisher,
		deferFn:    deferFn,
		alertDelay: alertDelay,
	}
}

// EnqueueActivationEmail queues the activation email for email.
func (d *Dispatcher) EnqueueActivationEmail(ctx context.Context, email, token string) {
	d.dispatch(ctx, func() models.EmailJob {
		return models.NewActivationEmailJob(email, token)
	})
}

// EnqueueNewChildAlert queues the administrator alert for a new child.
func (d *Dispatcher) EnqueueNewChildAlert(ctx context.Context, parentID int64, childName string) {
	d.dispatch(ctx, func() models.EmailJob {
		return models.NewChildAlertJob(parentID, childName, d.alertDelay)
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, build func() models.EmailJob) {
	d.deferFn(ctx, func(ctx context.Context) {
		job := build()

		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		if err := d.publisher.Publish(ctx, job); err != nil {
			logger.Log.Errorw("failed to enqueue email job", "job_id", job.ID, "type", job.Type, "error", err)
			return
		}
		logger.Log.Infow("email job enqueued", "job_id", job.ID, "type", job.Type)
	})
}
