// Package queue carries email jobs between the API and the notification
// worker. Two backends are provided: Redis lists and Kafka topics.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// ErrNoJob is returned by Consume when nothing arrived before the poll timed out.
var ErrNoJob = errors.New("no job available")

// Delivery is a reserved job. Exactly one of Ack or Reject must be called.
type Delivery struct {
	Body   []byte
	ack    func(ctx context.Context) error
	reject func(ctx context.Context, reason string) error
}

// NewDelivery wraps body with its acknowledgement callbacks.
func NewDelivery(body []byte, ack func(ctx context.Context) error, reject func(ctx context.Context, reason string) error) *Delivery {
	return &Delivery{Body: body, ack: ack, reject: reject}
}

// Job decodes the delivery body.
func (d *Delivery) Job() (models.EmailJob, error) {
	var job models.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		return job, fmt.Errorf("decode job: %w", err)
	}
	if job.ID == "" || job.Type == "" {
		return job, fmt.Errorf("decode job: missing id or type")
	}
	return job, nil
}

// Ack removes the job from the queue for good.
func (d *Delivery) Ack(ctx context.Context) error {
	return d.ack(ctx)
}

// Reject moves the job to the dead-letter destination.
func (d *Delivery) Reject(ctx context.Context, reason string) error {
	return d.reject(ctx, reason)
}

// deadLetter is what lands in a dead-letter destination.
type deadLetter struct {
	Reason  string `json:"reason"`
	Payload string `json:"payload"`
}

func encodeDeadLetter(body []byte, reason string) []byte {
	b, _ := json.Marshal(deadLetter{Reason: reason, Payload: string(body)})
	return b
}

func encodeJob(job models.EmailJob) ([]byte, error) {
	b, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("encode job: %w", err)
	}
	return b, nil
}
