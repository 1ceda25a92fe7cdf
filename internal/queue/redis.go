package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// RedisQueue is a reliable list-based queue. Producers LPUSH onto the queue
// list; each consumer moves jobs into its own processing list and removes
// them once handled.
type RedisQueue struct {
	client       *redis.Client
	name         string
	processing   string
	dead         string
	blockTimeout time.Duration
}

// NewRedisQueue returns a queue stored under name, consumed as consumer.
// Consumers must use distinct names.
func NewRedisQueue(client *redis.Client, name, consumer string) *RedisQueue {
	return &RedisQueue{
		client:       client,
		name:         name,
		processing:   name + ":processing:" + consumer,
		dead:         name + ":dead",
		blockTimeout: 5 * time.Second,
	}
}

// Publish appends job to the queue.
func (q *RedisQueue) Publish(ctx context.Context, job models.EmailJob) error {
	body, err := encodeJob(job)
	if err != nil {
		return err
	}
	if err := q.client.LPush(ctx, q.name, body).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", q.name, err)
	}
	return nil
}

// Consume reserves the oldest job, blocking up to the poll timeout. It
// returns ErrNoJob when the queue stayed empty.
func (q *RedisQueue) Consume(ctx context.Context) (*Delivery, error) {
	body, err := q.client.BLMove(ctx, q.name, q.processing, "RIGHT", "LEFT", q.blockTimeout).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoJob
	}
	if err != nil {
		return nil, fmt.Errorf("blmove %s: %w", q.name, err)
	}

	ack := func(ctx context.Context) error {
		return q.client.LRem(ctx, q.processing, 1, body).Err()
	}
	reject := func(ctx context.Context, reason string) error {
		_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LRem(ctx, q.processing, 1, body)
			pipe.LPush(ctx, q.dead, encodeDeadLetter(body, reason))
			return nil
		})
		return err
	}
	return NewDelivery(body, ack, reject), nil
}

// Recover moves jobs stranded in this consumer's processing list, left by a
// crash, back to the head of the queue. It returns how many were moved.
func (q *RedisQueue) Recover(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := q.client.LMove(ctx, q.processing, q.name, "RIGHT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return moved, fmt.Errorf("lmove %s: %w", q.processing, err)
		}
		moved++
	}
	if moved > 0 {
		logger.Log.Infow("recovered stranded jobs", "queue", q.name, "count", moved)
	}
	return moved, nil
}

// Close is a no-op; the client is owned by the caller.
func (q *RedisQueue) Close() error {
	return nil
}
