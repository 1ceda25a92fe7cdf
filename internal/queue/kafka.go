package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter publishes messages to a topic.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaReader fetches and commits messages as part of a consumer group.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaQueue publishes jobs to a topic and consumes them through a consumer
// group. Deliveries finish in any order, but a partition's offset only
// advances past messages that were all acked or rejected.
type KafkaQueue struct {
	writer  KafkaWriter
	reader  KafkaReader
	dead    KafkaWriter
	offsets *offsetTracker
}

// NewKafkaQueue builds a queue. reader and dead may be nil for a
// publish-only queue.
func NewKafkaQueue(writer KafkaWriter, reader KafkaReader, dead KafkaWriter) *KafkaQueue {
	return &KafkaQueue{
		writer:  writer,
		reader:  reader,
		dead:    dead,
		offsets: newOffsetTracker(),
	}
}

// NewKafkaWriter returns a writer for topic that balances by key.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

// NewKafkaReader returns a consumer-group reader for topic.
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
}

// Publish writes job keyed by its id.
func (q *KafkaQueue) Publish(ctx context.Context, job models.EmailJob) error {
	body, err := encodeJob(job)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(job.ID),
		Value: body,
		Time:  job.EnqueuedAt,
	}
	if err := q.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}
	return nil
}

// Consume fetches the next message of the group.
func (q *KafkaQueue) Consume(ctx context.Context) (*Delivery, error) {
	if q.reader == nil {
		return nil, errors.New("kafka queue has no reader")
	}

	msg, err := q.reader.FetchMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch kafka message: %w", err)
	}
	q.offsets.fetched(msg)

	ack := func(ctx context.Context) error {
		return q.complete(ctx, msg)
	}
	reject := func(ctx context.Context, reason string) error {
		if q.dead != nil {
			dl := kafka.Message{
				Key:   msg.Key,
				Value: encodeDeadLetter(msg.Value, reason),
				Headers: []kafka.Header{
					{Key: "reason", Value: []byte(reason)},
				},
			}
			if err := q.dead.WriteMessages(ctx, dl); err != nil {
				return fmt.Errorf("write dead letter: %w", err)
			}
		}
		return q.complete(ctx, msg)
	}
	return NewDelivery(msg.Value, ack, reject), nil
}

// complete marks msg as handled and commits the partition up to the last
// handled message with no unhandled one before it.
func (q *KafkaQueue) complete(ctx context.Context, msg kafka.Message) error {
	q.offsets.mu.Lock()
	defer q.offsets.mu.Unlock()

	upTo, ok := q.offsets.done(msg)
	if !ok {
		return nil
	}
	commit := kafka.Message{Topic: msg.Topic, Partition: msg.Partition, Offset: upTo}
	if err := q.reader.CommitMessages(ctx, commit); err != nil {
		return fmt.Errorf("commit kafka offset %d: %w", upTo, err)
	}
	return nil
}

// Close closes every client the queue holds.
func (q *KafkaQueue) Close() error {
	var errs []error
	for _, c := range []interface{ Close() error }{q.writer, q.reader, q.dead} {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type topicPartition struct {
	topic     string
	partition int
}

// partitionOffsets holds the fetched, not yet committed offsets of one
// partition in fetch order.
type partitionOffsets struct {
	inFlight []int64
	handled  map[int64]bool
}

// offsetTracker finds, per partition, the highest offset that can be
// committed without skipping an unhandled message.
type offsetTracker struct {
	mu    sync.Mutex
	parts map[topicPartition]*partitionOffsets
}

func newOffsetTracker() *offsetTracker {
	return &offsetTracker{parts: make(map[topicPartition]*partitionOffsets)}
}

func (t *offsetTracker) fetched(msg kafka.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := topicPartition{msg.Topic, msg.Partition}
	p, ok := t.parts[key]
	if !ok || (len(p.inFlight) > 0 && msg.Offset <= p.inFlight[len(p.inFlight)-1]) {
		// New partition, or the group rewound it after a rebalance.
		p = &partitionOffsets{handled: make(map[int64]bool)}
		t.parts[key] = p
	}
	p.inFlight = append(p.inFlight, msg.Offset)
}

// done records msg as handled and returns the offset to commit, if the
// committable prefix grew. The caller holds t.mu.
func (t *offsetTracker) done(msg kafka.Message) (int64, bool) {
	p, ok := t.parts[topicPartition{msg.Topic, msg.Partition}]
	if !ok {
		return 0, false
	}
	p.handled[msg.Offset] = true

	var upTo int64
	advanced := false
	for len(p.inFlight) > 0 && p.handled[p.inFlight[0]] {
		upTo = p.inFlight[0]
		delete(p.handled, upTo)
		p.inFlight = p.inFlight[1:]
		advanced = true
	}
	return upTo, advanced
}
