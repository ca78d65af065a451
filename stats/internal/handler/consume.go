package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/stats/internal/service"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type record func(ctx context.Context, ev kafka.Event) error

const (
	defaultAttempts = 3
	defaultBackoff  = 500 * time.Millisecond
)

type Consumer struct {
	recordHandler record
	attempts      int
	backoff       time.Duration
	log           *zap.Logger
}

type ConsumerOption func(*Consumer)

// WithRetry sets how many times a storage failure is retried within a
// session and the base delay between attempts.
func WithRetry(attempts int, backoff time.Duration) ConsumerOption {
	return func(c *Consumer) {
		c.attempts = attempts
		c.backoff = backoff
	}
}

func NewConsumer(record record, log *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		recordHandler: record,
		attempts:      defaultAttempts,
		backoff:       defaultBackoff,
		log:           log.Named("consumer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.attempts < 1 {
		c.attempts = 1
	}
	return c
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks malformed and invalid events as consumed. An event
// that still fails to store after retries ends the claim unmarked, and the
// group resumes from the last committed offset on rejoin.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("json.Unmarshal", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.record(session.Context(), event); err != nil {
				if errors.Is(err, service.ErrInvalidEvent) {
					consumer.log.Warn("invalid event skipped", zap.Error(err))
					session.MarkMessage(message, "")
					continue
				}
				return errors.Wrapf(err, "record event %s at offset %d", event.ID, message.Offset)
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) record(ctx context.Context, ev kafka.Event) error {
	var err error
	for i := 0; i < consumer.attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(consumer.backoff * time.Duration(i)):
			}
		}
		err = consumer.recordHandler(ctx, ev)
		if err == nil || errors.Is(err, service.ErrInvalidEvent) {
			return err
		}
		consumer.log.Warn("record event", zap.Int("attempt", i+1), zap.Error(err))
	}
	return err
}
