package events

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/Astemirdum/book-lending/pkg/circuit_breaker"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/pkg/metrics"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher emits activity events. Publishing is best effort: failures
// are logged and never reach the caller.
type Publisher interface {
	Publish(ctx context.Context, ev kafka.Event)
}

func NewPublisher(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker, m *metrics.Metrics, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		cb:       cb,
		metrics:  m,
		log:      log.Named("events"),
		now:      time.Now,
	}
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	metrics  *metrics.Metrics
	log      *zap.Logger
	now      func() time.Time
}

func (p *kafkaPublisher) Publish(_ context.Context, ev kafka.Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = p.now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.ActivityTopic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.ActorID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	switch {
	case err == nil:
		p.metrics.EventsPublished.WithLabelValues("ok").Inc()
	case errors.Is(err, circuit_breaker.ErrOpen):
		p.metrics.EventsPublished.WithLabelValues("rejected").Inc()
		p.log.Debug("breaker open, event dropped", zap.String("type", string(ev.Type)))
	default:
		p.metrics.EventsPublished.WithLabelValues("failed").Inc()
		p.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, kafka.Event) {}

// Nop discards every event. Used when Kafka is disabled.
func Nop() Publisher { return nopPublisher{} }
