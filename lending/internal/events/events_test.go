package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/events"
	"github.com/Astemirdum/book-lending/pkg/circuit_breaker"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/pkg/metrics"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func published(m *metrics.Metrics, result string) float64 {
	return testutil.ToFloat64(m.EventsPublished.WithLabelValues(result))
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var ev kafka.Event
			if err := json.Unmarshal(val, &ev); err != nil {
				return err
			}
			if ev.ID == "" || ev.Timestamp.IsZero() {
				return errors.New("id and timestamp must be set")
			}
			if ev.Type != kafka.EventBookLent || ev.ActorID != 2 {
				return errors.Errorf("unexpected event %+v", ev)
			}
			return nil
		})
		m := metrics.Nop()
		cb := circuit_breaker.New(circuit_breaker.Settings{Window: 4, Cooldown: time.Minute, FailureRatio: 0.5})
		p := events.NewPublisher(producer, cb, m, zap.NewNop())

		p.Publish(context.Background(), kafka.Event{Type: kafka.EventBookLent, ActorID: 2, Actor: "bob", TargetID: 1, EntityID: 7})

		require.NoError(t, producer.Close())
		require.Equal(t, float64(1), published(m, "ok"))
	})

	t.Run("open breaker drops events", func(t *testing.T) {
		t.Parallel()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		m := metrics.Nop()
		cb := circuit_breaker.New(circuit_breaker.Settings{Window: 1, Cooldown: time.Hour, FailureRatio: 1})
		p := events.NewPublisher(producer, cb, m, zap.NewNop())

		ev := kafka.Event{Type: kafka.EventMessageSent, ActorID: 1}
		p.Publish(context.Background(), ev)
		p.Publish(context.Background(), ev)

		require.NoError(t, producer.Close())
		require.Equal(t, circuit_breaker.Open, cb.State())
		require.Equal(t, float64(1), published(m, "failed"))
		require.Equal(t, float64(1), published(m, "rejected"))
	})
}

func TestNop(t *testing.T) {
	t.Parallel()
	require.NotPanics(t, func() {
		events.Nop().Publish(context.Background(), kafka.Event{Type: kafka.EventFriendRemoved})
	})
}
