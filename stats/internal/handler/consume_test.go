package handler_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/stats/internal/handler"
	"github.com/Astemirdum/book-lending/stats/internal/service"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type session struct {
	sarama.ConsumerGroupSession
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *session) Context() context.Context { return s.ctx }

func (s *session) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type claim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *claim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	event := func(id string, typ kafka.EventType) []byte {
		b, err := json.Marshal(kafka.Event{ID: id, Type: typ, ActorID: 1, Actor: "alice", Timestamp: time.Now()})
		require.NoError(t, err)
		return b
	}

	tests := []struct {
		name         string
		msgs         []*sarama.ConsumerMessage
		failures     map[string]int
		wantRecorded []string
		wantMarked   []int64
		wantErr      bool
	}{
		{
			name: "malformed and invalid are skipped",
			msgs: []*sarama.ConsumerMessage{
				{Offset: 0, Value: []byte("{not json")},
				{Offset: 1, Value: event("bad", "unknown")},
				{Offset: 2, Value: event("ok", kafka.EventMessageSent)},
			},
			wantRecorded: []string{"ok"},
			wantMarked:   []int64{0, 1, 2},
		},
		{
			name: "transient storage failure is retried",
			msgs: []*sarama.ConsumerMessage{
				{Offset: 0, Value: event("flaky", kafka.EventBookLent)},
				{Offset: 1, Value: event("ok", kafka.EventMessageSent)},
			},
			failures:     map[string]int{"flaky": 1},
			wantRecorded: []string{"flaky", "ok"},
			wantMarked:   []int64{0, 1},
		},
		{
			name: "storage failure stops before later offsets",
			msgs: []*sarama.ConsumerMessage{
				{Offset: 10, Value: event("down", kafka.EventBookLent)},
				{Offset: 11, Value: event("ok", kafka.EventMessageSent)},
			},
			failures:   map[string]int{"down": 10},
			wantMarked: nil,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var recorded []string
			failures := map[string]int{}
			for id, n := range tt.failures {
				failures[id] = n
			}
			record := func(_ context.Context, ev kafka.Event) error {
				if ev.ID == "bad" {
					return errors.Wrap(service.ErrInvalidEvent, "type")
				}
				if failures[ev.ID] > 0 {
					failures[ev.ID]--
					return errors.New("db down")
				}
				recorded = append(recorded, ev.ID)
				return nil
			}

			cl := &claim{messages: make(chan *sarama.ConsumerMessage, len(tt.msgs))}
			for _, m := range tt.msgs {
				cl.messages <- m
			}
			close(cl.messages)
			sess := &session{ctx: context.Background()}

			consumer := handler.NewConsumer(record, zap.NewNop(), handler.WithRetry(3, 0))
			err := consumer.ConsumeClaim(sess, cl)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantRecorded, recorded)
			require.Equal(t, tt.wantMarked, sess.marked)
		})
	}
}

func TestConsumer_StopsOnSessionEnd(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cl := &claim{messages: make(chan *sarama.ConsumerMessage)}
	consumer := handler.NewConsumer(func(context.Context, kafka.Event) error { return nil }, zap.NewNop())

	require.NoError(t, consumer.ConsumeClaim(&session{ctx: ctx}, cl))
}
