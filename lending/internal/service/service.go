package service

import (
	"context"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/events"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/pkg/metrics"
	"go.uber.org/zap"
)

const defaultResetTTL = 15 * time.Minute

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher events.Publisher
	metrics   *metrics.Metrics
	mailer    Mailer
	tokens    *auth.Tokens
	authCfg   auth.Config
	resetTTL  time.Duration
	now       func() time.Time
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithMailer(m Mailer) Option {
	return func(s *Service) { s.mailer = m }
}

func WithAuth(cfg auth.Config) Option {
	return func(s *Service) {
		s.authCfg = cfg
		s.tokens = auth.NewTokens(cfg)
	}
}

func WithResetTTL(ttl time.Duration) Option {
	return func(s *Service) { s.resetTTL = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Repository, publisher events.Publisher, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: publisher,
		resetTTL:  defaultResetTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.Nop()
	}
	if s.mailer == nil {
		s.mailer = NewLogMailer(s.log)
	}
	if s.tokens == nil {
		WithAuth(auth.Config{Secret: "change-me", TTL: 14 * 24 * time.Hour, BcryptCost: 10})(s)
	}
	return s
}

// notify stores one notification inside the caller's transaction.
func (s *Service) notify(ctx context.Context, repo repository.Repository, n model.Notification) error {
	if _, err := repo.CreateNotification(ctx, n); err != nil {
		s.log.Warn("create notification", zap.String("type", string(n.Type)), zap.Error(err))
		return err
	}
	s.metrics.Notifications.WithLabelValues(string(n.Type)).Inc()
	return nil
}

// publish runs after commit; it never fails the request.
func (s *Service) publish(ctx context.Context, typ kafka.EventType, me auth.Identity, targetID, entityID int64) {
	s.publisher.Publish(ctx, kafka.Event{
		Timestamp: s.now().UTC(),
		Type:      typ,
		ActorID:   me.UserID,
		Actor:     me.Username,
		TargetID:  targetID,
		EntityID:  entityID,
	})
}

func (s *Service) transitioned(entity string, to string) {
	s.metrics.Transitions.WithLabelValues(entity, to).Inc()
}

func ref(id int64) *int64 { return &id }

// today is the current calendar day in UTC.
func (s *Service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}
