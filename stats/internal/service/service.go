package service

import (
	"context"

	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/stats/internal/model"
	statsRepo "github.com/Astemirdum/book-lending/stats/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidEvent marks events that can never be stored.
var ErrInvalidEvent = errors.New("invalid event")

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// GetStats returns per-user activity counts.
func (s *Service) GetStats(ctx context.Context, f model.Filter) (model.StatsInfo, error) {
	info, err := s.repo.GetStats(ctx, f)
	if err != nil {
		return model.StatsInfo{}, err
	}
	if info.Data == nil {
		info.Data = []model.UserStats{}
	}
	return info, nil
}

// Record is used by the kafka consumer. Redelivered events are ignored.
func (s *Service) Record(ctx context.Context, ev kafka.Event) error {
	if ev.ID == "" || ev.ActorID == 0 || ev.Timestamp.IsZero() || !ev.Type.Valid() {
		return errors.Wrapf(ErrInvalidEvent, "id=%q type=%q", ev.ID, ev.Type)
	}
	stored, err := s.repo.Record(ctx, ev)
	if err != nil {
		return err
	}
	if !stored {
		s.log.Debug("duplicate event", zap.String("id", ev.ID))
	}
	return nil
}
