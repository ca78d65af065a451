package handler

import (
	"context"

	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/stats/internal/model"
	"github.com/Astemirdum/book-lending/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context, f model.Filter) (model.StatsInfo, error)
	Record(ctx context.Context, ev kafka.Event) error
}

var _ StatsService = (*service.Service)(nil)
