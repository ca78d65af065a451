package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/stats/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// Record stores an event once. It reports false for an already seen id.
	Record(ctx context.Context, ev kafka.Event) (bool, error)
	GetStats(ctx context.Context, f model.Filter) (model.StatsInfo, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const eventsTableName = `activity_events`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) Record(ctx context.Context, ev kafka.Event) (bool, error) {
	q := `insert into activity_events (id, occurred_at, type, actor_id, actor, target_id, entity_id)
	values (@id, @occurred_at, @type, @actor_id, @actor, @target_id, @entity_id)
	on conflict (id) do nothing`
	args := pgx.NamedArgs{
		"id":          ev.ID,
		"occurred_at": ev.Timestamp,
		"type":        ev.Type,
		"actor_id":    ev.ActorID,
		"actor":       ev.Actor,
		"target_id":   ev.TargetID,
		"entity_id":   ev.EntityID,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return false, errors.Wrap(err, "insert event")
	}
	return tag.RowsAffected() == 1, nil
}

func countOf(t kafka.EventType, alias string) string {
	return fmt.Sprintf("count(*) filter (where type = '%s') as %s", t, alias)
}

func (r *repository) GetStats(ctx context.Context, f model.Filter) (model.StatsInfo, error) {
	q := qb.Select(
		"actor_id as user_id",
		"max(actor) as username",
		"max(occurred_at) as last_activity",
		countOf(kafka.EventFriendRequested, "friend_requests"),
		countOf(kafka.EventFriendAccepted, "friends_added"),
		countOf(kafka.EventBookRequested, "books_requested"),
		countOf(kafka.EventBookLent, "books_lent"),
		countOf(kafka.EventBookReturned, "books_returned"),
		countOf(kafka.EventBookRated, "ratings"),
		countOf(kafka.EventBookReviewed, "reviews"),
		countOf(kafka.EventMessageSent, "messages"),
		"count(*) as total",
	).
		From(eventsTableName).
		GroupBy("actor_id").
		OrderBy("actor_id")
	if f.UserID != 0 {
		q = q.Where(sq.Eq{"actor_id": f.UserID})
	}
	if !f.Since.IsZero() {
		q = q.Where(sq.GtOrEq{"occurred_at": f.Since})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return model.StatsInfo{}, err
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("stats query", zap.String("sql", sql), zap.Error(err))
		return model.StatsInfo{}, err
	}
	defer rows.Close()
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.UserStats])
	if err != nil {
		return model.StatsInfo{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return model.StatsInfo{Data: stats}, nil
}
