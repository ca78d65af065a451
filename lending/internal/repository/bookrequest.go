package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var bookRequestColumns = []string{"id", "book_id", "borrower_id", "return_date", "status", "created_at", "returned_at"}

func bookRequestViews() sq.SelectBuilder {
	return qb.Select(append(columns("r", bookRequestColumns...),
		"b.title as book_title",
		"b.owner_id",
		"o.username as owner_username",
		"u.username as borrower_username")...).
		From(bookRequestsTableName + " r").
		Join(booksTableName + " b on b.id = r.book_id").
		Join(usersTableName + " o on o.id = b.owner_id").
		Join(usersTableName + " u on u.id = r.borrower_id")
}

func (r *repository) CreateBookRequest(ctx context.Context, br model.BookRequest) (model.BookRequest, error) {
	q, args, err := qb.Insert(bookRequestsTableName).
		Columns("book_id", "borrower_id", "return_date", "status").
		Values(br.BookID, br.BorrowerID, br.ReturnDate, model.RequestPending).
		Suffix("returning " + strings.Join(bookRequestColumns, ", ")).
		ToSql()
	if err != nil {
		return model.BookRequest{}, err
	}
	return selectOne[model.BookRequest](ctx, r, q, args...)
}

func (r *repository) HasPendingBookRequest(ctx context.Context, bookID, borrowerID int64) (bool, error) {
	q, args, err := qb.Select("1").
		From(bookRequestsTableName).
		Where(sq.Eq{"book_id": bookID, "borrower_id": borrowerID, "status": model.RequestPending}).
		ToSql()
	if err != nil {
		return false, err
	}
	return r.exists(ctx, q, args...)
}

func (r *repository) GetBookRequest(ctx context.Context, id int64) (model.BookRequestView, error) {
	q, args, err := bookRequestViews().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return model.BookRequestView{}, err
	}
	return selectOne[model.BookRequestView](ctx, r, q, args...)
}

func (r *repository) TransitionBookRequest(ctx context.Context, t model.BookRequestTransition) (model.BookRequest, error) {
	const q = `
	update book_requests set
		status = @to,
		returned_at = coalesce(@returned_at, returned_at)
	where id = @id
		and status = @from
		and book_id in (select id from books where owner_id = @owner_id)
	returning id, book_id, borrower_id, return_date, status, created_at, returned_at`
	return selectOne[model.BookRequest](ctx, r, q, pgx.NamedArgs{
		"id":          t.ID,
		"owner_id":    t.OwnerID,
		"from":        t.From,
		"to":          t.To,
		"returned_at": t.ReturnedAt,
	})
}

func (r *repository) ListBookRequests(ctx context.Context, f model.BookRequestFilter) ([]model.BookRequestView, error) {
	b := bookRequestViews()
	if f.OwnerID != 0 {
		b = b.Where(sq.Eq{"b.owner_id": f.OwnerID})
	}
	if f.BorrowerID != 0 {
		b = b.Where(sq.Eq{"r.borrower_id": f.BorrowerID})
	}
	if f.ParticipantID != 0 {
		b = b.Where(sq.Or{
			sq.Eq{"b.owner_id": f.ParticipantID},
			sq.Eq{"r.borrower_id": f.ParticipantID},
		})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"r.status": f.Status})
	}
	q, args, err := b.OrderBy("r.created_at desc", "r.id desc").ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.BookRequestView](ctx, r, q, args...)
}

func (r *repository) CountPendingBookRequests(ctx context.Context, ownerID int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(bookRequestsTableName+" r").
		Join(booksTableName+" b on b.id = r.book_id").
		Where(sq.Eq{"b.owner_id": ownerID, "r.status": model.RequestPending}))
}

// ListDueBookRequests returns active loans whose return date is on or
// before dueBy.
func (r *repository) ListDueBookRequests(ctx context.Context, dueBy time.Time) ([]model.BookRequestView, error) {
	q, args, err := bookRequestViews().
		Where(sq.Eq{"r.status": model.RequestAccepted}).
		Where(sq.LtOrEq{"r.return_date": dueBy.Format(time.DateOnly)}).
		OrderBy("r.return_date", "r.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.BookRequestView](ctx, r, q, args...)
}
