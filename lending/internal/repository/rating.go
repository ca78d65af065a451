package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var (
	ratingColumns = []string{"id", "user_id", "book_id", "rating", "created_at"}
	reviewColumns = []string{"id", "user_id", "book_id", "review_text", "created_at"}
)

// UpsertRating keeps one rating per user and book; a second call
// replaces the value.
func (r *repository) UpsertRating(ctx context.Context, userID, bookID int64, rating model.RatingValue) (model.BookRating, error) {
	const q = `
	insert into book_ratings (user_id, book_id, rating)
	values (@user_id, @book_id, @rating)
	on conflict (user_id, book_id) do update set rating = excluded.rating
	returning id, user_id, book_id, rating, created_at`
	return selectOne[model.BookRating](ctx, r, q, pgx.NamedArgs{
		"user_id": userID,
		"book_id": bookID,
		"rating":  rating,
	})
}

func (r *repository) ListRatings(ctx context.Context, bookID int64) ([]model.RatingView, error) {
	q, args, err := qb.Select(append(columns("rt", ratingColumns...), "u.username")...).
		From(ratingsTableName+" rt").
		Join(usersTableName+" u on u.id = rt.user_id").
		Where(sq.Eq{"rt.book_id": bookID}).
		OrderBy("rt.created_at desc", "rt.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.RatingView](ctx, r, q, args...)
}

func (r *repository) CountRatings(ctx context.Context, bookID int64) (likes, dislikes int, err error) {
	q, args, err := qb.Select(
		"count(*) filter (where rating = 'like')",
		"count(*) filter (where rating = 'dislike')").
		From(ratingsTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return 0, 0, err
	}
	err = r.db.QueryRow(ctx, q, args...).Scan(&likes, &dislikes)
	return likes, dislikes, err
}

func (r *repository) CreateReview(ctx context.Context, rv model.BookReview) (model.BookReview, error) {
	q, args, err := qb.Insert(reviewsTableName).
		Columns("user_id", "book_id", "review_text").
		Values(rv.UserID, rv.BookID, rv.ReviewText).
		Suffix("returning " + strings.Join(reviewColumns, ", ")).
		ToSql()
	if err != nil {
		return model.BookReview{}, err
	}
	return selectOne[model.BookReview](ctx, r, q, args...)
}

func (r *repository) GetReview(ctx context.Context, id int64) (model.BookReview, error) {
	q, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.BookReview{}, err
	}
	return selectOne[model.BookReview](ctx, r, q, args...)
}

func (r *repository) DeleteReview(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(reviewsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, q, args...)
}

func (r *repository) ListReviews(ctx context.Context, bookID int64) ([]model.ReviewView, error) {
	q, args, err := qb.Select(append(columns("rv", reviewColumns...), "u.username")...).
		From(reviewsTableName+" rv").
		Join(usersTableName+" u on u.id = rv.user_id").
		Where(sq.Eq{"rv.book_id": bookID}).
		OrderBy("rv.created_at desc", "rv.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.ReviewView](ctx, r, q, args...)
}
