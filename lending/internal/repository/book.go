package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var bookColumns = []string{
	"id", "owner_id", "title", "author", "genre", "condition",
	"cover_image", "description", "available", "created_at",
}

// friendIDs selects the ids of the accepted friends of one user; it takes
// the user id three times.
const friendIDs = `select case when f.sender_id = ? then f.receiver_id else f.sender_id end
	from friendships f
	where (f.sender_id = ? or f.receiver_id = ?) and f.status = 'accepted'`

func booksWithOwner() sq.SelectBuilder {
	return qb.Select(append(columns("b", bookColumns...), "u.username as owner_username")...).
		From(booksTableName + " b").
		Join(usersTableName + " u on u.id = b.owner_id")
}

func (r *repository) CreateBook(ctx context.Context, b model.Book) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("owner_id", "title", "author", "genre", "condition", "cover_image", "description", "available").
		Values(b.OwnerID, b.Title, b.Author, b.Genre, b.Condition, b.CoverImage, b.Description, b.Available).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return selectOne[model.Book](ctx, r, q, args...)
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.BookWithOwner, error) {
	q, args, err := booksWithOwner().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return model.BookWithOwner{}, err
	}
	return selectOne[model.BookWithOwner](ctx, r, q, args...)
}

func (r *repository) UpdateBook(ctx context.Context, b model.Book) (model.Book, error) {
	q, args, err := qb.Update(booksTableName).
		SetMap(map[string]any{
			"title":       b.Title,
			"author":      b.Author,
			"genre":       b.Genre,
			"condition":   b.Condition,
			"cover_image": b.CoverImage,
			"description": b.Description,
		}).
		Where(sq.Eq{"id": b.ID, "owner_id": b.OwnerID}).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return selectOne[model.Book](ctx, r, q, args...)
}

func (r *repository) DeleteBook(ctx context.Context, id, ownerID int64) error {
	q, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, q, args...)
}

func (r *repository) ListBooksByOwner(ctx context.Context, ownerID int64) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.Book](ctx, r, q, args...)
}

func (r *repository) SetBookAvailable(ctx context.Context, bookID int64, available bool) error {
	q, args, err := qb.Update(booksTableName).
		Set("available", available).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, q, args...)
}

// MarkBookLent flips an available book to lent. ErrNotFound means the
// book is gone or already lent out.
func (r *repository) MarkBookLent(ctx context.Context, bookID int64) error {
	const q = `update books set available = false where id = @id and available`
	return r.execOne(ctx, q, pgx.NamedArgs{"id": bookID})
}

func (r *repository) ListFriendBooks(ctx context.Context, userID int64, limit uint64) ([]model.BookWithOwner, error) {
	b := booksWithOwner().
		Where(sq.Eq{"b.available": true}).
		Where("b.owner_id in ("+friendIDs+")", userID, userID, userID).
		OrderBy("b.created_at desc", "b.id desc")
	if limit > 0 {
		b = b.Limit(limit)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.BookWithOwner](ctx, r, q, args...)
}

// SearchFriendBooks matches available books of friends by title, author
// or genre.
func (r *repository) SearchFriendBooks(ctx context.Context, userID int64, query string) ([]model.BookWithOwner, error) {
	like := contains(query)
	q, args, err := booksWithOwner().
		Where(sq.Eq{"b.available": true}).
		Where("b.owner_id in ("+friendIDs+")", userID, userID, userID).
		Where(sq.Or{
			sq.ILike{"b.title": like},
			sq.ILike{"b.author": like},
			sq.ILike{"b.genre": like},
		}).
		OrderBy("b.title", "b.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.BookWithOwner](ctx, r, q, args...)
}
