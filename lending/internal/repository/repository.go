package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// InTx runs fn against a repository bound to one transaction.
	InTx(ctx context.Context, fn func(repo Repository) error) error

	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdatePassword(ctx context.Context, userID int64, hash string) error
	SearchUsers(ctx context.Context, excludeID int64, query string) ([]model.User, error)

	EnsureProfile(ctx context.Context, userID int64) (model.Profile, error)
	UpdateProfile(ctx context.Context, p model.Profile) error

	SaveResetCode(ctx context.Context, reset model.PasswordReset) error
	GetResetCode(ctx context.Context, userID int64) (model.PasswordReset, error)
	DeleteResetCode(ctx context.Context, userID int64) error

	CreateBook(ctx context.Context, b model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.BookWithOwner, error)
	UpdateBook(ctx context.Context, b model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id, ownerID int64) error
	ListBooksByOwner(ctx context.Context, ownerID int64) ([]model.Book, error)
	SetBookAvailable(ctx context.Context, bookID int64, available bool) error
	MarkBookLent(ctx context.Context, bookID int64) error
	ListFriendBooks(ctx context.Context, userID int64, limit uint64) ([]model.BookWithOwner, error)
	SearchFriendBooks(ctx context.Context, userID int64, query string) ([]model.BookWithOwner, error)

	CreateFriendship(ctx context.Context, senderID, receiverID int64) (model.Friendship, error)
	FriendshipBetween(ctx context.Context, a, b int64) (model.Friendship, error)
	FriendshipExists(ctx context.Context, a, b int64, status model.FriendshipStatus) (bool, error)
	TransitionFriendship(ctx context.Context, id, receiverID int64, from, to model.FriendshipStatus) (model.Friendship, error)
	DeleteFriendship(ctx context.Context, a, b int64, status model.FriendshipStatus) (model.Friendship, error)
	ListFriends(ctx context.Context, userID int64) ([]model.User, error)
	ListPendingReceived(ctx context.Context, userID int64) ([]model.FriendshipView, error)
	ListPendingSent(ctx context.Context, userID int64) ([]model.FriendshipView, error)
	CountPendingReceived(ctx context.Context, userID int64) (int, error)
	FriendshipStatuses(ctx context.Context, userID int64, others []int64) (map[int64]model.FriendshipStatus, error)

	CreateBookRequest(ctx context.Context, r model.BookRequest) (model.BookRequest, error)
	HasPendingBookRequest(ctx context.Context, bookID, borrowerID int64) (bool, error)
	GetBookRequest(ctx context.Context, id int64) (model.BookRequestView, error)
	TransitionBookRequest(ctx context.Context, t model.BookRequestTransition) (model.BookRequest, error)
	ListBookRequests(ctx context.Context, f model.BookRequestFilter) ([]model.BookRequestView, error)
	CountPendingBookRequests(ctx context.Context, ownerID int64) (int, error)
	ListDueBookRequests(ctx context.Context, dueBy time.Time) ([]model.BookRequestView, error)

	UpsertRating(ctx context.Context, userID, bookID int64, rating model.RatingValue) (model.BookRating, error)
	ListRatings(ctx context.Context, bookID int64) ([]model.RatingView, error)
	CountRatings(ctx context.Context, bookID int64) (likes, dislikes int, err error)

	CreateReview(ctx context.Context, r model.BookReview) (model.BookReview, error)
	GetReview(ctx context.Context, id int64) (model.BookReview, error)
	DeleteReview(ctx context.Context, id int64) error
	ListReviews(ctx context.Context, bookID int64) ([]model.ReviewView, error)

	CreateMessage(ctx context.Context, msg model.Message) (model.Message, error)
	ListConversation(ctx context.Context, a, b int64) ([]model.Message, error)
	MarkConversationRead(ctx context.Context, receiverID, senderID int64) (int64, error)
	CountUnreadMessages(ctx context.Context, userID int64) (int, error)
	ListConversations(ctx context.Context, userID int64) ([]model.ConversationSummary, error)

	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	ListNotifications(ctx context.Context, userID int64) ([]model.NotificationView, error)
	GetNotification(ctx context.Context, id, userID int64) (model.NotificationView, error)
	MarkNotificationRead(ctx context.Context, id, userID int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error)
	CountUnreadNotifications(ctx context.Context, userID int64) (int, error)
	HasReminderSince(ctx context.Context, bookRequestID int64, since time.Time) (bool, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		pool: db,
		db:   db,
		log:  log.Named("repo"),
	}, nil
}

const (
	usersTableName          = `users`
	profilesTableName       = `profiles`
	passwordResetsTableName = `password_resets`
	booksTableName          = `books`
	friendshipsTableName    = `friendships`
	bookRequestsTableName   = `book_requests`
	ratingsTableName        = `book_ratings`
	reviewsTableName        = `book_reviews`
	messagesTableName       = `messages`
	notificationsTableName  = `notifications`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) InTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.pool == nil {
		// already bound to a transaction
		return fn(r)
	}
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(&repository{db: tx, log: r.log})
	})
}

func selectOne[T any](ctx context.Context, r *repository, query string, args ...any) (T, error) {
	var zero T
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("query", zap.String("q", query), zap.Error(err))
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return zero, errors.Wrap(errs.ErrConflict, constraintName(err))
		}
		r.log.Error("collect one", zap.String("q", query), zap.Error(err))
		return zero, err
	}
	return item, nil
}

func selectAll[T any](ctx context.Context, r *repository, query string, args ...any) ([]T, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("query", zap.String("q", query), zap.Error(err))
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		r.log.Error("collect rows", zap.String("q", query), zap.Error(err))
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, "select exists("+query+")", args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *repository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// execOne runs a statement that must touch exactly one row.
func (r *repository) execOne(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func columns(alias string, cols ...string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
