package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var friendshipColumns = []string{"id", "sender_id", "receiver_id", "status", "created_at"}

func pair(a, b int64) sq.Or {
	return sq.Or{
		sq.Eq{"sender_id": a, "receiver_id": b},
		sq.Eq{"sender_id": b, "receiver_id": a},
	}
}

func (r *repository) CreateFriendship(ctx context.Context, senderID, receiverID int64) (model.Friendship, error) {
	q, args, err := qb.Insert(friendshipsTableName).
		Columns("sender_id", "receiver_id", "status").
		Values(senderID, receiverID, model.FriendshipPending).
		Suffix("returning " + strings.Join(friendshipColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Friendship{}, err
	}
	f, err := selectOne[model.Friendship](ctx, r, q, args...)
	if errors.Is(err, errs.ErrConflict) {
		return f, errs.Conflict("Friendship request already exists.")
	}
	return f, err
}

func (r *repository) FriendshipBetween(ctx context.Context, a, b int64) (model.Friendship, error) {
	q, args, err := qb.Select(friendshipColumns...).
		From(friendshipsTableName).
		Where(pair(a, b)).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Friendship{}, err
	}
	return selectOne[model.Friendship](ctx, r, q, args...)
}

func (r *repository) FriendshipExists(ctx context.Context, a, b int64, status model.FriendshipStatus) (bool, error) {
	q, args, err := qb.Select("1").
		From(friendshipsTableName).
		Where(pair(a, b)).
		Where(sq.Eq{"status": status}).
		ToSql()
	if err != nil {
		return false, err
	}
	return r.exists(ctx, q, args...)
}

// TransitionFriendship moves a request addressed to receiverID from one
// status to another. ErrNotFound means the row is gone, is addressed to
// someone else or already left from.
func (r *repository) TransitionFriendship(ctx context.Context, id, receiverID int64, from, to model.FriendshipStatus) (model.Friendship, error) {
	const q = `
	update friendships set status = @to
	where id = @id and receiver_id = @receiver_id and status = @from
	returning id, sender_id, receiver_id, status, created_at`
	return selectOne[model.Friendship](ctx, r, q, pgx.NamedArgs{
		"id":          id,
		"receiver_id": receiverID,
		"from":        from,
		"to":          to,
	})
}

func (r *repository) DeleteFriendship(ctx context.Context, a, b int64, status model.FriendshipStatus) (model.Friendship, error) {
	q, args, err := qb.Delete(friendshipsTableName).
		Where(pair(a, b)).
		Where(sq.Eq{"status": status}).
		Suffix("returning " + strings.Join(friendshipColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Friendship{}, err
	}
	return selectOne[model.Friendship](ctx, r, q, args...)
}

func (r *repository) ListFriends(ctx context.Context, userID int64) ([]model.User, error) {
	q, args, err := qb.Select(columns("u", userColumns...)...).
		From(usersTableName+" u").
		Where("u.id in ("+friendIDs+")", userID, userID, userID).
		OrderBy("u.username").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.User](ctx, r, q, args...)
}

func friendshipViews() sq.SelectBuilder {
	return qb.Select(append(columns("f", friendshipColumns...),
		"s.username as sender_username",
		"rc.username as receiver_username")...).
		From(friendshipsTableName + " f").
		Join(usersTableName + " s on s.id = f.sender_id").
		Join(usersTableName + " rc on rc.id = f.receiver_id")
}

func (r *repository) listPending(ctx context.Context, side string, userID int64) ([]model.FriendshipView, error) {
	q, args, err := friendshipViews().
		Where(sq.Eq{"f." + side: userID, "f.status": model.FriendshipPending}).
		OrderBy("f.created_at desc", "f.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.FriendshipView](ctx, r, q, args...)
}

func (r *repository) ListPendingReceived(ctx context.Context, userID int64) ([]model.FriendshipView, error) {
	return r.listPending(ctx, "receiver_id", userID)
}

func (r *repository) ListPendingSent(ctx context.Context, userID int64) ([]model.FriendshipView, error) {
	return r.listPending(ctx, "sender_id", userID)
}

func (r *repository) CountPendingReceived(ctx context.Context, userID int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(friendshipsTableName).
		Where(sq.Eq{"receiver_id": userID, "status": model.FriendshipPending}))
}

// FriendshipStatuses maps each of others that has a friendship row with
// userID to that row's status.
func (r *repository) FriendshipStatuses(ctx context.Context, userID int64, others []int64) (map[int64]model.FriendshipStatus, error) {
	out := make(map[int64]model.FriendshipStatus, len(others))
	if len(others) == 0 {
		return out, nil
	}
	q, args, err := qb.Select(friendshipColumns...).
		From(friendshipsTableName).
		Where(sq.Or{
			sq.Eq{"sender_id": userID, "receiver_id": others},
			sq.Eq{"receiver_id": userID, "sender_id": others},
		}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := selectAll[model.Friendship](ctx, r, q, args...)
	if err != nil {
		return nil, err
	}
	for _, f := range rows {
		out[f.Other(userID)] = f.Status
	}
	return out, nil
}
