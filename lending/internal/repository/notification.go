package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var notificationColumns = []string{
	"id", "user_id", "type", "message", "read", "created_at",
	"related_user_id", "related_book_id", "related_book_request_id",
	"related_friendship_id", "related_book_review_id", "related_message_id",
}

func notificationViews() sq.SelectBuilder {
	return qb.Select(append(columns("n", notificationColumns...),
		"ru.username as related_username",
		"bo.username as related_book_owner",
		"rv.book_id as review_book_id")...).
		From(notificationsTableName + " n").
		LeftJoin(usersTableName + " ru on ru.id = n.related_user_id").
		LeftJoin(booksTableName + " b on b.id = n.related_book_id").
		LeftJoin(usersTableName + " bo on bo.id = b.owner_id").
		LeftJoin(reviewsTableName + " rv on rv.id = n.related_book_review_id")
}

func (r *repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	q := `
	insert into notifications (
		user_id, type, message,
		related_user_id, related_book_id, related_book_request_id,
		related_friendship_id, related_book_review_id, related_message_id
	) values (
		@user_id, @type, @message,
		@related_user_id, @related_book_id, @related_book_request_id,
		@related_friendship_id, @related_book_review_id, @related_message_id
	) returning ` + strings.Join(notificationColumns, ", ")
	return selectOne[model.Notification](ctx, r, q, pgx.NamedArgs{
		"user_id":                 n.UserID,
		"type":                    n.Type,
		"message":                 n.Message,
		"related_user_id":         n.RelatedUserID,
		"related_book_id":         n.RelatedBookID,
		"related_book_request_id": n.RelatedBookRequestID,
		"related_friendship_id":   n.RelatedFriendshipID,
		"related_book_review_id":  n.RelatedBookReviewID,
		"related_message_id":      n.RelatedMessageID,
	})
}

func (r *repository) ListNotifications(ctx context.Context, userID int64) ([]model.NotificationView, error) {
	q, args, err := notificationViews().
		Where(sq.Eq{"n.user_id": userID}).
		OrderBy("n.created_at desc", "n.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.NotificationView](ctx, r, q, args...)
}

func (r *repository) GetNotification(ctx context.Context, id, userID int64) (model.NotificationView, error) {
	q, args, err := notificationViews().
		Where(sq.Eq{"n.id": id, "n.user_id": userID}).
		ToSql()
	if err != nil {
		return model.NotificationView{}, err
	}
	return selectOne[model.NotificationView](ctx, r, q, args...)
}

func (r *repository) MarkNotificationRead(ctx context.Context, id, userID int64) error {
	q, args, err := qb.Update(notificationsTableName).
		Set("read", true).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, q, args...)
}

func (r *repository) MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error) {
	q, args, err := qb.Update(notificationsTableName).
		Set("read", true).
		Where(sq.Eq{"user_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) CountUnreadNotifications(ctx context.Context, userID int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(notificationsTableName).
		Where(sq.Eq{"user_id": userID, "read": false}))
}

func (r *repository) HasReminderSince(ctx context.Context, bookRequestID int64, since time.Time) (bool, error) {
	q, args, err := qb.Select("1").
		From(notificationsTableName).
		Where(sq.Eq{"type": model.NotifyDueReminder, "related_book_request_id": bookRequestID}).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return false, err
	}
	return r.exists(ctx, q, args...)
}
