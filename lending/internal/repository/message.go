package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var messageColumns = []string{"id", "sender_id", "receiver_id", "content", "is_read", "created_at"}

func (r *repository) CreateMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	q, args, err := qb.Insert(messagesTableName).
		Columns("sender_id", "receiver_id", "content").
		Values(msg.SenderID, msg.ReceiverID, msg.Content).
		Suffix("returning " + strings.Join(messageColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Message{}, err
	}
	return selectOne[model.Message](ctx, r, q, args...)
}

// ListConversation returns both directions between a and b, oldest first.
func (r *repository) ListConversation(ctx context.Context, a, b int64) ([]model.Message, error) {
	q, args, err := qb.Select(messageColumns...).
		From(messagesTableName).
		Where(pair(a, b)).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.Message](ctx, r, q, args...)
}

func (r *repository) MarkConversationRead(ctx context.Context, receiverID, senderID int64) (int64, error) {
	q, args, err := qb.Update(messagesTableName).
		Set("is_read", true).
		Where(sq.Eq{"receiver_id": receiverID, "sender_id": senderID, "is_read": false}).
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

func (r *repository) CountUnreadMessages(ctx context.Context, userID int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(messagesTableName).
		Where(sq.Eq{"receiver_id": userID, "is_read": false}))
}

// ListConversations returns one row per chat partner, most recent first.
func (r *repository) ListConversations(ctx context.Context, userID int64) ([]model.ConversationSummary, error) {
	const q = `
	select * from (
		select distinct on (m.partner_id)
			m.partner_id,
			u.username as partner_username,
			m.content as last_message,
			m.created_at as last_message_at,
			(select count(*) from messages x
				where x.sender_id = m.partner_id and x.receiver_id = @user_id and not x.is_read)::int as unread_count
		from (
			select msg.*,
				case when msg.sender_id = @user_id then msg.receiver_id else msg.sender_id end as partner_id
			from messages msg
			where msg.sender_id = @user_id or msg.receiver_id = @user_id
		) m
		join users u on u.id = m.partner_id
		order by m.partner_id, m.created_at desc, m.id desc
	) c
	order by c.last_message_at desc`
	return selectAll[model.ConversationSummary](ctx, r, q, pgx.NamedArgs{"user_id": userID})
}
