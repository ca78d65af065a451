package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"golang.org/x/sync/errgroup"
)

const msgChatFriendsOnly = "You can only chat with your friends."

func (s *Service) ChatList(ctx context.Context, me auth.Identity) (model.ChatList, error) {
	var out model.ChatList
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Friends, err = s.repo.ListFriends(gctx, me.UserID)
		return err
	})
	g.Go(func() (err error) {
		out.Conversations, err = s.repo.ListConversations(gctx, me.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ChatList{}, err
	}
	return out, nil
}

func (s *Service) chatPartner(ctx context.Context, me auth.Identity, username string) (model.User, error) {
	friend, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	ok, err := s.AreFriends(ctx, me.UserID, friend.ID)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, errs.Forbidden(msgChatFriendsOnly)
	}
	return friend, nil
}

// Conversation returns the messages with a friend, oldest first, and
// marks the ones addressed to me as read.
func (s *Service) Conversation(ctx context.Context, me auth.Identity, username string) (model.Conversation, error) {
	friend, err := s.chatPartner(ctx, me, username)
	if err != nil {
		return model.Conversation{}, err
	}
	msgs, err := s.repo.ListConversation(ctx, me.UserID, friend.ID)
	if err != nil {
		return model.Conversation{}, err
	}
	if _, err := s.repo.MarkConversationRead(ctx, me.UserID, friend.ID); err != nil {
		return model.Conversation{}, err
	}
	return model.Conversation{Friend: friend, Messages: msgs}, nil
}

func (s *Service) SendMessage(ctx context.Context, me auth.Identity, username, content string) (model.Message, error) {
	friend, err := s.chatPartner(ctx, me, username)
	if err != nil {
		return model.Message{}, err
	}
	var msg model.Message
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		var err error
		msg, err = repo.CreateMessage(ctx, model.Message{
			SenderID:   me.UserID,
			ReceiverID: friend.ID,
			Content:    content,
		})
		if err != nil {
			return err
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:           friend.ID,
			Type:             model.NotifyNewMessage,
			Message:          fmt.Sprintf("New message from %s", me.Username),
			RelatedUserID:    ref(me.UserID),
			RelatedMessageID: ref(msg.ID),
		})
	})
	if err != nil {
		return model.Message{}, err
	}
	s.publish(ctx, kafka.EventMessageSent, me, friend.ID, msg.ID)
	return msg, nil
}

func (s *Service) UnreadMessageCount(ctx context.Context, me auth.Identity) (int, error) {
	return s.repo.CountUnreadMessages(ctx, me.UserID)
}
