package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/pkg/errors"
)

const msgFriendshipExists = "Friendship request already exists."

// SendFriendRequest creates a pending request from me to username. Any
// existing row for the pair, whatever its direction or status, is a conflict.
func (s *Service) SendFriendRequest(ctx context.Context, me auth.Identity, username string) error {
	receiver, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if receiver.ID == me.UserID {
		return errs.Conflict("You cannot send a friend request to yourself.")
	}

	var f model.Friendship
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		_, err := repo.FriendshipBetween(ctx, me.UserID, receiver.ID)
		switch {
		case err == nil:
			return errs.Conflict(msgFriendshipExists)
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}
		if f, err = repo.CreateFriendship(ctx, me.UserID, receiver.ID); err != nil {
			return err
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:              receiver.ID,
			Type:                model.NotifyFriendRequest,
			Message:             fmt.Sprintf("%s has sent you a friend request.", me.Username),
			RelatedUserID:       ref(me.UserID),
			RelatedFriendshipID: ref(f.ID),
		})
	})
	if err != nil {
		return err
	}
	s.transitioned("friendship", string(model.FriendshipPending))
	s.publish(ctx, kafka.EventFriendRequested, me, receiver.ID, f.ID)
	return nil
}

func (s *Service) AcceptFriendRequest(ctx context.Context, me auth.Identity, id int64) error {
	return s.answerFriendRequest(ctx, me, id, model.FriendshipAccept)
}

func (s *Service) DeclineFriendRequest(ctx context.Context, me auth.Identity, id int64) error {
	return s.answerFriendRequest(ctx, me, id, model.FriendshipDecline)
}

// answerFriendRequest lets only the receiver move a pending request on.
// Anything else, including a second answer, is reported as not found.
func (s *Service) answerFriendRequest(ctx context.Context, me auth.Identity, id int64, ev model.FriendshipEvent) error {
	to, err := model.FriendshipPending.Apply(ev)
	if err != nil {
		return err
	}
	verb, event := "accepted", kafka.EventFriendAccepted
	if to == model.FriendshipDeclined {
		verb, event = "declined", kafka.EventFriendDeclined
	}

	var f model.Friendship
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		var err error
		f, err = repo.TransitionFriendship(ctx, id, me.UserID, model.FriendshipPending, to)
		if err != nil {
			return err
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:              f.SenderID,
			Type:                model.NotifyRequestUpdate,
			Message:             fmt.Sprintf("%s %s your friend request.", me.Username, verb),
			RelatedUserID:       ref(me.UserID),
			RelatedFriendshipID: ref(f.ID),
		})
	})
	if err != nil {
		return err
	}
	s.transitioned("friendship", string(to))
	s.publish(ctx, event, me, f.SenderID, f.ID)
	return nil
}

// RemoveFriend hard-deletes the accepted friendship in either direction
// and returns the former friend.
func (s *Service) RemoveFriend(ctx context.Context, me auth.Identity, username string) (model.User, error) {
	friend, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	var f model.Friendship
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		var err error
		if f, err = repo.DeleteFriendship(ctx, me.UserID, friend.ID, model.FriendshipAccepted); err != nil {
			return err
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:        friend.ID,
			Type:          model.NotifyFriendRequest,
			Message:       fmt.Sprintf("%s has removed you from their friends list.", me.Username),
			RelatedUserID: ref(me.UserID),
		})
	})
	if err != nil {
		return model.User{}, err
	}
	s.publish(ctx, kafka.EventFriendRemoved, me, friend.ID, f.ID)
	return friend, nil
}

func (s *Service) Friends(ctx context.Context, me auth.Identity) ([]model.User, error) {
	return s.repo.ListFriends(ctx, me.UserID)
}

func (s *Service) FriendRequests(ctx context.Context, me auth.Identity) (model.FriendRequests, error) {
	received, err := s.repo.ListPendingReceived(ctx, me.UserID)
	if err != nil {
		return model.FriendRequests{}, err
	}
	sent, err := s.repo.ListPendingSent(ctx, me.UserID)
	if err != nil {
		return model.FriendRequests{}, err
	}
	return model.FriendRequests{Received: received, Sent: sent}, nil
}
