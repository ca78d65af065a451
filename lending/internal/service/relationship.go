package service

import (
	"context"

	"github.com/Astemirdum/book-lending/lending/internal/model"
)

// AreFriends reports an accepted friendship in either direction.
func (s *Service) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	return s.repo.FriendshipExists(ctx, a, b, model.FriendshipAccepted)
}

// HasPending reports a pending friend request in either direction.
func (s *Service) HasPending(ctx context.Context, a, b int64) (bool, error) {
	return s.repo.FriendshipExists(ctx, a, b, model.FriendshipPending)
}
