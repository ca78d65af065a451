package service

import (
	"context"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"golang.org/x/sync/errgroup"
)

// Profile loads username's profile, creating an empty one on first access.
func (s *Service) Profile(ctx context.Context, me auth.Identity, username string) (model.ProfileView, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.ProfileView{}, err
	}
	out := model.ProfileView{User: user, IsOwner: user.ID == me.UserID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Profile, err = s.repo.EnsureProfile(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		out.IsFriend, err = s.AreFriends(gctx, me.UserID, user.ID)
		return err
	})
	g.Go(func() (err error) {
		out.PendingRequest, err = s.HasPending(gctx, me.UserID, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ProfileView{}, err
	}
	return out, nil
}

func (s *Service) UpdateProfile(ctx context.Context, me auth.Identity, req model.ProfileUpdate) error {
	if _, err := s.repo.EnsureProfile(ctx, me.UserID); err != nil {
		return err
	}
	return s.repo.UpdateProfile(ctx, model.Profile{
		UserID:           me.UserID,
		Bio:              req.Bio,
		ProfilePicture:   req.ProfilePicture,
		Birthplace:       req.Birthplace,
		CurrentResidence: req.CurrentResidence,
		Occupation:       req.Occupation,
	})
}
