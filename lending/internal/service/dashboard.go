package service

import (
	"context"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"golang.org/x/sync/errgroup"
)

const dashboardBooks = 12

func (s *Service) Dashboard(ctx context.Context, me auth.Identity) (model.Dashboard, error) {
	var out model.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.FriendBooks, err = s.repo.ListFriendBooks(gctx, me.UserID, dashboardBooks)
		return err
	})
	g.Go(func() (err error) {
		out.FriendRequests, err = s.repo.CountPendingReceived(gctx, me.UserID)
		return err
	})
	g.Go(func() (err error) {
		out.BookRequests, err = s.repo.CountPendingBookRequests(gctx, me.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return out, nil
}
