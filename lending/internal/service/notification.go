package service

import (
	"context"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"go.uber.org/zap"
)

func (s *Service) Notifications(ctx context.Context, me auth.Identity) (model.NotificationList, error) {
	views, err := s.repo.ListNotifications(ctx, me.UserID)
	if err != nil {
		return model.NotificationList{}, err
	}
	out := model.NotificationList{Items: make([]model.NotificationItem, 0, len(views))}
	for _, n := range views {
		if !n.Read {
			out.UnreadCount++
		}
		out.Items = append(out.Items, model.NotificationItem{
			NotificationView: n,
			Destination:      model.ResolveDestination(n),
		})
	}
	return out, nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, me auth.Identity) error {
	n, err := s.repo.MarkAllNotificationsRead(ctx, me.UserID)
	if err != nil {
		return err
	}
	s.log.Debug("notifications read", zap.Int64("user", me.UserID), zap.Int64("count", n))
	return nil
}

// OpenNotification marks one of my notifications read and resolves where
// it leads. Someone else's notification is not found.
func (s *Service) OpenNotification(ctx context.Context, me auth.Identity, id int64) (model.Destination, error) {
	n, err := s.repo.GetNotification(ctx, id, me.UserID)
	if err != nil {
		return model.Destination{}, err
	}
	if !n.Read {
		if err := s.repo.MarkNotificationRead(ctx, n.ID, me.UserID); err != nil {
			return model.Destination{}, err
		}
	}
	return model.ResolveDestination(n), nil
}

func (s *Service) UnreadNotificationCount(ctx context.Context, me auth.Identity) (int, error) {
	return s.repo.CountUnreadNotifications(ctx, me.UserID)
}
