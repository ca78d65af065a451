package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"go.uber.org/zap"
)

// SendDueReminders notifies borrowers of active loans due by tomorrow.
// A request gets at most one reminder per calendar day, so running it
// repeatedly is safe.
func (s *Service) SendDueReminders(ctx context.Context) (int, error) {
	today := s.today()
	due, err := s.repo.ListDueBookRequests(ctx, today.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, br := range due {
		created := false
		err := s.repo.InTx(ctx, func(repo repository.Repository) error {
			done, err := repo.HasReminderSince(ctx, br.ID, today)
			if err != nil || done {
				return err
			}
			created = true
			return s.notify(ctx, repo, model.Notification{
				UserID:               br.BorrowerID,
				Type:                 model.NotifyDueReminder,
				Message:              dueMessage(br, today),
				RelatedUserID:        ref(br.OwnerID),
				RelatedBookID:        ref(br.BookID),
				RelatedBookRequestID: ref(br.ID),
			})
		})
		if err != nil {
			return sent, err
		}
		if created {
			sent++
		}
	}
	s.log.Info("due reminders", zap.Int("due", len(due)), zap.Int("sent", sent))
	return sent, nil
}

func dueMessage(br model.BookRequestView, today time.Time) string {
	date := br.ReturnDate.Format(time.DateOnly)
	if br.ReturnDate.Before(today) {
		return fmt.Sprintf(`"%s" was due back to %s on %s.`, br.BookTitle, br.OwnerUsername, date)
	}
	return fmt.Sprintf(`"%s" is due back to %s on %s.`, br.BookTitle, br.OwnerUsername, date)
}
