package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	msgNotFriendsRequest = "You must be friends with the book owner to request books."
	msgReturnOwnerOnly   = "Only the book owner can mark a book as returned."
	msgPendingExists     = "You already have a pending request for this book."
	msgAlreadyLent       = "This book is already lent out."
)

// BookForRequest returns the book a request form is shown for. The
// caller must be a friend of the owner.
func (s *Service) BookForRequest(ctx context.Context, me auth.Identity, bookID int64) (model.BookWithOwner, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookWithOwner{}, err
	}
	ok, err := s.AreFriends(ctx, me.UserID, book.OwnerID)
	if err != nil {
		return book, err
	}
	if !ok {
		return book, errs.Forbidden(msgNotFriendsRequest)
	}
	return book, nil
}

// RequestBook asks the owner to lend bookID until returnDate
// (YYYY-MM-DD, strictly after today). The book is returned even on
// failure once it has been loaded so the caller can redirect to its owner.
func (s *Service) RequestBook(ctx context.Context, me auth.Identity, bookID int64, returnDate string) (model.BookWithOwner, error) {
	book, err := s.BookForRequest(ctx, me, bookID)
	if err != nil {
		return book, err
	}
	due, err := time.Parse(time.DateOnly, returnDate)
	if err != nil {
		return book, errs.NewValidation("return_date", "Invalid return date format.")
	}
	if !due.After(s.today()) {
		return book, errs.NewValidation("return_date", "Return date must be in the future.")
	}

	var br model.BookRequest
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		pending, err := repo.HasPendingBookRequest(ctx, book.ID, me.UserID)
		if err != nil {
			return err
		}
		if pending {
			return errs.Conflict(msgPendingExists)
		}
		br, err = repo.CreateBookRequest(ctx, model.BookRequest{
			BookID:     book.ID,
			BorrowerID: me.UserID,
			ReturnDate: due,
		})
		if err != nil {
			return err
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:               book.OwnerID,
			Type:                 model.NotifyBookRequest,
			Message:              fmt.Sprintf("%s has requested to borrow '%s'.", me.Username, book.Title),
			RelatedUserID:        ref(me.UserID),
			RelatedBookID:        ref(book.ID),
			RelatedBookRequestID: ref(br.ID),
		})
	})
	if err != nil {
		return book, err
	}
	s.transitioned("book_request", string(model.RequestPending))
	s.publish(ctx, kafka.EventBookRequested, me, book.OwnerID, br.ID)
	return book, nil
}

func (s *Service) AcceptBookRequest(ctx context.Context, me auth.Identity, id int64) error {
	return s.moveBookRequest(ctx, me, id, model.RequestAccept)
}

func (s *Service) DeclineBookRequest(ctx context.Context, me auth.Identity, id int64) error {
	return s.moveBookRequest(ctx, me, id, model.RequestDecline)
}

func (s *Service) ReturnBook(ctx context.Context, me auth.Identity, id int64) error {
	return s.moveBookRequest(ctx, me, id, model.RequestReturn)
}

// moveBookRequest applies ev as a compare-and-swap on the request status.
// The status change, the book availability it implies and the borrower
// notification commit together.
func (s *Service) moveBookRequest(ctx context.Context, me auth.Identity, id int64, ev model.BookRequestEvent) error {
	from := ev.From()
	to, err := from.Apply(ev)
	if err != nil {
		return err
	}
	current, err := s.repo.GetBookRequest(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != from {
		return errs.ErrNotFound
	}
	if current.OwnerID != me.UserID {
		if ev == model.RequestReturn {
			return errs.Forbidden(msgReturnOwnerOnly)
		}
		return errs.ErrNotFound
	}

	t := model.BookRequestTransition{ID: id, OwnerID: me.UserID, From: from, To: to}
	if to == model.RequestReturned {
		at := s.now().UTC()
		t.ReturnedAt = &at
	}
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		br, err := repo.TransitionBookRequest(ctx, t)
		if err != nil {
			return err
		}
		if available, ok := to.Availability(); ok {
			if err := setAvailability(ctx, repo, br.BookID, available); err != nil {
				return err
			}
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:               br.BorrowerID,
			Type:                 model.NotifyRequestUpdate,
			Message:              requestUpdateMessage(to, me.Username, current.BookTitle),
			RelatedUserID:        ref(me.UserID),
			RelatedBookID:        ref(br.BookID),
			RelatedBookRequestID: ref(br.ID),
		})
	})
	if err != nil {
		return err
	}
	s.log.Debug("book request moved",
		zap.Int64("id", id), zap.Stringer("event", ev), zap.String("status", string(to)))
	s.transitioned("book_request", string(to))
	s.publish(ctx, requestEvent(to), me, current.BorrowerID, id)
	return nil
}

func requestUpdateMessage(to model.BookRequestStatus, owner, title string) string {
	switch to {
	case model.RequestAccepted:
		return fmt.Sprintf(`Your request to borrow "%s" has been accepted.`, title)
	case model.RequestDeclined:
		return fmt.Sprintf(`Your request to borrow "%s" has been declined.`, title)
	case model.RequestReturned:
		return fmt.Sprintf(`%s has confirmed the return of "%s".`, owner, title)
	case model.RequestPending:
	}
	return ""
}

func requestEvent(to model.BookRequestStatus) kafka.EventType {
	switch to {
	case model.RequestAccepted:
		return kafka.EventBookLent
	case model.RequestDeclined:
		return kafka.EventBookDeclined
	case model.RequestReturned:
		return kafka.EventBookReturned
	case model.RequestPending:
	}
	return kafka.EventBookRequested
}

func (s *Service) BookRequests(ctx context.Context, me auth.Identity) (model.BookRequests, error) {
	var (
		out model.BookRequests
		err error
	)
	if out.Received, err = s.repo.ListBookRequests(ctx, model.BookRequestFilter{
		OwnerID: me.UserID, Status: model.RequestPending,
	}); err != nil {
		return model.BookRequests{}, err
	}
	if out.SentPending, err = s.repo.ListBookRequests(ctx, model.BookRequestFilter{
		BorrowerID: me.UserID, Status: model.RequestPending,
	}); err != nil {
		return model.BookRequests{}, err
	}
	if out.SentReturned, err = s.repo.ListBookRequests(ctx, model.BookRequestFilter{
		BorrowerID: me.UserID, Status: model.RequestReturned,
	}); err != nil {
		return model.BookRequests{}, err
	}
	if out.ActiveBorrows, err = s.repo.ListBookRequests(ctx, model.BookRequestFilter{
		ParticipantID: me.UserID, Status: model.RequestAccepted,
	}); err != nil {
		return model.BookRequests{}, err
	}
	return out, nil
}

// setAvailability lends a book only while it is still available, so two
// open loans of one book cannot exist.
func setAvailability(ctx context.Context, repo repository.Repository, bookID int64, available bool) error {
	if available {
		return repo.SetBookAvailable(ctx, bookID, true)
	}
	err := repo.MarkBookLent(ctx, bookID)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Conflict(msgAlreadyLent)
	}
	return err
}
