package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
)

const (
	msgNotFriendsRate   = "You must be friends to rate books"
	msgNotFriendsReview = "You must be friends with the book owner to submit a review."
	msgReviewDenied     = "You do not have permission to delete this review."
)

// RateBook records like or dislike. A repeated rating replaces the
// previous value, so the last write wins.
func (s *Service) RateBook(ctx context.Context, me auth.Identity, bookID int64, value model.RatingValue) error {
	if !value.Valid() {
		return errs.NewValidation("rating", "Select a valid choice.")
	}
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return err
	}
	ok, err := s.AreFriends(ctx, me.UserID, book.OwnerID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Forbidden(msgNotFriendsRate)
	}

	verb := "liked"
	if value == model.RatingDislike {
		verb = "disliked"
	}
	var rating model.BookRating
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		var err error
		if rating, err = repo.UpsertRating(ctx, me.UserID, book.ID, value); err != nil {
			return err
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:        book.OwnerID,
			Type:          model.NotifyBookRating,
			Message:       fmt.Sprintf("%s %s your book '%s'", me.Username, verb, book.Title),
			RelatedUserID: ref(me.UserID),
			RelatedBookID: ref(book.ID),
		})
	})
	if err != nil {
		return err
	}
	s.publish(ctx, kafka.EventBookRated, me, book.OwnerID, rating.ID)
	return nil
}

func (s *Service) BookRatings(ctx context.Context, bookID int64) (model.BookRatings, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookRatings{}, err
	}
	ratings, err := s.repo.ListRatings(ctx, bookID)
	if err != nil {
		return model.BookRatings{}, err
	}
	out := model.BookRatings{
		Book:     book,
		Likes:    []model.RatingView{},
		Dislikes: []model.RatingView{},
	}
	for _, r := range ratings {
		if r.Rating == model.RatingLike {
			out.Likes = append(out.Likes, r)
		} else {
			out.Dislikes = append(out.Dislikes, r)
		}
	}
	return out, nil
}

func (s *Service) SubmitReview(ctx context.Context, me auth.Identity, bookID int64, text string) (model.BookReview, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookReview{}, err
	}
	ok, err := s.AreFriends(ctx, me.UserID, book.OwnerID)
	if err != nil {
		return model.BookReview{}, err
	}
	if !ok {
		return model.BookReview{}, errs.Forbidden(msgNotFriendsReview)
	}

	var review model.BookReview
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		var err error
		review, err = repo.CreateReview(ctx, model.BookReview{
			UserID:     me.UserID,
			BookID:     book.ID,
			ReviewText: text,
		})
		if err != nil {
			return err
		}
		return s.notify(ctx, repo, model.Notification{
			UserID:              book.OwnerID,
			Type:                model.NotifyBookReview,
			Message:             fmt.Sprintf("%s reviewed your book '%s'.", me.Username, book.Title),
			RelatedBookReviewID: ref(review.ID),
		})
	})
	if err != nil {
		return model.BookReview{}, err
	}
	s.publish(ctx, kafka.EventBookReviewed, me, book.OwnerID, review.ID)
	return review, nil
}

// DeleteReview lets the reviewer or the book owner remove a review. The
// book id is returned whenever the review was found.
func (s *Service) DeleteReview(ctx context.Context, me auth.Identity, reviewID int64) (int64, error) {
	review, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return 0, err
	}
	if review.UserID != me.UserID {
		book, err := s.repo.GetBook(ctx, review.BookID)
		if err != nil {
			return review.BookID, err
		}
		if book.OwnerID != me.UserID {
			return review.BookID, errs.Forbidden(msgReviewDenied)
		}
	}
	return review.BookID, s.repo.DeleteReview(ctx, review.ID)
}
