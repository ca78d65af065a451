package service_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestService_RateBook(t *testing.T) {
	t.Parallel()

	t.Run("dislike replaces like", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.repo.EXPECT().GetBook(gomock.Any(), dune.ID).Return(dune, nil)
		f.repo.EXPECT().FriendshipExists(gomock.Any(), alice.UserID, bob.UserID, model.FriendshipAccepted).Return(true, nil)
		f.inTx()
		f.repo.EXPECT().UpsertRating(gomock.Any(), alice.UserID, dune.ID, model.RatingDislike).
			Return(model.BookRating{ID: 3, UserID: alice.UserID, BookID: dune.ID, Rating: model.RatingDislike}, nil)
		f.repo.EXPECT().CreateNotification(gomock.Any(), model.Notification{
			UserID:        bob.UserID,
			Type:          model.NotifyBookRating,
			Message:       "alice disliked your book 'Dune'",
			RelatedUserID: ref(alice.UserID),
			RelatedBookID: ref(dune.ID),
		}).Return(model.Notification{ID: 1}, nil)

		require.NoError(t, f.svc.RateBook(context.Background(), alice, dune.ID, model.RatingDislike))
		require.Equal(t, []kafka.EventType{kafka.EventBookRated}, f.pub.types())
	})

	t.Run("stranger", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.repo.EXPECT().GetBook(gomock.Any(), dune.ID).Return(dune, nil)
		f.repo.EXPECT().FriendshipExists(gomock.Any(), alice.UserID, bob.UserID, model.FriendshipAccepted).Return(false, nil)

		err := f.svc.RateBook(context.Background(), alice, dune.ID, model.RatingLike)
		require.ErrorIs(t, err, errs.ErrForbidden)
		require.EqualError(t, err, "You must be friends to rate books")
	})

	t.Run("unknown value", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		var valErr *errs.ValidationError
		require.ErrorAs(t, f.svc.RateBook(context.Background(), alice, dune.ID, "meh"), &valErr)
	})
}

func TestService_BookRatings(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	like := model.RatingView{BookRating: model.BookRating{ID: 1, Rating: model.RatingLike}, Username: "alice"}
	f.repo.EXPECT().GetBook(gomock.Any(), dune.ID).Return(dune, nil)
	f.repo.EXPECT().ListRatings(gomock.Any(), dune.ID).Return([]model.RatingView{like}, nil)

	out, err := f.svc.BookRatings(context.Background(), dune.ID)
	require.NoError(t, err)
	require.Equal(t, []model.RatingView{like}, out.Likes)
	require.NotNil(t, out.Dislikes)
	require.Empty(t, out.Dislikes)
}

func TestService_Reviews(t *testing.T) {
	t.Parallel()

	t.Run("submit notifies owner", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.repo.EXPECT().GetBook(gomock.Any(), dune.ID).Return(dune, nil)
		f.repo.EXPECT().FriendshipExists(gomock.Any(), alice.UserID, bob.UserID, model.FriendshipAccepted).Return(true, nil)
		f.inTx()
		f.repo.EXPECT().CreateReview(gomock.Any(), model.BookReview{UserID: alice.UserID, BookID: dune.ID, ReviewText: "Spice!"}).
			Return(model.BookReview{ID: 8, UserID: alice.UserID, BookID: dune.ID, ReviewText: "Spice!"}, nil)
		f.repo.EXPECT().CreateNotification(gomock.Any(), model.Notification{
			UserID:              bob.UserID,
			Type:                model.NotifyBookReview,
			Message:             "alice reviewed your book 'Dune'.",
			RelatedBookReviewID: ref(8),
		}).Return(model.Notification{ID: 1}, nil)

		review, err := f.svc.SubmitReview(context.Background(), alice, dune.ID, "Spice!")
		require.NoError(t, err)
		require.Equal(t, int64(8), review.ID)
	})

	tests := []struct {
		name    string
		me      int64
		wantErr error
	}{
		{name: "reviewer deletes", me: alice.UserID},
		{name: "owner deletes", me: bob.UserID},
		{name: "third user", me: 3, wantErr: errs.ErrForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.repo.EXPECT().GetReview(gomock.Any(), int64(8)).
				Return(model.BookReview{ID: 8, UserID: alice.UserID, BookID: dune.ID}, nil)
			if tt.me != alice.UserID {
				f.repo.EXPECT().GetBook(gomock.Any(), dune.ID).Return(dune, nil)
			}
			if tt.wantErr == nil {
				f.repo.EXPECT().DeleteReview(gomock.Any(), int64(8)).Return(nil)
			}

			bookID, err := f.svc.DeleteReview(context.Background(), identity(tt.me), 8)
			require.Equal(t, dune.ID, bookID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
