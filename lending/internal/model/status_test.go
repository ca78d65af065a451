package model_test

import (
	"testing"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/stretchr/testify/require"
)

func TestFriendshipStatus_Apply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from    model.FriendshipStatus
		ev      model.FriendshipEvent
		want    model.FriendshipStatus
		wantErr bool
	}{
		{from: model.FriendshipPending, ev: model.FriendshipAccept, want: model.FriendshipAccepted},
		{from: model.FriendshipPending, ev: model.FriendshipDecline, want: model.FriendshipDeclined},
		{from: model.FriendshipAccepted, ev: model.FriendshipAccept, wantErr: true},
		{from: model.FriendshipAccepted, ev: model.FriendshipDecline, wantErr: true},
		{from: model.FriendshipDeclined, ev: model.FriendshipAccept, wantErr: true},
	}
	for _, tt := range tests {
		got, err := tt.from.Apply(tt.ev)
		if tt.wantErr {
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s", tt.from)
			require.Equal(t, tt.from, got)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestBookRequestStatus_Apply(t *testing.T) {
	t.Parallel()
	events := []model.BookRequestEvent{model.RequestAccept, model.RequestDecline, model.RequestReturn}
	allowed := map[model.BookRequestStatus]map[model.BookRequestEvent]model.BookRequestStatus{
		model.RequestPending: {
			model.RequestAccept:  model.RequestAccepted,
			model.RequestDecline: model.RequestDeclined,
		},
		model.RequestAccepted: {
			model.RequestReturn: model.RequestReturned,
		},
		model.RequestDeclined: {},
		model.RequestReturned: {},
	}
	for from, next := range allowed {
		for _, ev := range events {
			got, err := from.Apply(ev)
			want, ok := next[ev]
			if !ok {
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s on %s", ev, from)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, want, got)
			require.Equal(t, from, ev.From())
		}
	}
}

func TestBookRequestStatus_Availability(t *testing.T) {
	t.Parallel()
	available, ok := model.RequestAccepted.Availability()
	require.True(t, ok)
	require.False(t, available)

	available, ok = model.RequestReturned.Availability()
	require.True(t, ok)
	require.True(t, available)

	_, ok = model.RequestDeclined.Availability()
	require.False(t, ok)
}

func TestValues(t *testing.T) {
	t.Parallel()
	require.True(t, model.RatingLike.Valid())
	require.False(t, model.RatingValue("meh").Valid())
	require.True(t, model.ConditionLikeNew.Valid())
	require.False(t, model.BookCondition("mint").Valid())
	require.True(t, model.ScopeAll.Users() && model.ScopeAll.Books())
	require.False(t, model.ScopeUsers.Books())
	require.False(t, model.ScopeBooks.Users())
}
