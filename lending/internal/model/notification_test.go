package model_test

import (
	"testing"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/stretchr/testify/require"
)

func TestResolveDestination(t *testing.T) {
	t.Parallel()
	id := int64(4)
	bob := "bob"
	view := func(typ model.NotificationType, mod func(*model.NotificationView)) model.NotificationView {
		n := model.NotificationView{Notification: model.Notification{Type: typ}}
		if mod != nil {
			mod(&n)
		}
		return n
	}
	tests := []struct {
		name string
		n    model.NotificationView
		want model.Destination
	}{
		{
			name: "friend request pending",
			n:    view(model.NotifyFriendRequest, func(n *model.NotificationView) { n.RelatedFriendshipID = &id }),
			want: model.Destination{Name: model.DestFriendRequests},
		},
		{
			name: "friend request answered",
			n:    view(model.NotifyFriendRequest, func(n *model.NotificationView) { n.RelatedUsername = &bob }),
			want: model.Destination{Name: model.DestProfile, Username: "bob"},
		},
		{
			name: "book request gone falls back to library",
			n:    view(model.NotifyBookRequest, func(n *model.NotificationView) { n.RelatedBookOwner = &bob }),
			want: model.Destination{Name: model.DestLibrary, Username: "bob"},
		},
		{
			name: "request update",
			n:    view(model.NotifyRequestUpdate, func(n *model.NotificationView) { n.RelatedBookRequestID = &id }),
			want: model.Destination{Name: model.DestBookRequests},
		},
		{
			name: "rating",
			n:    view(model.NotifyBookRating, func(n *model.NotificationView) { n.RelatedBookOwner = &bob }),
			want: model.Destination{Name: model.DestLibrary, Username: "bob"},
		},
		{
			name: "review",
			n:    view(model.NotifyBookReview, func(n *model.NotificationView) { n.ReviewBookID = &id }),
			want: model.Destination{Name: model.DestBookDetail, BookID: 4},
		},
		{
			name: "message",
			n: view(model.NotifyNewMessage, func(n *model.NotificationView) {
				n.RelatedMessageID = &id
				n.RelatedUsername = &bob
			}),
			want: model.Destination{Name: model.DestChat, Username: "bob"},
		},
		{
			name: "message deleted",
			n:    view(model.NotifyNewMessage, nil),
			want: model.Destination{Name: model.DestChatList},
		},
		{
			name: "due reminder without request",
			n:    view(model.NotifyDueReminder, nil),
			want: model.Destination{Name: model.DestDashboard},
		},
		{
			name: "review deleted",
			n:    view(model.NotifyBookReview, nil),
			want: model.Destination{Name: model.DestDashboard},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.ResolveDestination(tt.n))
		})
	}
}
