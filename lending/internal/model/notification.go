package model

import (
	"time"
)

type NotificationType string

const (
	NotifyFriendRequest NotificationType = "friend_request"
	NotifyBookRequest   NotificationType = "book_request"
	NotifyRequestUpdate NotificationType = "request_update"
	NotifyDueReminder   NotificationType = "due_reminder"
	NotifyBookRating    NotificationType = "book_rating"
	NotifyBookReview    NotificationType = "book_review"
	NotifyNewMessage    NotificationType = "new_message"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyFriendRequest, NotifyBookRequest, NotifyRequestUpdate, NotifyDueReminder,
		NotifyBookRating, NotifyBookReview, NotifyNewMessage:
		return true
	}
	return false
}

// Notification back-references are nulled by the store when the
// referenced row goes away.
type Notification struct {
	ID                   int64            `json:"id" db:"id"`
	UserID               int64            `json:"userId" db:"user_id"`
	Type                 NotificationType `json:"type" db:"type"`
	Message              string           `json:"message" db:"message"`
	Read                 bool             `json:"read" db:"read"`
	CreatedAt            time.Time        `json:"createdAt" db:"created_at"`
	RelatedUserID        *int64           `json:"relatedUserId,omitempty" db:"related_user_id"`
	RelatedBookID        *int64           `json:"relatedBookId,omitempty" db:"related_book_id"`
	RelatedBookRequestID *int64           `json:"relatedBookRequestId,omitempty" db:"related_book_request_id"`
	RelatedFriendshipID  *int64           `json:"relatedFriendshipId,omitempty" db:"related_friendship_id"`
	RelatedBookReviewID  *int64           `json:"relatedBookReviewId,omitempty" db:"related_book_review_id"`
	RelatedMessageID     *int64           `json:"relatedMessageId,omitempty" db:"related_message_id"`
}

// NotificationView adds what destination resolution needs from joined rows.
type NotificationView struct {
	Notification
	RelatedUsername  *string `json:"relatedUsername,omitempty" db:"related_username"`
	RelatedBookOwner *string `json:"relatedBookOwner,omitempty" db:"related_book_owner"`
	ReviewBookID     *int64  `json:"reviewBookId,omitempty" db:"review_book_id"`
}

type DestinationName string

const (
	DestDashboard      DestinationName = "dashboard"
	DestFriendRequests DestinationName = "friend_requests"
	DestProfile        DestinationName = "profile"
	DestBookRequests   DestinationName = "book_requests"
	DestLibrary        DestinationName = "library"
	DestBookDetail     DestinationName = "book_detail"
	DestChat           DestinationName = "chat"
	DestChatList       DestinationName = "chat_list"
)

type Destination struct {
	Name     DestinationName `json:"name"`
	Username string          `json:"username,omitempty"`
	BookID   int64           `json:"bookId,omitempty"`
}

var dashboard = Destination{Name: DestDashboard}

// ResolveDestination picks the view a notification leads to. Missing
// back-references fall back to a landing view.
func ResolveDestination(n NotificationView) Destination {
	switch n.Type {
	case NotifyFriendRequest:
		if n.RelatedFriendshipID != nil {
			return Destination{Name: DestFriendRequests}
		}
		if n.RelatedUsername != nil {
			return Destination{Name: DestProfile, Username: *n.RelatedUsername}
		}
	case NotifyBookRequest:
		if n.RelatedBookRequestID != nil {
			return Destination{Name: DestBookRequests}
		}
		if n.RelatedBookOwner != nil {
			return Destination{Name: DestLibrary, Username: *n.RelatedBookOwner}
		}
	case NotifyRequestUpdate, NotifyDueReminder:
		if n.RelatedBookRequestID != nil {
			return Destination{Name: DestBookRequests}
		}
	case NotifyBookRating:
		if n.RelatedBookOwner != nil {
			return Destination{Name: DestLibrary, Username: *n.RelatedBookOwner}
		}
	case NotifyBookReview:
		if n.ReviewBookID != nil {
			return Destination{Name: DestBookDetail, BookID: *n.ReviewBookID}
		}
	case NotifyNewMessage:
		if n.RelatedMessageID != nil && n.RelatedUsername != nil {
			return Destination{Name: DestChat, Username: *n.RelatedUsername}
		}
		return Destination{Name: DestChatList}
	}
	return dashboard
}
