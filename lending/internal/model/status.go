package model

import (
	"github.com/Astemirdum/book-lending/lending/internal/errs"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipDeclined FriendshipStatus = "declined"
)

func (s FriendshipStatus) Valid() bool {
	switch s {
	case FriendshipPending, FriendshipAccepted, FriendshipDeclined:
		return true
	}
	return false
}

type FriendshipEvent uint8

const (
	FriendshipAccept FriendshipEvent = iota + 1
	FriendshipDecline
)

// Apply returns the status reached from s on ev. Accepted and declined
// are terminal.
func (s FriendshipStatus) Apply(ev FriendshipEvent) (FriendshipStatus, error) {
	switch s {
	case FriendshipPending:
		switch ev {
		case FriendshipAccept:
			return FriendshipAccepted, nil
		case FriendshipDecline:
			return FriendshipDeclined, nil
		}
	case FriendshipAccepted, FriendshipDeclined:
	}
	return s, errs.ErrInvalidTransition
}

type BookRequestStatus string

const (
	RequestPending  BookRequestStatus = "pending"
	RequestAccepted BookRequestStatus = "accepted"
	RequestDeclined BookRequestStatus = "declined"
	RequestReturned BookRequestStatus = "returned"
)

func (s BookRequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestDeclined, RequestReturned:
		return true
	}
	return false
}

type BookRequestEvent uint8

const (
	RequestAccept BookRequestEvent = iota + 1
	RequestDecline
	RequestReturn
)

func (ev BookRequestEvent) String() string {
	switch ev {
	case RequestAccept:
		return "accept"
	case RequestDecline:
		return "decline"
	case RequestReturn:
		return "return"
	}
	return "unknown"
}

// From is the only status ev may be applied to.
func (ev BookRequestEvent) From() BookRequestStatus {
	switch ev {
	case RequestAccept, RequestDecline:
		return RequestPending
	case RequestReturn:
		return RequestAccepted
	}
	return ""
}

// Apply returns the status reached from s on ev.
func (s BookRequestStatus) Apply(ev BookRequestEvent) (BookRequestStatus, error) {
	switch s {
	case RequestPending:
		switch ev {
		case RequestAccept:
			return RequestAccepted, nil
		case RequestDecline:
			return RequestDeclined, nil
		case RequestReturn:
		}
	case RequestAccepted:
		if ev == RequestReturn {
			return RequestReturned, nil
		}
	case RequestDeclined, RequestReturned:
	}
	return s, errs.ErrInvalidTransition
}

// Availability reports the Book.available value a transition into s
// implies. ok is false when the transition leaves the book untouched.
func (s BookRequestStatus) Availability() (available bool, ok bool) {
	switch s {
	case RequestAccepted:
		return false, true
	case RequestReturned:
		return true, true
	case RequestPending, RequestDeclined:
	}
	return false, false
}

type RatingValue string

const (
	RatingLike    RatingValue = "like"
	RatingDislike RatingValue = "dislike"
)

func (r RatingValue) Valid() bool {
	return r == RatingLike || r == RatingDislike
}

type BookCondition string

const (
	ConditionNew     BookCondition = "new"
	ConditionLikeNew BookCondition = "like_new"
	ConditionGood    BookCondition = "good"
	ConditionFair    BookCondition = "fair"
	ConditionPoor    BookCondition = "poor"
)

func (c BookCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type SearchScope string

const (
	ScopeAll   SearchScope = "all"
	ScopeUsers SearchScope = "users"
	ScopeBooks SearchScope = "books"
)

func (s SearchScope) Users() bool { return s == ScopeAll || s == ScopeUsers }

func (s SearchScope) Books() bool { return s == ScopeAll || s == ScopeBooks }
