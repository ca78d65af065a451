package model

import (
	"time"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Profile struct {
	UserID           int64  `json:"userId" db:"user_id"`
	Bio              string `json:"bio" db:"bio"`
	ProfilePicture   string `json:"profilePicture" db:"profile_picture"`
	Birthplace       string `json:"birthplace" db:"birthplace"`
	CurrentResidence string `json:"currentResidence" db:"current_residence"`
	Occupation       string `json:"occupation" db:"occupation"`
}

type PasswordReset struct {
	UserID    int64     `db:"user_id"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
}

type Book struct {
	ID          int64         `json:"id" db:"id"`
	OwnerID     int64         `json:"ownerId" db:"owner_id"`
	Title       string        `json:"title" db:"title"`
	Author      string        `json:"author" db:"author"`
	Genre       string        `json:"genre" db:"genre"`
	Condition   BookCondition `json:"condition" db:"condition"`
	CoverImage  string        `json:"coverImage" db:"cover_image"`
	Description string        `json:"description" db:"description"`
	Available   bool          `json:"available" db:"available"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
}

type BookWithOwner struct {
	Book
	OwnerUsername string `json:"ownerUsername" db:"owner_username"`
}

type Friendship struct {
	ID         int64            `json:"id" db:"id"`
	SenderID   int64            `json:"senderId" db:"sender_id"`
	ReceiverID int64            `json:"receiverId" db:"receiver_id"`
	Status     FriendshipStatus `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
}

// Other returns the participant that is not userID.
func (f Friendship) Other(userID int64) int64 {
	if f.SenderID == userID {
		return f.ReceiverID
	}
	return f.SenderID
}

type FriendshipView struct {
	Friendship
	SenderUsername   string `json:"senderUsername" db:"sender_username"`
	ReceiverUsername string `json:"receiverUsername" db:"receiver_username"`
}

type BookRequest struct {
	ID         int64             `json:"id" db:"id"`
	BookID     int64             `json:"bookId" db:"book_id"`
	BorrowerID int64             `json:"borrowerId" db:"borrower_id"`
	ReturnDate time.Time         `json:"returnDate" db:"return_date"`
	Status     BookRequestStatus `json:"status" db:"status"`
	CreatedAt  time.Time         `json:"createdAt" db:"created_at"`
	ReturnedAt *time.Time        `json:"returnedAt,omitempty" db:"returned_at"`
}

type BookRequestView struct {
	BookRequest
	BookTitle        string `json:"bookTitle" db:"book_title"`
	OwnerID          int64  `json:"ownerId" db:"owner_id"`
	OwnerUsername    string `json:"ownerUsername" db:"owner_username"`
	BorrowerUsername string `json:"borrowerUsername" db:"borrower_username"`
}

type BookRating struct {
	ID        int64       `json:"id" db:"id"`
	UserID    int64       `json:"userId" db:"user_id"`
	BookID    int64       `json:"bookId" db:"book_id"`
	Rating    RatingValue `json:"rating" db:"rating"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}

type RatingView struct {
	BookRating
	Username string `json:"username" db:"username"`
}

type BookReview struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	BookID     int64     `json:"bookId" db:"book_id"`
	ReviewText string    `json:"reviewText" db:"review_text"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type ReviewView struct {
	BookReview
	Username string `json:"username" db:"username"`
}

type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"isRead" db:"is_read"`
	CreatedAt  time.Time `json:"timestamp" db:"created_at"`
}

// ConversationSummary is one row of the chat list.
type ConversationSummary struct {
	PartnerID       int64     `json:"partnerId" db:"partner_id"`
	PartnerUsername string    `json:"partnerUsername" db:"partner_username"`
	LastMessage     string    `json:"lastMessage" db:"last_message"`
	LastMessageAt   time.Time `json:"lastMessageAt" db:"last_message_at"`
	UnreadCount     int       `json:"unreadCount" db:"unread_count"`
}

// BookRequestTransition is a compare-and-swap status change: it applies
// only while the request is still in From and the book belongs to OwnerID.
type BookRequestTransition struct {
	ID         int64
	OwnerID    int64
	From       BookRequestStatus
	To         BookRequestStatus
	ReturnedAt *time.Time
}

type BookRequestFilter struct {
	OwnerID    int64
	BorrowerID int64
	// ParticipantID matches requests where the user is owner or borrower.
	ParticipantID int64
	Status        BookRequestStatus
}

// Session is the signed-in state handed back by login and signup.
type Session struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}
