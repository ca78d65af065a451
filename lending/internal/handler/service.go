package handler

import (
	"context"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/service"
	"github.com/Astemirdum/book-lending/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Service interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (model.Session, error)
	Login(ctx context.Context, req model.LoginRequest) (model.Session, error)
	Authenticate(token string) (auth.Identity, error)
	ChangePassword(ctx context.Context, me auth.Identity, req model.PasswordChangeRequest) error
	RequestPasswordReset(ctx context.Context, req model.PasswordResetRequest) error
	VerifyPasswordReset(ctx context.Context, req model.PasswordResetVerifyRequest) error

	Profile(ctx context.Context, me auth.Identity, username string) (model.ProfileView, error)
	UpdateProfile(ctx context.Context, me auth.Identity, req model.ProfileUpdate) error
	Dashboard(ctx context.Context, me auth.Identity) (model.Dashboard, error)
	Search(ctx context.Context, me auth.Identity, query string, scope model.SearchScope) (model.SearchResult, error)

	Library(ctx context.Context, me auth.Identity, username string) (model.LibraryView, error)
	AddBook(ctx context.Context, me auth.Identity, form model.BookForm) (model.Book, error)
	OwnBook(ctx context.Context, me auth.Identity, id int64) (model.Book, error)
	EditBook(ctx context.Context, me auth.Identity, id int64, form model.BookForm) (model.Book, error)
	DeleteBook(ctx context.Context, me auth.Identity, id int64) error
	BookDetail(ctx context.Context, me auth.Identity, id int64) (model.BookDetail, error)

	SendFriendRequest(ctx context.Context, me auth.Identity, username string) error
	AcceptFriendRequest(ctx context.Context, me auth.Identity, id int64) error
	DeclineFriendRequest(ctx context.Context, me auth.Identity, id int64) error
	RemoveFriend(ctx context.Context, me auth.Identity, username string) (model.User, error)
	Friends(ctx context.Context, me auth.Identity) ([]model.User, error)
	FriendRequests(ctx context.Context, me auth.Identity) (model.FriendRequests, error)

	BookForRequest(ctx context.Context, me auth.Identity, bookID int64) (model.BookWithOwner, error)
	RequestBook(ctx context.Context, me auth.Identity, bookID int64, returnDate string) (model.BookWithOwner, error)
	AcceptBookRequest(ctx context.Context, me auth.Identity, id int64) error
	DeclineBookRequest(ctx context.Context, me auth.Identity, id int64) error
	ReturnBook(ctx context.Context, me auth.Identity, id int64) error
	BookRequests(ctx context.Context, me auth.Identity) (model.BookRequests, error)

	RateBook(ctx context.Context, me auth.Identity, bookID int64, value model.RatingValue) error
	BookRatings(ctx context.Context, bookID int64) (model.BookRatings, error)
	SubmitReview(ctx context.Context, me auth.Identity, bookID int64, text string) (model.BookReview, error)
	DeleteReview(ctx context.Context, me auth.Identity, reviewID int64) (int64, error)

	Notifications(ctx context.Context, me auth.Identity) (model.NotificationList, error)
	MarkAllNotificationsRead(ctx context.Context, me auth.Identity) error
	OpenNotification(ctx context.Context, me auth.Identity, id int64) (model.Destination, error)
	UnreadNotificationCount(ctx context.Context, me auth.Identity) (int, error)

	ChatList(ctx context.Context, me auth.Identity) (model.ChatList, error)
	Conversation(ctx context.Context, me auth.Identity, username string) (model.Conversation, error)
	SendMessage(ctx context.Context, me auth.Identity, username, content string) (model.Message, error)
	UnreadMessageCount(ctx context.Context, me auth.Identity) (int, error)
}

var _ Service = (*service.Service)(nil)
