package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/handler"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/flash"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/book-lending/lending/internal/handler/mocks"
)

const sessionToken = "tok"

var alice = auth.Identity{UserID: 1, Username: "alice"}

type request struct {
	method  string
	target  string
	form    url.Values
	headers map[string]string
	anon    bool
}

type response struct {
	expectedCode     int
	expectedBody     string
	expectedLocation string
	expectedFlash    []flash.Message
}

type mockBehavior func(s *service_mocks.MockService)

type testCase struct {
	name         string
	mockBehavior mockBehavior
	request      request
	response     response
}

func run(t *testing.T, tests []testCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockService(c)
			svc.EXPECT().Authenticate(sessionToken).Return(alice, nil).AnyTimes()
			log := zap.NewExample().Named("test")
			e := handler.New(svc, log).NewRouter()

			var body *strings.Reader
			if tt.request.form != nil {
				body = strings.NewReader(tt.request.form.Encode())
			} else {
				body = strings.NewReader("")
			}
			r := httptest.NewRequest(tt.request.method, tt.request.target, body)
			if tt.request.form != nil {
				r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			}
			for k, v := range tt.request.headers {
				r.Header.Set(k, v)
			}
			if !tt.request.anon {
				r.AddCookie(&http.Cookie{Name: "session", Value: sessionToken})
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if tt.response.expectedLocation != "" {
				require.Equal(t, tt.response.expectedLocation, w.Header().Get(echo.HeaderLocation))
			}
			if tt.response.expectedFlash != nil {
				require.Equal(t, tt.response.expectedFlash, popFlash(w))
			}
		})
	}
}

func popFlash(w *httptest.ResponseRecorder) []flash.Message {
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "flash" {
			r.AddCookie(ck)
		}
	}
	return flash.Pop(echo.New().NewContext(r, httptest.NewRecorder()))
}

func TestHandler_Session(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:         "anonymous dashboard goes to login",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodGet, target: "/dashboard", anon: true},
			response: response{
				expectedCode:     http.StatusFound,
				expectedLocation: "/login?next=%2Fdashboard",
			},
		},
		{
			name:         "anonymous search keeps the query",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodGet, target: "/search?q=dune&type=books", anon: true},
			response: response{
				expectedCode:     http.StatusFound,
				expectedLocation: "/login?next=%2Fsearch%3Fq%3Ddune%26type%3Dbooks",
			},
		},
		{
			name:         "health is public",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodGet, target: "/manage/health", anon: true},
			response:     response{expectedCode: http.StatusOK, expectedBody: "OK"},
		},
		{
			name:         "landing redirects a signed in user",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodGet, target: "/"},
			response:     response{expectedCode: http.StatusFound, expectedLocation: "/dashboard"},
		},
	})
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "ok. follows next",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().
					Login(gomock.Any(), model.LoginRequest{Login: "alice", Password: "pw", Next: "/books/requests"}).
					Return(model.Session{UserID: 1, Username: "alice", Token: "t", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			request: request{
				method: http.MethodPost, target: "/login", anon: true,
				form: url.Values{"username": {"alice"}, "password": {"pw"}, "next": {"/books/requests"}},
			},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/books/requests"},
		},
		{
			name: "ok. foreign next ignored",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(model.Session{UserID: 1, Username: "alice", Token: "t", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			request: request{
				method: http.MethodPost, target: "/login", anon: true,
				form: url.Values{"username": {"alice"}, "password": {"pw"}, "next": {"//evil.example"}},
			},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/dashboard"},
		},
		{
			name: "err. invalid credentials",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().Login(gomock.Any(), gomock.Any()).Return(model.Session{}, errs.ErrInvalidCredentials)
			},
			request: request{
				method: http.MethodPost, target: "/login", anon: true,
				form: url.Values{"username": {"alice"}, "password": {"nope"}},
			},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/login",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "Invalid credentials."}},
			},
		},
		{
			name:         "err. password required",
			mockBehavior: func(s *service_mocks.MockService) {},
			request: request{
				method: http.MethodPost, target: "/login", anon: true,
				form: url.Values{"username": {"alice"}},
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please correct the errors below.","errors":{"password":"This field is required."}}`,
			},
		},
	})
}

func TestHandler_SignUp(t *testing.T) {
	t.Parallel()
	form := url.Values{
		"first_name": {"Alice"}, "last_name": {"Liddell"}, "username": {"alice"},
		"email": {"alice@example.com"}, "password": {"secret"}, "confirm_password": {"secret"},
	}
	mismatch := url.Values{}
	for k, v := range form {
		mismatch[k] = v
	}
	mismatch.Set("confirm_password", "other")

	run(t, []testCase{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().SignUp(gomock.Any(), gomock.Any()).
					Return(model.Session{UserID: 1, Username: "alice", Token: "t", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			request: request{method: http.MethodPost, target: "/signup", anon: true, form: form},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/profile/alice",
				expectedFlash:    []flash.Message{{Level: flash.Success, Text: "Account created successfully!"}},
			},
		},
		{
			name:         "err. passwords differ",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/signup", anon: true, form: mismatch},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please correct the errors below.","errors":{"confirm_password":"Passwords do not match."}}`,
			},
		},
		{
			name: "err. username taken",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().SignUp(gomock.Any(), gomock.Any()).
					Return(model.Session{}, errs.NewValidation("username", "A user with that username already exists."))
			},
			request: request{method: http.MethodPost, target: "/signup", anon: true, form: form},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please correct the errors below.","errors":{"username":"A user with that username already exists."}}`,
			},
		},
	})
}

func TestHandler_FriendAdd(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().SendFriendRequest(gomock.Any(), alice, "bob").Return(nil)
			},
			request: request{method: http.MethodPost, target: "/friends/add/bob"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/profile/bob",
				expectedFlash:    []flash.Message{{Level: flash.Success, Text: "Friend request sent successfully!"}},
			},
		},
		{
			name: "err. already exists",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().SendFriendRequest(gomock.Any(), alice, "bob").
					Return(errs.Conflict("Friendship request already exists."))
			},
			request: request{method: http.MethodPost, target: "/friends/add/bob"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/profile/bob",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "Friendship request already exists."}},
			},
		},
		{
			name: "err. unknown user",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().SendFriendRequest(gomock.Any(), alice, "ghost").Return(errs.ErrNotFound)
			},
			request:  request{method: http.MethodPost, target: "/friends/add/ghost"},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"not found"}`},
		},
		{
			name: "err. internal",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().SendFriendRequest(gomock.Any(), alice, "bob").Return(errors.New("db internal"))
			},
			request:  request{method: http.MethodPost, target: "/friends/add/bob"},
			response: response{expectedCode: http.StatusInternalServerError, expectedBody: `{"message":"db internal"}`},
		},
	})
}

func TestHandler_FriendAnswer(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "accept",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().AcceptFriendRequest(gomock.Any(), alice, int64(7)).Return(nil)
			},
			request:  request{method: http.MethodPost, target: "/friends/accept/7"},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/friends"},
		},
		{
			name: "accept twice",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().AcceptFriendRequest(gomock.Any(), alice, int64(7)).Return(errs.ErrNotFound)
			},
			request:  request{method: http.MethodPost, target: "/friends/accept/7"},
			response: response{expectedCode: http.StatusNotFound},
		},
		{
			name: "decline",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().DeclineFriendRequest(gomock.Any(), alice, int64(8)).Return(nil)
			},
			request: request{method: http.MethodPost, target: "/friends/decline/8"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/friends/requests",
				expectedFlash:    []flash.Message{{Level: flash.Success, Text: "Friend request declined."}},
			},
		},
		{
			name:         "bad id",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/friends/accept/abc"},
			response:     response{expectedCode: http.StatusNotFound},
		},
		{
			name: "remove from friends list",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().RemoveFriend(gomock.Any(), alice, "bob").
					Return(model.User{ID: 2, Username: "bob", FirstName: "Bob", LastName: "Stone"}, nil)
			},
			request: request{
				method: http.MethodPost, target: "/friends/remove/bob",
				headers: map[string]string{"Referer": "http://example.com/friends"},
			},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/friends",
				expectedFlash:    []flash.Message{{Level: flash.Success, Text: "Removed Bob Stone from friends."}},
			},
		},
	})
}

func TestHandler_BookRequest(t *testing.T) {
	t.Parallel()
	book := model.BookWithOwner{Book: model.Book{ID: 5, OwnerID: 2, Title: "Dune"}, OwnerUsername: "bob"}
	run(t, []testCase{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().RequestBook(gomock.Any(), alice, int64(5), "2030-01-02").Return(book, nil)
			},
			request: request{method: http.MethodPost, target: "/books/5/request", form: url.Values{"return_date": {"2030-01-02"}}},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/library/bob",
				expectedFlash:    []flash.Message{{Level: flash.Success, Text: "Book request sent successfully!"}},
			},
		},
		{
			name:         "err. date required",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/books/5/request", form: url.Values{}},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please correct the errors below.","errors":{"return_date":"This field is required."}}`,
			},
		},
		{
			name: "err. date in the past",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().RequestBook(gomock.Any(), alice, int64(5), "2000-01-01").
					Return(book, errs.NewValidation("return_date", "Return date must be in the future."))
			},
			request: request{method: http.MethodPost, target: "/books/5/request", form: url.Values{"return_date": {"2000-01-01"}}},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please correct the errors below.","errors":{"return_date":"Return date must be in the future."}}`,
			},
		},
		{
			name: "err. not friends",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().RequestBook(gomock.Any(), alice, int64(5), "2030-01-02").
					Return(book, errs.Forbidden("You must be friends with the book owner to request books."))
			},
			request: request{method: http.MethodPost, target: "/books/5/request", form: url.Values{"return_date": {"2030-01-02"}}},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/library/bob",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "You must be friends with the book owner to request books."}},
			},
		},
		{
			name: "return by non owner",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().ReturnBook(gomock.Any(), alice, int64(9)).
					Return(errs.Forbidden("Only the book owner can mark a book as returned."))
			},
			request: request{method: http.MethodPost, target: "/books/requests/9/return"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/books/requests",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "Only the book owner can mark a book as returned."}},
			},
		},
		{
			name: "accept already accepted",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().AcceptBookRequest(gomock.Any(), alice, int64(9)).Return(errs.ErrNotFound)
			},
			request:  request{method: http.MethodPost, target: "/books/requests/9/accept"},
			response: response{expectedCode: http.StatusNotFound},
		},
		{
			name: "accept while lent out",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().AcceptBookRequest(gomock.Any(), alice, int64(9)).
					Return(errs.Conflict("This book is already lent out."))
			},
			request: request{method: http.MethodPost, target: "/books/requests/9/accept"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/books/requests",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "This book is already lent out."}},
			},
		},
	})
}

func TestHandler_Rating(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "like goes back to referer",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().RateBook(gomock.Any(), alice, int64(5), model.RatingLike).Return(nil)
			},
			request: request{
				method: http.MethodPost, target: "/books/5/like",
				headers: map[string]string{"Referer": "http://example.com/library/bob"},
			},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/library/bob"},
		},
		{
			name: "dislike by stranger",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().RateBook(gomock.Any(), alice, int64(5), model.RatingDislike).
					Return(errs.Forbidden("You must be friends to rate books"))
			},
			request: request{method: http.MethodPost, target: "/books/5/dislike"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/dashboard",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "You must be friends to rate books"}},
			},
		},
		{
			name: "delete review denied",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().DeleteReview(gomock.Any(), alice, int64(3)).
					Return(int64(5), errs.Forbidden("You do not have permission to delete this review."))
			},
			request: request{method: http.MethodPost, target: "/reviews/3/delete"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/books/5",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "You do not have permission to delete this review."}},
			},
		},
	})
}

func TestHandler_Notifications(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "unread count",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().UnreadNotificationCount(gomock.Any(), alice).Return(3, nil)
			},
			request: request{
				method: http.MethodGet, target: "/notifications/api",
				headers: map[string]string{"X-Requested-With": "XMLHttpRequest"},
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"unread_count":3}`},
		},
		{
			name:         "unread count without ajax header",
			mockBehavior: func(s *service_mocks.MockService) {},
			request:      request{method: http.MethodGet, target: "/notifications/api"},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "mark all read",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().MarkAllNotificationsRead(gomock.Any(), alice).Return(nil)
			},
			request:  request{method: http.MethodPost, target: "/notifications"},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/notifications"},
		},
		{
			name: "open friend request",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().OpenNotification(gomock.Any(), alice, int64(4)).
					Return(model.Destination{Name: model.DestFriendRequests}, nil)
			},
			request:  request{method: http.MethodGet, target: "/notifications/4/redirect"},
			response: response{expectedCode: http.StatusFound, expectedLocation: "/friends/requests"},
		},
		{
			name: "open review",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().OpenNotification(gomock.Any(), alice, int64(4)).
					Return(model.Destination{Name: model.DestBookDetail, BookID: 12}, nil)
			},
			request:  request{method: http.MethodGet, target: "/notifications/4/redirect"},
			response: response{expectedCode: http.StatusFound, expectedLocation: "/books/12"},
		},
		{
			name: "open message",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().OpenNotification(gomock.Any(), alice, int64(4)).
					Return(model.Destination{Name: model.DestChat, Username: "bob"}, nil)
			},
			request:  request{method: http.MethodGet, target: "/notifications/4/redirect"},
			response: response{expectedCode: http.StatusFound, expectedLocation: "/chat/bob"},
		},
		{
			name: "open foreign",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().OpenNotification(gomock.Any(), alice, int64(4)).
					Return(model.Destination{}, errs.ErrNotFound)
			},
			request:  request{method: http.MethodGet, target: "/notifications/4/redirect"},
			response: response{expectedCode: http.StatusNotFound},
		},
	})
}

func TestHandler_Chat(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "unread messages",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().UnreadMessageCount(gomock.Any(), alice).Return(2, nil)
			},
			request: request{
				method: http.MethodGet, target: "/chats/unread",
				headers: map[string]string{"X-Requested-With": "XMLHttpRequest"},
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"unread_count":2}`},
		},
		{
			name: "stranger",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().Conversation(gomock.Any(), alice, "carol").
					Return(model.Conversation{}, errs.Forbidden("You can only chat with your friends."))
			},
			request: request{method: http.MethodGet, target: "/chat/carol"},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/dashboard",
				expectedFlash:    []flash.Message{{Level: flash.Error, Text: "You can only chat with your friends."}},
			},
		},
		{
			name: "send",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().SendMessage(gomock.Any(), alice, "bob", "hi").Return(model.Message{ID: 1}, nil)
			},
			request:  request{method: http.MethodPost, target: "/chat/bob", form: url.Values{"content": {"hi"}}},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/chat/bob"},
		},
	})
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().Dashboard(gomock.Any(), alice).Return(model.Dashboard{
					FriendBooks:    []model.BookWithOwner{},
					FriendRequests: 2,
					BookRequests:   1,
				}, nil)
			},
			request: request{method: http.MethodGet, target: "/dashboard"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"data":{"friendBooks":[],"friendRequests":2,"bookRequests":1}}`,
			},
		},
		{
			name: "search defaults",
			mockBehavior: func(s *service_mocks.MockService) {
				s.EXPECT().Search(gomock.Any(), alice, "", model.SearchScope("")).
					Return(model.SearchResult{Scope: model.ScopeAll, Users: []model.UserResult{}, Books: []model.BookWithOwner{}}, nil)
			},
			request: request{method: http.MethodGet, target: "/search"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"data":{"query":"","type":"all","users":[],"books":[]}}`,
			},
		},
	})
}
