package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/flash"
	"github.com/Astemirdum/book-lending/pkg/metrics"
	mw "github.com/Astemirdum/book-lending/pkg/middleware"
	"github.com/Astemirdum/book-lending/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	loginPath         = "/login"
	defaultCookieName = "session"
)

type Handler struct {
	svc        Service
	log        *zap.Logger
	metrics    *metrics.Metrics
	cookieName string
}

type Option func(*Handler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

func WithCookieName(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.cookieName = name
		}
	}
}

func New(svc Service, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:        svc,
		log:        log.Named("handler"),
		cookieName: defaultCookieName,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.metrics == nil {
		h.metrics = metrics.Nop()
	}
	return h
}

type tokenParserFunc func(token string) (auth.Identity, error)

func (f tokenParserFunc) Parse(token string) (auth.Identity, error) { return f(token) }

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		appRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", mw.MetricsHandler(h.metrics))

	tokens := tokenParserFunc(h.svc.Authenticate)
	app := e.Group("",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.Metrics(h.metrics),
		mw.NewRateLimiter(appRPS),
	)

	public := app.Group("", mw.OptionalSession(tokens, h.cookieName))
	public.GET("/", h.Landing)
	public.GET("/login", h.LoginPage)
	public.POST("/login", h.Login)
	public.POST("/signup", h.SignUp)
	public.GET("/password/reset", h.PasswordResetPage)
	public.POST("/password/reset", h.PasswordReset)
	public.GET("/password/reset/verify", h.PasswordResetVerifyPage)
	public.POST("/password/reset/verify", h.PasswordResetVerify)

	g := app.Group("", mw.Session(tokens, h.cookieName, loginPath))
	g.POST("/logout", h.Logout)
	g.GET("/password/change", h.PasswordChangePage)
	g.POST("/password/change", h.PasswordChange)

	g.GET("/profile/edit", h.ProfileEditPage)
	g.POST("/profile/edit", h.ProfileEdit)
	g.GET("/profile/:username", h.Profile)
	g.GET("/dashboard", h.Dashboard)
	g.GET("/search", h.Search)

	g.GET("/library/:username", h.Library)
	g.GET("/books/add", h.BookAddPage)
	g.POST("/books/add", h.BookAdd)
	g.GET("/books/:id", h.BookDetail)
	g.GET("/books/:id/edit", h.BookEditPage)
	g.POST("/books/:id/edit", h.BookEdit)
	g.GET("/books/:id/delete", h.BookDeletePage)
	g.POST("/books/:id/delete", h.BookDelete)

	g.GET("/friends", h.Friends)
	g.GET("/friends/requests", h.FriendRequests)
	g.POST("/friends/add/:username", h.FriendAdd)
	g.POST("/friends/accept/:id", h.FriendAccept)
	g.POST("/friends/decline/:id", h.FriendDecline)
	g.POST("/friends/remove/:username", h.FriendRemove)

	g.GET("/books/requests", h.BookRequests)
	g.GET("/books/:id/request", h.BookRequestPage)
	g.POST("/books/:id/request", h.BookRequest)
	g.POST("/books/requests/:id/accept", h.BookRequestAccept)
	g.POST("/books/requests/:id/decline", h.BookRequestDecline)
	g.POST("/books/requests/:id/return", h.BookReturn)

	g.POST("/books/:id/like", h.BookLike)
	g.POST("/books/:id/dislike", h.BookDislike)
	g.GET("/books/:id/ratings", h.BookRatings)
	g.POST("/books/:id/submit_review", h.SubmitReview)
	g.POST("/reviews/:id/delete", h.DeleteReview)

	g.GET("/notifications", h.Notifications)
	g.POST("/notifications", h.MarkNotificationsRead)
	g.GET("/notifications/api", h.NotificationsAPI, mw.RequireAJAX)
	g.GET("/notifications/:id/redirect", h.NotificationRedirect)

	g.GET("/chats", h.ChatList)
	g.GET("/chats/unread", h.ChatUnread, mw.RequireAJAX)
	g.GET("/chat/:username", h.Chat)
	g.POST("/chat/:username", h.ChatSend)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// page is the JSON envelope of every view: pending flash messages and
// the view model.
type page struct {
	Messages []flash.Message `json:"messages,omitempty"`
	Data     any             `json:"data"`
}

func render(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, page{Messages: flash.Pop(c), Data: data})
}

func redirect(c echo.Context, to string, level flash.Level, text string) error {
	if text != "" {
		flash.Add(c, level, text)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

func identity(c echo.Context) (auth.Identity, error) {
	id, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return id, nil
}

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return id, nil
}

// bind decodes and validates a form. Field failures come back as
// *errs.ValidationError.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		if fields, ok := validate.FieldErrors(err); ok {
			return &errs.ValidationError{Fields: fields}
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// fail maps an error onto the response. User-facing forbidden and
// conflict errors become a flash message and a redirect to back when
// back is set.
func (h *Handler) fail(c echo.Context, err error, back string) error {
	var (
		httpErr *echo.HTTPError
		valErr  *errs.ValidationError
		userErr *errs.Error
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &valErr):
		return c.JSON(http.StatusBadRequest, errs.ValidationErrorResponse{
			Message: "Please correct the errors below.",
			Errors:  valErr.Fields,
		})
	case errors.As(err, &userErr) && back != "":
		return redirect(c, back, flash.Error, userErr.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) setSession(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
