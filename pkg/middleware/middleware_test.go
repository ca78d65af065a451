package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type tokenStub map[string]auth.Identity

func (s tokenStub) Parse(token string) (auth.Identity, error) {
	id, ok := s[token]
	if !ok {
		return auth.Identity{}, errors.New("bad token")
	}
	return id, nil
}

func TestSession(t *testing.T) {
	t.Parallel()
	tokens := tokenStub{"good": {UserID: 1, Username: "testuser"}}

	tests := []struct {
		name         string
		target       string
		cookie       string
		expectedCode int
		expectedNext string
	}{
		{name: "profile anonymous", target: "/profile/testuser", expectedCode: http.StatusFound, expectedNext: "/profile/testuser"},
		{name: "library anonymous", target: "/library/testuser", expectedCode: http.StatusFound, expectedNext: "/library/testuser"},
		{name: "dashboard anonymous", target: "/dashboard", expectedCode: http.StatusFound, expectedNext: "/dashboard"},
		{name: "search keeps query", target: "/search?q=test&type=all", expectedCode: http.StatusFound, expectedNext: "/search?q=test&type=all"},
		{name: "invalid cookie", target: "/dashboard", cookie: "forged", expectedCode: http.StatusFound, expectedNext: "/dashboard"},
		{name: "authenticated", target: "/dashboard", cookie: "good", expectedCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			protected := e.Group("", Session(tokens, "session", "/login"))
			handler := func(c echo.Context) error {
				id, err := auth.GetIdentity(c.Request().Context())
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, id.Username)
			}
			protected.GET("/profile/:username", handler)
			protected.GET("/library/:username", handler)
			protected.GET("/dashboard", handler)
			protected.GET("/search", handler)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusFound {
				require.Equal(t, "testuser", w.Body.String())
				return
			}
			loc, err := url.Parse(w.Header().Get(echo.HeaderLocation))
			require.NoError(t, err)
			require.Equal(t, "/login", loc.Path)
			require.Equal(t, tt.expectedNext, loc.Query().Get("next"))
		})
	}
}

func TestRequireAJAX(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.GET("/notifications/api", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"unread_count": 0})
	}, RequireAJAX)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/api", http.NoBody))
	require.Equal(t, http.StatusBadRequest, w.Code)

	r := httptest.NewRequest(http.MethodGet, "/notifications/api", http.NoBody)
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestBearer(t *testing.T) {
	t.Parallel()
	tokens := tokenStub{"good": {UserID: 1, Username: "testuser"}}

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "ok", header: "Bearer good", expectedCode: http.StatusOK},
		{name: "missing", expectedCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", expectedCode: http.StatusUnauthorized},
		{name: "forged", header: "Bearer forged", expectedCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/api", func(c echo.Context) error {
				id, err := auth.GetIdentity(c.Request().Context())
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, id.Username)
			}, Bearer(tokens))

			r := httptest.NewRequest(http.MethodGet, "/api", http.NoBody)
			if tt.header != "" {
				r.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
