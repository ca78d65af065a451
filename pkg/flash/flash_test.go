package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestAddPop(t *testing.T) {
	t.Parallel()
	e := echo.New()

	w := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", http.NoBody), w)
	Add(c, Error, "Friendship request already exists.")
	Add(c, Success, "a=b & c")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	last := cookies[len(cookies)-1]

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.AddCookie(last)
	w2 := httptest.NewRecorder()
	c2 := e.NewContext(r, w2)

	msgs := Pop(c2)
	require.Equal(t, []Message{
		{Level: Error, Text: "Friendship request already exists."},
		{Level: Success, Text: "a=b & c"},
	}, msgs)
	require.Empty(t, Pop(c2))
}

func TestPopKeepsOrder(t *testing.T) {
	t.Parallel()
	e := echo.New()

	w := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", http.NoBody), w)
	Add(c, Success, "Book request accepted!")
	Add(c, Info, "Friend removed.")
	Add(c, Error, "This book is already lent out.")

	cookies := w.Result().Cookies()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.AddCookie(cookies[len(cookies)-1])

	require.Equal(t, []Message{
		{Level: Success, Text: "Book request accepted!"},
		{Level: Info, Text: "Friend removed."},
		{Level: Error, Text: "This book is already lent out."},
	}, Pop(e.NewContext(r, httptest.NewRecorder())))
}

func TestPopIgnoresGarbage(t *testing.T) {
	t.Parallel()
	e := echo.New()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%"})

	require.Empty(t, Pop(e.NewContext(r, httptest.NewRecorder())))
}
