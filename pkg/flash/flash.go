// Package flash keeps one-shot user messages in a cookie between a
// redirect and the next page view.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Error   Level = "error"
)

const cookieName = "flash"

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Add appends a message to the pending flash cookie.
func Add(c echo.Context, level Level, text string) {
	msgs := append(pending(c), Message{Level: level, Text: text})
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    encode(msgs),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(cookieName, msgs)
}

// Pop returns pending messages and clears the cookie.
func Pop(c echo.Context) []Message {
	msgs := pending(c)
	if len(msgs) == 0 {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	c.Set(cookieName, []Message(nil))
	return msgs
}

func pending(c echo.Context) []Message {
	if msgs, ok := c.Get(cookieName).([]Message); ok {
		return msgs
	}
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return decode(cookie.Value)
}

func encode(msgs []Message) string {
	data, err := json.Marshal(msgs)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

func decode(raw string) []Message {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil
	}
	return msgs
}
