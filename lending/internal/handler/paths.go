package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/labstack/echo/v4"
)

func profilePath(username string) string { return "/profile/" + url.PathEscape(username) }

func libraryPath(username string) string { return "/library/" + url.PathEscape(username) }

func bookPath(id int64) string { return "/books/" + strconv.FormatInt(id, 10) }

func chatPath(username string) string { return "/chat/" + url.PathEscape(username) }

func destinationPath(d model.Destination) string {
	switch d.Name {
	case model.DestFriendRequests:
		return "/friends/requests"
	case model.DestProfile:
		return profilePath(d.Username)
	case model.DestBookRequests:
		return "/books/requests"
	case model.DestLibrary:
		return libraryPath(d.Username)
	case model.DestBookDetail:
		return bookPath(d.BookID)
	case model.DestChat:
		return chatPath(d.Username)
	case model.DestChatList:
		return "/chats"
	case model.DestDashboard:
	}
	return "/dashboard"
}

// referer returns the path of a same-site Referer, or fallback.
func referer(c echo.Context, fallback string) string {
	ref := c.Request().Referer()
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && !strings.EqualFold(u.Host, c.Request().Host)) {
		return fallback
	}
	return localPath(u.RequestURI(), fallback)
}
