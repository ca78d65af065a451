package handler

import (
	"net/http"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ChatList(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ChatList(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, list)
}

func (h *Handler) ChatUnread(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	n, err := h.svc.UnreadMessageCount(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, unreadCount{UnreadCount: n})
}

func (h *Handler) Chat(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	conv, err := h.svc.Conversation(c.Request().Context(), me, c.Param("username"))
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}
	return render(c, conv)
}

func (h *Handler) ChatSend(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	username := c.Param("username")
	var form model.MessageForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, err, "")
	}
	if _, err := h.svc.SendMessage(c.Request().Context(), me, username, form.Content); err != nil {
		return h.fail(c, err, "/dashboard")
	}
	return c.Redirect(http.StatusSeeOther, chatPath(username))
}
