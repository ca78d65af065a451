package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type unreadCount struct {
	UnreadCount int `json:"unread_count"`
}

func (h *Handler) Notifications(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Notifications(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, list)
}

func (h *Handler) MarkNotificationsRead(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	if err := h.svc.MarkAllNotificationsRead(c.Request().Context(), me); err != nil {
		return h.fail(c, err, "")
	}
	return c.Redirect(http.StatusSeeOther, "/notifications")
}

func (h *Handler) NotificationsAPI(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	n, err := h.svc.UnreadNotificationCount(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, unreadCount{UnreadCount: n})
}

func (h *Handler) NotificationRedirect(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	dest, err := h.svc.OpenNotification(c.Request().Context(), me, id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.Redirect(http.StatusFound, destinationPath(dest))
}
