package handler

import (
	"strings"

	"github.com/Astemirdum/book-lending/pkg/flash"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Friends(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	friends, err := h.svc.Friends(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, echo.Map{"friends": friends})
}

func (h *Handler) FriendRequests(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	reqs, err := h.svc.FriendRequests(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, reqs)
}

func (h *Handler) FriendAdd(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	username := c.Param("username")
	back := profilePath(username)
	if err := h.svc.SendFriendRequest(c.Request().Context(), me, username); err != nil {
		return h.fail(c, err, back)
	}
	return redirect(c, back, flash.Success, "Friend request sent successfully!")
}

func (h *Handler) FriendAccept(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.AcceptFriendRequest(c.Request().Context(), me, id); err != nil {
		return h.fail(c, err, "/friends/requests")
	}
	return redirect(c, "/friends", flash.Success, "Friend request accepted!")
}

func (h *Handler) FriendDecline(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeclineFriendRequest(c.Request().Context(), me, id); err != nil {
		return h.fail(c, err, "/friends/requests")
	}
	return redirect(c, "/friends/requests", flash.Success, "Friend request declined.")
}

// FriendRemove returns to the friends list when the action started there.
func (h *Handler) FriendRemove(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	username := c.Param("username")
	back := profilePath(username)
	if strings.Contains(c.Request().Referer(), "friends") {
		back = "/friends"
	}
	friend, err := h.svc.RemoveFriend(c.Request().Context(), me, username)
	if err != nil {
		return h.fail(c, err, back)
	}
	return redirect(c, back, flash.Success, "Removed "+friend.FullName()+" from friends.")
}
