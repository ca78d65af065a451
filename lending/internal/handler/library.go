package handler

import (
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/flash"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Profile(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	view, err := h.svc.Profile(c.Request().Context(), me, c.Param("username"))
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, view)
}

func (h *Handler) ProfileEditPage(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	view, err := h.svc.Profile(c.Request().Context(), me, me.Username)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, view.Profile)
}

func (h *Handler) ProfileEdit(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	var req model.ProfileUpdate
	if err := bind(c, &req); err != nil {
		return h.fail(c, err, "")
	}
	if err := h.svc.UpdateProfile(c.Request().Context(), me, req); err != nil {
		return h.fail(c, err, "")
	}
	return redirect(c, profilePath(me.Username), flash.Success, "Profile updated successfully!")
}

func (h *Handler) Dashboard(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	view, err := h.svc.Dashboard(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, view)
}

func (h *Handler) Search(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	scope := model.SearchScope(c.QueryParam("type"))
	res, err := h.svc.Search(c.Request().Context(), me, c.QueryParam("q"), scope)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, res)
}

func (h *Handler) Library(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	view, err := h.svc.Library(c.Request().Context(), me, c.Param("username"))
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, view)
}

func (h *Handler) BookAddPage(c echo.Context) error {
	return render(c, echo.Map{"action": "Add"})
}

func (h *Handler) BookAdd(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	var form model.BookForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, err, "")
	}
	if _, err := h.svc.AddBook(c.Request().Context(), me, form); err != nil {
		return h.fail(c, err, "")
	}
	return redirect(c, libraryPath(me.Username), flash.Success, "Book added successfully!")
}

func (h *Handler) BookEditPage(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	book, err := h.svc.OwnBook(c.Request().Context(), me, id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, echo.Map{"action": "Edit", "book": book})
}

func (h *Handler) BookEdit(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form model.BookForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, err, "")
	}
	if _, err := h.svc.EditBook(c.Request().Context(), me, id, form); err != nil {
		return h.fail(c, err, "")
	}
	return redirect(c, libraryPath(me.Username), flash.Success, "Book updated successfully!")
}

func (h *Handler) BookDeletePage(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	book, err := h.svc.OwnBook(c.Request().Context(), me, id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, echo.Map{"book": book})
}

func (h *Handler) BookDelete(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteBook(c.Request().Context(), me, id); err != nil {
		return h.fail(c, err, "")
	}
	return redirect(c, libraryPath(me.Username), flash.Success, "Book deleted successfully!")
}

func (h *Handler) BookDetail(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	view, err := h.svc.BookDetail(c.Request().Context(), me, id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, view)
}
