package handler

import (
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/flash"
	"github.com/labstack/echo/v4"
)

func (h *Handler) BookRequests(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	reqs, err := h.svc.BookRequests(c.Request().Context(), me)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, reqs)
}

func (h *Handler) BookRequestPage(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	book, err := h.svc.BookForRequest(c.Request().Context(), me, id)
	if err != nil {
		return h.fail(c, err, libraryPath(book.OwnerUsername))
	}
	return render(c, echo.Map{"book": book})
}

func (h *Handler) BookRequest(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form model.BookRequestForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, err, "")
	}
	book, err := h.svc.RequestBook(c.Request().Context(), me, id, form.ReturnDate)
	if err != nil {
		return h.fail(c, err, libraryPath(book.OwnerUsername))
	}
	return redirect(c, libraryPath(book.OwnerUsername), flash.Success, "Book request sent successfully!")
}

func (h *Handler) BookRequestAccept(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.AcceptBookRequest(c.Request().Context(), me, id); err != nil {
		return h.fail(c, err, "/books/requests")
	}
	return redirect(c, "/books/requests", flash.Success, "Book request accepted!")
}

func (h *Handler) BookRequestDecline(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeclineBookRequest(c.Request().Context(), me, id); err != nil {
		return h.fail(c, err, "/books/requests")
	}
	return redirect(c, "/books/requests", flash.Success, "Book request declined.")
}

func (h *Handler) BookReturn(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.ReturnBook(c.Request().Context(), me, id); err != nil {
		return h.fail(c, err, "/books/requests")
	}
	return redirect(c, "/books/requests", flash.Success, "Book marked as returned successfully!")
}

func (h *Handler) BookLike(c echo.Context) error {
	return h.rate(c, model.RatingLike)
}

func (h *Handler) BookDislike(c echo.Context) error {
	return h.rate(c, model.RatingDislike)
}

func (h *Handler) rate(c echo.Context, value model.RatingValue) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.RateBook(c.Request().Context(), me, id, value); err != nil {
		return h.fail(c, err, "/dashboard")
	}
	return redirect(c, referer(c, "/dashboard"), "", "")
}

func (h *Handler) BookRatings(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ratings, err := h.svc.BookRatings(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return render(c, ratings)
}

func (h *Handler) SubmitReview(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form model.ReviewForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, err, "")
	}
	if _, err := h.svc.SubmitReview(c.Request().Context(), me, id, form.ReviewText); err != nil {
		return h.fail(c, err, bookPath(id))
	}
	return redirect(c, bookPath(id), flash.Success, "Review submitted successfully!")
}

func (h *Handler) DeleteReview(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	bookID, err := h.svc.DeleteReview(c.Request().Context(), me, id)
	if err != nil {
		return h.fail(c, err, bookPath(bookID))
	}
	return redirect(c, bookPath(bookID), flash.Success, "Review deleted successfully!")
}
