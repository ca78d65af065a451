package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/flash"
	mw "github.com/Astemirdum/book-lending/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func signedIn(c echo.Context) bool {
	_, err := auth.GetIdentity(c.Request().Context())
	return err == nil
}

// localPath keeps redirects on this site.
func localPath(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}

func (h *Handler) Landing(c echo.Context) error {
	if signedIn(c) {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return render(c, echo.Map{"login": loginPath, "signup": "/signup"})
}

func (h *Handler) LoginPage(c echo.Context) error {
	if signedIn(c) {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return render(c, echo.Map{"next": c.QueryParam("next")})
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err, "")
	}
	sess, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return redirect(c, mw.LoginURL(loginPath, req.Next), flash.Error, "Invalid credentials.")
		}
		return h.fail(c, err, "")
	}
	h.setSession(c, sess.Token, sess.ExpiresAt)
	return c.Redirect(http.StatusSeeOther, localPath(req.Next, "/dashboard"))
}

func (h *Handler) SignUp(c echo.Context) error {
	if signedIn(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	var req model.SignUpRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err, "")
	}
	sess, err := h.svc.SignUp(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, "")
	}
	h.setSession(c, sess.Token, sess.ExpiresAt)
	return redirect(c, "/profile/"+url.PathEscape(sess.Username), flash.Success, "Account created successfully!")
}

func (h *Handler) Logout(c echo.Context) error {
	h.clearSession(c)
	return redirect(c, "/", flash.Info, "You have been logged out.")
}

func (h *Handler) PasswordChangePage(c echo.Context) error {
	return render(c, echo.Map{"fields": []string{"old_password", "new_password1", "new_password2"}})
}

func (h *Handler) PasswordChange(c echo.Context) error {
	me, err := identity(c)
	if err != nil {
		return err
	}
	var req model.PasswordChangeRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err, "")
	}
	if err := h.svc.ChangePassword(c.Request().Context(), me, req); err != nil {
		return h.fail(c, err, "")
	}
	return redirect(c, "/profile/"+url.PathEscape(me.Username), flash.Success, "Your password was changed successfully.")
}

func (h *Handler) PasswordResetPage(c echo.Context) error {
	return render(c, echo.Map{"fields": []string{"email"}})
}

func (h *Handler) PasswordReset(c echo.Context) error {
	var req model.PasswordResetRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err, "")
	}
	if err := h.svc.RequestPasswordReset(c.Request().Context(), req); err != nil {
		return h.fail(c, err, "")
	}
	to := "/password/reset/verify?" + url.Values{"email": {req.Email}}.Encode()
	return redirect(c, to, flash.Info, "If the email is registered, a reset code has been sent.")
}

func (h *Handler) PasswordResetVerifyPage(c echo.Context) error {
	return render(c, echo.Map{
		"email":  c.QueryParam("email"),
		"fields": []string{"email", "code", "new_password1", "new_password2"},
	})
}

func (h *Handler) PasswordResetVerify(c echo.Context) error {
	var req model.PasswordResetVerifyRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err, "")
	}
	if err := h.svc.VerifyPasswordReset(c.Request().Context(), req); err != nil {
		return h.fail(c, err, "")
	}
	return redirect(c, loginPath, flash.Success, "Your password has been reset. You can now log in.")
}
