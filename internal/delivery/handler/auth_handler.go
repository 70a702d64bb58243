package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"quickhire/internal/application/command"
	"quickhire/internal/application/common"
	"quickhire/internal/application/interfaces"
)

type AuthHandler struct {
	auth       interfaces.AuthService
	dashboards interfaces.DashboardService
	sessionTTL time.Duration
}

func NewAuthHandler(auth interfaces.AuthService, dashboards interfaces.DashboardService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		dashboards: dashboards,
		sessionTTL: sessionTTL,
	}
}

type authSuccessResponse struct {
	Success     bool   `json:"success"`
	RedirectUrl string `json:"redirectUrl"`
}

// Register handles POST /register, accepting JSON or form-encoded bodies.
func (h *AuthHandler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return writeServiceError(c, common.ErrValidation)
	}

	result, err := h.auth.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, authSuccessResponse{Success: true, RedirectUrl: result.RedirectUrl})
}

// Login handles POST /login. On success the session token travels back in an
// HttpOnly cookie; the body only carries the redirect target.
func (h *AuthHandler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return writeServiceError(c, common.ErrValidation)
	}

	result, err := h.auth.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    result.SessionToken,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.sessionTTL.Seconds()),
		Expires:  time.Now().Add(h.sessionTTL),
	})

	return c.JSON(http.StatusOK, authSuccessResponse{Success: true, RedirectUrl: result.RedirectUrl})
}

// Logout handles GET /logout. It is idempotent: a missing or stale cookie
// still clears state and redirects to /login.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			c.Logger().Error(err)
		}
		h.dashboards.Drop(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})

	return c.Redirect(http.StatusFound, "/login")
}

type meResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}

// Me handles GET /api/me behind the session guard.
func (h *AuthHandler) Me(c echo.Context) error {
	profile, err := h.auth.Profile(c.Request().Context(), sessionEmail(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, meResponse{Success: true, Email: profile.Result.Email})
}
