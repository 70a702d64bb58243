package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"quickhire/internal/application/common"
	"quickhire/internal/application/interfaces"
	"quickhire/internal/infrastructure"
)

const (
	// SessionCookieName carries the opaque session token; it is the sole
	// session proof.
	SessionCookieName = "sessionID"

	ctxKeyEmail        = "userEmail"
	ctxKeySessionToken = "sessionToken"
)

// SessionGuard gates routes on a resolvable session cookie. API routes answer
// 401 JSON, page routes redirect to /login; the split is by route class.
type SessionGuard struct {
	auth interfaces.AuthService
}

func NewSessionGuard(auth interfaces.AuthService) *SessionGuard {
	return &SessionGuard{auth: auth}
}

func (g *SessionGuard) API(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := g.authenticate(c); err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, errorResponse{Success: false, Message: "Authentication required."})
			}
			return writeServiceError(c, err)
		}
		return next(c)
	}
}

func (g *SessionGuard) Page(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := g.authenticate(c); err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				return c.Redirect(http.StatusFound, "/login")
			}
			return writeServiceError(c, err)
		}
		return next(c)
	}
}

// authenticate returns ErrUnauthorized when there is no usable session and
// passes other resolution failures through. A session store outage is a 500,
// not a missing session.
func (g *SessionGuard) authenticate(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return common.ErrUnauthorized
	}
	email, err := g.auth.ResolveSession(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}
	c.Set(ctxKeyEmail, email)
	c.Set(ctxKeySessionToken, cookie.Value)
	return nil
}

func sessionEmail(c echo.Context) string {
	email, _ := c.Get(ctxKeyEmail).(string)
	return email
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(ctxKeySessionToken).(string)
	return token
}

// RateLimit rejects clients that exceed their per-IP allowance, used on the
// credential endpoints to slow brute forcing.
func RateLimit(limiter *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, errorResponse{Success: false, Message: "Too many requests. Try again later."})
			}
			return next(c)
		}
	}
}
