package middleware

import (
	"net/http"
	"time"

	"jobquest-web/internal/config"
	"jobquest-web/internal/logging"
	"jobquest-web/internal/session"
	"jobquest-web/pkg/models"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the caller's session from the cookie, creating
// a fresh guest session when none exists, and stores it in the echo context.
func SessionMiddleware(store *session.Store, cfg *config.Config) echo.MiddlewareFunc {
	logger := logging.GetGlobalLogger()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var sess *session.Session
			if cookie, err := c.Cookie(cfg.Session.CookieName); err == nil && cookie.Value != "" {
				sess, err = store.Get(ctx, cookie.Value)
				if err != nil && err != session.ErrNotFound {
					logger.Warn("Failed to load session, starting fresh", map[string]interface{}{
						"error": err.Error(),
					})
				}
			}

			if sess == nil {
				created, err := store.Create(ctx)
				if err != nil {
					return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
						Error:     "session_unavailable",
						Message:   "Session store is unavailable",
						RequestID: RequestID(c),
						Timestamp: time.Now(),
					})
				}
				sess = created
				c.SetCookie(&http.Cookie{
					Name:     cfg.Session.CookieName,
					Value:    sess.ID,
					Path:     "/",
					MaxAge:   int(cfg.Session.TTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the session resolved for this request, or nil when
// the session middleware did not run.
func CurrentSession(c echo.Context) *session.Session {
	if sess, ok := c.Get(sessionContextKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// RequestID returns the request ID assigned by RequestValidation.
func RequestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return ""
}

// RequireUser rejects requests from sessions with no signed-in user.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if !sess.Authenticated() {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:     "authentication_required",
					Message:   "Sign in to access this resource",
					RequestID: RequestID(c),
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin users. The backend enforces authorization on
// its own endpoints; this gate only keeps the admin surface out of view.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if !sess.Authenticated() {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:     "authentication_required",
					Message:   "Sign in to access this resource",
					RequestID: RequestID(c),
					Timestamp: time.Now(),
				})
			}
			if !sess.User.IsAdmin() {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:     "forbidden",
					Message:   "Admin access required",
					RequestID: RequestID(c),
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}
