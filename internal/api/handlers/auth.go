package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/backend"
	"jobquest-web/internal/logging"
	"jobquest-web/internal/savedjobs"
	"jobquest-web/internal/session"
	"jobquest-web/pkg/models"
)

// LoginHandler exchanges credentials for a backend token and binds it to the
// session. The server-side bookmark list is hydrated into the shared set;
// the sequence guard inside the set protects toggles made while the fetch
// was in flight.
func LoginHandler(client *backend.Client, store *session.Store, saved *savedjobs.Manager) echo.HandlerFunc {
	logger := logging.GetGlobalLogger()

	return func(c echo.Context) error {
		var req models.LoginRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		ctx := c.Request().Context()
		result, err := client.Login(ctx, req)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		sess := middleware.CurrentSession(c)
		sess.Token = result.Token
		sess.User = result.User

		set := saved.ForSession(sess.ID, sess.SavedJobIDs)
		hydration := set.BeginHydration()
		if ids, err := client.SavedJobIDs(ctx, sess.Token); err == nil {
			set.CompleteHydration(hydration, ids)
		} else {
			logger.Warn("Failed to hydrate saved jobs after login", map[string]interface{}{
				"request_id": middleware.RequestID(c),
				"error":      err.Error(),
			})
		}
		sess.SavedJobIDs = set.Snapshot()

		if err := store.Save(ctx, sess); err != nil {
			return errorJSON(c, http.StatusServiceUnavailable, "session_unavailable", "Failed to persist session")
		}

		return c.JSON(http.StatusOK, models.AuthResponse{
			User:       sess.User,
			HasProfile: sess.User.HasProfile(),
		})
	}
}

// SignupHandler creates an account and signs the session in.
func SignupHandler(client *backend.Client, store *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SignupRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		ctx := c.Request().Context()
		result, err := client.Signup(ctx, req)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		sess := middleware.CurrentSession(c)
		sess.Token = result.Token
		sess.User = result.User

		if err := store.Save(ctx, sess); err != nil {
			return errorJSON(c, http.StatusServiceUnavailable, "session_unavailable", "Failed to persist session")
		}

		return c.JSON(http.StatusCreated, models.AuthResponse{
			User:       sess.User,
			HasProfile: sess.User.HasProfile(),
		})
	}
}

// LogoutHandler drops the token and clears session-held client state. The
// backend's own records are untouched.
func LogoutHandler(store *session.Store, saved *savedjobs.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)

		set := saved.ForSession(sess.ID, sess.SavedJobIDs)
		set.Clear()
		saved.Drop(sess.ID)

		sess.Token = ""
		sess.User = nil
		sess.SavedJobIDs = []string{}

		if err := store.Save(c.Request().Context(), sess); err != nil {
			return errorJSON(c, http.StatusServiceUnavailable, "session_unavailable", "Failed to persist session")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// MeHandler reports the session's identity, or 401 for guests.
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		if !sess.Authenticated() {
			return errorJSON(c, http.StatusUnauthorized, "authentication_required", "Not signed in")
		}
		return c.JSON(http.StatusOK, models.AuthResponse{
			User:       sess.User,
			HasProfile: sess.User.HasProfile(),
		})
	}
}
