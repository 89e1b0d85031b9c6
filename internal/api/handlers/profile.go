package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/backend"
	"jobquest-web/internal/session"
	"jobquest-web/pkg/models"
)

// GetProfileHandler fetches a fresh copy of the signed-in user, profile
// included, and refreshes the session's cached copy.
func GetProfileHandler(client *backend.Client, store *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		ctx := c.Request().Context()

		user, err := client.Me(ctx, sess.Token)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		sess.User = user
		if err := store.Save(ctx, sess); err != nil {
			return errorJSON(c, http.StatusServiceUnavailable, "session_unavailable", "Failed to persist session")
		}

		return c.JSON(http.StatusOK, models.AuthResponse{
			User:       user,
			HasProfile: user.HasProfile(),
		})
	}
}

// UpdateProfileHandler saves profile edits through the backend.
func UpdateProfileHandler(client *backend.Client, store *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ProfileUpdateRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		sess := middleware.CurrentSession(c)
		ctx := c.Request().Context()

		user, err := client.UpdateProfile(ctx, sess.Token, req)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		sess.User = user
		if err := store.Save(ctx, sess); err != nil {
			return errorJSON(c, http.StatusServiceUnavailable, "session_unavailable", "Failed to persist session")
		}

		return c.JSON(http.StatusOK, models.AuthResponse{
			User:       user,
			HasProfile: user.HasProfile(),
		})
	}
}

// UploadResumeHandler forwards a multipart resume upload to the backend.
func UploadResumeHandler(client *backend.Client, store *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("resume")
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Resume file is required")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to read resume file")
		}
		defer file.Close()

		sess := middleware.CurrentSession(c)
		ctx := c.Request().Context()

		user, err := client.UploadResume(ctx, sess.Token, fileHeader.Filename, file)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		sess.User = user
		if err := store.Save(ctx, sess); err != nil {
			return errorJSON(c, http.StatusServiceUnavailable, "session_unavailable", "Failed to persist session")
		}

		return c.JSON(http.StatusOK, models.AuthResponse{
			User:       user,
			HasProfile: user.HasProfile(),
		})
	}
}

// MyApplicationsHandler lists the signed-in user's application history.
func MyApplicationsHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)

		apps, err := client.ListMyApplications(c.Request().Context(), sess.Token)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"applications": apps,
		})
	}
}
