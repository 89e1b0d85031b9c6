package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/savedjobs"
	"jobquest-web/pkg/models"
)

// ToggleBookmarkHandler flips a job's saved state for the current session.
// Unauthenticated toggles change nothing and come back as sign_in_required
// with a transient notice.
func ToggleBookmarkHandler(saved *savedjobs.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID := c.Param("id")
		if jobID == "" {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Job ID is required")
		}

		sess := middleware.CurrentSession(c)
		set := saved.ForSession(sess.ID, sess.SavedJobIDs)

		result := set.Toggle(sess.User, jobID)
		return c.JSON(http.StatusOK, models.ToggleResponse{
			Saved:  result.Saved,
			Status: string(result.Status),
			Notice: result.Notice,
		})
	}
}
