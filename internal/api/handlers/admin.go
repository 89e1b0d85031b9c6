package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/backend"
	"jobquest-web/pkg/models"
)

// AdminDashboardHandler serves headline counts for the admin landing page.
func AdminDashboardHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)

		stats, err := client.DashboardStats(c.Request().Context(), sess.Token)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, stats)
	}
}

// AdminCreateJobHandler creates a job posting.
func AdminCreateJobHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.AdminJobRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		sess := middleware.CurrentSession(c)
		job, err := client.CreateJob(c.Request().Context(), sess.Token, req)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, job)
	}
}

// AdminUpdateJobHandler updates a job posting.
func AdminUpdateJobHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.AdminJobRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		sess := middleware.CurrentSession(c)
		job, err := client.UpdateJob(c.Request().Context(), sess.Token, c.Param("id"), req)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, job)
	}
}

// AdminDeleteJobHandler removes a job posting.
func AdminDeleteJobHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		if err := client.DeleteJob(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
			return backendErrorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// AdminUploadPosterHandler attaches a poster image to a job posting.
func AdminUploadPosterHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("poster")
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Poster file is required")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to read poster file")
		}
		defer file.Close()

		sess := middleware.CurrentSession(c)
		job, err := client.UploadJobPoster(c.Request().Context(), sess.Token, c.Param("id"), fileHeader.Filename, file)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, job)
	}
}

// AdminListUsersHandler serves the user management table. The response
// carries the caller's can_change_roles flag so the view knows whether to
// render role selectors; the backend still rejects unauthorized changes.
func AdminListUsersHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		page, _ := strconv.Atoi(c.QueryParam("page"))
		limit, _ := strconv.Atoi(c.QueryParam("limit"))

		users, total, err := client.ListUsers(c.Request().Context(), sess.Token, page, limit, c.QueryParam("role"))
		if err != nil {
			return backendErrorJSON(c, err)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"users":            users,
			"total":            total,
			"can_change_roles": sess.User.CanChangeRoles,
		})
	}
}

// AdminChangeRoleHandler changes a user's role. Role mutations require the
// caller's can_change_roles grant, the same flag the user table uses to
// decide whether to render role selectors; the backend rejects unauthorized
// changes regardless.
func AdminChangeRoleHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.RoleChangeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		sess := middleware.CurrentSession(c)
		if !sess.User.CanChangeRoles {
			return errorJSON(c, http.StatusForbidden, "role_change_forbidden", "Your account is not allowed to change user roles")
		}

		user, err := client.UpdateUserRole(c.Request().Context(), sess.Token, c.Param("id"), req.Role)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

// AdminChangeUserStatusHandler activates or suspends a user account.
func AdminChangeUserStatusHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.StatusChangeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		sess := middleware.CurrentSession(c)
		user, err := client.UpdateUserStatus(c.Request().Context(), sess.Token, c.Param("id"), req.Status)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

// AdminDeleteUserHandler removes a user account.
func AdminDeleteUserHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		if err := client.DeleteUser(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
			return backendErrorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// AdminListGuestApplicationsHandler serves the guest application pipeline.
func AdminListGuestApplicationsHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		page, _ := strconv.Atoi(c.QueryParam("page"))
		limit, _ := strconv.Atoi(c.QueryParam("limit"))

		apps, total, err := client.ListGuestApplications(c.Request().Context(), sess.Token, page, limit)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"applications": apps,
			"total":        total,
		})
	}
}

// AdminGuestApplicationStatusHandler moves a guest application through the
// review pipeline.
func AdminGuestApplicationStatusHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.StatusChangeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if !models.ValidGuestStatus(req.Status) {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", "Unknown application status")
		}

		sess := middleware.CurrentSession(c)
		app, err := client.UpdateGuestApplicationStatus(c.Request().Context(), sess.Token, c.Param("id"), req.Status)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, app)
	}
}

// AdminNewsletterHandler lists newsletter subscribers.
func AdminNewsletterHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		subs, err := client.ListNewsletterSubscribers(c.Request().Context(), sess.Token)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"subscribers": subs,
		})
	}
}

// AdminContactMessagesHandler lists contact inbox messages.
func AdminContactMessagesHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		messages, err := client.ListContactMessages(c.Request().Context(), sess.Token)
		if err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"messages": messages,
		})
	}
}

// AdminMarkContactReadHandler marks a contact message as handled.
func AdminMarkContactReadHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		if err := client.MarkContactRead(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
			return backendErrorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
