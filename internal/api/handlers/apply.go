package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/apply"
	"jobquest-web/internal/backend"
	"jobquest-web/pkg/models"
)

// StartApplicationHandler opens an application flow for a job. Guests land in
// the application form, signed-in users go straight to the provider chooser.
func StartApplicationHandler(client *backend.Client, flows *apply.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			JobID string `json:"job_id" validate:"required"`
		}
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		job, err := client.GetJob(c.Request().Context(), req.JobID)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		sess := middleware.CurrentSession(c)
		flow := flows.Start(job, sess.User, sess.Token)
		return c.JSON(http.StatusCreated, flow.Snapshot())
	}
}

// ApplicationStateHandler reports a flow's current state.
func ApplicationStateHandler(flows *apply.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		flow, ok := flows.Get(c.Param("id"))
		if !ok {
			return errorJSON(c, http.StatusNotFound, "flow_not_found", "Application flow not found")
		}
		return c.JSON(http.StatusOK, flow.Snapshot())
	}
}

// SubmitGuestApplicationHandler submits the guest form for a flow. Missing
// required fields come back as field errors with no backend call made.
func SubmitGuestApplicationHandler(flows *apply.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		flow, ok := flows.Get(c.Param("id"))
		if !ok {
			return errorJSON(c, http.StatusNotFound, "flow_not_found", "Application flow not found")
		}

		var req models.GuestApplicationRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		snap, err := flow.SubmitGuest(c.Request().Context(), req)
		if err != nil {
			return errorJSON(c, http.StatusConflict, "invalid_state", err.Error())
		}
		return c.JSON(http.StatusOK, snap)
	}
}

// ChooseProviderHandler resolves a compose URL and closes the flow.
func ChooseProviderHandler(flows *apply.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		flow, ok := flows.Get(c.Param("id"))
		if !ok {
			return errorJSON(c, http.StatusNotFound, "flow_not_found", "Application flow not found")
		}

		var req struct {
			Provider string `json:"provider" validate:"required,oneof=gmail outlook mailto"`
		}
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		url, err := flow.ChooseProvider(c.Request().Context(), apply.Provider(req.Provider))
		if err != nil {
			return errorJSON(c, http.StatusConflict, "invalid_state", err.Error())
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"url":   url,
			"state": flow.State(),
		})
	}
}

// CopyEmailHandler returns the contact address for the clipboard, or the
// placeholder when the job has none.
func CopyEmailHandler(flows *apply.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		flow, ok := flows.Get(c.Param("id"))
		if !ok {
			return errorJSON(c, http.StatusNotFound, "flow_not_found", "Application flow not found")
		}
		return c.JSON(http.StatusOK, map[string]string{
			"email": flow.CopyEmail(),
		})
	}
}

// CloseApplicationHandler ends a flow from any state.
func CloseApplicationHandler(flows *apply.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		flows.Remove(c.Param("id"))
		return c.NoContent(http.StatusNoContent)
	}
}
