package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobquest-web/internal/backend"
	"jobquest-web/pkg/models"
)

// NewsletterSubscribeHandler signs an email up for the newsletter.
func NewsletterSubscribeHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.NewsletterRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		if err := client.SubscribeNewsletter(c.Request().Context(), req.Email); err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "subscribed"})
	}
}

// NewsletterUnsubscribeHandler removes an email from the newsletter.
func NewsletterUnsubscribeHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.NewsletterRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		if err := client.UnsubscribeNewsletter(c.Request().Context(), req.Email); err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "unsubscribed"})
	}
}

// ContactHandler forwards a contact form submission.
func ContactHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ContactRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		if err := client.SubmitContact(c.Request().Context(), req); err != nil {
			return backendErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "sent"})
	}
}
