// Package handlers contains the HTTP handlers for the session gateway. Each
// handler is a constructor closing over its dependencies and returning an
// echo.HandlerFunc.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/backend"
	"jobquest-web/pkg/models"
)

var validate = validator.New()

func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: middleware.RequestID(c),
		Timestamp: time.Now(),
	})
}

// backendErrorJSON translates a backend client failure into a gateway
// response. Backend status codes pass through so the view can distinguish a
// missing job from a broken backend; transport failures become a 502.
func backendErrorJSON(c echo.Context, err error) error {
	if apiErr, ok := err.(*backend.APIError); ok {
		message := apiErr.Message
		if message == "" {
			message = "Backend request failed"
		}
		return c.JSON(apiErr.StatusCode, models.ErrorResponse{
			Error:     "backend_error",
			Message:   message,
			Retryable: apiErr.Retryable(),
			RequestID: middleware.RequestID(c),
			Timestamp: time.Now(),
		})
	}

	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:     "backend_unreachable",
		Message:   "Backend request failed",
		Retryable: true,
		RequestID: middleware.RequestID(c),
		Timestamp: time.Now(),
	})
}
