// Package backend is the typed client for the external JobQuest REST API.
// Every business operation in the gateway goes through it; the API's
// correctness is assumed, and this client only shapes requests, carries the
// session bearer token and reports failures.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"jobquest-web/internal/config"
	"jobquest-web/internal/logging"
)

// APIError is a non-2xx answer from the backend, with the decoded message
// when one was provided.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Retryable reports whether the failure is worth a retry from the caller's
// point of view (server-side errors, not client mistakes).
func (e *APIError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// Client talks to the JobQuest backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	logger     logging.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg *config.Config, logger logging.Logger) *Client {
	rps := rate.Limit(float64(cfg.Backend.RateLimit) / 60.0)

	return &Client{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Backend.Timeout},
		limiter:    rate.NewLimiter(rps, cfg.Backend.Burst),
		maxRetries: cfg.Backend.MaxRetries,
		logger:     logger.WithField("component", "backend_client"),
	}
}

// do performs one JSON API call. body is marshalled when non-nil; the
// response is decoded into out when non-nil. Network failures and 5xx
// responses are retried with backoff up to the configured attempts.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Warn("Backend request failed", map[string]interface{}{
				"method":  method,
				"path":    path,
				"attempt": attempt + 1,
				"error":   err.Error(),
			})
			continue
		}

		err = c.handleResponse(resp, out)
		if apiErr, ok := err.(*APIError); ok && apiErr.Retryable() && attempt < c.maxRetries {
			lastErr = err
			continue
		}
		return err
	}

	return fmt.Errorf("backend request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// doMultipart performs a multipart form upload. Uploads are not retried:
// the file reader is consumed by the first attempt.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, fields map[string]string, fileField, filename string, file io.Reader, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend upload failed: %w", err)
	}
	return c.handleResponse(resp, out)
}

func (c *Client) handleResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var decoded struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil {
			apiErr.Code = decoded.Error
			apiErr.Message = decoded.Message
			if apiErr.Message == "" {
				apiErr.Message = decoded.Error
			}
		}
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}
