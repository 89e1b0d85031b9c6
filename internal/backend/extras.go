package backend

import (
	"context"
	"net/http"
	"net/url"

	"jobquest-web/pkg/models"
)

// SubscribeNewsletter adds an email to the newsletter list.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	body := models.NewsletterRequest{Email: email}
	return c.do(ctx, http.MethodPost, "/api/newsletter/subscribe", "", nil, body, nil)
}

// UnsubscribeNewsletter removes an email from the newsletter list.
func (c *Client) UnsubscribeNewsletter(ctx context.Context, email string) error {
	body := models.NewsletterRequest{Email: email}
	return c.do(ctx, http.MethodPost, "/api/newsletter/unsubscribe", "", nil, body, nil)
}

// ListNewsletterSubscribers returns the newsletter list. Admin only.
func (c *Client) ListNewsletterSubscribers(ctx context.Context, token string) ([]models.NewsletterSubscriber, error) {
	var out struct {
		Subscribers []models.NewsletterSubscriber `json:"subscribers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/newsletter/subscribers", token, nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Subscribers == nil {
		out.Subscribers = []models.NewsletterSubscriber{}
	}
	return out.Subscribers, nil
}

// SubmitContact sends a contact form message.
func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/api/contact", "", nil, req, nil)
}

// ListContactMessages returns contact inbox messages. Admin only.
func (c *Client) ListContactMessages(ctx context.Context, token string) ([]models.ContactMessage, error) {
	var out struct {
		Messages []models.ContactMessage `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/contact", token, nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Messages == nil {
		out.Messages = []models.ContactMessage{}
	}
	return out.Messages, nil
}

// MarkContactRead marks a contact message as handled. Admin only.
func (c *Client) MarkContactRead(ctx context.Context, token, id string) error {
	path := "/api/contact/" + url.PathEscape(id) + "/read"
	return c.do(ctx, http.MethodPatch, path, token, nil, nil, nil)
}

// Ping checks the backend's health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", "", nil, nil, nil)
}
