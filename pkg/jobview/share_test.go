package jobview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalJobURL(t *testing.T) {
	assert.Equal(t, "https://jobquest.example/job/j1",
		CanonicalJobURL("https://jobquest.example", "j1"))
	assert.Equal(t, "https://jobquest.example/job/j1",
		CanonicalJobURL("https://jobquest.example/", "j1"))
}

func TestBuildShareLinks(t *testing.T) {
	links := BuildShareLinks("https://jobquest.example", "j1", "Backend Engineer", "Acme")

	assert.Equal(t, "https://jobquest.example/job/j1", links.URL)
	assert.True(t, strings.HasPrefix(links.LinkedIn, "https://www.linkedin.com/sharing/share-offsite/?url="))
	assert.Contains(t, links.LinkedIn, "https%3A%2F%2Fjobquest.example%2Fjob%2Fj1")
	assert.Contains(t, links.Twitter, "url=https%3A%2F%2Fjobquest.example%2Fjob%2Fj1")
	assert.Contains(t, links.WhatsApp, "https://wa.me/?text=")

	// mail clients do not understand "+" as a space
	assert.NotContains(t, links.Mailto, "+")
	assert.Contains(t, links.Mailto, "Backend%20Engineer")
}

func TestApplySubject(t *testing.T) {
	assert.Equal(t, "Application for Backend Engineer position", ApplySubject("Backend Engineer"))
}

func TestApplyBody(t *testing.T) {
	body := ApplyBody("Jo Doe", "jo@example.com", "")
	assert.Contains(t, body, "Name: Jo Doe")
	assert.Contains(t, body, "Email: jo@example.com")
	assert.NotContains(t, body, "Phone:")
}

func TestBuildComposeLinks(t *testing.T) {
	links := BuildComposeLinks("hr@acme.test", "Application for Backend Engineer position", "hello")

	assert.Contains(t, links.Gmail, "https://mail.google.com/mail/?view=cm&fs=1&to=hr%40acme.test")
	assert.Contains(t, links.Gmail, "su=Application%20for%20Backend%20Engineer%20position")
	assert.Contains(t, links.Outlook, "https://outlook.office.com/mail/deeplink/compose?to=")
	assert.True(t, strings.HasPrefix(links.Mailto, "mailto:hr@acme.test?subject="))
}
