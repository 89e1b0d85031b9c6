package jobview

import (
	"fmt"
	"net/url"
	"strings"
)

// ShareLinks carries the share-intent deep links for one job. The share
// targets themselves are black-box URL templates owned by the providers.
type ShareLinks struct {
	URL      string
	Mailto   string
	LinkedIn string
	Twitter  string
	WhatsApp string
}

// ComposeLinks carries provider compose URLs for an application email.
type ComposeLinks struct {
	Gmail   string
	Outlook string
	Mailto  string
}

// NoContactPlaceholder is what "Copy Email" yields for jobs posted without
// a contact address.
const NoContactPlaceholder = "No contact email available"

// CanonicalJobURL builds the public URL for a job: origin + /job/{id}.
func CanonicalJobURL(origin, jobID string) string {
	return strings.TrimRight(origin, "/") + "/job/" + jobID
}

// BuildShareLinks constructs the share deep links for a job card.
func BuildShareLinks(origin, jobID, title, company string) ShareLinks {
	jobURL := CanonicalJobURL(origin, jobID)
	msg := shareMessage(title, company)

	return ShareLinks{
		URL:      jobURL,
		Mailto:   fmt.Sprintf("mailto:?subject=%s&body=%s", escape(msg), escape(msg+"\n\n"+jobURL)),
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + escape(jobURL),
		Twitter:  fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s", escape(msg), escape(jobURL)),
		WhatsApp: "https://wa.me/?text=" + escape(msg+" "+jobURL),
	}
}

// ApplySubject is the deterministic subject line for application emails.
func ApplySubject(title string) string {
	return fmt.Sprintf("Application for %s position", title)
}

// ApplyBody templates the email body from the applicant's known contact
// details. Empty fields are simply omitted.
func ApplyBody(name, email, phone string) string {
	var b strings.Builder
	b.WriteString("Dear Hiring Manager,\n\n")
	b.WriteString("I would like to apply for this position. Please find my contact details below.\n\n")
	if name != "" {
		fmt.Fprintf(&b, "Name: %s\n", name)
	}
	if email != "" {
		fmt.Fprintf(&b, "Email: %s\n", email)
	}
	if phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", phone)
	}
	b.WriteString("\nBest regards,\n")
	b.WriteString(name)
	return b.String()
}

// BuildComposeLinks constructs prefilled compose URLs for each provider.
func BuildComposeLinks(to, subject, body string) ComposeLinks {
	return ComposeLinks{
		Gmail: fmt.Sprintf(
			"https://mail.google.com/mail/?view=cm&fs=1&to=%s&su=%s&body=%s",
			escape(to), escape(subject), escape(body)),
		Outlook: fmt.Sprintf(
			"https://outlook.office.com/mail/deeplink/compose?to=%s&subject=%s&body=%s",
			escape(to), escape(subject), escape(body)),
		Mailto: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			to, escape(subject), escape(body)),
	}
}

func shareMessage(title, company string) string {
	if company != "" {
		return fmt.Sprintf("Check out this %s position at %s!", title, company)
	}
	return fmt.Sprintf("Check out this %s position!", title)
}

// escape percent-encodes a query component. QueryEscape's "+" for spaces is
// not understood by mail clients, so spaces become %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
