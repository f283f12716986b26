package mail

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/osscccar/webdash-admin/internal/models"
)

// BuildVerificationMessage carries a login verification code to the admin
// inbox.
func BuildVerificationMessage(identity string, code string) Message {
	return Message{
		To:      identity,
		Subject: "Your WebDash verification code",
		HTML: fmt.Sprintf(
			"<p>Your verification code is <strong>%s</strong>.</p><p>It expires in 10 minutes.</p>",
			template.HTMLEscapeString(code),
		),
	}
}

// BuildPhaseUpdateMessage tells a client their project moved to a new phase
// state.
func BuildPhaseUpdateMessage(client models.Client, phase models.Phase) Message {
	greeting := clientGreeting(client)
	var body string
	switch phase.Status {
	case models.PhaseStatusCompleted:
		body = fmt.Sprintf(
			"<p>%s</p><p>Good news: the <strong>%s</strong> phase of your website project is complete.</p>",
			greeting,
			template.HTMLEscapeString(phase.Name),
		)
	case models.PhaseStatusActive:
		body = fmt.Sprintf(
			"<p>%s</p><p>Your website project has moved into the <strong>%s</strong> phase.</p>",
			greeting,
			template.HTMLEscapeString(phase.Name),
		)
	default:
		body = fmt.Sprintf(
			"<p>%s</p><p>The <strong>%s</strong> phase of your website project was updated.</p>",
			greeting,
			template.HTMLEscapeString(phase.Name),
		)
	}

	return Message{
		To:      client.Email,
		Subject: fmt.Sprintf("Project update: %s", phase.Name),
		HTML:    body,
	}
}

// BuildWebsiteLiveMessage announces the published site. The caller must have
// checked that WebsiteURL is set.
func BuildWebsiteLiveMessage(client models.Client) Message {
	url := template.HTMLEscapeString(client.WebsiteURL)
	return Message{
		To:      client.Email,
		Subject: "Your website is live!",
		HTML: fmt.Sprintf(
			"<p>%s</p><p>Your website is now live at <a href=\"%s\">%s</a>.</p>",
			clientGreeting(client),
			url,
			url,
		),
	}
}

// BuildAdHocMessage wraps a free-form note from the admin, preserving line
// breaks.
func BuildAdHocMessage(client models.Client, subject string, body string, attachments []Attachment) Message {
	paragraphs := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	escaped := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		escaped = append(escaped, template.HTMLEscapeString(paragraph))
	}

	return Message{
		To:          client.Email,
		Subject:     subject,
		HTML:        "<p>" + strings.Join(escaped, "<br>") + "</p>",
		Attachments: attachments,
	}
}

func clientGreeting(client models.Client) string {
	name := strings.TrimSpace(client.ContactName)
	if name == "" {
		name = strings.TrimSpace(client.BusinessName)
	}
	if name == "" {
		return "Hi,"
	}
	return fmt.Sprintf("Hi %s,", template.HTMLEscapeString(name))
}
