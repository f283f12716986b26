package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNotifyPhaseUpdateEmailsTheClient(t *testing.T) {
	app, mailer := newTestApp(t)
	session := loginSession(t, app)
	clientID := createTestClient(t, app, session, "Notify Co", "owner@notify.example")

	complete := postJSON(t, app, "/api/clients/"+clientID+"/phases/0/status",
		fiber.Map{"status": "completed"}, session)
	complete.Body.Close()

	sentBefore := len(mailer.sent())
	response := postJSON(t, app, "/api/clients/"+clientID+"/notify/phase",
		fiber.Map{"phase": 0}, session)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	messages := mailer.sent()
	if len(messages) != sentBefore+1 {
		t.Fatalf("expected one new email, got %d", len(messages)-sentBefore)
	}
	message := messages[len(messages)-1]
	if message.To != "owner@notify.example" {
		t.Fatalf("email sent to %q", message.To)
	}
	if !strings.Contains(message.HTML, "complete") {
		t.Fatalf("completed-phase email must say so: %q", message.HTML)
	}
}

func TestNotifyPhaseUpdateRejectsBadIndex(t *testing.T) {
	app, _ := newTestApp(t)
	session := loginSession(t, app)
	clientID := createTestClient(t, app, session, "Notify Co", "owner@notify.example")

	response := postJSON(t, app, "/api/clients/"+clientID+"/notify/phase",
		fiber.Map{"phase": 42}, session)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestNotifyWebsiteLiveRequiresURL(t *testing.T) {
	app, mailer := newTestApp(t)
	session := loginSession(t, app)
	clientID := createTestClient(t, app, session, "Launch Co", "owner@launch.example")

	missing := postJSON(t, app, "/api/clients/"+clientID+"/notify/website-live", nil, session)
	if missing.StatusCode != http.StatusBadRequest {
		t.Fatalf("no url recorded: expected 400, got %d", missing.StatusCode)
	}
	missing.Body.Close()

	urls := requestJSON(t, app, http.MethodPatch, "/api/clients/"+clientID+"/urls",
		fiber.Map{"website_url": "https://launch.example"}, session)
	urls.Body.Close()

	sentBefore := len(mailer.sent())
	response := postJSON(t, app, "/api/clients/"+clientID+"/notify/website-live", nil, session)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	messages := mailer.sent()
	if len(messages) != sentBefore+1 {
		t.Fatalf("expected one new email, got %d", len(messages)-sentBefore)
	}
	message := messages[len(messages)-1]
	if !strings.Contains(message.HTML, "https://launch.example") {
		t.Fatalf("live email must link the site: %q", message.HTML)
	}
}

func TestSendClientEmailWithAttachment(t *testing.T) {
	app, mailer := newTestApp(t)
	session := loginSession(t, app)
	clientID := createTestClient(t, app, session, "Invoice Co", "owner@invoice.example")

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	if err := writer.WriteField("subject", "March invoice"); err != nil {
		t.Fatalf("write subject: %v", err)
	}
	if err := writer.WriteField("body", "Hi,\nplease find the invoice attached."); err != nil {
		t.Fatalf("write body: %v", err)
	}
	part, err := writer.CreateFormFile("attachments", "invoice.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 fake invoice")); err != nil {
		t.Fatalf("write attachment: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/clients/"+clientID+"/email", &buffer)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Cookie", session)

	sentBefore := len(mailer.sent())
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	messages := mailer.sent()
	if len(messages) != sentBefore+1 {
		t.Fatalf("expected one new email, got %d", len(messages)-sentBefore)
	}
	message := messages[len(messages)-1]
	if message.Subject != "March invoice" {
		t.Fatalf("subject: %q", message.Subject)
	}
	if !strings.Contains(message.HTML, "invoice attached") {
		t.Fatalf("body missing: %q", message.HTML)
	}
	if !strings.Contains(message.HTML, "<br>") {
		t.Fatalf("line breaks must survive as <br>: %q", message.HTML)
	}
	if len(message.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(message.Attachments))
	}
	if message.Attachments[0].Filename != "invoice.pdf" {
		t.Fatalf("attachment filename: %q", message.Attachments[0].Filename)
	}
	if !bytes.Contains(message.Attachments[0].Content, []byte("fake invoice")) {
		t.Fatal("attachment content lost in transit")
	}
}

func TestSendClientEmailValidatesSubjectAndBody(t *testing.T) {
	app, _ := newTestApp(t)
	session := loginSession(t, app)
	clientID := createTestClient(t, app, session, "Strict Co", "owner@strict.example")

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	_ = writer.WriteField("body", "no subject here")
	_ = writer.Close()

	request := httptest.NewRequest(http.MethodPost, "/api/clients/"+clientID+"/email", &buffer)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Cookie", session)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestSendClientEmailFailureReturnsBadGateway(t *testing.T) {
	app, mailer := newTestApp(t)
	session := loginSession(t, app)
	clientID := createTestClient(t, app, session, "Flaky Co", "owner@flaky.example")

	mailer.fail = true

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	_ = writer.WriteField("subject", "hello")
	_ = writer.WriteField("body", "world")
	_ = writer.Close()

	request := httptest.NewRequest(http.MethodPost, "/api/clients/"+clientID+"/email", &buffer)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Cookie", session)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", response.StatusCode)
	}
	response.Body.Close()
}
