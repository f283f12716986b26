package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/osscccar/webdash-admin/internal/db"
	"github.com/osscccar/webdash-admin/internal/mail"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "admin@webdash.io"
	testAdminPassword = "StrongPass1"
)

type recordingMailer struct {
	mu       sync.Mutex
	messages []mail.Message
	fail     bool
}

func (mailer *recordingMailer) Send(_ context.Context, message mail.Message) error {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if mailer.fail {
		return errors.New("smtp unreachable")
	}
	mailer.messages = append(mailer.messages, message)
	return nil
}

func (mailer *recordingMailer) sent() []mail.Message {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	return append([]mail.Message(nil), mailer.messages...)
}

func newTestApp(t *testing.T) (*fiber.App, *recordingMailer) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "webdash-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	mailer := &recordingMailer{}
	handler := NewHandler(database, Config{
		SecretKey:               "test-secret-key",
		AdminEmail:              testAdminEmail,
		AdminPasswordHash:       string(passwordHash),
		ExposeVerificationCodes: true,
	}, mailer)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, mailer
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any, cookies ...string) *http.Response {
	t.Helper()
	return requestJSON(t, app, http.MethodPost, path, payload, cookies...)
}

func requestJSON(t *testing.T, app *fiber.App, method string, path string, payload any, cookies ...string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if len(cookies) > 0 {
		request.Header.Set("Cookie", strings.Join(cookies, "; "))
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode body %q: %v", string(raw), err)
	}
	return decoded
}

func extractCookie(t *testing.T, response *http.Response, name string) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == name && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatalf("cookie %q not set on response", name)
	return ""
}

// loginSession walks the full two-step flow and returns a session cookie
// usable on protected routes.
func loginSession(t *testing.T, app *fiber.App) string {
	t.Helper()

	loginResponse := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	if loginResponse.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", loginResponse.StatusCode)
	}
	pendingCookie := extractCookie(t, loginResponse, pendingCookieName)
	loginBody := decodeBody(t, loginResponse)

	code, _ := loginBody["debug_code"].(string)
	if code == "" {
		t.Fatalf("login response carried no debug code: %v", loginBody)
	}

	verifyResponse := postJSON(t, app, "/api/auth/verify", fiber.Map{"code": code}, pendingCookie)
	if verifyResponse.StatusCode != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d", verifyResponse.StatusCode)
	}
	defer verifyResponse.Body.Close()

	return extractCookie(t, verifyResponse, sessionCookieName)
}

func createTestClient(t *testing.T, app *fiber.App, session string, businessName string, email string) string {
	t.Helper()

	response := postJSON(t, app, "/api/clients", fiber.Map{
		"business_name": businessName,
		"contact_name":  "Avery",
		"email":         email,
	}, session)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create client: expected 201, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	clientID, _ := body["id"].(string)
	if clientID == "" {
		t.Fatalf("create client response carried no id: %v", body)
	}
	return clientID
}
