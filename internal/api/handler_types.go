package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/osscccar/webdash-admin/internal/mail"
	"github.com/osscccar/webdash-admin/internal/services"
)

const (
	sessionCookieName = "webdash_session"
	pendingCookieName = "webdash_pending"

	purposeSession = "session"
	purposePending = "pending-2fa"

	sessionTokenTTL = 24 * time.Hour
	pendingTokenTTL = 10 * time.Minute

	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

// Config carries the deployment knobs read from the environment in cmd.
type Config struct {
	SecretKey         string
	AdminEmail        string
	AdminPasswordHash string
	CookieSecure      bool
	// ExposeVerificationCodes echoes issued codes in login/resend responses.
	// Never enabled in production; codes travel by email there.
	ExposeVerificationCodes bool
}

type Handler struct {
	secretKey         []byte
	adminEmail        string
	adminPasswordHash string
	cookieSecure      bool
	exposeCodes       bool

	clients      *services.ClientService
	verification *services.VerificationService
	mailer       mail.Mailer
	loginLimiter *attemptLimiter
}

type authClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}
