package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/osscccar/webdash-admin/internal/api"
	"github.com/osscccar/webdash-admin/internal/cli"
	"github.com/osscccar/webdash-admin/internal/db"
	"github.com/osscccar/webdash-admin/internal/mail"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := cli.RunHashPasswordCommand(); err != nil {
			log.Fatalf("hash-password failed: %v", err)
		}
		return
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "webdash.db"))
	port := getEnv("PORT", "8080")
	appEnv := getEnv("APP_ENV", "development")
	cookieSecure := getEnvBool("COOKIE_SECURE", appEnv == "production")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminPasswordHash == "" {
		log.Fatal("config error: ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required (run `webdash hash-password` to generate the hash)")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	mailer := buildMailer()

	handler := api.NewHandler(database, api.Config{
		SecretKey:               secretKey,
		AdminEmail:              adminEmail,
		AdminPasswordHash:       adminPasswordHash,
		CookieSecure:            cookieSecure,
		ExposeVerificationCodes: appEnv != "production",
	}, mailer)

	app := fiber.New(fiber.Config{
		AppName:               "WebDash Admin",
		DisableStartupMessage: true,
		BodyLimit:             25 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("WebDash Admin listening on http://0.0.0.0:%s (db: %s, env: %s)", port, dbPath, appEnv)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secretKey := os.Getenv("SECRET_KEY")
	switch {
	case secretKey == "":
		return "", errors.New("SECRET_KEY is required")
	case secretKey == "change_me_in_production":
		return "", errors.New("SECRET_KEY still uses the insecure placeholder")
	case len(secretKey) < 32:
		return "", fmt.Errorf("SECRET_KEY must be at least 32 characters, got %d", len(secretKey))
	}
	return secretKey, nil
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:X-Csrf-Token",
		CookieName:     "webdash_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

// buildMailer uses Resend when credentials are present and falls back to
// log-only delivery for local development.
func buildMailer() mail.Mailer {
	apiKey := os.Getenv("RESEND_API_KEY")
	from := getEnv("MAIL_FROM", "WebDash <noreply@webdash.example>")
	if apiKey == "" {
		log.Print("RESEND_API_KEY not set, outbound email is log-only")
		return mail.NewLogMailer()
	}
	return mail.NewResendMailer(apiKey, from)
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, value, fallback)
		return fallback
	}
	return parsed
}
