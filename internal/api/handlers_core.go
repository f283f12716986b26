package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/osscccar/webdash-admin/internal/db"
	"github.com/osscccar/webdash-admin/internal/mail"
	"github.com/osscccar/webdash-admin/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, config Config, mailer mail.Mailer) *Handler {
	repositories := db.NewRepositories(database)
	codeStore := services.NewCodeStore(services.DefaultCodeTTL, nil)

	return &Handler{
		secretKey:         []byte(config.SecretKey),
		adminEmail:        strings.ToLower(strings.TrimSpace(config.AdminEmail)),
		adminPasswordHash: config.AdminPasswordHash,
		cookieSecure:      config.CookieSecure,
		exposeCodes:       config.ExposeVerificationCodes,
		clients:           services.NewClientService(repositories.Clients),
		verification:      services.NewVerificationService(codeStore, mailer, nil),
		mailer:            mailer,
		loginLimiter:      newAttemptLimiter(),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
