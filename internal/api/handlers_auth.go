package api

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/osscccar/webdash-admin/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// Login is step one of the two-step flow. A correct password issues a 6-digit
// code by email and a short-lived pending cookie; the session cookie only
// appears after VerifyLogin.
func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, time.Now(), loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts, try again later")
	}

	email := normalizeEmail(input.Email)
	if email == "" || !strings.EqualFold(email, handler.adminEmail) ||
		bcrypt.CompareHashAndPassword([]byte(handler.adminPasswordHash), []byte(input.Password)) != nil {
		handler.loginLimiter.addFailure(limiterKey, time.Now(), loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.loginLimiter.reset(limiterKey)

	code, err := handler.verification.IssueCode(c.Context(), handler.adminEmail)
	delivered := true
	if err != nil {
		if !errors.Is(err, services.ErrCodeDelivery) {
			log.Printf("login: issue verification code: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "could not issue verification code")
		}
		// Code is stored and stays valid; the caller can retry via resend.
		log.Printf("login: %v", err)
		delivered = false
	}

	if err := handler.setPendingCookie(c); err != nil {
		log.Printf("login: sign pending token: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not start verification")
	}

	response := fiber.Map{"ok": true, "delivered": delivered}
	if handler.exposeCodes {
		response["debug_code"] = code
	}
	return c.JSON(response)
}

// VerifyLogin is step two: it consumes the outstanding code and upgrades the
// pending cookie to a real session.
func (handler *Handler) VerifyLogin(c *fiber.Ctx) error {
	if _, err := handler.parseTokenCookie(c, pendingCookieName, purposePending); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "no pending login")
	}

	input := verifyInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		return apiError(c, fiber.StatusBadRequest, "code is required")
	}

	if err := handler.verification.VerifyCode(handler.adminEmail, code); err != nil {
		switch {
		case errors.Is(err, services.ErrCodeNotFound):
			return apiError(c, fiber.StatusUnauthorized, "code not found")
		case errors.Is(err, services.ErrCodeExpired):
			return apiError(c, fiber.StatusUnauthorized, "code expired")
		case errors.Is(err, services.ErrCodeMismatch):
			return apiError(c, fiber.StatusUnauthorized, "invalid code")
		default:
			log.Printf("verify: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "verification failed")
		}
	}

	handler.clearCookie(c, pendingCookieName)
	if err := handler.setSessionCookie(c); err != nil {
		log.Printf("verify: sign session token: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not create session")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ResendCode replaces the outstanding code with a fresh one. The previous
// code stops working immediately.
func (handler *Handler) ResendCode(c *fiber.Ctx) error {
	if _, err := handler.parseTokenCookie(c, pendingCookieName, purposePending); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "no pending login")
	}

	code, err := handler.verification.IssueCode(c.Context(), handler.adminEmail)
	delivered := true
	if err != nil {
		if !errors.Is(err, services.ErrCodeDelivery) {
			log.Printf("resend: issue verification code: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "could not issue verification code")
		}
		log.Printf("resend: %v", err)
		delivered = false
	}

	response := fiber.Map{"ok": true, "delivered": delivered}
	if handler.exposeCodes {
		response["debug_code"] = code
	}
	return c.JSON(response)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearCookie(c, sessionCookieName)
	handler.clearCookie(c, pendingCookieName)
	return c.JSON(fiber.Map{"ok": true})
}
