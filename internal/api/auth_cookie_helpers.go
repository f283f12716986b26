package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func (handler *Handler) setSessionCookie(c *fiber.Ctx) error {
	token, err := handler.buildToken(purposeSession, sessionTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(sessionTokenTTL),
	})
	return nil
}

func (handler *Handler) setPendingCookie(c *fiber.Ctx) error {
	token, err := handler.buildToken(purposePending, pendingTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     pendingCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(pendingTokenTTL),
	})
	return nil
}

func (handler *Handler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildToken(purpose string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := authClaims{
		Email:   handler.adminEmail,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   handler.adminEmail,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

// parseTokenCookie validates the named cookie as a JWT issued for the given
// purpose and returns the embedded identity.
func (handler *Handler) parseTokenCookie(c *fiber.Ctx, cookieName string, purpose string) (string, error) {
	rawToken := strings.TrimSpace(c.Cookies(cookieName))
	if rawToken == "" {
		return "", errors.New("missing auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	if claims.Purpose != purpose {
		return "", errors.New("wrong token purpose")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return "", errors.New("token expired")
	}
	if !strings.EqualFold(claims.Email, handler.adminEmail) {
		return "", errors.New("unknown identity")
	}

	return claims.Email, nil
}
