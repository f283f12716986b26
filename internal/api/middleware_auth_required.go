package api

import "github.com/gofiber/fiber/v2"

const contextAdminKey = "admin_email"

// AuthRequired gates protected routes on a valid session cookie, i.e. a
// completed two-step login. The UI owns redirecting unauthorized users back
// to its login screen.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	identity, err := handler.parseTokenCookie(c, sessionCookieName, purposeSession)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextAdminKey, identity)
	return c.Next()
}
