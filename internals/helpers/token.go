package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID returns the authenticated user's id from Locals, or uuid.Nil
// for anonymous requests.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func GetUserEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_email").(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func GetUserName(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_name").(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return v
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == "admin"
}

// GetRefreshTokenFromCookie reads the refresh token set at login
func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}
