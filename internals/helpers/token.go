package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware.
const (
	LocUserEmail = "userEmail"
	LocClaims    = "userClaims"
)

// GetRawAccessToken returns the bearer token from the Authorization header.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserEmail returns the authenticated email stored by the auth middleware,
// or "" when the request did not pass through it.
func GetUserEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserEmail).(string); ok {
		return v
	}
	return ""
}
