// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const LocRawToken = "raw_token"

// GetRawAccessToken returns the access token from:
// 1) Authorization header "Bearer <token>"
// 2) Locals("raw_token") set by the auth middleware
// 3) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	return ""
}

// SetRawAccessToken stores the raw token in Locals for reuse downstream.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}
