package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/env"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
)

// APIKey is the single static key protecting the API surface.
// REQUIRED: application will panic if not set.
var APIKey string

func init() {
	APIKey = env.MustGetEnvString("API_KEY")
}

// extractKey reads the key from X-API-Key, falling back to
// "Authorization: Bearer <key>".
func extractKey(c *fiber.Ctx) string {
	if key := c.Get("X-API-Key"); key != "" {
		return key
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// APIKeyAuth validates the static API key by exact match.
func APIKeyAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := extractKey(c)
		if key == "" {
			return router.ResponseUnauthorized(c, "Missing X-API-Key header")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(APIKey)) != 1 {
			return router.ResponseUnauthorized(c, "Invalid API key")
		}

		return c.Next()
	}
}
