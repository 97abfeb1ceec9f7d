package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

func HttpCacheInMemory(ttl int) fiber.Handler {
	if ttl <= 0 {
		ttl = 5
	}
	return cache.New(cache.Config{
		Next: func(c *fiber.Ctx) bool {
			if c.Method() != fiber.MethodGet {
				return true
			}
			// Status, QR and the streaming endpoints must never be served stale.
			path := c.Path()
			return strings.Contains(path, "/whatsapp/") || strings.Contains(path, "/metrics")
		},
		Expiration: time.Duration(ttl) * time.Second,
	})
}
