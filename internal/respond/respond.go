package respond

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
)

// Error maps a facade failure onto the response envelope. Validation
// failures are 400, missing resources 404, everything else 500 with the
// stable code prefixed so callers can branch without parsing prose.
func Error(c *fiber.Ctx, err error) error {
	typed := session.AsError(err, "INTERNAL_ERROR", "unexpected failure")

	switch typed.Code {
	case session.CodeValidation:
		return router.ResponseBadRequest(c, typed.Message)
	case session.CodeNotFound:
		return router.ResponseNotFound(c, typed.Message)
	default:
		return router.ResponseInternalError(c, typed.Error())
	}
}
