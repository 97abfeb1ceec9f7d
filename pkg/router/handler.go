package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func HttpErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	if fiberErr, ok := err.(*fiber.Error); ok {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	response := &Response{
		Success:   false,
		Message:   message,
		Error:     message,
		Timestamp: time.Now().UTC(),
	}
	logError(c, code, response.Message)
	return c.Status(code).JSON(response)
}
