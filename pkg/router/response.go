package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func logSuccess(c *fiber.Ctx, code int, message string) {
	statusMessage := http.StatusText(code)

	if statusMessage == message || c.OriginalURL() == BaseURL {
		log.Print(c).Info(fmt.Sprintf("%d %v", code, statusMessage))
	} else {
		log.Print(c).Info(fmt.Sprintf("%d %v", code, message))
	}
}

func logError(c *fiber.Ctx, code int, message string) {
	statusMessage := http.StatusText(code)

	if statusMessage == message {
		log.Print(c).Error(fmt.Sprintf("%d %v", code, statusMessage))
	} else {
		log.Print(c).Error(fmt.Sprintf("%d %v", code, message))
	}
}

func success(c *fiber.Ctx, code int, message string, data interface{}) error {
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(code)
	}
	response := Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	logSuccess(c, code, response.Message)
	return c.Status(code).JSON(response)
}

func failure(c *fiber.Ctx, code int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(code)
	}
	response := Response{
		Success:   false,
		Message:   message,
		Error:     message,
		Timestamp: time.Now().UTC(),
	}

	logError(c, code, response.Message)
	return c.Status(code).JSON(response)
}

func ResponseSuccess(c *fiber.Ctx, message string) error {
	return success(c, http.StatusOK, message, nil)
}

func ResponseSuccessWithData(c *fiber.Ctx, message string, data interface{}) error {
	return success(c, http.StatusOK, message, data)
}

func ResponseCreated(c *fiber.Ctx, message string) error {
	return success(c, http.StatusCreated, message, nil)
}

func ResponseCreatedWithData(c *fiber.Ctx, message string, data interface{}) error {
	return success(c, http.StatusCreated, message, data)
}

func ResponseNoContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

func ResponseNotFound(c *fiber.Ctx, message string) error {
	return failure(c, http.StatusNotFound, message)
}

func ResponseUnauthorized(c *fiber.Ctx, message string) error {
	return failure(c, http.StatusUnauthorized, message)
}

func ResponseBadRequest(c *fiber.Ctx, message string) error {
	return failure(c, http.StatusBadRequest, message)
}

func ResponseConflict(c *fiber.Ctx, message string) error {
	return failure(c, http.StatusConflict, message)
}

func ResponseInternalError(c *fiber.Ctx, message string) error {
	return failure(c, http.StatusInternalServerError, message)
}
