package log

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func init() {
	logger.Formatter = &logrus.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
		DisableColors:   false,
		ForceColors:     true,
	}
}

func Print(c *fiber.Ctx) *logrus.Entry {
	if c == nil {
		return logger.WithFields(logrus.Fields{})
	}

	remoteIP := c.IP()
	if v := c.Locals("remote_ip"); v != nil {
		if ip, ok := v.(string); ok && ip != "" {
			remoteIP = ip
		}
	}
	return logger.WithFields(logrus.Fields{
		"remote_ip": remoteIP,
		"method":    c.Method(),
		"uri":       c.OriginalURL(),
	})
}

// Session returns a request-scoped entry for session lifecycle handlers.
func Session(c *fiber.Ctx, op string) *logrus.Entry {
	return Print(c).WithField("operation", op)
}

// SessionOp returns an entry for session lifecycle operations.
func SessionOp(op string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"component": "session",
		"operation": op,
	})
}

// MessageOp returns an entry for messaging operations scoped to a chat.
func MessageOp(op string, chatID string) *logrus.Entry {
	fields := logrus.Fields{
		"component": "message",
		"operation": op,
	}
	if chatID != "" {
		fields["chat_id"] = chatID
	}
	return logger.WithFields(fields)
}

// EventOp returns an entry for normalized event processing.
func EventOp(kind string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"component": "events",
		"event":     kind,
	})
}
