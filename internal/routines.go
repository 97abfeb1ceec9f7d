package internal

import (
	"github.com/robfig/cron/v3"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/env"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
)

// Routines registers recurring background jobs. The health log is the
// cheapest possible liveness signal: session state plus attached consumers,
// once per interval.
func Routines(c *cron.Cron, svc *session.Service) {
	log.Print(nil).Info("Running Routine Tasks")

	if !env.GetEnvBoolOrDefault("WHATSAPP_HEALTH_CHECK_ENABLED", true) {
		log.Print(nil).Info("Health check cron disabled")
		return
	}

	spec := env.GetEnvStringOrDefault("WHATSAPP_HEALTH_CHECK_CRON", "0 */5 * * * *")
	_, err := c.AddFunc(spec, func() {
		status := svc.Status()
		entry := log.SessionOp("HealthCheck").
			WithField("state", status.State).
			WithField("consumers", svc.SubscriberCount())
		if status.Ready {
			entry.Info("Session healthy")
		} else {
			entry.Warn("Session not ready")
		}
	})
	if err != nil {
		log.Print(nil).WithError(err).Error("Failed to add health check cron job")
	}
}
