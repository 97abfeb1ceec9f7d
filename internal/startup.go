package internal

import (
	"context"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/env"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
)

// Startup connects the client at boot when WHATSAPP_AUTO_INITIALIZE is set.
// With stored credentials the session comes up ready on its own; without
// them the first QR challenge is waiting on /whatsapp/qr.
func Startup(svc *session.Service) {
	log.Print(nil).Info("Running Startup Tasks")

	if !env.GetEnvBoolOrDefault("WHATSAPP_AUTO_INITIALIZE", true) {
		log.Print(nil).Info("Auto-initialize disabled; waiting for explicit /whatsapp/initialize")
		return
	}

	if err := svc.Initialize(context.Background()); err != nil {
		log.Print(nil).WithError(err).Error("Failed to auto-initialize whatsapp client")
	}
}
