package whatsapp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/env"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/metrics"
)

// Events serves the long-lived SSE stream. Each normalized event becomes one
// SSE frame; a heartbeat comment goes out on a fixed interval so proxies
// keep the connection open. Nothing is replayed to late subscribers.
func (ct *Controller) Events(c *fiber.Ctx) error {
	heartbeat := env.GetEnvDurationOrDefault("WHATSAPP_EVENTS_HEARTBEAT", 30*time.Second)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	svc := ct.svc
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		events, cancel := svc.Subscribe()
		defer cancel()

		metrics.StreamConsumers.Inc()
		defer metrics.StreamConsumers.Dec()

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		for {
			select {
			case evt, ok := <-events:
				if !ok {
					return
				}
				if err := writeSSE(w, evt); err != nil {
					log.EventOp(string(evt.Kind)).WithError(err).Debug("stream consumer detached")
					return
				}
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

func writeSSE(w *bufio.Writer, evt session.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Kind, payload); err != nil {
		return err
	}
	return w.Flush()
}
