package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	EventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whatsapp_gateway_events_emitted_total",
		Help: "Normalized events published to the fan-out broker, by kind.",
	}, []string{"kind"})

	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whatsapp_gateway_commands_total",
		Help: "Command facade invocations, by operation and outcome.",
	}, []string{"operation", "outcome"})

	StreamConsumers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "whatsapp_gateway_stream_consumers",
		Help: "Currently attached SSE consumers.",
	})

	SocketConsumers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "whatsapp_gateway_socket_consumers",
		Help: "Currently attached websocket consumers.",
	})
)

// Handler adapts the prometheus HTTP handler to fiber's fasthttp engine.
func Handler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}

// ObserveCommand records one facade invocation.
func ObserveCommand(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	CommandsTotal.WithLabelValues(operation, outcome).Inc()
}
