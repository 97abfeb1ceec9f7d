package whatsapp

import (
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/metrics"
)

const (
	socketWriteWait = 10 * time.Second
	socketPongWait  = 60 * time.Second
	// Must be shorter than socketPongWait.
	socketPingPeriod = 50 * time.Second

	// Wire name of the snapshot frame sent on attach and in answer to
	// whatsapp:get_status.
	socketEventStatus     = "whatsapp:status"
	socketRequestStatus   = "whatsapp:get_status"
	socketOutboundBacklog = 8
)

type socketFrame struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type socketRequest struct {
	Event string `json:"event"`
}

// SocketUpgrade rejects plain HTTP requests on the websocket route.
func SocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Socket returns the websocket handler for the bidirectional event channel.
// Each connection gets its own broker subscription; the current status
// snapshot is pushed immediately on attach.
func (ct *Controller) Socket() fiber.Handler {
	svc := ct.svc
	return websocket.New(func(conn *websocket.Conn) {
		events, cancel := svc.Subscribe()
		defer cancel()

		metrics.SocketConsumers.Inc()
		defer metrics.SocketConsumers.Dec()

		// Requests parsed by the read loop that need a reply, answered by
		// the single writer goroutine.
		outbound := make(chan socketFrame, socketOutboundBacklog)
		outbound <- statusFrame(svc.Status())

		done := make(chan struct{})
		go writePump(conn, events, outbound, done)

		conn.SetReadDeadline(time.Now().Add(socketPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(socketPongWait))
		})

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break
			}
			var req socketRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				log.EventOp("socket").WithError(err).Debug("ignoring malformed socket frame")
				continue
			}
			if req.Event == socketRequestStatus {
				select {
				case outbound <- statusFrame(svc.Status()):
				default:
				}
			}
		}

		close(done)
	})
}

func statusFrame(status session.Status) socketFrame {
	return socketFrame{
		Event:     socketEventStatus,
		Payload:   status,
		Timestamp: time.Now().UTC(),
	}
}

func eventFrame(evt session.Event) socketFrame {
	return socketFrame{
		Event:     string(evt.Kind),
		Payload:   evt.Payload,
		Timestamp: evt.Timestamp,
	}
}

// writePump is the sole writer on the connection. It forwards broker events
// and reply frames, and pings on an interval to detect dead peers.
func writePump(conn *websocket.Conn, events <-chan session.Event, outbound <-chan socketFrame, done <-chan struct{}) {
	ticker := time.NewTicker(socketPingPeriod)
	defer ticker.Stop()

	write := func(frame socketFrame) bool {
		conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
		return conn.WriteJSON(frame) == nil
	}

	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return
			}
			if !write(eventFrame(evt)) {
				return
			}
		case frame := <-outbound:
			if !write(frame) {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
			conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
