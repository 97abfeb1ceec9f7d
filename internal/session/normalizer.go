package session

import (
	"time"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/waclient"
)

// normalizer translates raw client events into the stable event union,
// applying the lifecycle transition as a side effect before publishing. Raw
// events arrive from a single handler goroutine, so transitions are applied
// in arrival order; unknown raw events are dropped silently.
type normalizer struct {
	state  *stateHolder
	broker *Broker
	now    func() time.Time
}

func newNormalizer(state *stateHolder, broker *Broker) *normalizer {
	return &normalizer{state: state, broker: broker, now: time.Now}
}

func (n *normalizer) Handle(raw interface{}) {
	switch e := raw.(type) {
	case *waclient.QRCodeEvent:
		n.state.setAwaitingQR(e.Code)
		n.publish(EventQR, QRPayload{QR: e.Code})

	case *waclient.AuthenticatedEvent:
		n.state.setAuthenticated()
		n.publish(EventAuthenticated, nil)

	case *waclient.AuthFailureEvent:
		// The challenge may be reissued; the session stays in AWAITING_QR.
		n.state.setAuthFailure()
		n.publish(EventAuthFailure, AuthFailurePayload{Reason: e.Reason})

	case *waclient.ReadyEvent:
		n.state.setReady(e.PhoneNumber, e.DisplayName)
		n.publish(EventReady, ReadyPayload{
			PhoneNumber: e.PhoneNumber,
			DisplayName: e.DisplayName,
		})

	case *waclient.DisconnectedEvent:
		n.state.setDisconnected()
		n.publish(EventDisconnected, DisconnectedPayload{Reason: e.Reason})

	case *waclient.MessageEvent:
		kind := EventMessage
		if e.FromMe {
			kind = EventMessageCreate
		}
		n.publish(kind, MessagePayload{
			ID:        e.ID,
			ChatID:    e.ChatID,
			From:      e.From,
			To:        e.To,
			Body:      e.Body,
			Timestamp: e.Timestamp,
			FromMe:    e.FromMe,
			HasMedia:  e.HasMedia,
		})

	case *waclient.AckEvent:
		n.publish(EventMessageAck, AckPayload{
			MessageID: e.MessageID,
			ChatID:    e.ChatID,
			Ack:       e.Ack,
			Timestamp: e.Timestamp,
		})

	case *waclient.ReactionEvent:
		n.publish(EventReaction, ReactionPayload{
			MessageID: e.MessageID,
			ChatID:    e.ChatID,
			From:      e.From,
			Emoji:     e.Emoji,
			Timestamp: e.Timestamp,
		})

	case *waclient.GroupParticipantsEvent:
		if len(e.Joined) > 0 {
			n.publish(EventGroupJoin, GroupChangePayload{
				GroupID:      e.GroupID,
				Participants: e.Joined,
				Timestamp:    e.Timestamp,
			})
		}
		if len(e.Left) > 0 {
			n.publish(EventGroupLeave, GroupChangePayload{
				GroupID:      e.GroupID,
				Participants: e.Left,
				Timestamp:    e.Timestamp,
			})
		}

	case *waclient.BatteryEvent:
		n.publish(EventBattery, BatteryPayload{Percent: e.Percent, Plugged: e.Plugged})

	case *waclient.ConnectionStateEvent:
		n.publish(EventState, StatePayload{State: e.State})

	default:
		log.EventOp("unknown").Debugf("ignoring raw event %T", raw)
	}
}

func (n *normalizer) publish(kind EventKind, payload interface{}) {
	n.broker.Publish(Event{
		Kind:      kind,
		Payload:   payload,
		Timestamp: n.now(),
	})
}
