package session

import "time"

// EventKind is the wire name of a normalized event. These names are part of
// the external contract for both the SSE stream and the websocket channel.
type EventKind string

const (
	EventQR            EventKind = "whatsapp:qr"
	EventAuthenticated EventKind = "whatsapp:authenticated"
	EventAuthFailure   EventKind = "whatsapp:auth_failure"
	EventReady         EventKind = "whatsapp:ready"
	EventDisconnected  EventKind = "whatsapp:disconnected"
	EventMessage       EventKind = "whatsapp:message"
	EventMessageCreate EventKind = "whatsapp:message_create"
	EventMessageAck    EventKind = "whatsapp:message_ack"
	EventReaction      EventKind = "whatsapp:reaction"
	EventGroupJoin     EventKind = "whatsapp:group_join"
	EventGroupLeave    EventKind = "whatsapp:group_leave"
	EventBattery       EventKind = "whatsapp:battery"
	EventState         EventKind = "whatsapp:state"
)

// Event is one normalized event as delivered to consumers. Payload holds a
// kind-specific struct from this file, already safe to serialize.
type Event struct {
	Kind      EventKind   `json:"event"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type QRPayload struct {
	QR string `json:"qr"`
}

type AuthFailurePayload struct {
	Reason string `json:"reason,omitempty"`
}

type ReadyPayload struct {
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

type DisconnectedPayload struct {
	Reason string `json:"reason,omitempty"`
}

type MessagePayload struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	FromMe    bool      `json:"fromMe"`
	HasMedia  bool      `json:"hasMedia"`
}

type AckPayload struct {
	MessageID string    `json:"messageId"`
	ChatID    string    `json:"chatId"`
	Ack       string    `json:"ack"`
	Timestamp time.Time `json:"timestamp"`
}

type ReactionPayload struct {
	MessageID string    `json:"messageId"`
	ChatID    string    `json:"chatId"`
	From      string    `json:"from"`
	Emoji     string    `json:"emoji"`
	Timestamp time.Time `json:"timestamp"`
}

type GroupChangePayload struct {
	GroupID      string    `json:"groupId"`
	Participants []string  `json:"participants"`
	Timestamp    time.Time `json:"timestamp"`
}

type BatteryPayload struct {
	Percent int  `json:"percent"`
	Plugged bool `json:"plugged"`
}

type StatePayload struct {
	State string `json:"state"`
}
