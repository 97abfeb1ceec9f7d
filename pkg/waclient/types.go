package waclient

import "time"

// Media carries an uploaded file payload for SendMedia.
type Media struct {
	Data     []byte
	MimeType string
	FileName string
}

// SentMessage describes a message accepted by the underlying network.
type SentMessage struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	FromMe    bool      `json:"fromMe"`
	HasMedia  bool      `json:"hasMedia"`
}

// Message is one entry of a chat's history.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	FromMe    bool      `json:"fromMe"`
	HasMedia  bool      `json:"hasMedia"`
}

// Contact is a minimal address book entry.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PushName    string `json:"pushName,omitempty"`
	PhoneNumber string `json:"phoneNumber"`
	IsBusiness  bool   `json:"isBusiness"`
}

// Chat is a conversation descriptor.
type Chat struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsGroup       bool      `json:"isGroup"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	Archived      bool      `json:"archived"`
	Pinned        bool      `json:"pinned"`
	MutedUntil    time.Time `json:"mutedUntil,omitzero"`
}

// GroupParticipant is one member of a group.
type GroupParticipant struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
}

// Group describes a group chat.
type Group struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Topic        string             `json:"topic,omitempty"`
	Owner        string             `json:"owner,omitempty"`
	Participants []GroupParticipant `json:"participants"`
	CreatedAt    time.Time          `json:"createdAt,omitzero"`
}

// Raw events delivered to the registered EventHandler. These mirror what the
// underlying network surfaces; the session normalizer turns them into the
// stable external event union.

type QRCodeEvent struct {
	Code string
}

type AuthenticatedEvent struct{}

type AuthFailureEvent struct {
	Reason string
}

type ReadyEvent struct {
	PhoneNumber string
	DisplayName string
}

type DisconnectedEvent struct {
	Reason string
}

type MessageEvent struct {
	ID        string
	ChatID    string
	From      string
	To        string
	Body      string
	Timestamp time.Time
	FromMe    bool
	HasMedia  bool
}

type AckEvent struct {
	MessageID string
	ChatID    string
	Ack       string
	Timestamp time.Time
}

type ReactionEvent struct {
	MessageID string
	ChatID    string
	From      string
	Emoji     string
	Timestamp time.Time
}

type GroupParticipantsEvent struct {
	GroupID   string
	Joined    []string
	Left      []string
	Timestamp time.Time
}

type BatteryEvent struct {
	Percent int
	Plugged bool
}

type ConnectionStateEvent struct {
	State string
}
