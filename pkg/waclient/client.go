package waclient

import (
	"context"
	"time"
)

// EventHandler receives raw client events. Exactly one handler is registered
// per client; fan-out to multiple consumers happens above this boundary.
type EventHandler func(evt interface{})

// Client is the capability surface of the underlying messaging client. The
// gateway treats everything behind this interface as a black box: connection
// establishment, pairing, credential persistence and message transport are
// owned by the implementation.
type Client interface {
	// Lifecycle
	Initialize(ctx context.Context) error
	Destroy(ctx context.Context) error
	Logout(ctx context.Context) error
	SetEventHandler(handler EventHandler)
	SelfID() string

	// Messaging
	SendMessage(ctx context.Context, to string, body string) (*SentMessage, error)
	SendMedia(ctx context.Context, to string, media Media, caption string) (*SentMessage, error)
	SendReaction(ctx context.Context, chatID string, messageID string, emoji string) error
	GetMessages(ctx context.Context, chatID string, limit int, page int) ([]Message, error)

	// Contacts
	GetContacts(ctx context.Context) ([]Contact, error)
	GetContactByID(ctx context.Context, contactID string) (*Contact, error)
	IsRegistered(ctx context.Context, phone string) (bool, error)
	BlockContact(ctx context.Context, contactID string) error
	UnblockContact(ctx context.Context, contactID string) error

	// Chats
	GetChats(ctx context.Context) ([]Chat, error)
	GetChatByID(ctx context.Context, chatID string) (*Chat, error)
	SetChatMuted(ctx context.Context, chatID string, until time.Time) error
	SetChatArchived(ctx context.Context, chatID string, archived bool) error
	SetChatPinned(ctx context.Context, chatID string, pinned bool) error

	// Groups
	GetGroups(ctx context.Context) ([]Group, error)
	GetGroupByID(ctx context.Context, groupID string) (*Group, error)
	CreateGroup(ctx context.Context, name string, participantIDs []string) (*Group, error)
	SetGroupName(ctx context.Context, groupID string, name string) error
	SetGroupDescription(ctx context.Context, groupID string, description string) error
	LeaveGroup(ctx context.Context, groupID string) error
	AddParticipants(ctx context.Context, groupID string, participantIDs []string) error
	RemoveParticipants(ctx context.Context, groupID string, participantIDs []string) error
	GetInviteLink(ctx context.Context, groupID string, reset bool) (string, error)
}
