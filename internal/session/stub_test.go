package session

import (
	"context"
	"sync"
	"time"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/waclient"
)

// stubClient counts calls per operation and fails any operation listed in
// errs. Raw events are injected through emit, which drives the registered
// normalizer handler exactly like the real binding would.
type stubClient struct {
	mu      sync.Mutex
	calls   map[string]int
	errs    map[string]error
	handler waclient.EventHandler

	selfID string
	sent   *waclient.SentMessage
}

func newStubClient() *stubClient {
	return &stubClient{
		calls:  make(map[string]int),
		errs:   make(map[string]error),
		selfID: "5511888888888@s.whatsapp.net",
	}
}

func (s *stubClient) record(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	return s.errs[op]
}

func (s *stubClient) callCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *stubClient) failWith(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[op] = err
}

func (s *stubClient) emit(evt interface{}) {
	s.mu.Lock()
	handler := s.handler
	s.mu.Unlock()
	if handler != nil {
		handler(evt)
	}
}

func (s *stubClient) SetEventHandler(handler waclient.EventHandler) {
	s.mu.Lock()
	s.handler = handler
	s.mu.Unlock()
}

func (s *stubClient) SelfID() string { return s.selfID }

func (s *stubClient) Initialize(ctx context.Context) error { return s.record("Initialize") }
func (s *stubClient) Destroy(ctx context.Context) error    { return s.record("Destroy") }
func (s *stubClient) Logout(ctx context.Context) error     { return s.record("Logout") }

func (s *stubClient) SendMessage(ctx context.Context, to string, body string) (*waclient.SentMessage, error) {
	if err := s.record("SendMessage"); err != nil {
		return nil, err
	}
	if s.sent != nil {
		return s.sent, nil
	}
	return &waclient.SentMessage{
		ID:        "stub-id",
		From:      s.selfID,
		To:        to,
		Body:      body,
		Timestamp: time.Now(),
		FromMe:    true,
	}, nil
}

func (s *stubClient) SendMedia(ctx context.Context, to string, media waclient.Media, caption string) (*waclient.SentMessage, error) {
	if err := s.record("SendMedia"); err != nil {
		return nil, err
	}
	return &waclient.SentMessage{ID: "stub-media-id", To: to, Body: caption, FromMe: true, HasMedia: true}, nil
}

func (s *stubClient) SendReaction(ctx context.Context, chatID string, messageID string, emoji string) error {
	return s.record("SendReaction")
}

func (s *stubClient) GetMessages(ctx context.Context, chatID string, limit int, page int) ([]waclient.Message, error) {
	if err := s.record("GetMessages"); err != nil {
		return nil, err
	}
	return []waclient.Message{}, nil
}

func (s *stubClient) GetContacts(ctx context.Context) ([]waclient.Contact, error) {
	if err := s.record("GetContacts"); err != nil {
		return nil, err
	}
	return []waclient.Contact{}, nil
}

func (s *stubClient) GetContactByID(ctx context.Context, contactID string) (*waclient.Contact, error) {
	if err := s.record("GetContactByID"); err != nil {
		return nil, err
	}
	return &waclient.Contact{ID: contactID}, nil
}

func (s *stubClient) IsRegistered(ctx context.Context, phone string) (bool, error) {
	if err := s.record("IsRegistered"); err != nil {
		return false, err
	}
	return true, nil
}

func (s *stubClient) BlockContact(ctx context.Context, contactID string) error {
	return s.record("BlockContact")
}

func (s *stubClient) UnblockContact(ctx context.Context, contactID string) error {
	return s.record("UnblockContact")
}

func (s *stubClient) GetChats(ctx context.Context) ([]waclient.Chat, error) {
	if err := s.record("GetChats"); err != nil {
		return nil, err
	}
	return []waclient.Chat{}, nil
}

func (s *stubClient) GetChatByID(ctx context.Context, chatID string) (*waclient.Chat, error) {
	if err := s.record("GetChatByID"); err != nil {
		return nil, err
	}
	return &waclient.Chat{ID: chatID}, nil
}

func (s *stubClient) SetChatMuted(ctx context.Context, chatID string, until time.Time) error {
	return s.record("SetChatMuted")
}

func (s *stubClient) SetChatArchived(ctx context.Context, chatID string, archived bool) error {
	return s.record("SetChatArchived")
}

func (s *stubClient) SetChatPinned(ctx context.Context, chatID string, pinned bool) error {
	return s.record("SetChatPinned")
}

func (s *stubClient) GetGroups(ctx context.Context) ([]waclient.Group, error) {
	if err := s.record("GetGroups"); err != nil {
		return nil, err
	}
	return []waclient.Group{}, nil
}

func (s *stubClient) GetGroupByID(ctx context.Context, groupID string) (*waclient.Group, error) {
	if err := s.record("GetGroupByID"); err != nil {
		return nil, err
	}
	return &waclient.Group{ID: groupID}, nil
}

func (s *stubClient) CreateGroup(ctx context.Context, name string, participantIDs []string) (*waclient.Group, error) {
	if err := s.record("CreateGroup"); err != nil {
		return nil, err
	}
	return &waclient.Group{ID: "123456789-987654321@g.us", Name: name}, nil
}

func (s *stubClient) SetGroupName(ctx context.Context, groupID string, name string) error {
	return s.record("SetGroupName")
}

func (s *stubClient) SetGroupDescription(ctx context.Context, groupID string, description string) error {
	return s.record("SetGroupDescription")
}

func (s *stubClient) LeaveGroup(ctx context.Context, groupID string) error {
	return s.record("LeaveGroup")
}

func (s *stubClient) AddParticipants(ctx context.Context, groupID string, participantIDs []string) error {
	return s.record("AddParticipants")
}

func (s *stubClient) RemoveParticipants(ctx context.Context, groupID string, participantIDs []string) error {
	return s.record("RemoveParticipants")
}

func (s *stubClient) GetInviteLink(ctx context.Context, groupID string, reset bool) (string, error) {
	if err := s.record("GetInviteLink"); err != nil {
		return "", err
	}
	return "https://chat.whatsapp.com/stub", nil
}
