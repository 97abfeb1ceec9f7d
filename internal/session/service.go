package session

import (
	"context"
	"sync"
	"time"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/env"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/metrics"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/waclient"
)

// Service is the command facade over the single underlying client. It owns
// the state holder, the normalizer, and the fan-out broker; it is created
// once at process start and passed by reference to every controller.
//
// Every operation other than lifecycle control and status reads requires the
// session to be READY and translates client failures into the typed error
// set from errors.go. Mutating operations bump lastActivityAt on success.
type Service struct {
	client waclient.Client
	state  *stateHolder
	broker *Broker
	norm   *normalizer

	// lifecycleMu serializes initialize/restart/logout against each other.
	// Regular commands are not serialized; the client arbitrates those.
	lifecycleMu sync.Mutex

	restartDelay time.Duration
}

func New(client waclient.Client) *Service {
	state := newStateHolder()
	broker := newBroker()
	svc := &Service{
		client:       client,
		state:        state,
		broker:       broker,
		norm:         newNormalizer(state, broker),
		restartDelay: env.GetEnvDurationOrDefault("WHATSAPP_RESTART_DELAY", 2*time.Second),
	}
	client.SetEventHandler(svc.norm.Handle)
	return svc
}

// Status returns a read-only snapshot of the session state.
func (s *Service) Status() Status {
	return s.state.Snapshot()
}

// QRChallenge returns the outstanding pairing challenge, if any.
func (s *Service) QRChallenge() (string, bool) {
	snapshot := s.state.Snapshot()
	return snapshot.QRChallenge, snapshot.QRChallenge != ""
}

// Subscribe attaches an event consumer to the fan-out broker.
func (s *Service) Subscribe() (<-chan Event, func()) {
	return s.broker.Subscribe()
}

// SubscriberCount reports currently attached event consumers.
func (s *Service) SubscriberCount() int {
	return s.broker.SubscriberCount()
}

func (s *Service) guard() *Error {
	if !s.state.Snapshot().Ready {
		return errSessionNotReady()
	}
	return nil
}

// Lifecycle

func (s *Service) Initialize(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	err := s.client.Initialize(ctx)
	metrics.ObserveCommand("initialize", err)
	if err != nil {
		return newError(CodeInitialize, "failed to initialize whatsapp client", err)
	}
	log.SessionOp("initialize").Info("whatsapp client initializing")
	return nil
}

// Restart tears the client down, waits a settling delay to let the previous
// instance release its resources, and initializes again. The session drops
// to UNINITIALIZED in between; pairing events drive it forward from there.
func (s *Service) Restart(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if err := s.client.Destroy(ctx); err != nil {
		metrics.ObserveCommand("restart", err)
		return newError(CodeRestart, "failed to tear down whatsapp client", err)
	}
	s.state.reset()

	select {
	case <-time.After(s.restartDelay):
	case <-ctx.Done():
		metrics.ObserveCommand("restart", ctx.Err())
		return newError(CodeRestart, "restart interrupted", ctx.Err())
	}

	err := s.client.Initialize(ctx)
	metrics.ObserveCommand("restart", err)
	if err != nil {
		return newError(CodeRestart, "failed to reinitialize whatsapp client", err)
	}
	log.SessionOp("restart").Info("whatsapp client restarted")
	return nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	err := s.client.Logout(ctx)
	metrics.ObserveCommand("logout", err)
	if err != nil {
		return newError(CodeLogout, "failed to log out whatsapp session", err)
	}
	s.state.reset()
	log.SessionOp("logout").Info("whatsapp session logged out")
	return nil
}

// Messaging

func (s *Service) SendMessage(ctx context.Context, to string, body string) (*waclient.SentMessage, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("sendMessage", err)
		return nil, err
	}
	if to == "" {
		return nil, errValidation("recipient is required")
	}
	if body == "" {
		return nil, errValidation("message body is required")
	}

	sent, err := s.client.SendMessage(ctx, to, body)
	metrics.ObserveCommand("sendMessage", err)
	if err != nil {
		return nil, newError(CodeSend, "failed to send message", err)
	}
	s.state.touch()
	return sent, nil
}

func (s *Service) SendMedia(ctx context.Context, to string, media waclient.Media, caption string) (*waclient.SentMessage, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("sendMedia", err)
		return nil, err
	}
	if to == "" {
		return nil, errValidation("recipient is required")
	}
	if len(media.Data) == 0 {
		return nil, errValidation("media payload is required")
	}

	sent, err := s.client.SendMedia(ctx, to, media, caption)
	metrics.ObserveCommand("sendMedia", err)
	if err != nil {
		return nil, newError(CodeSendMedia, "failed to send media", err)
	}
	s.state.touch()
	return sent, nil
}

func (s *Service) SendReaction(ctx context.Context, chatID string, messageID string, emoji string) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("sendReaction", err)
		return err
	}
	if chatID == "" || messageID == "" {
		return errValidation("chat id and message id are required")
	}

	err := s.client.SendReaction(ctx, chatID, messageID, emoji)
	metrics.ObserveCommand("sendReaction", err)
	if err != nil {
		return newError(CodeSendReaction, "failed to send reaction", err)
	}
	s.state.touch()
	return nil
}

func (s *Service) GetMessages(ctx context.Context, chatID string, limit int, page int) ([]waclient.Message, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getMessages", err)
		return nil, err
	}
	if chatID == "" {
		return nil, errValidation("chat id is required")
	}

	messages, err := s.client.GetMessages(ctx, chatID, limit, page)
	metrics.ObserveCommand("getMessages", err)
	if err != nil {
		return nil, newError(CodeGetMessages, "failed to fetch messages", err)
	}
	return messages, nil
}

// Contacts

func (s *Service) GetContacts(ctx context.Context) ([]waclient.Contact, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getContacts", err)
		return nil, err
	}

	contacts, err := s.client.GetContacts(ctx)
	metrics.ObserveCommand("getContacts", err)
	if err != nil {
		return nil, newError(CodeGetContacts, "failed to fetch contacts", err)
	}
	return contacts, nil
}

func (s *Service) GetContactByID(ctx context.Context, contactID string) (*waclient.Contact, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getContact", err)
		return nil, err
	}
	if contactID == "" {
		return nil, errValidation("contact id is required")
	}

	contact, err := s.client.GetContactByID(ctx, contactID)
	metrics.ObserveCommand("getContact", err)
	if err != nil {
		return nil, newError(CodeGetContact, "failed to fetch contact", err)
	}
	if contact == nil {
		return nil, errNotFound("contact not found")
	}
	return contact, nil
}

func (s *Service) IsRegistered(ctx context.Context, phone string) (bool, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("isRegistered", err)
		return false, err
	}
	if phone == "" {
		return false, errValidation("phone is required")
	}

	registered, err := s.client.IsRegistered(ctx, phone)
	metrics.ObserveCommand("isRegistered", err)
	if err != nil {
		return false, newError(CodeCheckRegistered, "failed to check registration", err)
	}
	return registered, nil
}

func (s *Service) BlockContact(ctx context.Context, contactID string) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("blockContact", err)
		return err
	}
	if contactID == "" {
		return errValidation("contact id is required")
	}

	err := s.client.BlockContact(ctx, contactID)
	metrics.ObserveCommand("blockContact", err)
	if err != nil {
		return newError(CodeBlockContact, "failed to block contact", err)
	}
	s.state.touch()
	return nil
}

func (s *Service) UnblockContact(ctx context.Context, contactID string) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("unblockContact", err)
		return err
	}
	if contactID == "" {
		return errValidation("contact id is required")
	}

	err := s.client.UnblockContact(ctx, contactID)
	metrics.ObserveCommand("unblockContact", err)
	if err != nil {
		return newError(CodeUnblockContact, "failed to unblock contact", err)
	}
	s.state.touch()
	return nil
}

// Chats

func (s *Service) GetChats(ctx context.Context) ([]waclient.Chat, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getChats", err)
		return nil, err
	}

	chats, err := s.client.GetChats(ctx)
	metrics.ObserveCommand("getChats", err)
	if err != nil {
		return nil, newError(CodeGetChats, "failed to fetch chats", err)
	}
	return chats, nil
}

func (s *Service) GetChatByID(ctx context.Context, chatID string) (*waclient.Chat, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getChat", err)
		return nil, err
	}
	if chatID == "" {
		return nil, errValidation("chat id is required")
	}

	chat, err := s.client.GetChatByID(ctx, chatID)
	metrics.ObserveCommand("getChat", err)
	if err != nil {
		return nil, newError(CodeGetChat, "failed to fetch chat", err)
	}
	if chat == nil {
		return nil, errNotFound("chat not found")
	}
	return chat, nil
}

// MuteChat silences a chat for the given duration; zero or negative duration
// unmutes.
func (s *Service) MuteChat(ctx context.Context, chatID string, duration time.Duration) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("muteChat", err)
		return err
	}
	if chatID == "" {
		return errValidation("chat id is required")
	}

	var until time.Time
	if duration > 0 {
		until = time.Now().Add(duration)
	}
	err := s.client.SetChatMuted(ctx, chatID, until)
	metrics.ObserveCommand("muteChat", err)
	if err != nil {
		return newError(CodeMuteChat, "failed to update chat mute", err)
	}
	s.state.touch()
	return nil
}

func (s *Service) ArchiveChat(ctx context.Context, chatID string, archived bool) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("archiveChat", err)
		return err
	}
	if chatID == "" {
		return errValidation("chat id is required")
	}

	err := s.client.SetChatArchived(ctx, chatID, archived)
	metrics.ObserveCommand("archiveChat", err)
	if err != nil {
		return newError(CodeArchiveChat, "failed to update chat archive", err)
	}
	s.state.touch()
	return nil
}

func (s *Service) PinChat(ctx context.Context, chatID string, pinned bool) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("pinChat", err)
		return err
	}
	if chatID == "" {
		return errValidation("chat id is required")
	}

	err := s.client.SetChatPinned(ctx, chatID, pinned)
	metrics.ObserveCommand("pinChat", err)
	if err != nil {
		return newError(CodePinChat, "failed to update chat pin", err)
	}
	s.state.touch()
	return nil
}

// Groups

func (s *Service) GetGroups(ctx context.Context) ([]waclient.Group, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getGroups", err)
		return nil, err
	}

	groups, err := s.client.GetGroups(ctx)
	metrics.ObserveCommand("getGroups", err)
	if err != nil {
		return nil, newError(CodeGetGroups, "failed to fetch groups", err)
	}
	return groups, nil
}

func (s *Service) GetGroupByID(ctx context.Context, groupID string) (*waclient.Group, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getGroup", err)
		return nil, err
	}
	if groupID == "" {
		return nil, errValidation("group id is required")
	}

	group, err := s.client.GetGroupByID(ctx, groupID)
	metrics.ObserveCommand("getGroup", err)
	if err != nil {
		return nil, newError(CodeGetGroup, "failed to fetch group", err)
	}
	if group == nil {
		return nil, errNotFound("group not found")
	}
	return group, nil
}

func (s *Service) CreateGroup(ctx context.Context, name string, participantIDs []string) (*waclient.Group, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("createGroup", err)
		return nil, err
	}
	if name == "" {
		return nil, errValidation("group name is required")
	}
	if len(participantIDs) == 0 {
		return nil, errValidation("at least one participant is required")
	}

	group, err := s.client.CreateGroup(ctx, name, participantIDs)
	metrics.ObserveCommand("createGroup", err)
	if err != nil {
		return nil, newError(CodeCreateGroup, "failed to create group", err)
	}
	s.state.touch()
	return group, nil
}

// UpdateGroup applies name and/or topic changes; empty fields are skipped.
func (s *Service) UpdateGroup(ctx context.Context, groupID string, name string, description string) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("updateGroup", err)
		return err
	}
	if groupID == "" {
		return errValidation("group id is required")
	}
	if name == "" && description == "" {
		return errValidation("nothing to update")
	}

	if name != "" {
		if err := s.client.SetGroupName(ctx, groupID, name); err != nil {
			metrics.ObserveCommand("updateGroup", err)
			return newError(CodeUpdateGroup, "failed to update group name", err)
		}
	}
	if description != "" {
		if err := s.client.SetGroupDescription(ctx, groupID, description); err != nil {
			metrics.ObserveCommand("updateGroup", err)
			return newError(CodeUpdateGroup, "failed to update group description", err)
		}
	}
	metrics.ObserveCommand("updateGroup", nil)
	s.state.touch()
	return nil
}

func (s *Service) LeaveGroup(ctx context.Context, groupID string) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("leaveGroup", err)
		return err
	}
	if groupID == "" {
		return errValidation("group id is required")
	}

	err := s.client.LeaveGroup(ctx, groupID)
	metrics.ObserveCommand("leaveGroup", err)
	if err != nil {
		return newError(CodeLeaveGroup, "failed to leave group", err)
	}
	s.state.touch()
	return nil
}

func (s *Service) AddParticipants(ctx context.Context, groupID string, participantIDs []string) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("addParticipants", err)
		return err
	}
	if groupID == "" {
		return errValidation("group id is required")
	}
	if len(participantIDs) == 0 {
		return errValidation("at least one participant is required")
	}

	err := s.client.AddParticipants(ctx, groupID, participantIDs)
	metrics.ObserveCommand("addParticipants", err)
	if err != nil {
		return newError(CodeAddParticipants, "failed to add participants", err)
	}
	s.state.touch()
	return nil
}

func (s *Service) RemoveParticipants(ctx context.Context, groupID string, participantIDs []string) error {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("removeParticipants", err)
		return err
	}
	if groupID == "" {
		return errValidation("group id is required")
	}
	if len(participantIDs) == 0 {
		return errValidation("at least one participant is required")
	}

	err := s.client.RemoveParticipants(ctx, groupID, participantIDs)
	metrics.ObserveCommand("removeParticipants", err)
	if err != nil {
		return newError(CodeRemoveParticipants, "failed to remove participants", err)
	}
	s.state.touch()
	return nil
}

func (s *Service) GetInviteLink(ctx context.Context, groupID string, reset bool) (string, error) {
	if err := s.guard(); err != nil {
		metrics.ObserveCommand("getInviteLink", err)
		return "", err
	}
	if groupID == "" {
		return "", errValidation("group id is required")
	}

	link, err := s.client.GetInviteLink(ctx, groupID, reset)
	metrics.ObserveCommand("getInviteLink", err)
	if err != nil {
		return "", newError(CodeInviteLink, "failed to fetch invite link", err)
	}
	return link, nil
}
