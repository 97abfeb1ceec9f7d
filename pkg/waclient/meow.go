package waclient

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sunshineplan/imgconv"
	"google.golang.org/protobuf/proto"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/appstate"
	"go.mau.fi/whatsmeow/proto/waCommon"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/env"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
)

var (
	ErrNotInitialized        = errors.New("whatsapp client is not initialized")
	ErrParticipantMustBeUser = errors.New("whatsapp participant id must be a personal jid")
)

const qrChannelWaitTimeout = 2 * time.Minute

// Meow is the real Client implementation backed by the whatsmeow library.
// Session credentials live in the sqlstore container; everything else is
// in-memory and rebuilt on connect.
type Meow struct {
	mu        sync.Mutex
	container *sqlstore.Container
	client    *whatsmeow.Client

	handlerMu sync.RWMutex
	handler   EventHandler

	history *messageLog
}

// NewMeow opens the credential datastore and prepares a binding. The client
// itself is not connected until Initialize is called.
func NewMeow() (*Meow, error) {
	driver := normalizeDriver(env.GetEnvStringOrDefault("WHATSAPP_DATASTORE_TYPE", "sqlite"))
	dsn := env.GetEnvStringOrDefault("WHATSAPP_DATASTORE_URI",
		"file:whatsapp.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open whatsapp datastore: %w", err)
	}
	if driver == "sqlite" {
		// Serialize access through a single connection to prevent SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	containerDriver := driver
	if driver == "pgx" {
		containerDriver = "postgres"
	}
	container := sqlstore.NewWithDB(db, containerDriver, nil)
	if err := container.Upgrade(context.Background()); err != nil {
		return nil, fmt.Errorf("upgrade whatsapp datastore schema: %w", err)
	}

	capacity := env.GetEnvIntOrDefault("WHATSAPP_HISTORY_CAPACITY", 200)

	return &Meow{
		container: container,
		history:   newMessageLog(capacity),
	}, nil
}

func normalizeDriver(driver string) string {
	switch strings.ToLower(driver) {
	case "postgresql", "postgres", "pgx":
		return "pgx"
	default:
		return "sqlite"
	}
}

func (m *Meow) SetEventHandler(handler EventHandler) {
	m.handlerMu.Lock()
	m.handler = handler
	m.handlerMu.Unlock()
}

func (m *Meow) emit(evt interface{}) {
	m.handlerMu.RLock()
	handler := m.handler
	m.handlerMu.RUnlock()
	if handler != nil {
		handler(evt)
	}
}

// SelfID returns the authenticated account identifier, or "" before pairing.
func (m *Meow) SelfID() string {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()
	if client == nil || client.Store.ID == nil {
		return ""
	}
	return client.Store.ID.ToNonAD().String()
}

// Initialize builds the whatsmeow client, connects, and drives QR pairing
// when no stored credentials exist. Pairing progress is surfaced through the
// registered event handler; the call itself returns as soon as the connect
// handshake is underway.
func (m *Meow) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return errors.New("whatsapp client is already initialized")
	}

	device, err := m.container.GetFirstDevice(ctx)
	if err != nil {
		return fmt.Errorf("load device from datastore: %w", err)
	}

	client := whatsmeow.NewClient(device, nil)
	client.EnableAutoReconnect = true
	client.AutoTrustIdentity = true
	client.AddEventHandler(m.translateEvent)

	if client.Store.ID == nil {
		qrCtx, cancel := context.WithTimeout(context.Background(), qrChannelWaitTimeout)
		qrChan, err := client.GetQRChannel(qrCtx)
		if err != nil {
			cancel()
			return fmt.Errorf("open qr channel: %w", err)
		}
		if err := client.Connect(); err != nil {
			cancel()
			return fmt.Errorf("connect for pairing: %w", err)
		}
		go func() {
			defer cancel()
			m.pumpQRChannel(qrChan)
		}()
	} else {
		if err := client.Connect(); err != nil {
			return fmt.Errorf("connect: %w", err)
		}
	}

	m.client = client
	return nil
}

// pumpQRChannel forwards pairing codes and terminal pairing states as raw
// events, one per channel item, in order.
func (m *Meow) pumpQRChannel(qrChan <-chan whatsmeow.QRChannelItem) {
	for evt := range qrChan {
		switch evt.Event {
		case "code":
			m.emit(&QRCodeEvent{Code: evt.Code})
		case whatsmeow.QRChannelSuccess.Event:
			m.emit(&AuthenticatedEvent{})
			return
		case whatsmeow.QRChannelTimeout.Event:
			m.emit(&AuthFailureEvent{Reason: "qr pairing timed out"})
			return
		case "error":
			reason := "qr pairing failed"
			if evt.Error != nil {
				reason = evt.Error.Error()
			}
			m.emit(&AuthFailureEvent{Reason: reason})
			return
		}
	}
}

// Destroy disconnects and drops the in-memory client, keeping stored
// credentials so a later Initialize resumes the session.
func (m *Meow) Destroy(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		m.client.Disconnect()
		m.client = nil
	}
	return nil
}

// Logout revokes the session on the network and deletes stored credentials.
func (m *Meow) Logout(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.mu.Unlock()

	if client == nil {
		return ErrNotInitialized
	}

	if client.Store.ID != nil {
		if err := client.Logout(ctx); err != nil {
			client.Disconnect()
			if err := client.Store.Delete(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	client.Disconnect()
	return nil
}

func (m *Meow) current() (*whatsmeow.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil, ErrNotInitialized
	}
	return m.client, nil
}

// translateEvent maps whatsmeow events onto the raw event set and feeds the
// in-memory history.
func (m *Meow) translateEvent(evt interface{}) {
	switch e := evt.(type) {
	case *events.PairSuccess:
		m.emit(&AuthenticatedEvent{})
	case *events.PairError:
		reason := ""
		if e.Error != nil {
			reason = e.Error.Error()
		}
		m.emit(&AuthFailureEvent{Reason: reason})
	case *events.Connected:
		phone, name := m.identity()
		m.emit(&ReadyEvent{PhoneNumber: phone, DisplayName: name})
	case *events.PushNameSetting:
		// Display name changes arrive after connect on fresh pairings.
	case *events.Disconnected:
		m.emit(&DisconnectedEvent{Reason: "connection closed"})
	case *events.LoggedOut:
		m.emit(&DisconnectedEvent{Reason: fmt.Sprintf("logged out: %v", e.Reason)})
	case *events.StreamReplaced:
		m.emit(&DisconnectedEvent{Reason: "stream replaced by another session"})
	case *events.ConnectFailure:
		m.emit(&ConnectionStateEvent{State: fmt.Sprintf("connect_failure:%v", e.Reason)})
	case *events.KeepAliveTimeout:
		m.emit(&ConnectionStateEvent{State: "keepalive_timeout"})
	case *events.KeepAliveRestored:
		m.emit(&ConnectionStateEvent{State: "keepalive_restored"})
	case *events.Message:
		m.translateMessage(e)
	case *events.Receipt:
		ack := "delivered"
		if e.Type == types.ReceiptTypeRead || e.Type == types.ReceiptTypeReadSelf {
			ack = "read"
		} else if e.Type == types.ReceiptTypePlayed {
			ack = "played"
		}
		for _, msgID := range e.MessageIDs {
			m.emit(&AckEvent{
				MessageID: msgID,
				ChatID:    e.Chat.ToNonAD().String(),
				Ack:       ack,
				Timestamp: e.Timestamp,
			})
		}
	case *events.GroupInfo:
		joined := make([]string, 0, len(e.Join))
		for _, jid := range e.Join {
			joined = append(joined, jid.ToNonAD().String())
		}
		left := make([]string, 0, len(e.Leave))
		for _, jid := range e.Leave {
			left = append(left, jid.ToNonAD().String())
		}
		if len(joined) == 0 && len(left) == 0 {
			return
		}
		m.emit(&GroupParticipantsEvent{
			GroupID:   e.JID.String(),
			Joined:    joined,
			Left:      left,
			Timestamp: e.Timestamp,
		})
	}
}

func (m *Meow) identity() (phone string, name string) {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()
	if client == nil || client.Store.ID == nil {
		return "", ""
	}
	return client.Store.ID.User, client.Store.PushName
}

func (m *Meow) translateMessage(e *events.Message) {
	if e.Message == nil {
		return
	}

	if reaction := e.Message.GetReactionMessage(); reaction != nil {
		m.emit(&ReactionEvent{
			MessageID: reaction.GetKey().GetID(),
			ChatID:    e.Info.Chat.ToNonAD().String(),
			From:      e.Info.Sender.ToNonAD().String(),
			Emoji:     reaction.GetText(),
			Timestamp: e.Info.Timestamp,
		})
		return
	}

	body := e.Message.GetConversation()
	if body == "" {
		body = e.Message.GetExtendedTextMessage().GetText()
	}
	hasMedia := e.Message.GetImageMessage() != nil ||
		e.Message.GetVideoMessage() != nil ||
		e.Message.GetAudioMessage() != nil ||
		e.Message.GetDocumentMessage() != nil ||
		e.Message.GetStickerMessage() != nil
	if hasMedia && body == "" {
		body = e.Message.GetImageMessage().GetCaption()
	}

	msg := &MessageEvent{
		ID:        e.Info.ID,
		ChatID:    e.Info.Chat.ToNonAD().String(),
		From:      e.Info.Sender.ToNonAD().String(),
		To:        e.Info.Chat.ToNonAD().String(),
		Body:      body,
		Timestamp: e.Info.Timestamp,
		FromMe:    e.Info.IsFromMe,
		HasMedia:  hasMedia,
	}

	m.history.Append(Message{
		ID:        msg.ID,
		ChatID:    msg.ChatID,
		From:      msg.From,
		To:        msg.To,
		Body:      msg.Body,
		Timestamp: msg.Timestamp,
		FromMe:    msg.FromMe,
		HasMedia:  msg.HasMedia,
	})
	if e.Info.PushName != "" && !e.Info.IsFromMe {
		m.history.SetChatName(msg.ChatID, e.Info.PushName)
	}

	m.emit(msg)
}

func (m *Meow) SendMessage(ctx context.Context, to string, body string) (*SentMessage, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	remoteJID := ComposeJID(to)
	extra := whatsmeow.SendRequestExtra{ID: client.GenerateMessageID()}
	content := &waE2E.Message{
		Conversation: proto.String(body),
	}

	resp, err := client.SendMessage(ctx, remoteJID, content, extra)
	if err != nil {
		return nil, err
	}

	sent := &SentMessage{
		ID:        extra.ID,
		From:      m.SelfID(),
		To:        remoteJID.String(),
		Body:      body,
		Timestamp: resp.Timestamp,
		FromMe:    true,
	}
	m.recordSent(sent)
	return sent, nil
}

func (m *Meow) SendMedia(ctx context.Context, to string, media Media, caption string) (*SentMessage, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	remoteJID := ComposeJID(to)
	extra := whatsmeow.SendRequestExtra{ID: client.GenerateMessageID()}

	var content *waE2E.Message
	switch {
	case strings.HasPrefix(media.MimeType, "image/"):
		imageBytes := media.Data
		mimeType := media.MimeType
		if mimeType != "image/jpeg" {
			// Re-encode to JPEG so every client renders it inline.
			decoded, err := imgconv.Decode(bytes.NewReader(media.Data))
			if err == nil {
				var buf bytes.Buffer
				if err := imgconv.Write(&buf, decoded, &imgconv.FormatOption{Format: imgconv.JPEG}); err == nil {
					imageBytes = buf.Bytes()
					mimeType = "image/jpeg"
				}
			}
		}
		uploaded, err := client.Upload(ctx, imageBytes, whatsmeow.MediaImage)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		content = &waE2E.Message{
			ImageMessage: &waE2E.ImageMessage{
				URL:           proto.String(uploaded.URL),
				DirectPath:    proto.String(uploaded.DirectPath),
				Mimetype:      proto.String(mimeType),
				Caption:       proto.String(caption),
				FileLength:    proto.Uint64(uploaded.FileLength),
				FileSHA256:    uploaded.FileSHA256,
				FileEncSHA256: uploaded.FileEncSHA256,
				MediaKey:      uploaded.MediaKey,
			},
		}
	default:
		uploaded, err := client.Upload(ctx, media.Data, whatsmeow.MediaDocument)
		if err != nil {
			return nil, fmt.Errorf("upload document: %w", err)
		}
		mimeType := media.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		content = &waE2E.Message{
			DocumentMessage: &waE2E.DocumentMessage{
				URL:           proto.String(uploaded.URL),
				DirectPath:    proto.String(uploaded.DirectPath),
				Mimetype:      proto.String(mimeType),
				FileName:      proto.String(media.FileName),
				Caption:       proto.String(caption),
				FileLength:    proto.Uint64(uploaded.FileLength),
				FileSHA256:    uploaded.FileSHA256,
				FileEncSHA256: uploaded.FileEncSHA256,
				MediaKey:      uploaded.MediaKey,
			},
		}
	}

	resp, err := client.SendMessage(ctx, remoteJID, content, extra)
	if err != nil {
		return nil, err
	}

	sent := &SentMessage{
		ID:        extra.ID,
		From:      m.SelfID(),
		To:        remoteJID.String(),
		Body:      caption,
		Timestamp: resp.Timestamp,
		FromMe:    true,
		HasMedia:  true,
	}
	m.recordSent(sent)
	return sent, nil
}

// recordSent appends the outbound message to history and surfaces it as a
// raw message event so subscribers see their own sends.
func (m *Meow) recordSent(sent *SentMessage) {
	m.history.Append(Message{
		ID:        sent.ID,
		ChatID:    sent.To,
		From:      sent.From,
		To:        sent.To,
		Body:      sent.Body,
		Timestamp: sent.Timestamp,
		FromMe:    true,
		HasMedia:  sent.HasMedia,
	})
	m.emit(&MessageEvent{
		ID:        sent.ID,
		ChatID:    sent.To,
		From:      sent.From,
		To:        sent.To,
		Body:      sent.Body,
		Timestamp: sent.Timestamp,
		FromMe:    true,
		HasMedia:  sent.HasMedia,
	})
}

func (m *Meow) SendReaction(ctx context.Context, chatID string, messageID string, emoji string) error {
	client, err := m.current()
	if err != nil {
		return err
	}

	remoteJID := ComposeJID(chatID)
	content := &waE2E.Message{
		ReactionMessage: &waE2E.ReactionMessage{
			Key: &waCommon.MessageKey{
				FromMe:    proto.Bool(true),
				ID:        proto.String(messageID),
				RemoteJID: proto.String(remoteJID.String()),
			},
			Text:              proto.String(emoji),
			SenderTimestampMS: proto.Int64(time.Now().UnixMilli()),
		},
	}

	_, err = client.SendMessage(ctx, remoteJID, content)
	return err
}

func (m *Meow) GetMessages(ctx context.Context, chatID string, limit int, page int) ([]Message, error) {
	if _, err := m.current(); err != nil {
		return nil, err
	}
	return m.history.Page(ComposeJID(chatID).String(), limit, page), nil
}

func (m *Meow) GetContacts(ctx context.Context) ([]Contact, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	all, err := client.Store.Contacts.GetAllContacts(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]Contact, 0, len(all))
	for jid, info := range all {
		contacts = append(contacts, contactFromInfo(jid, info))
	}
	return contacts, nil
}

func (m *Meow) GetContactByID(ctx context.Context, contactID string) (*Contact, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	jid := ComposeJID(contactID)
	info, err := client.Store.Contacts.GetContact(ctx, jid)
	if err != nil {
		return nil, err
	}
	if !info.Found {
		return nil, nil
	}
	contact := contactFromInfo(jid, info)
	return &contact, nil
}

func contactFromInfo(jid types.JID, info types.ContactInfo) Contact {
	name := info.FullName
	if name == "" {
		name = info.PushName
	}
	return Contact{
		ID:          jid.ToNonAD().String(),
		Name:        name,
		PushName:    info.PushName,
		PhoneNumber: jid.User,
		IsBusiness:  info.BusinessName != "",
	}
}

func (m *Meow) IsRegistered(ctx context.Context, phone string) (bool, error) {
	client, err := m.current()
	if err != nil {
		return false, err
	}

	normalized := DecomposeJID(phone)
	if normalized == "" {
		return false, errors.New("phone is required")
	}
	infos, err := client.IsOnWhatsApp(ctx, []string{"+" + normalized})
	if err != nil {
		return false, err
	}
	return len(infos) > 0 && infos[0].IsIn, nil
}

func (m *Meow) BlockContact(ctx context.Context, contactID string) error {
	client, err := m.current()
	if err != nil {
		return err
	}
	_, err = client.UpdateBlocklist(ctx, ComposeJID(contactID), "block")
	return err
}

func (m *Meow) UnblockContact(ctx context.Context, contactID string) error {
	client, err := m.current()
	if err != nil {
		return err
	}
	_, err = client.UpdateBlocklist(ctx, ComposeJID(contactID), "unblock")
	return err
}

func (m *Meow) GetChats(ctx context.Context) ([]Chat, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	chats := m.history.Chats()
	for i := range chats {
		settings, err := client.Store.ChatSettings.GetChatSettings(ctx, ComposeJID(chats[i].ID))
		if err != nil || !settings.Found {
			continue
		}
		chats[i].Archived = settings.Archived
		chats[i].Pinned = settings.Pinned
		chats[i].MutedUntil = settings.MutedUntil
	}
	return chats, nil
}

func (m *Meow) GetChatByID(ctx context.Context, chatID string) (*Chat, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	jid := ComposeJID(chatID)
	chat, ok := m.history.Chat(jid.String())
	if !ok {
		return nil, nil
	}
	settings, err := client.Store.ChatSettings.GetChatSettings(ctx, jid)
	if err == nil && settings.Found {
		chat.Archived = settings.Archived
		chat.Pinned = settings.Pinned
		chat.MutedUntil = settings.MutedUntil
	}
	return &chat, nil
}

func (m *Meow) SetChatMuted(ctx context.Context, chatID string, until time.Time) error {
	client, err := m.current()
	if err != nil {
		return err
	}

	jid := ComposeJID(chatID)
	mute := !until.IsZero() && until.After(time.Now())
	var duration time.Duration
	if mute {
		duration = time.Until(until)
	}
	if err := client.SendAppState(ctx, appstate.BuildMute(jid, mute, duration)); err != nil {
		return err
	}
	return client.Store.ChatSettings.PutMutedUntil(ctx, jid, until)
}

func (m *Meow) SetChatArchived(ctx context.Context, chatID string, archived bool) error {
	client, err := m.current()
	if err != nil {
		return err
	}

	jid := ComposeJID(chatID)
	if err := client.SendAppState(ctx, appstate.BuildArchive(jid, archived, time.Time{}, nil)); err != nil {
		return err
	}
	return client.Store.ChatSettings.PutArchived(ctx, jid, archived)
}

func (m *Meow) SetChatPinned(ctx context.Context, chatID string, pinned bool) error {
	client, err := m.current()
	if err != nil {
		return err
	}

	jid := ComposeJID(chatID)
	if err := client.SendAppState(ctx, appstate.BuildPin(jid, pinned)); err != nil {
		return err
	}
	return client.Store.ChatSettings.PutPinned(ctx, jid, pinned)
}

func (m *Meow) GetGroups(ctx context.Context) ([]Group, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	joined, err := client.GetJoinedGroups(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(joined))
	for _, info := range joined {
		groups = append(groups, groupFromInfo(info))
	}
	return groups, nil
}

func (m *Meow) GetGroupByID(ctx context.Context, groupID string) (*Group, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	info, err := client.GetGroupInfo(ctx, ComposeJID(groupID))
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}
	group := groupFromInfo(info)
	return &group, nil
}

func groupFromInfo(info *types.GroupInfo) Group {
	participants := make([]GroupParticipant, 0, len(info.Participants))
	for _, p := range info.Participants {
		participants = append(participants, GroupParticipant{
			ID:      p.JID.ToNonAD().String(),
			IsAdmin: p.IsAdmin || p.IsSuperAdmin,
		})
	}
	return Group{
		ID:           info.JID.String(),
		Name:         info.Name,
		Topic:        info.Topic,
		Owner:        info.OwnerJID.ToNonAD().String(),
		Participants: participants,
		CreatedAt:    info.GroupCreated,
	}
}

func (m *Meow) CreateGroup(ctx context.Context, name string, participantIDs []string) (*Group, error) {
	client, err := m.current()
	if err != nil {
		return nil, err
	}

	req := whatsmeow.ReqCreateGroup{Name: name}
	participants := make([]types.JID, 0, len(participantIDs))
	for _, participant := range participantIDs {
		jid := ComposeJID(participant)
		if jid.Server == types.GroupServer {
			return nil, ErrParticipantMustBeUser
		}
		participants = append(participants, jid)
	}
	req.Participants = participants

	info, err := client.CreateGroup(ctx, req)
	if err != nil {
		return nil, err
	}
	group := groupFromInfo(info)
	return &group, nil
}

func (m *Meow) SetGroupName(ctx context.Context, groupID string, name string) error {
	client, err := m.current()
	if err != nil {
		return err
	}
	return client.SetGroupName(ctx, ComposeJID(groupID), name)
}

func (m *Meow) SetGroupDescription(ctx context.Context, groupID string, description string) error {
	client, err := m.current()
	if err != nil {
		return err
	}
	return client.SetGroupDescription(ctx, ComposeJID(groupID), description)
}

func (m *Meow) LeaveGroup(ctx context.Context, groupID string) error {
	client, err := m.current()
	if err != nil {
		return err
	}
	return client.LeaveGroup(ctx, ComposeJID(groupID))
}

func (m *Meow) AddParticipants(ctx context.Context, groupID string, participantIDs []string) error {
	return m.updateParticipants(ctx, groupID, participantIDs, whatsmeow.ParticipantChangeAdd)
}

func (m *Meow) RemoveParticipants(ctx context.Context, groupID string, participantIDs []string) error {
	return m.updateParticipants(ctx, groupID, participantIDs, whatsmeow.ParticipantChangeRemove)
}

func (m *Meow) updateParticipants(ctx context.Context, groupID string, participantIDs []string, change whatsmeow.ParticipantChange) error {
	client, err := m.current()
	if err != nil {
		return err
	}

	jidList := make([]types.JID, 0, len(participantIDs))
	for _, participant := range participantIDs {
		jid := ComposeJID(participant)
		if jid.Server == types.GroupServer {
			return ErrParticipantMustBeUser
		}
		jidList = append(jidList, jid)
	}

	_, err = client.UpdateGroupParticipants(ctx, ComposeJID(groupID), jidList, change)
	if err != nil {
		log.SessionOp("UpdateGroupParticipants").WithError(err).Warn("participant update failed")
	}
	return err
}

func (m *Meow) GetInviteLink(ctx context.Context, groupID string, reset bool) (string, error) {
	client, err := m.current()
	if err != nil {
		return "", err
	}
	return client.GetGroupInviteLink(ctx, ComposeJID(groupID), reset)
}
