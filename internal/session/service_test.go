package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/waclient"
)

func newReadyService(t *testing.T) (*Service, *stubClient) {
	t.Helper()
	stub := newStubClient()
	svc := New(stub)
	stub.emit(&waclient.ReadyEvent{PhoneNumber: "5511888888888", DisplayName: "Gateway"})
	if !svc.Status().Ready {
		t.Fatal("service did not become ready after ready event")
	}
	return svc, stub
}

func TestReadyImpliesAuthenticated(t *testing.T) {
	sequences := map[string][]interface{}{
		"fresh pairing": {
			&waclient.QRCodeEvent{Code: "challenge-1"},
			&waclient.AuthenticatedEvent{},
			&waclient.ReadyEvent{PhoneNumber: "551188", DisplayName: "A"},
		},
		"credential restore": {
			&waclient.ReadyEvent{PhoneNumber: "551188"},
		},
		"reissued challenge": {
			&waclient.QRCodeEvent{Code: "challenge-1"},
			&waclient.AuthFailureEvent{Reason: "scan timeout"},
			&waclient.QRCodeEvent{Code: "challenge-2"},
			&waclient.AuthenticatedEvent{},
			&waclient.ReadyEvent{},
		},
		"disconnect and repair": {
			&waclient.QRCodeEvent{Code: "c1"},
			&waclient.AuthenticatedEvent{},
			&waclient.ReadyEvent{},
			&waclient.DisconnectedEvent{Reason: "stream replaced"},
			&waclient.QRCodeEvent{Code: "c2"},
		},
	}

	for name, events := range sequences {
		t.Run(name, func(t *testing.T) {
			stub := newStubClient()
			svc := New(stub)
			for _, evt := range events {
				stub.emit(evt)
				status := svc.Status()
				if status.Ready && !status.Authenticated {
					t.Fatalf("after %T: ready without authenticated", evt)
				}
				if status.QRChallenge != "" && status.Authenticated {
					t.Fatalf("after %T: qr challenge outstanding while authenticated", evt)
				}
			}
		})
	}
}

func TestAuthFailureAdvancesActivity(t *testing.T) {
	stub := newStubClient()
	svc := New(stub)

	stub.emit(&waclient.QRCodeEvent{Code: "challenge-1"})
	before := svc.Status().LastActivityAt
	time.Sleep(2 * time.Millisecond)

	stub.emit(&waclient.AuthFailureEvent{Reason: "scan timeout"})

	status := svc.Status()
	if !status.LastActivityAt.After(before) {
		t.Fatal("lastActivityAt did not advance on auth failure")
	}
	if status.State != StateAwaitingQR || status.QRChallenge != "challenge-1" {
		t.Fatalf("auth failure disturbed pairing state: %+v", status)
	}
}

func TestDisconnectPreservesIdentity(t *testing.T) {
	svc, stub := newReadyService(t)

	stub.emit(&waclient.DisconnectedEvent{Reason: "connection closed"})

	status := svc.Status()
	if status.State != StateDisconnected {
		t.Fatalf("state = %s, want %s", status.State, StateDisconnected)
	}
	if status.Ready || status.Authenticated {
		t.Fatal("flags not cleared on disconnect")
	}
	if status.PhoneNumber != "5511888888888" {
		t.Fatalf("phone number lost on disconnect: %q", status.PhoneNumber)
	}
}

func TestGuardBlocksUnderlyingClient(t *testing.T) {
	stub := newStubClient()
	svc := New(stub)

	_, err := svc.SendMessage(context.Background(), "5511999999999@c.us", "hi")

	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatalf("error is %T, want *session.Error", err)
	}
	if typed.Code != CodeSessionNotReady {
		t.Fatalf("code = %s, want %s", typed.Code, CodeSessionNotReady)
	}
	if n := stub.callCount("SendMessage"); n != 0 {
		t.Fatalf("client SendMessage called %d times, want 0", n)
	}
}

func TestOperationErrorCodes(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		stubOp   string
		wantCode string
		invoke   func(svc *Service) error
	}{
		{"sendMessage", "SendMessage", CodeSend, func(svc *Service) error {
			_, err := svc.SendMessage(context.Background(), "1@c.us", "hi")
			return err
		}},
		{"sendMedia", "SendMedia", CodeSendMedia, func(svc *Service) error {
			_, err := svc.SendMedia(context.Background(), "1@c.us", waclient.Media{Data: []byte{1}}, "")
			return err
		}},
		{"sendReaction", "SendReaction", CodeSendReaction, func(svc *Service) error {
			return svc.SendReaction(context.Background(), "1@c.us", "m1", "👍")
		}},
		{"getMessages", "GetMessages", CodeGetMessages, func(svc *Service) error {
			_, err := svc.GetMessages(context.Background(), "1@c.us", 10, 1)
			return err
		}},
		{"getContacts", "GetContacts", CodeGetContacts, func(svc *Service) error {
			_, err := svc.GetContacts(context.Background())
			return err
		}},
		{"getContact", "GetContactByID", CodeGetContact, func(svc *Service) error {
			_, err := svc.GetContactByID(context.Background(), "1@c.us")
			return err
		}},
		{"isRegistered", "IsRegistered", CodeCheckRegistered, func(svc *Service) error {
			_, err := svc.IsRegistered(context.Background(), "5511999999999")
			return err
		}},
		{"blockContact", "BlockContact", CodeBlockContact, func(svc *Service) error {
			return svc.BlockContact(context.Background(), "1@c.us")
		}},
		{"unblockContact", "UnblockContact", CodeUnblockContact, func(svc *Service) error {
			return svc.UnblockContact(context.Background(), "1@c.us")
		}},
		{"getChats", "GetChats", CodeGetChats, func(svc *Service) error {
			_, err := svc.GetChats(context.Background())
			return err
		}},
		{"getChat", "GetChatByID", CodeGetChat, func(svc *Service) error {
			_, err := svc.GetChatByID(context.Background(), "1@c.us")
			return err
		}},
		{"muteChat", "SetChatMuted", CodeMuteChat, func(svc *Service) error {
			return svc.MuteChat(context.Background(), "1@c.us", time.Hour)
		}},
		{"archiveChat", "SetChatArchived", CodeArchiveChat, func(svc *Service) error {
			return svc.ArchiveChat(context.Background(), "1@c.us", true)
		}},
		{"pinChat", "SetChatPinned", CodePinChat, func(svc *Service) error {
			return svc.PinChat(context.Background(), "1@c.us", true)
		}},
		{"getGroups", "GetGroups", CodeGetGroups, func(svc *Service) error {
			_, err := svc.GetGroups(context.Background())
			return err
		}},
		{"getGroup", "GetGroupByID", CodeGetGroup, func(svc *Service) error {
			_, err := svc.GetGroupByID(context.Background(), "1-2@g.us")
			return err
		}},
		{"createGroup", "CreateGroup", CodeCreateGroup, func(svc *Service) error {
			_, err := svc.CreateGroup(context.Background(), "team", []string{"1@c.us"})
			return err
		}},
		{"updateGroup", "SetGroupName", CodeUpdateGroup, func(svc *Service) error {
			return svc.UpdateGroup(context.Background(), "1-2@g.us", "new name", "")
		}},
		{"leaveGroup", "LeaveGroup", CodeLeaveGroup, func(svc *Service) error {
			return svc.LeaveGroup(context.Background(), "1-2@g.us")
		}},
		{"addParticipants", "AddParticipants", CodeAddParticipants, func(svc *Service) error {
			return svc.AddParticipants(context.Background(), "1-2@g.us", []string{"1@c.us"})
		}},
		{"removeParticipants", "RemoveParticipants", CodeRemoveParticipants, func(svc *Service) error {
			return svc.RemoveParticipants(context.Background(), "1-2@g.us", []string{"1@c.us"})
		}},
		{"getInviteLink", "GetInviteLink", CodeInviteLink, func(svc *Service) error {
			_, err := svc.GetInviteLink(context.Background(), "1-2@g.us", false)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, stub := newReadyService(t)
			stub.failWith(tt.stubOp, boom)

			err := tt.invoke(svc)

			var typed *Error
			if !errors.As(err, &typed) {
				t.Fatalf("error is %T, want *session.Error", err)
			}
			if typed.Code != tt.wantCode {
				t.Fatalf("code = %s, want %s", typed.Code, tt.wantCode)
			}
			if !errors.Is(err, boom) {
				t.Fatal("typed error does not wrap the original failure")
			}
		})
	}
}

func TestValidationFailsBeforeClient(t *testing.T) {
	svc, stub := newReadyService(t)

	_, err := svc.CreateGroup(context.Background(), "team", nil)

	var typed *Error
	if !errors.As(err, &typed) || typed.Code != CodeValidation {
		t.Fatalf("err = %v, want %s", err, CodeValidation)
	}
	if n := stub.callCount("CreateGroup"); n != 0 {
		t.Fatalf("client CreateGroup called %d times, want 0", n)
	}
}

func TestSendMessageResult(t *testing.T) {
	svc, stub := newReadyService(t)
	stub.sent = &waclient.SentMessage{
		ID:        "abc",
		From:      stub.selfID,
		To:        "5511999999999@c.us",
		Body:      "hi",
		Timestamp: time.Now(),
		FromMe:    true,
	}

	before := svc.Status().LastActivityAt
	time.Sleep(2 * time.Millisecond)

	sent, err := svc.SendMessage(context.Background(), "5511999999999@c.us", "hi")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if sent.ID != "abc" || sent.To != "5511999999999@c.us" || sent.Body != "hi" || !sent.FromMe {
		t.Fatalf("unexpected descriptor: %+v", sent)
	}
	if sent.From != stub.selfID {
		t.Fatalf("from = %q, want self id", sent.From)
	}
	if !svc.Status().LastActivityAt.After(before) {
		t.Fatal("lastActivityAt did not advance on successful send")
	}
}

func TestNoReplayForLateSubscribers(t *testing.T) {
	svc, stub := newReadyService(t)

	stub.emit(&waclient.MessageEvent{ID: "m1", ChatID: "1@c.us", Body: "early"})

	events, cancel := svc.Subscribe()
	defer cancel()

	select {
	case evt := <-events:
		t.Fatalf("late subscriber received replayed event %s", evt.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFanOutToMultipleConsumers(t *testing.T) {
	svc, stub := newReadyService(t)

	first, cancelFirst := svc.Subscribe()
	second, cancelSecond := svc.Subscribe()
	defer cancelSecond()

	stub.emit(&waclient.MessageEvent{ID: "m1", ChatID: "1@c.us", From: "1@c.us", Body: "hello", Timestamp: time.Now()})

	receive := func(ch <-chan Event) Event {
		t.Helper()
		select {
		case evt := <-ch:
			return evt
		case <-time.After(time.Second):
			t.Fatal("consumer did not receive event")
			return Event{}
		}
	}

	evtA := receive(first)
	evtB := receive(second)
	if evtA.Kind != EventMessage || evtB.Kind != EventMessage {
		t.Fatalf("kinds = %s / %s, want %s", evtA.Kind, evtB.Kind, EventMessage)
	}
	payloadA := evtA.Payload.(MessagePayload)
	payloadB := evtB.Payload.(MessagePayload)
	if payloadA != payloadB {
		t.Fatalf("payloads differ: %+v vs %+v", payloadA, payloadB)
	}

	cancelFirst()
	stub.emit(&waclient.MessageEvent{ID: "m2", ChatID: "1@c.us", Body: "still here"})
	if evt := receive(second); evt.Payload.(MessagePayload).ID != "m2" {
		t.Fatal("remaining consumer missed event after peer detached")
	}
}

func TestMessageEventRoundTrip(t *testing.T) {
	svc, stub := newReadyService(t)
	events, cancel := svc.Subscribe()
	defer cancel()

	sentAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	stub.emit(&waclient.MessageEvent{
		ID:        "m-42",
		ChatID:    "5511999999999@c.us",
		From:      "5511999999999@c.us",
		To:        stub.selfID,
		Body:      "ping",
		Timestamp: sentAt,
	})

	var evt Event
	select {
	case evt = <-events:
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	wire, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Event   string `json:"event"`
		Payload struct {
			ID        string    `json:"id"`
			From      string    `json:"from"`
			To        string    `json:"to"`
			Body      string    `json:"body"`
			Timestamp time.Time `json:"timestamp"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(wire, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Event != string(EventMessage) {
		t.Fatalf("event = %s, want %s", decoded.Event, EventMessage)
	}
	if decoded.Payload.ID != "m-42" || decoded.Payload.From != "5511999999999@c.us" ||
		decoded.Payload.To != stub.selfID || decoded.Payload.Body != "ping" ||
		!decoded.Payload.Timestamp.Equal(sentAt) {
		t.Fatalf("round-trip mismatch: %+v", decoded.Payload)
	}
}

func TestRestartTransitions(t *testing.T) {
	t.Setenv("WHATSAPP_RESTART_DELAY", "1ms")

	stub := newStubClient()
	svc := New(stub)
	stub.emit(&waclient.QRCodeEvent{Code: "c1"})
	stub.emit(&waclient.AuthenticatedEvent{})
	stub.emit(&waclient.ReadyEvent{PhoneNumber: "5511888888888"})

	if err := svc.Restart(context.Background()); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if stub.callCount("Destroy") != 1 || stub.callCount("Initialize") != 1 {
		t.Fatal("restart did not tear down then reinitialize")
	}

	status := svc.Status()
	if status.State != StateUninitialized {
		t.Fatalf("state after restart = %s, want %s", status.State, StateUninitialized)
	}
	if status.Ready || status.Authenticated {
		t.Fatal("flags not reset by restart")
	}

	stub.emit(&waclient.QRCodeEvent{Code: "c2"})
	status = svc.Status()
	if status.State != StateAwaitingQR || status.QRChallenge != "c2" {
		t.Fatalf("state after reissued challenge = %+v", status)
	}
	if status.Ready {
		t.Fatal("session became ready without an authenticated transition")
	}
}

func TestLogoutResetsState(t *testing.T) {
	svc, stub := newReadyService(t)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if stub.callCount("Logout") != 1 {
		t.Fatal("client Logout not called")
	}

	status := svc.Status()
	if status.State != StateUninitialized || status.Ready || status.Authenticated || status.PhoneNumber != "" {
		t.Fatalf("state not reset after logout: %+v", status)
	}
}
