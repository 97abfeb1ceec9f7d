package waclient

import (
	"fmt"
	"testing"
	"time"
)

func appendN(log *messageLog, chatID string, n int, start time.Time) {
	for i := 0; i < n; i++ {
		log.Append(Message{
			ID:        fmt.Sprintf("m-%d", i),
			ChatID:    chatID,
			Body:      fmt.Sprintf("msg %d", i),
			Timestamp: start.Add(time.Duration(i) * time.Second),
		})
	}
}

func TestMessageLogPageNewestFirst(t *testing.T) {
	log := newMessageLog(10)
	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	appendN(log, "chat@c.us", 5, start)

	page := log.Page("chat@c.us", 3, 1)
	if len(page) != 3 {
		t.Fatalf("len = %d, want 3", len(page))
	}
	if page[0].ID != "m-4" || page[2].ID != "m-2" {
		t.Fatalf("unexpected order: %s .. %s", page[0].ID, page[2].ID)
	}

	second := log.Page("chat@c.us", 3, 2)
	if len(second) != 2 || second[0].ID != "m-1" {
		t.Fatalf("unexpected second page: %+v", second)
	}

	if got := log.Page("chat@c.us", 3, 5); len(got) != 0 {
		t.Fatalf("page past end returned %d messages", len(got))
	}
	if got := log.Page("unknown@c.us", 3, 1); len(got) != 0 {
		t.Fatalf("unknown chat returned %d messages", len(got))
	}
}

func TestMessageLogEvictsOldest(t *testing.T) {
	log := newMessageLog(4)
	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	appendN(log, "chat@c.us", 6, start)

	page := log.Page("chat@c.us", 10, 1)
	if len(page) != 4 {
		t.Fatalf("len = %d, want capacity 4", len(page))
	}
	// m-0 and m-1 were overwritten by the ring.
	for _, msg := range page {
		if msg.ID == "m-0" || msg.ID == "m-1" {
			t.Fatalf("evicted message %s still present", msg.ID)
		}
	}
}

func TestMessageLogChatsOrderedByActivity(t *testing.T) {
	log := newMessageLog(10)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	log.Append(Message{ID: "a", ChatID: "old@c.us", Timestamp: base})
	log.Append(Message{ID: "b", ChatID: "123-456@g.us", Timestamp: base.Add(time.Hour)})
	log.SetChatName("old@c.us", "Alice")

	chats := log.Chats()
	if len(chats) != 2 {
		t.Fatalf("len = %d, want 2", len(chats))
	}
	if chats[0].ID != "123-456@g.us" {
		t.Fatalf("most recent chat = %s", chats[0].ID)
	}
	if !chats[0].IsGroup || chats[1].IsGroup {
		t.Fatal("group flag wrong")
	}

	chat, ok := log.Chat("old@c.us")
	if !ok || chat.Name != "Alice" {
		t.Fatalf("chat lookup = %+v, %v", chat, ok)
	}
}
