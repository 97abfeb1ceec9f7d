package waclient

import (
	"sort"
	"sync"
	"time"
)

// messageLog keeps a fixed-capacity circular buffer of recent messages per
// chat. The underlying network does not serve arbitrary history queries, so
// GetMessages answers from what flowed through this process.
type messageLog struct {
	mu       sync.RWMutex
	chats    map[string]*chatRing
	capacity int
}

type chatRing struct {
	buf    []Message
	pos    int
	full   bool
	lastAt time.Time
	name   string
}

func newMessageLog(capacity int) *messageLog {
	if capacity <= 0 {
		capacity = 200
	}
	return &messageLog{
		chats:    make(map[string]*chatRing),
		capacity: capacity,
	}
}

func (l *messageLog) Append(msg Message) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ring, ok := l.chats[msg.ChatID]
	if !ok {
		ring = &chatRing{buf: make([]Message, l.capacity)}
		l.chats[msg.ChatID] = ring
	}

	ring.buf[ring.pos] = msg
	ring.pos = (ring.pos + 1) % l.capacity
	if ring.pos == 0 {
		ring.full = true
	}
	if msg.Timestamp.After(ring.lastAt) {
		ring.lastAt = msg.Timestamp
	}
}

// Page returns one page of a chat's history, newest first.
func (l *messageLog) Page(chatID string, limit int, page int) []Message {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}

	l.mu.RLock()
	ring, ok := l.chats[chatID]
	if !ok {
		l.mu.RUnlock()
		return []Message{}
	}

	var all []Message
	if !ring.full {
		all = make([]Message, ring.pos)
		copy(all, ring.buf[:ring.pos])
	} else {
		all = make([]Message, l.capacity)
		copy(all, ring.buf[ring.pos:])
		copy(all[l.capacity-ring.pos:], ring.buf[:ring.pos])
	}
	l.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	start := (page - 1) * limit
	if start >= len(all) {
		return []Message{}
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

// Chats lists every chat the log has seen, most recently active first.
func (l *messageLog) Chats() []Chat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	chats := make([]Chat, 0, len(l.chats))
	for id, ring := range l.chats {
		chats = append(chats, Chat{
			ID:            id,
			Name:          ring.name,
			IsGroup:       IsGroupID(id),
			LastMessageAt: ring.lastAt,
		})
	}
	sort.Slice(chats, func(i, j int) bool {
		return chats[i].LastMessageAt.After(chats[j].LastMessageAt)
	})
	return chats
}

func (l *messageLog) Chat(chatID string) (Chat, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ring, ok := l.chats[chatID]
	if !ok {
		return Chat{}, false
	}
	return Chat{
		ID:            chatID,
		Name:          ring.name,
		IsGroup:       IsGroupID(chatID),
		LastMessageAt: ring.lastAt,
	}, true
}

func (l *messageLog) SetChatName(chatID string, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ring, ok := l.chats[chatID]
	if !ok {
		ring = &chatRing{buf: make([]Message, l.capacity)}
		l.chats[chatID] = ring
	}
	if name != "" {
		ring.name = name
	}
}
