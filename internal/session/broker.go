package session

import (
	"sync"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/metrics"
)

const subscriberBuffer = 64

// Broker fans normalized events out to attached consumers with at-most-once
// delivery per consumer. There is no replay: a consumer attached after an
// event was published never sees it. Delivery is non-blocking; a consumer
// that falls behind its buffer loses events rather than stalling the
// pipeline.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func newBroker() *Broker {
	return &Broker{subs: make(map[chan Event]struct{})}
}

// Subscribe attaches a consumer. The returned cancel func deregisters it and
// closes the channel; it is safe to call more than once.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers the event to every attached consumer in-line, preserving
// the order events were produced in.
func (b *Broker) Publish(evt Event) {
	metrics.EventsEmitted.WithLabelValues(string(evt.Kind)).Inc()

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
			log.EventOp(string(evt.Kind)).Warn("dropping event for slow consumer")
		}
	}
}

// SubscriberCount reports how many consumers are attached.
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
