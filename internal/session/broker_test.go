package session

import (
	"testing"
	"time"
)

func TestBrokerSubscribeAndCancel(t *testing.T) {
	broker := newBroker()

	ch, cancel := broker.Subscribe()
	if broker.SubscriberCount() != 1 {
		t.Fatalf("count = %d, want 1", broker.SubscriberCount())
	}

	broker.Publish(Event{Kind: EventState, Timestamp: time.Now()})
	select {
	case evt := <-ch:
		if evt.Kind != EventState {
			t.Fatalf("kind = %s, want %s", evt.Kind, EventState)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	cancel()
	cancel() // second cancel is a no-op
	if broker.SubscriberCount() != 0 {
		t.Fatalf("count after cancel = %d, want 0", broker.SubscriberCount())
	}
	if _, open := <-ch; open {
		t.Fatal("channel not closed after cancel")
	}
}

func TestBrokerDropsWhenConsumerFull(t *testing.T) {
	broker := newBroker()
	ch, cancel := broker.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		broker.Publish(Event{Kind: EventMessage, Timestamp: time.Now()})
	}

	// The buffer holds at most subscriberBuffer events; the rest were
	// dropped without blocking the publisher.
	if len(ch) != subscriberBuffer {
		t.Fatalf("buffered = %d, want %d", len(ch), subscriberBuffer)
	}
}
