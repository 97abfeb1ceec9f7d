package router

import (
	"fmt"
	"testing"
	"time"
)

func TestVisitorLimitersReuseAndLimit(t *testing.T) {
	limiters := newVisitorLimiters(1, 1)

	first := limiters.get("10.0.0.1")
	if first != limiters.get("10.0.0.1") {
		t.Fatal("same ip did not reuse its limiter")
	}
	if first == limiters.get("10.0.0.2") {
		t.Fatal("distinct ips share a limiter")
	}

	if !first.Allow() {
		t.Fatal("first request denied")
	}
	if first.Allow() {
		t.Fatal("burst of 1 allowed a second immediate request")
	}
}

func TestVisitorLimitersSweepIdle(t *testing.T) {
	limiters := newVisitorLimiters(20, 40)

	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	limiters.now = func() time.Time { return current }

	for i := 0; i < visitorSweepThreshold; i++ {
		limiters.get(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	if limiters.size() != visitorSweepThreshold {
		t.Fatalf("size = %d, want %d", limiters.size(), visitorSweepThreshold)
	}

	// All existing entries are now idle past the TTL; the next lookup
	// triggers the sweep and leaves only the new visitor.
	current = current.Add(visitorIdleTTL + time.Minute)
	limiters.get("192.168.0.1")

	if limiters.size() != 1 {
		t.Fatalf("size after sweep = %d, want 1", limiters.size())
	}

	// Only visitors seen since the cutoff stay tracked.
	for i := 0; i < visitorSweepThreshold; i++ {
		limiters.get(fmt.Sprintf("10.1.%d.%d", i/256, i%256))
	}
	current = current.Add(visitorIdleTTL + time.Minute)
	limiters.get("192.168.0.1")
	current = current.Add(time.Second)
	limiters.get("192.168.0.2")

	if limiters.size() != 2 {
		t.Fatalf("size = %d, want the two recent visitors", limiters.size())
	}
}
