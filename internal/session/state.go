package session

import (
	"sync"
	"time"
)

// State names the lifecycle phase of the single underlying client session.
type State string

const (
	StateUninitialized State = "UNINITIALIZED"
	StateAwaitingQR    State = "AWAITING_QR"
	StateAuthenticated State = "AUTHENTICATED"
	StateReady         State = "READY"
	StateDisconnected  State = "DISCONNECTED"
)

// Status is a read-only snapshot of the session state holder. The ready flag
// implies the authenticated flag; the QR challenge is present only while a
// pairing challenge is outstanding.
type Status struct {
	State          State     `json:"state"`
	Ready          bool      `json:"ready"`
	Authenticated  bool      `json:"authenticated"`
	QRChallenge    string    `json:"qrChallenge,omitempty"`
	PhoneNumber    string    `json:"phoneNumber,omitempty"`
	DisplayName    string    `json:"displayName,omitempty"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

// stateHolder is the one shared mutable record of the session package. It is
// mutated only by the normalizer and by lifecycle resets; every transition
// runs as a single critical section so readers never observe a snapshot that
// violates ready implies authenticated.
type stateHolder struct {
	mu     sync.RWMutex
	status Status
	now    func() time.Time
}

func newStateHolder() *stateHolder {
	return &stateHolder{
		status: Status{State: StateUninitialized},
		now:    time.Now,
	}
}

func (h *stateHolder) Snapshot() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

func (h *stateHolder) setAwaitingQR(challenge string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status.State = StateAwaitingQR
	h.status.Ready = false
	h.status.Authenticated = false
	h.status.QRChallenge = challenge
	h.status.LastActivityAt = h.now()
}

func (h *stateHolder) setAuthenticated() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status.State = StateAuthenticated
	h.status.Authenticated = true
	h.status.Ready = false
	h.status.QRChallenge = ""
	h.status.LastActivityAt = h.now()
}

func (h *stateHolder) setReady(phoneNumber string, displayName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status.State = StateReady
	// Credential-restored sessions connect without a pairing round, so ready
	// always carries authenticated with it.
	h.status.Authenticated = true
	h.status.Ready = true
	h.status.QRChallenge = ""
	if phoneNumber != "" {
		h.status.PhoneNumber = phoneNumber
	}
	if displayName != "" {
		h.status.DisplayName = displayName
	}
	h.status.LastActivityAt = h.now()
}

// setAuthFailure records a failed pairing attempt. The session stays in
// AWAITING_QR with its challenge intact; only the activity timestamp moves.
func (h *stateHolder) setAuthFailure() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status.LastActivityAt = h.now()
}

// setDisconnected clears the connection flags but keeps the last-known
// identity for diagnostics.
func (h *stateHolder) setDisconnected() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status.State = StateDisconnected
	h.status.Ready = false
	h.status.Authenticated = false
	h.status.QRChallenge = ""
	h.status.LastActivityAt = h.now()
}

func (h *stateHolder) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = Status{State: StateUninitialized, LastActivityAt: h.now()}
}

// touch bumps the activity timestamp after a successful mutating command.
func (h *stateHolder) touch() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status.LastActivityAt = h.now()
}
