// Package mailbox carries a one-shot decision message from the
// application-review view back to the dashboard. It is a single slot,
// not a queue: the producer writes at most one pending message, and the
// consumer takes-and-clears it atomically so no two drains can observe
// the same message.
package mailbox

import "sync"

// Action is the decision carried by a message.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// Message is the transient cross-view payload. It is never persisted.
type Message struct {
	Action        Action `json:"action"`
	ApplicationID string `json:"applicationId"`
	ProjectID     string `json:"projectId"`
	StudentName   string `json:"studentName"`
}

// Mailbox is a single-slot message broker.
type Mailbox struct {
	mu      sync.Mutex
	msg     Message
	pending bool
}

// New creates an empty mailbox.
func New() *Mailbox {
	return &Mailbox{}
}

// Post stores msg as the pending message, replacing any previous one.
func (m *Mailbox) Post(msg Message) {
	m.mu.Lock()
	m.msg = msg
	m.pending = true
	m.mu.Unlock()
}

// Drain removes and returns the pending message. The second return value
// is false when the slot is empty. Take and clear happen under one lock,
// so two drains can never both observe the same message.
func (m *Mailbox) Drain() (Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.pending {
		return Message{}, false
	}
	msg := m.msg
	m.msg = Message{}
	m.pending = false
	return msg, true
}
