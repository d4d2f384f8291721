// Package session holds the append-only exchange log of one interactive
// support session. Entries exist for display only; nothing here survives a
// process restart.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role marks what kind of exchange an entry records.
type Role string

const (
	RoleUser       Role = "user"       // customer input; Meta is the email
	RoleAssignment Role = "assignment" // category assignment; Meta is the email
	RoleReply      Role = "reply"      // handler reply; Meta is the category label
)

// Entry is one turn of the conversation.
type Entry struct {
	ID   string    `json:"id"`
	Role Role      `json:"role"`
	Text string    `json:"text"`
	Meta string    `json:"meta,omitempty"`
	At   time.Time `json:"at"`
}

// Log is an ordered, append-only exchange log scoped to one session.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

func (l *Log) AppendUser(text, email string) Entry {
	return l.append(RoleUser, text, email)
}

func (l *Log) AppendAssignment(label, email string) Entry {
	return l.append(RoleAssignment, label, email)
}

func (l *Log) AppendReply(text, label string) Entry {
	return l.append(RoleReply, text, label)
}

func (l *Log) append(role Role, text, meta string) Entry {
	e := Entry{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		Meta: meta,
		At:   l.now().UTC(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	return e
}

// Entries returns a copy of the log in append order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Reset drops every entry. The log itself stays usable.
func (l *Log) Reset() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}
