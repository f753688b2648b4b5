// Package model holds the records shared by the conversation view-model,
// the backend collaborators and the wire layer.
package model

import "time"

// Status is the delivery state of a message.
type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

// AnonymousName is stored as the sender name when the identity has none.
const AnonymousName = "Anonymous"

// User is a directory entry.
type User struct {
	UID   string
	Name  string
	Email string
}

// Identity is the signed-in principal. Only UID is relied upon.
type Identity struct {
	UID         string
	DisplayName string
	Email       string
}

// Name returns the display name, falling back to AnonymousName.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return AnonymousName
}

// Message is a single chat record. Only the read-state fields
// (Read, ReadAt, Status) change after creation.
type Message struct {
	ID            string
	UID           string
	DisplayName   string
	RecipientID   string
	RecipientName string
	Text          string
	CreatedAt     time.Time
	Status        Status
	Read          bool
	ReadAt        *time.Time

	IsAttachment bool
	FileURL      string
	FileType     string
	FileSize     int64
}

// IsRead reports whether every read indicator agrees. Records missing any
// of them (legacy or partially migrated) count as unread.
func (m Message) IsRead() bool {
	return m.Read && m.ReadAt != nil && m.Status == StatusRead
}

// Involves reports whether uid is the sender or the recipient.
func (m Message) Involves(uid string) bool {
	return m.UID == uid || m.RecipientID == uid
}

// Between reports whether the message was exchanged by a and b, in either direction.
func (m Message) Between(a, b string) bool {
	return (m.UID == a && m.RecipientID == b) || (m.UID == b && m.RecipientID == a)
}

// Counterpart returns the other party of a message involving self, or "".
func (m Message) Counterpart(self string) string {
	switch {
	case m.UID == self && m.RecipientID != "":
		return m.RecipientID
	case m.RecipientID == self && m.UID != "":
		return m.UID
	default:
		return ""
	}
}

// ReadMark is the partial update applied when a recipient reads a message.
type ReadMark struct {
	Read   bool
	ReadAt time.Time
	Status Status
}

// NewReadMark returns the read-state assignment for the given instant.
func NewReadMark(at time.Time) ReadMark {
	return ReadMark{Read: true, ReadAt: at, Status: StatusRead}
}

// NewMessage is the set of fields a sender supplies on creation.
type NewMessage struct {
	UID           string
	DisplayName   string
	RecipientID   string
	RecipientName string
	Text          string
	CreatedAt     time.Time

	IsAttachment bool
	FileURL      string
	FileType     string
	FileSize     int64
}
