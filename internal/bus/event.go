package bus

import "time"

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Event kinds. The namespace before the dot is what subscribers filter on.
const (
	// Daemon side.
	KindMessageCreated   = "message.created"   // Payload: MessageRef
	KindMessageRead      = "message.read"      // Payload: MessageRef
	KindDirectoryChanged = "directory.changed" // Payload: string (uid)

	// Client side.
	KindSendAck     = "message.send_ack"    // Payload: outbox.Result
	KindSendFailed  = "message.send_failed" // Payload: outbox.Result
	KindViewUpdated = "view.updated"        // Payload: nil
	KindFeedStatus  = "feed.status_changed" // Payload: status.StatusChange
)

// MessageRef identifies the parties of a changed message so feed watchers
// can skip changes they cannot see.
type MessageRef struct {
	ID          string
	UID         string
	RecipientID string
}
