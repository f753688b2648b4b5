package conversation

import (
	"time"

	"github.com/matheus3301/wchat/internal/model"
)

// Receipt is the delivery indicator drawn next to a message.
type Receipt int

const (
	ReceiptNone Receipt = iota // someone else's message
	ReceiptSent                // single tick
	ReceiptRead                // double tick
)

// ReceiptFor returns the indicator for m as seen by self.
func ReceiptFor(m model.Message, self string) Receipt {
	if m.UID != self {
		return ReceiptNone
	}
	if m.IsRead() {
		return ReceiptRead
	}
	return ReceiptSent
}

func (r Receipt) String() string {
	switch r {
	case ReceiptSent:
		return "✓"
	case ReceiptRead:
		return "✓✓"
	default:
		return ""
	}
}

// FormatClock renders t as local HH:MM. The zero time renders empty.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("15:04")
}
