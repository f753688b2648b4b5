// Package conversation derives what the chat screen shows from the live
// message feed and user directory: the friend list, unread counts, the
// ordered thread with a peer, and which messages still need marking as read.
//
// Everything in this file is pure and safe to call from any goroutine.
package conversation

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/matheus3301/wchat/internal/model"
)

// DefaultWindow is the number of thread messages shown by default.
const DefaultWindow = 20

// Friend is a friend-list row.
type Friend struct {
	model.User
	Unread int
}

// Input is everything a derivation depends on.
type Input struct {
	Messages []model.Message // feed order, most-recent-first
	Users    []model.User    // directory order
	Self     string
	Search   string
	Peer     string // "" when no peer is selected
	Window   int    // <= 0 means DefaultWindow
}

// View is the result of a derivation.
type View struct {
	Friends []Friend
	// Selected is the index of Peer in Friends, or -1.
	Selected int
	// Peer is the selected UID when it is still listed, otherwise "".
	Peer string
	// Thread is the full ordered conversation with Peer, or, with no peer,
	// all of self's correspondence.
	Thread []model.Message
	// Visible is the tail of Thread the screen renders.
	Visible []model.Message
	// Pending are messages from Peer to self that are not yet read.
	Pending []model.Message
}

// Derive computes a View. It never mutates its input.
func Derive(in Input) View {
	users := Friends(in.Messages, in.Users, in.Self, in.Search)
	friends := lo.Map(users, func(u model.User, _ int) Friend {
		return Friend{User: u, Unread: UnreadCount(in.Messages, in.Self, u.UID)}
	})

	v := View{Friends: friends, Selected: -1}
	if in.Peer != "" {
		v.Selected = slices.IndexFunc(users, func(u model.User) bool { return u.UID == in.Peer })
	}
	if v.Selected >= 0 {
		v.Peer = in.Peer
	}

	v.Thread = Thread(in.Messages, in.Self, v.Peer)
	window := in.Window
	if window <= 0 {
		window = DefaultWindow
	}
	v.Visible = Window(v.Thread, window)
	if v.Peer != "" {
		v.Pending = Pending(in.Messages, in.Self, v.Peer)
	}
	return v
}

// Friends returns the friend list. With a non-blank search it is every named
// directory user whose name contains search (case-insensitive), excluding
// self. Otherwise it is every directory user that has exchanged at least one
// message with self. Both keep directory order.
func Friends(msgs []model.Message, users []model.User, self, search string) []model.User {
	if strings.TrimSpace(search) != "" {
		needle := strings.ToLower(search)
		return lo.Filter(users, func(u model.User, _ int) bool {
			return u.Name != "" && u.UID != self && strings.Contains(strings.ToLower(u.Name), needle)
		})
	}

	counterparts := Counterparts(msgs, self)
	return lo.Filter(users, func(u model.User, _ int) bool {
		_, ok := counterparts[u.UID]
		return ok && u.UID != self
	})
}

// Counterparts returns the set of UIDs that exchanged a message with self.
func Counterparts(msgs []model.Message, self string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, m := range msgs {
		if uid := m.Counterpart(self); uid != "" && uid != self {
			set[uid] = struct{}{}
		}
	}
	return set
}

// UnreadCount counts messages from peer to self that are not read.
func UnreadCount(msgs []model.Message, self, peer string) int {
	return lo.CountBy(msgs, func(m model.Message) bool {
		return m.UID == peer && m.RecipientID == self && !m.IsRead()
	})
}

// Thread returns the messages between self and peer ordered by creation
// time. Equal timestamps keep feed order. With peer == "" it returns all
// messages involving self, ordered the same way.
func Thread(msgs []model.Message, self, peer string) []model.Message {
	out := lo.Filter(msgs, func(m model.Message, _ int) bool {
		if peer == "" {
			return m.Involves(self)
		}
		return m.Between(self, peer)
	})
	slices.SortStableFunc(out, func(a, b model.Message) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

// Window returns the last n messages of an ordered thread.
func Window(thread []model.Message, n int) []model.Message {
	if n <= 0 || len(thread) <= n {
		return thread
	}
	return thread[len(thread)-n:]
}

// Pending returns messages from peer to self that still need marking as read.
func Pending(msgs []model.Message, self, peer string) []model.Message {
	return lo.Filter(msgs, func(m model.Message, _ int) bool {
		return m.UID == peer && m.RecipientID == self && !m.IsRead()
	})
}
