package conversation

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheus3301/wchat/internal/model"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func at(min int) time.Time { return t0.Add(time.Duration(min) * time.Minute) }

func readMsg(id, from, to string, min int) model.Message {
	ts := at(min)
	return model.Message{ID: id, UID: from, RecipientID: to, CreatedAt: ts, Read: true, ReadAt: &ts, Status: model.StatusRead}
}

func unreadMsg(id, from, to string, min int) model.Message {
	return model.Message{ID: id, UID: from, RecipientID: to, CreatedAt: at(min), Status: model.StatusSent}
}

var directory = []model.User{
	{UID: "A", Name: "Alice"},
	{UID: "B", Name: "Bob"},
	{UID: "C", Name: "Carol"},
	{UID: "D", Name: "Dave"},
	{UID: "E", Name: ""},
}

func uids(users []model.User) []string {
	return lo.Map(users, func(u model.User, _ int) string { return u.UID })
}

func ids(msgs []model.Message) []string {
	return lo.Map(msgs, func(m model.Message, _ int) string { return m.ID })
}

func TestUnreadCountExample(t *testing.T) {
	ts := at(1)
	msgs := []model.Message{
		{ID: "1", UID: "A", RecipientID: "B", Read: false},
		{ID: "2", UID: "B", RecipientID: "A", Read: true, Status: model.StatusRead, ReadAt: &ts},
	}
	require.Equal(t, 1, UnreadCount(msgs, "B", "A"))
	require.Equal(t, 0, UnreadCount(msgs, "A", "B"))
}

func TestUnreadCountPartialIndicators(t *testing.T) {
	ts := at(0)
	msgs := []model.Message{
		{ID: "legacy", UID: "A", RecipientID: "B"},
		{ID: "no-ts", UID: "A", RecipientID: "B", Read: true, Status: model.StatusRead},
		{ID: "no-status", UID: "A", RecipientID: "B", Read: true, ReadAt: &ts, Status: model.StatusSent},
		{ID: "delivered", UID: "A", RecipientID: "B", Status: model.StatusDelivered},
		readMsg("done", "A", "B", 1),
	}
	assert.Equal(t, 4, UnreadCount(msgs, "B", "A"))
}

func TestFriendsFromHistory(t *testing.T) {
	msgs := []model.Message{
		unreadMsg("1", "A", "B", 1),
		unreadMsg("2", "C", "A", 2),
		unreadMsg("3", "B", "D", 3), // not involving A
		unreadMsg("4", "A", "A", 4), // note to self
		unreadMsg("5", "Z", "A", 5), // unknown to the directory
	}
	got := Friends(msgs, directory, "A", "")
	assert.Equal(t, []string{"B", "C"}, uids(got))
}

func TestFriendsSearch(t *testing.T) {
	msgs := []model.Message{unreadMsg("1", "A", "B", 1)}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"case insensitive", "a", []string{"C", "D"}},
		{"substring", "OB", []string{"B"}},
		{"excludes self", "alice", []string{}},
		{"blank falls back to history", "   ", []string{"B"}},
		{"no match", "zed", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Friends(msgs, directory, "A", tt.search)
			assert.Equal(t, tt.want, uids(got))
		})
	}
}

func TestThreadOrderingAndTies(t *testing.T) {
	// Feed order is most-recent-first; equal timestamps keep feed order.
	msgs := []model.Message{
		unreadMsg("late", "B", "A", 9),
		unreadMsg("tie1", "A", "B", 5),
		unreadMsg("other", "C", "A", 6),
		unreadMsg("tie2", "B", "A", 5),
		unreadMsg("early", "A", "B", 1),
	}
	assert.Equal(t, []string{"early", "tie1", "tie2", "late"}, ids(Thread(msgs, "A", "B")))
	assert.Equal(t, []string{"early", "tie1", "tie2", "other", "late"}, ids(Thread(msgs, "A", "")))
}

func TestWindow(t *testing.T) {
	var thread []model.Message
	for i := range 25 {
		thread = append(thread, unreadMsg(string(rune('a'+i)), "A", "B", i))
	}
	w := Window(thread, DefaultWindow)
	require.Len(t, w, 20)
	assert.Equal(t, thread[5].ID, w[0].ID)
	assert.Equal(t, thread[24].ID, w[19].ID)
	assert.Len(t, Window(thread[:3], DefaultWindow), 3)
}

func TestDeriveSelection(t *testing.T) {
	msgs := []model.Message{
		unreadMsg("1", "B", "A", 1),
		unreadMsg("2", "C", "A", 2),
		readMsg("3", "A", "C", 3),
	}

	v := Derive(Input{Messages: msgs, Users: directory, Self: "A", Peer: "C"})
	require.Equal(t, 1, v.Selected)
	assert.Equal(t, "C", v.Peer)
	assert.Equal(t, []string{"2", "3"}, ids(v.Thread))
	assert.Equal(t, []string{"2"}, ids(v.Pending))
	assert.Equal(t, []int{1, 1}, lo.Map(v.Friends, func(f Friend, _ int) int { return f.Unread }))

	// Peer filtered out by search behaves as no peer.
	v = Derive(Input{Messages: msgs, Users: directory, Self: "A", Peer: "C", Search: "bo"})
	assert.Equal(t, -1, v.Selected)
	assert.Empty(t, v.Peer)
	assert.Empty(t, v.Pending)
	assert.Equal(t, []string{"1", "2", "3"}, ids(v.Thread))
}

// randomFeed builds a feed over a small set of users so that every
// relationship gets exercised.
func randomFeed(r *rand.Rand, n int) []model.Message {
	people := []string{"A", "B", "C", "D"}
	msgs := make([]model.Message, 0, n)
	for i := range n {
		m := unreadMsg(string(rune('a'+i%26))+string(rune('0'+i/26)), people[r.IntN(4)], people[r.IntN(4)], r.IntN(10))
		if r.IntN(2) == 0 {
			m = readMsg(m.ID, m.UID, m.RecipientID, r.IntN(10))
		}
		msgs = append(msgs, m)
	}
	return msgs
}

func TestFriendSetIsExactlyCounterparts(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	users := directory[:4]
	for range 200 {
		msgs := randomFeed(r, r.IntN(30))
		for _, self := range []string{"A", "B", "C", "D"} {
			want := map[string]bool{}
			for _, m := range msgs {
				if m.UID == self && m.RecipientID != self {
					want[m.RecipientID] = true
				}
				if m.RecipientID == self && m.UID != self {
					want[m.UID] = true
				}
			}
			got := Friends(msgs, users, self, "")
			require.Len(t, got, len(want))
			for _, u := range got {
				require.True(t, want[u.UID], "unexpected friend %s for %s", u.UID, self)
			}
		}
	}
}

func TestThreadIsSymmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		msgs := randomFeed(r, r.IntN(30))
		require.Equal(t, ids(Thread(msgs, "A", "B")), ids(Thread(msgs, "B", "A")))
	}
}
