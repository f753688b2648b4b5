package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/matheus3301/wchat/internal/model"
)

func TestReconcileIssuesOncePerMessage(t *testing.T) {
	store := &fakeMessages{}
	r := NewReconciler(store, zaptest.NewLogger(t))
	msgs := []model.Message{
		unreadMsg("1", "A", "B", 1),
		unreadMsg("2", "A", "B", 2),
		readMsg("3", "A", "B", 3),
		unreadMsg("4", "B", "A", 4),
		unreadMsg("5", "C", "B", 5),
	}

	issued := r.Reconcile(context.Background(), msgs, "B", "A")
	assert.ElementsMatch(t, []string{"1", "2"}, issued)

	// Unchanged snapshot: nothing new.
	assert.Empty(t, r.Reconcile(context.Background(), msgs, "B", "A"))
	r.Wait()
	assert.ElementsMatch(t, []string{"1", "2"}, store.Updates())
}

func TestReconcileRetriesAfterFailure(t *testing.T) {
	store := &fakeMessages{failIDs: map[string]bool{"1": true}}
	r := NewReconciler(store, zaptest.NewLogger(t))
	msgs := []model.Message{unreadMsg("1", "A", "B", 1), unreadMsg("2", "A", "B", 2)}

	r.Reconcile(context.Background(), msgs, "B", "A")
	r.Wait()
	assert.False(t, r.Processed("1"), "failed id must leave the processed set")
	assert.True(t, r.Processed("2"))

	store.mu.Lock()
	store.failIDs = nil
	store.mu.Unlock()

	assert.Equal(t, []string{"1"}, r.Reconcile(context.Background(), msgs, "B", "A"))
	r.Wait()
	assert.True(t, r.Processed("1"))
}

func TestReconcileReset(t *testing.T) {
	store := &fakeMessages{}
	r := NewReconciler(store, nil)
	msgs := []model.Message{unreadMsg("1", "A", "B", 1)}

	require.Len(t, r.Reconcile(context.Background(), msgs, "B", "A"), 1)
	r.Wait()
	r.Reset()
	assert.False(t, r.Processed("1"))
	// Still unread in the snapshot, so it qualifies again.
	assert.Len(t, r.Reconcile(context.Background(), msgs, "B", "A"), 1)
	r.Wait()
}

func TestReconcileNoPeer(t *testing.T) {
	store := &fakeMessages{}
	r := NewReconciler(store, nil)
	assert.Nil(t, r.Reconcile(context.Background(), []model.Message{unreadMsg("1", "A", "B", 1)}, "B", ""))
	assert.Empty(t, store.Updates())
}

func TestUnreadReachesZeroAfterReconcile(t *testing.T) {
	store := &fakeMessages{}
	r := NewReconciler(store, nil)
	msgs := []model.Message{unreadMsg("1", "A", "B", 1), unreadMsg("2", "A", "B", 2), readMsg("3", "A", "B", 3)}
	before := UnreadCount(msgs, "B", "A")

	issued := r.Reconcile(context.Background(), msgs, "B", "A")
	r.Wait()

	// Apply the store's writes to build the next snapshot.
	done := map[string]bool{}
	for _, id := range issued {
		done[id] = true
	}
	next := make([]model.Message, len(msgs))
	for i, m := range msgs {
		if done[m.ID] {
			m = readMsg(m.ID, m.UID, m.RecipientID, 0)
		}
		next[i] = m
	}
	after := UnreadCount(next, "B", "A")
	assert.LessOrEqual(t, after, before)
	assert.Zero(t, after)
}
