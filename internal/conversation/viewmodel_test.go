package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

func newTestViewModel(t *testing.T, msgs *fakeMessages, files *fakeFiles) *ViewModel {
	vm := NewViewModel(Config{
		Self:     alice,
		Messages: msgs,
		Files:    files,
		Logger:   zaptest.NewLogger(t),
		Now:      func() time.Time { return t0 },
	})
	vm.ApplyUsers(directory)
	return vm
}

func TestViewModelSelectAndReconcile(t *testing.T) {
	store := &fakeMessages{}
	vm := newTestViewModel(t, store, newFakeFiles())
	vm.ApplyMessages([]model.Message{
		unreadMsg("1", "B", "A", 1),
		unreadMsg("2", "C", "A", 2),
	})

	snap := vm.Snapshot()
	require.Len(t, snap.Friends, 2)
	assert.Equal(t, -1, snap.Selected)
	assert.Empty(t, vm.Reconcile(context.Background()), "no peer, nothing to mark")

	require.NoError(t, vm.Select(1))
	assert.Equal(t, "C", vm.Snapshot().Peer)
	assert.Equal(t, []string{"2"}, vm.Reconcile(context.Background()))
	assert.Empty(t, vm.Reconcile(context.Background()))
	vm.Reconciler().Wait()
	assert.Equal(t, []string{"2"}, store.Updates())

	require.Error(t, vm.Select(5))
}

func TestViewModelPeerChangeResetsProcessed(t *testing.T) {
	store := &fakeMessages{}
	vm := newTestViewModel(t, store, newFakeFiles())
	vm.ApplyMessages([]model.Message{unreadMsg("1", "B", "A", 1), unreadMsg("2", "C", "A", 2)})

	require.NoError(t, vm.Select(0))
	vm.Reconcile(context.Background())
	vm.Reconciler().Wait()
	require.True(t, vm.Reconciler().Processed("1"))

	require.NoError(t, vm.Select(1))
	assert.False(t, vm.Reconciler().Processed("1"))

	// Re-selecting the same peer keeps the set.
	vm.Reconcile(context.Background())
	vm.Reconciler().Wait()
	require.NoError(t, vm.Select(1))
	assert.True(t, vm.Reconciler().Processed("2"))
}

func TestViewModelSearchClearsSelection(t *testing.T) {
	vm := newTestViewModel(t, &fakeMessages{}, newFakeFiles())
	vm.ApplyMessages([]model.Message{unreadMsg("1", "B", "A", 1)})
	require.NoError(t, vm.Select(0))

	vm.SetSearch("da")
	snap := vm.Snapshot()
	assert.Equal(t, "da", snap.Search)
	assert.Equal(t, -1, snap.Selected)
	require.Len(t, snap.Friends, 1)
	assert.Equal(t, "D", snap.Friends[0].UID)

	_, err := vm.Send(context.Background(), Draft{Text: "hi"})
	require.ErrorIs(t, err, errs.ErrNoPeer)
}

func TestViewModelSearchChangeResetsProcessed(t *testing.T) {
	store := &fakeMessages{}
	vm := newTestViewModel(t, store, newFakeFiles())
	vm.ApplyMessages([]model.Message{unreadMsg("1", "B", "A", 1)})
	require.NoError(t, vm.Select(0))

	assert.Equal(t, []string{"1"}, vm.Reconcile(context.Background()))
	vm.Reconciler().Wait()
	require.True(t, vm.Reconciler().Processed("1"))

	// Setting the current term again is not a change.
	vm.SetSearch("")
	assert.True(t, vm.Reconciler().Processed("1"))
	assert.Equal(t, "B", vm.Snapshot().Peer)

	vm.SetSearch("x")
	assert.False(t, vm.Reconciler().Processed("1"))
	assert.Empty(t, vm.Snapshot().Peer)
}

func TestViewModelSelectionFollowsUID(t *testing.T) {
	vm := newTestViewModel(t, &fakeMessages{}, newFakeFiles())
	vm.ApplyMessages([]model.Message{unreadMsg("1", "C", "A", 1)})
	require.NoError(t, vm.Select(0))

	// B appears before C in directory order; the selection stays on C.
	vm.ApplyMessages([]model.Message{unreadMsg("1", "C", "A", 1), unreadMsg("2", "B", "A", 2)})
	snap := vm.Snapshot()
	assert.Equal(t, 1, snap.Selected)
	assert.Equal(t, "C", snap.Peer)
}

func TestViewModelEmptyDraftNeverCreates(t *testing.T) {
	store := &fakeMessages{}
	vm := newTestViewModel(t, store, newFakeFiles())
	vm.ApplyMessages([]model.Message{unreadMsg("1", "B", "A", 1)})
	require.NoError(t, vm.Select(0))

	_, err := vm.Send(context.Background(), Draft{})
	require.ErrorIs(t, err, errs.ErrEmptyDraft)
	assert.Empty(t, store.Created())
}

// The recipient is fixed when Send is called, even if the selection moves
// while the send is still in flight.
func TestViewModelSendCapturesPeer(t *testing.T) {
	store := &fakeMessages{release: make(chan struct{})}
	vm := newTestViewModel(t, store, newFakeFiles())
	vm.ApplyMessages([]model.Message{unreadMsg("1", "B", "A", 1), unreadMsg("2", "C", "A", 2)})
	require.NoError(t, vm.Select(0))

	done := make(chan error, 1)
	go func() {
		_, err := vm.Send(context.Background(), Draft{Attachment: &Attachment{Name: "a.txt", Data: []byte("hi")}})
		done <- err
	}()

	// Wait for the upload to land before switching peers.
	require.Eventually(t, func() bool {
		_, err := vm.sender.files.URL(context.Background(), "A/1714564800000_a.txt")
		return err == nil
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, vm.Select(1))
	close(store.release)

	require.NoError(t, <-done)
	created := store.Created()
	require.Len(t, created, 1)
	assert.Equal(t, "B", created[0].RecipientID)
}

func TestViewModelRefreshSignal(t *testing.T) {
	vm := newTestViewModel(t, &fakeMessages{}, newFakeFiles())
	select {
	case <-vm.RefreshCh():
	case <-time.After(time.Second):
		t.Fatal("no refresh after ApplyUsers")
	}
	vm.ApplyMessages(nil)
	select {
	case <-vm.RefreshCh():
	case <-time.After(time.Second):
		t.Fatal("no refresh after ApplyMessages")
	}
}
