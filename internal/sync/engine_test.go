package sync

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/status"
)

// fakeFeed hands every subscription's channel to the test.
type fakeFeed struct {
	opened chan chan backend.FeedUpdate
}

func (f *fakeFeed) SubscribeRecent(ctx context.Context, _ int) (<-chan backend.FeedUpdate, error) {
	ch := make(chan backend.FeedUpdate, 4)
	f.opened <- ch
	return ch, nil
}

type fakeDir struct {
	opened chan chan backend.UsersUpdate
}

func (f *fakeDir) ListUsers(context.Context) ([]model.User, error) { return nil, nil }

func (f *fakeDir) WatchUsers(ctx context.Context) (<-chan backend.UsersUpdate, error) {
	ch := make(chan backend.UsersUpdate, 4)
	f.opened <- ch
	return ch, nil
}

type fakeMessages struct {
	mu      gosync.Mutex
	updates []string
}

func (f *fakeMessages) Create(context.Context, model.NewMessage) (string, error) { return "", nil }

func (f *fakeMessages) Update(_ context.Context, id string, _ model.ReadMark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id)
	return nil
}

func (f *fakeMessages) Updates() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.updates...)
}

type harness struct {
	feed    *fakeFeed
	dir     *fakeDir
	msgs    *fakeMessages
	vm      *conversation.ViewModel
	machine *status.Machine
	bus     *bus.Bus
	engine  *Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := zaptest.NewLogger(t)
	h := &harness{
		feed: &fakeFeed{opened: make(chan chan backend.FeedUpdate, 4)},
		dir:  &fakeDir{opened: make(chan chan backend.UsersUpdate, 4)},
		msgs: &fakeMessages{},
		bus:  bus.New(),
	}
	h.machine = status.NewMachine(h.bus)
	h.vm = conversation.NewViewModel(conversation.Config{
		Self:     model.Identity{UID: "A", DisplayName: "Alice"},
		Messages: h.msgs,
		Logger:   logger,
	})
	h.engine = NewEngine(h.feed, h.dir, h.vm, h.machine, h.bus, logger, WithRetryDelay(10*time.Millisecond))
	h.engine.Start(context.Background())
	t.Cleanup(h.engine.Stop)
	return h
}

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout")
	}
	var zero T
	return zero
}

func waitState(t *testing.T, m *status.Machine, want status.State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.Current() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("state = %s, want %s", m.Current(), want)
}

func TestEngineAppliesSnapshotsAndReconciles(t *testing.T) {
	h := newHarness(t)
	views, unsub := h.bus.Subscribe("view.", 16)
	defer unsub()

	users := recv(t, h.dir.opened)
	feed := recv(t, h.feed.opened)

	users <- backend.UsersUpdate{Users: []model.User{{UID: "A", Name: "Alice"}, {UID: "B", Name: "Bob"}}}
	recv(t, views)
	h.vm.SelectUID("B")

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	feed <- backend.FeedUpdate{Messages: []model.Message{
		{ID: "m1", UID: "B", RecipientID: "A", Text: "hi", CreatedAt: t0, Status: model.StatusSent},
		{ID: "m2", UID: "A", RecipientID: "B", Text: "yo", CreatedAt: t0.Add(time.Second), Status: model.StatusSent},
	}}
	evt := recv(t, views)
	if evt.Kind != bus.KindViewUpdated {
		t.Errorf("event kind = %q, want %q", evt.Kind, bus.KindViewUpdated)
	}
	waitState(t, h.machine, status.Ready)

	h.vm.Reconciler().Wait()
	if got := h.msgs.Updates(); len(got) != 1 || got[0] != "m1" {
		t.Errorf("updates = %v, want [m1]", got)
	}
	snap := h.vm.Snapshot()
	if len(snap.Thread) != 2 {
		t.Errorf("thread len = %d, want 2", len(snap.Thread))
	}
}

func TestEngineDegradesAndRetriesOnIndexWarning(t *testing.T) {
	h := newHarness(t)
	recv(t, h.dir.opened)

	first := recv(t, h.feed.opened)
	first <- backend.FeedUpdate{Err: errors.Join(errs.ErrFeedDegraded, errors.New("the feed query requires an index"))}
	close(first)
	waitState(t, h.machine, status.Degraded)
	if d := h.machine.Detail(); d == "" {
		t.Error("degraded state has no detail")
	}

	second := recv(t, h.feed.opened)
	second <- backend.FeedUpdate{Messages: nil}
	waitState(t, h.machine, status.Ready)
}

func TestEngineStopsOnTerminalError(t *testing.T) {
	h := newHarness(t)
	recv(t, h.dir.opened)

	feed := recv(t, h.feed.opened)
	feed <- backend.FeedUpdate{Err: errors.New("boom")}
	close(feed)
	waitState(t, h.machine, status.Error)

	select {
	case <-h.feed.opened:
		t.Fatal("feed resubscribed after a terminal error")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngineSignsOutOnUnauthorized(t *testing.T) {
	h := newHarness(t)
	users := recv(t, h.dir.opened)
	recv(t, h.feed.opened)

	users <- backend.UsersUpdate{Err: errs.ErrUnauthorized}
	close(users)
	waitState(t, h.machine, status.SignedOut)
}
