package conversation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

// Config wires a ViewModel to its collaborators.
type Config struct {
	Self          model.Identity
	Messages      backend.MessageStore
	Files         backend.FileStore
	Logger        *zap.Logger
	Window        int
	MaxAttachment int64
	Now           func() time.Time
}

// Snapshot is an immutable copy of what the screen shows.
type Snapshot struct {
	View
	Self   model.Identity
	Search string
}

// ViewModel owns the mutable conversation state and re-derives the View on
// every change. It is safe for concurrent use: snapshots arrive from the feed
// goroutine while the UI reads.
type ViewModel struct {
	mu sync.RWMutex

	self     model.Identity
	users    []model.User
	messages []model.Message
	search   string
	peer     string
	window   int
	view     View

	reconciler *Reconciler
	sender     *Sender
	refreshCh  chan struct{}
}

// NewViewModel creates a view-model for cfg.Self with empty snapshots.
func NewViewModel(cfg Config) *ViewModel {
	opts := []SenderOption{WithMaxAttachment(cfg.MaxAttachment)}
	rec := NewReconciler(cfg.Messages, cfg.Logger)
	if cfg.Now != nil {
		opts = append(opts, WithClock(cfg.Now))
		rec.now = cfg.Now
	}
	vm := &ViewModel{
		self:       cfg.Self,
		window:     cfg.Window,
		reconciler: rec,
		sender:     NewSender(cfg.Messages, cfg.Files, cfg.Logger, opts...),
		refreshCh:  make(chan struct{}, 1),
	}
	vm.deriveLocked()
	return vm
}

// RefreshCh signals that the snapshot changed.
func (vm *ViewModel) RefreshCh() <-chan struct{} {
	return vm.refreshCh
}

func (vm *ViewModel) signalRefresh() {
	select {
	case vm.refreshCh <- struct{}{}:
	default:
	}
}

func (vm *ViewModel) deriveLocked() {
	vm.view = Derive(Input{
		Messages: vm.messages,
		Users:    vm.users,
		Self:     vm.self.UID,
		Search:   vm.search,
		Peer:     vm.peer,
		Window:   vm.window,
	})
}

func (vm *ViewModel) update(fn func()) {
	vm.mu.Lock()
	fn()
	vm.deriveLocked()
	vm.mu.Unlock()
	vm.signalRefresh()
}

// ApplyMessages replaces the message snapshot.
func (vm *ViewModel) ApplyMessages(msgs []model.Message) {
	vm.update(func() { vm.messages = msgs })
}

// ApplyUsers replaces the directory snapshot.
func (vm *ViewModel) ApplyUsers(users []model.User) {
	vm.update(func() { vm.users = users })
}

// SetSearch changes the search term. A changed term clears the selection
// and the processed set.
func (vm *ViewModel) SetSearch(search string) {
	vm.update(func() {
		if search == vm.search {
			return
		}
		vm.search = search
		vm.peer = ""
		vm.reconciler.Reset()
	})
}

// Select selects the friend at index in the current friend list. A negative
// index clears the selection. Selecting a different peer clears the
// processed set.
func (vm *ViewModel) Select(index int) error {
	var err error
	vm.update(func() {
		uid := ""
		if index >= 0 {
			if index >= len(vm.view.Friends) {
				err = fmt.Errorf("select %d: %d friends listed", index, len(vm.view.Friends))
				return
			}
			uid = vm.view.Friends[index].UID
		}
		if uid != vm.peer {
			vm.peer = uid
			vm.reconciler.Reset()
		}
	})
	return err
}

// SelectUID selects a peer by UID. The UID stays selected even if it is not
// currently listed; the view treats it as no peer until it appears.
func (vm *ViewModel) SelectUID(uid string) {
	vm.update(func() {
		if uid != vm.peer {
			vm.peer = uid
			vm.reconciler.Reset()
		}
	})
}

// Reconcile marks the selected peer's unread messages as read.
func (vm *ViewModel) Reconcile(ctx context.Context) []string {
	vm.mu.RLock()
	msgs, self, peer := vm.messages, vm.self.UID, vm.view.Peer
	vm.mu.RUnlock()
	return vm.reconciler.Reconcile(ctx, msgs, self, peer)
}

// Reconciler exposes the reconciler, mainly for waiting on in-flight updates.
func (vm *ViewModel) Reconciler() *Reconciler {
	return vm.reconciler
}

// Peer returns the selected and listed peer.
func (vm *ViewModel) Peer() (model.User, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.view.Selected < 0 {
		return model.User{}, false
	}
	return vm.view.Friends[vm.view.Selected].User, true
}

// Send sends d to the peer selected at the time of the call.
func (vm *ViewModel) Send(ctx context.Context, d Draft) (SendResult, error) {
	if d.Empty() {
		return SendResult{}, errs.ErrEmptyDraft
	}
	peer, ok := vm.Peer()
	if !ok {
		return SendResult{}, errs.ErrNoPeer
	}
	return vm.SendTo(ctx, peer, d)
}

// SendTo sends d to an explicit peer.
func (vm *ViewModel) SendTo(ctx context.Context, peer model.User, d Draft) (SendResult, error) {
	vm.mu.RLock()
	self := vm.self
	vm.mu.RUnlock()
	return vm.sender.Send(ctx, self, peer, d)
}

// Snapshot returns the current derived state.
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return Snapshot{View: vm.view, Self: vm.self, Search: vm.search}
}
