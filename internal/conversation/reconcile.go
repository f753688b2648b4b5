package conversation

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/model"
)

// Reconciler marks a peer's messages as read at most once per selection.
// A message id enters the processed set before its update is issued and
// leaves it again only if the update fails, so overlapping snapshots never
// produce duplicate updates.
type Reconciler struct {
	store  backend.MessageStore
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	processed map[string]struct{}
	gen       uint64 // bumped by Reset; stale failures do not touch the new set
	inflight  sync.WaitGroup
}

// NewReconciler creates a reconciler issuing updates through store.
func NewReconciler(store backend.MessageStore, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		store:     store,
		logger:    logger,
		now:       time.Now,
		processed: make(map[string]struct{}),
	}
}

// Reconcile issues a read mark for every message from peer to self that is
// neither read nor already processed. Updates run concurrently and are not
// awaited; the ids issued are returned.
//
// ctx bounds the updates themselves. Callers pass a context that outlives the
// current selection: changing peers does not cancel in-flight updates.
func (r *Reconciler) Reconcile(ctx context.Context, msgs []model.Message, self, peer string) []string {
	if peer == "" || self == "" {
		return nil
	}

	r.mu.Lock()
	gen := r.gen
	var ids []string
	for _, m := range Pending(msgs, self, peer) {
		if _, done := r.processed[m.ID]; done || m.ID == "" {
			continue
		}
		r.processed[m.ID] = struct{}{}
		ids = append(ids, m.ID)
	}
	r.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}
	r.logger.Debug("marking messages as read", zap.String("peer", peer), zap.Int("count", len(ids)))

	mark := model.NewReadMark(r.now())
	for _, id := range ids {
		r.inflight.Add(1)
		go func(id string) {
			defer r.inflight.Done()
			if err := r.store.Update(ctx, id, mark); err != nil {
				r.logger.Debug("mark as read failed", zap.String("msg_id", id), zap.Error(err))
				r.forget(gen, id)
			}
		}(id)
	}
	return ids
}

func (r *Reconciler) forget(gen uint64, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == gen {
		delete(r.processed, id)
	}
}

// Reset clears the processed set. Called on peer and search changes.
func (r *Reconciler) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processed = make(map[string]struct{})
	r.gen++
}

// Processed reports whether id is in the processed set.
func (r *Reconciler) Processed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.processed[id]
	return ok
}

// Wait blocks until every issued update has completed.
func (r *Reconciler) Wait() {
	r.inflight.Wait()
}
