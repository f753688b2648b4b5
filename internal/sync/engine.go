// Package sync keeps a conversation view-model fed from the live directory
// and message feed, and drives the load state machine.
package sync

import (
	"context"
	"errors"
	gosync "sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/status"
)

// DefaultRetryDelay is how long a degraded feed waits before resubscribing.
const DefaultRetryDelay = 5 * time.Second

// Engine applies live snapshots to a view-model.
type Engine struct {
	feed    backend.Feed
	dir     backend.Directory
	vm      *conversation.ViewModel
	machine *status.Machine
	bus     *bus.Bus
	logger  *zap.Logger

	limit      int
	retryDelay time.Duration

	cancel context.CancelFunc
	wg     gosync.WaitGroup
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimit sets the feed limit. Zero lets the daemon choose.
func WithLimit(n int) Option {
	return func(e *Engine) { e.limit = n }
}

// WithRetryDelay overrides DefaultRetryDelay.
func WithRetryDelay(d time.Duration) Option {
	return func(e *Engine) { e.retryDelay = d }
}

// NewEngine creates a new sync engine.
func NewEngine(feed backend.Feed, dir backend.Directory, vm *conversation.ViewModel, machine *status.Machine, b *bus.Bus, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		feed:       feed,
		dir:        dir,
		vm:         vm,
		machine:    machine,
		bus:        b,
		logger:     logger,
		retryDelay: DefaultRetryDelay,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start subscribes to the directory and the feed. It returns immediately;
// results arrive through the view-model, the bus and the state machine.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.transition(status.Loading, "")

	e.wg.Add(2)
	go func() {
		defer e.wg.Done()
		e.runUsers(ctx)
	}()
	go func() {
		defer e.wg.Done()
		e.runFeed(ctx)
	}()
}

// Stop cancels the subscriptions and waits for in-flight reconciliation.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()
	e.vm.Reconciler().Wait()
}

func (e *Engine) runUsers(ctx context.Context) {
	follow(ctx, e, "directory", e.dir.WatchUsers,
		func(u backend.UsersUpdate) error { return u.Err },
		func(u backend.UsersUpdate) {
			e.vm.ApplyUsers(u.Users)
			e.bus.Emit(bus.KindViewUpdated, nil)
		})
}

func (e *Engine) runFeed(ctx context.Context) {
	open := func(ctx context.Context) (<-chan backend.FeedUpdate, error) {
		return e.feed.SubscribeRecent(ctx, e.limit)
	}
	follow(ctx, e, "feed", open,
		func(u backend.FeedUpdate) error { return u.Err },
		func(u backend.FeedUpdate) {
			e.vm.ApplyMessages(u.Messages)
			if ids := e.vm.Reconcile(ctx); len(ids) > 0 {
				e.logger.Debug("marking read", zap.Strings("ids", ids))
			}
			e.transition(status.Ready, "")
			e.bus.Emit(bus.KindViewUpdated, nil)
		})
}

// follow keeps a live subscription open until ctx is done or a terminal
// error occurs. A stream that ends without error is reopened after the
// retry delay.
func follow[U any](ctx context.Context, e *Engine, source string, open func(context.Context) (<-chan U, error), errOf func(U) error, apply func(U)) {
	for ctx.Err() == nil {
		ch, err := open(ctx)
		if err == nil {
			err = consume(ctx, ch, errOf, apply)
		}
		if err == nil {
			if !e.sleep(ctx) {
				return
			}
			continue
		}
		if !e.handleErr(ctx, source, err) {
			return
		}
	}
}

func consume[U any](ctx context.Context, ch <-chan U, errOf func(U) error, apply func(U)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case upd, ok := <-ch:
			if !ok {
				return nil
			}
			if err := errOf(upd); err != nil {
				return err
			}
			apply(upd)
		}
	}
}

func (e *Engine) sleep(ctx context.Context) bool {
	select {
	case <-time.After(e.retryDelay):
		return true
	case <-ctx.Done():
		return false
	}
}

// handleErr moves the state machine for a subscription failure and reports
// whether the subscription should be retried. Index warnings degrade the
// view and retry after a delay; anything else is terminal.
func (e *Engine) handleErr(ctx context.Context, source string, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		e.logger.Info("session rejected", zap.String("source", source), zap.Error(err))
		e.transition(status.SignedOut, err.Error())
		return false
	case backend.IsIndexWarning(err):
		e.logger.Warn("live query degraded", zap.String("source", source), zap.Error(err))
		e.transition(status.Degraded, err.Error())
		return e.sleep(ctx)
	default:
		e.logger.Error("live query failed", zap.String("source", source), zap.Error(err))
		e.transition(status.Error, err.Error())
		return false
	}
}

func (e *Engine) transition(to status.State, detail string) {
	if e.machine == nil {
		return
	}
	if err := e.machine.TransitionWithDetail(to, detail); err != nil {
		e.logger.Debug("state unchanged", zap.Error(err))
	}
}
