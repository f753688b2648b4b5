// Package backend declares the collaborators the conversation view-model
// depends on. Implementations live in internal/client (gRPC adapter) and in
// test fakes; the daemon hosts the server side of the same contracts.
package backend

import (
	"context"
	"errors"
	"strings"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

// Identity is the authentication provider.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (model.Identity, error)
	SignOut(ctx context.Context) error
	// Current returns nil when no identity is signed in.
	Current(ctx context.Context) (*model.Identity, error)
}

// Registrar creates new accounts.
type Registrar interface {
	Register(ctx context.Context, name, email, password string) (model.Identity, error)
}

// UsersUpdate is one delivery of the live directory.
type UsersUpdate struct {
	Users []model.User
	Err   error
}

// Directory lists known users.
type Directory interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	// WatchUsers delivers a full snapshot on subscribe and after every change.
	// The channel is closed when ctx is done or after an update carrying Err.
	WatchUsers(ctx context.Context) (<-chan UsersUpdate, error)
}

// FeedUpdate is one delivery of the live message feed.
type FeedUpdate struct {
	Messages []model.Message // most-recent-first
	Err      error
}

// Feed streams the most recent messages visible to the signed-in identity.
type Feed interface {
	// SubscribeRecent follows the same channel contract as Directory.WatchUsers.
	SubscribeRecent(ctx context.Context, limit int) (<-chan FeedUpdate, error)
}

// MessageStore issues message mutations.
type MessageStore interface {
	Create(ctx context.Context, msg model.NewMessage) (string, error)
	Update(ctx context.Context, id string, mark model.ReadMark) error
}

// FileStore hosts attachment blobs.
type FileStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	URL(ctx context.Context, key string) (string, error)
}

// IsIndexWarning reports whether a feed or directory error is a backend
// index/configuration warning rather than a terminal failure.
func IsIndexWarning(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errs.ErrFeedDegraded) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "index")
}

// ClassifyFeedError wraps index warnings with errs.ErrFeedDegraded and
// returns every other error unchanged.
func ClassifyFeedError(err error) error {
	if err == nil || errors.Is(err, errs.ErrFeedDegraded) {
		return err
	}
	if IsIndexWarning(err) {
		return errors.Join(errs.ErrFeedDegraded, err)
	}
	return err
}
