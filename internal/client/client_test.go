package client

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/matheus3301/wchat/internal/api"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/files"
	"github.com/matheus3301/wchat/internal/identity"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/store"
)

// startDaemon serves the chat API over an in-memory listener and returns a
// factory for clients bound to it.
func startDaemon(t *testing.T) func(marker *MarkerFile) *Client {
	t.Helper()
	logger := zaptest.NewLogger(t)
	tmp := t.TempDir()

	db, err := store.Open(filepath.Join(tmp, "chat.db"))
	require.NoError(t, err)
	_, err = db.Migrate()
	require.NoError(t, err)
	disk, err := files.NewDisk(filepath.Join(tmp, "files"))
	require.NoError(t, err)

	b := bus.New()
	ids := identity.NewService(db, identity.NewTokens([]byte("0123456789abcdef0123456789abcdef"), time.Hour), nil, logger)
	svcs := api.Services{
		Identity:  api.NewIdentityService(ids, b, logger),
		Directory: api.NewDirectoryService(db, b),
		Messages:  api.NewMessageService(db, b, logger),
		Files:     api.NewFileService(files.NewService(disk, db, 0, logger)),
	}

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(api.ServerOptions(ids, logger)...)
	svcs.Register(gs)
	grpc_health_v1.RegisterHealthServer(gs, health.NewServer())
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(func() {
		gs.Stop()
		_ = db.Close()
	})

	return func(marker *MarkerFile) *Client {
		c, err := DialTarget("passthrough:///bufnet", marker, logger,
			grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }))
		require.NoError(t, err)
		t.Cleanup(func() { _ = c.Close() })
		return c
	}
}

func TestSessionMarkerLifecycle(t *testing.T) {
	dial := startDaemon(t)
	ctx := context.Background()
	marker := NewMarkerFile(filepath.Join(t.TempDir(), "accounts", "default.json"))

	c := dial(marker)
	_, err := RequireSession(ctx, c)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	me, err := c.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	info, err := os.Stat(marker.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// A fresh process resumes from the marker.
	resumed := dial(marker)
	got, err := RequireSession(ctx, resumed)
	require.NoError(t, err)
	assert.Equal(t, me.UID, got.UID)
	assert.Equal(t, "Alice", got.Name())

	require.NoError(t, resumed.SignOut(ctx))
	_, err = os.Stat(marker.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist))
	cur, err := resumed.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestCurrentDropsRejectedMarker(t *testing.T) {
	dial := startDaemon(t)
	marker := NewMarkerFile(filepath.Join(t.TempDir(), "default.json"))
	require.NoError(t, marker.Save(Marker{UID: "u1", Token: "not-a-jwt"}))

	cur, err := dial(marker).Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cur)
	m, err := marker.Load()
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSignInWrongPassword(t *testing.T) {
	dial := startDaemon(t)
	ctx := context.Background()
	_, err := dial(nil).Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = dial(nil).SignIn(ctx, "alice@example.com", "wrong12")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestFeedAndReadMark(t *testing.T) {
	dial := startDaemon(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice, bob := dial(nil), dial(nil)
	a, err := alice.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	b, err := bob.Register(ctx, "Bob", "bob@example.com", "secret1")
	require.NoError(t, err)

	users, err := bob.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	feed, err := bob.SubscribeRecent(ctx, 10)
	require.NoError(t, err)
	first := <-feed
	require.NoError(t, first.Err)
	assert.Empty(t, first.Messages)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id, err := alice.Create(ctx, model.NewMessage{UID: a.UID, RecipientID: b.UID, RecipientName: "Bob", Text: "hi", CreatedAt: created})
	require.NoError(t, err)

	next := <-feed
	require.NoError(t, next.Err)
	require.Len(t, next.Messages, 1)
	m := next.Messages[0]
	assert.Equal(t, id, m.ID)
	assert.True(t, m.CreatedAt.Equal(created))
	assert.False(t, m.IsRead())

	require.NoError(t, bob.Update(ctx, id, model.NewReadMark(created.Add(time.Minute))))
	after := <-feed
	require.NoError(t, after.Err)
	require.Len(t, after.Messages, 1)
	assert.True(t, after.Messages[0].IsRead())

	err = alice.Update(ctx, id, model.NewReadMark(time.Now()))
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestUploadErrorsCarryCode(t *testing.T) {
	dial := startDaemon(t)
	ctx := context.Background()
	c := dial(nil)
	me, err := c.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, c.Upload(ctx, me.UID+"/1_a.txt", []byte("abc"), ""))
	url, err := c.URL(ctx, me.UID+"/1_a.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	err = c.Upload(ctx, "other/1_a.txt", []byte("abc"), "")
	var ue *errs.UploadError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "storage/unauthorized", ue.Code)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Contains(t, err.Error(), "failed to upload file (storage/unauthorized)")
}

func TestProbe(t *testing.T) {
	dial := startDaemon(t)
	require.NoError(t, dial(nil).Probe(context.Background()))
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{grpcstatus.Error(codes.NotFound, "x"), errs.ErrNotFound},
		{grpcstatus.Error(codes.Unauthenticated, "x"), errs.ErrUnauthorized},
		{grpcstatus.Error(codes.ResourceExhausted, "x"), errs.ErrRateLimited},
		{grpcstatus.Error(codes.FailedPrecondition, "the feed query requires an index"), errs.ErrFeedDegraded},
		{grpcstatus.Error(codes.Unavailable, "down"), ErrDaemonUnavailable},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, fromStatus(tt.err), tt.want)
	}
	assert.NoError(t, fromStatus(nil))

	other := grpcstatus.Error(codes.FailedPrecondition, "something else")
	assert.NotErrorIs(t, fromStatus(other), errs.ErrFeedDegraded)
}
