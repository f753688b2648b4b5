package api

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/files"
	"github.com/matheus3301/wchat/internal/identity"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/rpc"
	"github.com/matheus3301/wchat/internal/store"
)

type harness struct {
	cc  *grpc.ClientConn
	db  *store.DB
	ids chatv1.IdentityServiceClient
	dir chatv1.DirectoryServiceClient
	msg chatv1.MessageServiceClient
	fs  chatv1.FileServiceClient
}

func newHarness(t *testing.T) *harness {
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
	idSvc := identity.NewService(db, identity.NewTokens([]byte("0123456789abcdef0123456789abcdef"), time.Hour), nil, logger)
	svcs := Services{
		Identity:  NewIdentityService(idSvc, b, logger),
		Directory: NewDirectoryService(db, b),
		Messages:  NewMessageService(db, b, logger),
		Files:     NewFileService(files.NewService(disk, db, 0, logger)),
	}

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(ServerOptions(idSvc, logger)...)
	svcs.Register(gs)
	go func() { _ = gs.Serve(lis) }()

	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cc.Close()
		gs.Stop()
		_ = db.Close()
	})
	return &harness{
		cc: cc, db: db,
		ids: chatv1.NewIdentityServiceClient(cc),
		dir: chatv1.NewDirectoryServiceClient(cc),
		msg: chatv1.NewMessageServiceClient(cc),
		fs:  chatv1.NewFileServiceClient(cc),
	}
}

func (h *harness) register(t *testing.T, name, email string) (context.Context, model.Identity) {
	t.Helper()
	resp, err := h.ids.Register(context.Background(), &chatv1.RegisterRequest{Name: name, Email: email, Password: "secret1"})
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp.GetToken())
	return ctx, rpc.ToIdentity(resp.GetIdentity())
}

func TestProtectedCallsNeedToken(t *testing.T) {
	h := newHarness(t)
	_, err := h.dir.ListUsers(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, grpcstatus.Code(err))

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = h.ids.WhoAmI(bad, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, grpcstatus.Code(err))
}

func TestRegisterSignInWhoAmI(t *testing.T) {
	h := newHarness(t)
	ctx, me := h.register(t, "Alice", "alice@example.com")

	who, err := h.ids.WhoAmI(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, me.UID, who.GetUid())
	assert.Equal(t, "Alice", who.GetName())

	_, err = h.ids.Register(context.Background(), &chatv1.RegisterRequest{Name: "A2", Email: "ALICE@example.com", Password: "secret1"})
	assert.Equal(t, codes.AlreadyExists, grpcstatus.Code(err))

	_, err = h.ids.SignIn(context.Background(), &chatv1.SignInRequest{Email: "alice@example.com", Password: "wrong12"})
	assert.Equal(t, codes.Unauthenticated, grpcstatus.Code(err))

	resp, err := h.ids.SignIn(context.Background(), &chatv1.SignInRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, me.UID, resp.GetIdentity().GetUid())

	_, err = h.ids.SignIn(context.Background(), &chatv1.SignInRequest{Email: "bad", Password: "secret1"})
	assert.Equal(t, codes.InvalidArgument, grpcstatus.Code(err))
}

func TestCreateForcesSenderAndUpdateIsRecipientOnly(t *testing.T) {
	h := newHarness(t)
	actx, alice := h.register(t, "Alice", "alice@example.com")
	bctx, bob := h.register(t, "Bob", "bob@example.com")

	created, err := h.msg.Create(actx, &chatv1.CreateMessageRequest{Message: &chatv1.Message{
		Uid:         bob.UID, // spoofed, must be ignored
		RecipientId: bob.UID,
		Text:        "hi",
		CreatedAt:   rpc.Timestamp(time.Now()),
	}})
	require.NoError(t, err)

	m, err := h.db.GetMessage(context.Background(), created.GetId())
	require.NoError(t, err)
	assert.Equal(t, alice.UID, m.UID)
	assert.Equal(t, "Alice", m.DisplayName)
	assert.Equal(t, model.StatusSent, m.Status)
	assert.False(t, m.IsRead())

	_, err = h.msg.Create(actx, &chatv1.CreateMessageRequest{Message: &chatv1.Message{RecipientId: "ghost", Text: "x"}})
	assert.Equal(t, codes.NotFound, grpcstatus.Code(err))

	upd := &chatv1.UpdateMessageRequest{Id: created.GetId(), Read: true, ReadAt: rpc.Timestamp(time.Now()), Status: string(model.StatusRead)}
	_, err = h.msg.Update(actx, upd)
	assert.Equal(t, codes.PermissionDenied, grpcstatus.Code(err))

	_, err = h.msg.Update(bctx, &chatv1.UpdateMessageRequest{Id: created.GetId(), Read: false, Status: "sent"})
	assert.Equal(t, codes.InvalidArgument, grpcstatus.Code(err))

	_, err = h.msg.Update(bctx, upd)
	require.NoError(t, err)
	m, err = h.db.GetMessage(context.Background(), created.GetId())
	require.NoError(t, err)
	assert.True(t, m.IsRead())
}

func TestWatchFeedPushesSnapshots(t *testing.T) {
	h := newHarness(t)
	actx, _ := h.register(t, "Alice", "alice@example.com")
	bctx, bob := h.register(t, "Bob", "bob@example.com")

	ctx, cancel := context.WithTimeout(bctx, 5*time.Second)
	defer cancel()
	stream, err := h.msg.WatchFeed(ctx, &chatv1.WatchFeedRequest{})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Empty(t, first.GetMessages())

	_, err = h.msg.Create(actx, &chatv1.CreateMessageRequest{Message: &chatv1.Message{RecipientId: bob.UID, Text: "hello"}})
	require.NoError(t, err)

	next, err := stream.Recv()
	require.NoError(t, err)
	got := rpc.ToMessages(next.GetMessages())
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, bob.UID, got[0].RecipientID)
	assert.False(t, got[0].CreatedAt.IsZero())
	assert.Nil(t, got[0].ReadAt)
}

func TestWatchUsersResendsOnRegister(t *testing.T) {
	h := newHarness(t)
	actx, _ := h.register(t, "Alice", "alice@example.com")

	ctx, cancel := context.WithTimeout(actx, 5*time.Second)
	defer cancel()
	stream, err := h.dir.WatchUsers(ctx, &emptypb.Empty{})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Len(t, first.GetUsers(), 1)

	h.register(t, "Bob", "bob@example.com")
	next, err := stream.Recv()
	require.NoError(t, err)
	assert.Len(t, next.GetUsers(), 2)
}

func TestFileUploadAndURL(t *testing.T) {
	h := newHarness(t)
	ctx, me := h.register(t, "Alice", "alice@example.com")

	key := me.UID + "/1714564800000_notes.txt"
	up, err := h.fs.Upload(ctx, &chatv1.UploadRequest{Key: key, Data: []byte("hello world")})
	require.NoError(t, err)
	assert.Equal(t, int64(11), up.GetSize())
	assert.Contains(t, up.GetContentType(), "text/plain")

	u, err := h.fs.URL(ctx, &chatv1.URLRequest{Key: key})
	require.NoError(t, err)
	assert.Contains(t, u.GetUrl(), "notes.txt")

	_, err = h.fs.Upload(ctx, &chatv1.UploadRequest{Key: "someone-else/x.txt", Data: []byte("x")})
	assert.Equal(t, codes.PermissionDenied, grpcstatus.Code(err))
}

func TestClampFeedLimit(t *testing.T) {
	assert.Equal(t, DefaultFeedLimit, ClampFeedLimit(0))
	assert.Equal(t, 1, ClampFeedLimit(1))
	assert.Equal(t, MaxFeedLimit, ClampFeedLimit(10_000))
}
