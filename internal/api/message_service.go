package api

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/rpc"
	"github.com/matheus3301/wchat/internal/store"
)

// Feed limits.
const (
	DefaultFeedLimit = 200
	MaxFeedLimit     = 500
)

// MessageStore is the persistence the message endpoint needs.
type MessageStore interface {
	CreateMessage(ctx context.Context, nm model.NewMessage) (model.Message, error)
	GetMessage(ctx context.Context, id string) (model.Message, error)
	MarkRead(ctx context.Context, id, reader string, mark model.ReadMark) error
	RecentMessages(ctx context.Context, uid string, limit int) ([]model.Message, error)
	GetUser(ctx context.Context, uid string) (*store.User, error)
	CheckFeedIndexes() error
}

var _ MessageStore = (*store.DB)(nil)

// MessageService implements chat.v1.MessageService.
type MessageService struct {
	chatv1.UnimplementedMessageServiceServer

	db     MessageStore
	bus    *bus.Bus
	logger *zap.Logger
}

var _ chatv1.MessageServiceServer = (*MessageService)(nil)

// NewMessageService creates the message endpoint.
func NewMessageService(db MessageStore, b *bus.Bus, logger *zap.Logger) *MessageService {
	return &MessageService{db: db, bus: b, logger: logger}
}

// Create stores a message from the caller. The sender fields always come
// from the token, and the read state always starts unread.
func (s *MessageService) Create(ctx context.Context, req *chatv1.CreateMessageRequest) (*chatv1.CreateMessageResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	nm := rpc.ToNewMessage(req.GetMessage())
	if nm.RecipientID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "recipientId is required")
	}
	if !nm.IsAttachment && nm.Text == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "text is required")
	}
	if _, err := s.db.GetUser(ctx, nm.RecipientID); err != nil {
		return nil, toStatus(fmt.Errorf("recipient %s: %w", nm.RecipientID, err))
	}

	nm.UID = id.UID
	if nm.DisplayName == "" {
		nm.DisplayName = id.Name()
	}
	m, err := s.db.CreateMessage(ctx, nm)
	if err != nil {
		return nil, toStatus(err)
	}
	s.bus.Emit(bus.KindMessageCreated, bus.MessageRef{ID: m.ID, UID: m.UID, RecipientID: m.RecipientID})
	return &chatv1.CreateMessageResponse{Id: m.ID}, nil
}

// Update applies a read mark. Only the recipient may mark, and the only
// accepted assignment is the read state.
func (s *MessageService) Update(ctx context.Context, req *chatv1.UpdateMessageRequest) (*emptypb.Empty, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	msgID := req.GetId()
	if msgID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "id is required")
	}
	readAt := rpc.Time(req.GetReadAt())
	if !req.GetRead() || model.Status(req.GetStatus()) != model.StatusRead || readAt.IsZero() {
		return nil, grpcstatus.Error(codes.InvalidArgument, "only read=true, status=read with readAt may be applied")
	}
	if err := s.db.MarkRead(ctx, msgID, id.UID, model.NewReadMark(readAt)); err != nil {
		return nil, toStatus(err)
	}
	ref := bus.MessageRef{ID: msgID, RecipientID: id.UID}
	if m, err := s.db.GetMessage(ctx, msgID); err == nil {
		ref.UID = m.UID
	}
	s.bus.Emit(bus.KindMessageRead, ref)
	return &emptypb.Empty{}, nil
}

// ClampFeedLimit applies the default and bounds to a requested feed limit.
func ClampFeedLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultFeedLimit
	case limit > MaxFeedLimit:
		return MaxFeedLimit
	default:
		return limit
	}
}

// WatchFeed sends the caller's most recent messages, most recent first, on
// subscribe and again after every message change the caller can see.
func (s *MessageService) WatchFeed(req *chatv1.WatchFeedRequest, stream grpc.ServerStreamingServer[chatv1.FeedSnapshot]) error {
	ctx := stream.Context()
	id, err := caller(ctx)
	if err != nil {
		return err
	}
	if err := s.db.CheckFeedIndexes(); err != nil {
		s.logger.Warn("feed degraded", zap.Error(err))
		return toStatus(err)
	}
	limit := ClampFeedLimit(int(req.GetLimit()))

	ch, unsub := s.bus.Subscribe("message.", 64)
	defer unsub()

	for {
		msgs, err := s.db.RecentMessages(ctx, id.UID, limit)
		if err != nil {
			return toStatus(err)
		}
		if err := stream.Send(&chatv1.FeedSnapshot{Messages: rpc.FromMessages(msgs)}); err != nil {
			return err
		}
		if err := waitVisible(ctx, ch, id.UID); err != nil {
			return nil
		}
	}
}

// waitVisible blocks until a message event involving uid arrives, then
// drains the rest of the queue. A closed bus ends the wait with errBusClosed.
func waitVisible(ctx context.Context, ch <-chan bus.Event, uid string) error {
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return errBusClosed
			}
			if visibleTo(evt, uid) {
				drain(ch)
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

var errBusClosed = errors.New("event bus closed")

func visibleTo(evt bus.Event, uid string) bool {
	ref, ok := evt.Payload.(bus.MessageRef)
	if !ok {
		return true
	}
	return ref.UID == uid || ref.RecipientID == uid || (ref.UID == "" && ref.RecipientID == "")
}
