package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/rpc"
)

// UserLister reads the directory.
type UserLister interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

// DirectoryService implements chat.v1.DirectoryService.
type DirectoryService struct {
	chatv1.UnimplementedDirectoryServiceServer

	users UserLister
	bus   *bus.Bus
}

var _ chatv1.DirectoryServiceServer = (*DirectoryService)(nil)

// NewDirectoryService creates the directory endpoint.
func NewDirectoryService(users UserLister, b *bus.Bus) *DirectoryService {
	return &DirectoryService{users: users, bus: b}
}

func (s *DirectoryService) snapshot(ctx context.Context) (*chatv1.ListUsersResponse, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatv1.ListUsersResponse{Users: rpc.FromUsers(users)}, nil
}

func (s *DirectoryService) ListUsers(ctx context.Context, _ *emptypb.Empty) (*chatv1.ListUsersResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(ctx)
}

// WatchUsers sends the directory on subscribe and after every registration.
func (s *DirectoryService) WatchUsers(_ *emptypb.Empty, stream grpc.ServerStreamingServer[chatv1.ListUsersResponse]) error {
	ctx := stream.Context()
	if _, err := caller(ctx); err != nil {
		return err
	}
	ch, unsub := s.bus.Subscribe("directory.", 16)
	defer unsub()

	for {
		snap, err := s.snapshot(ctx)
		if err != nil {
			return err
		}
		if err := stream.Send(snap); err != nil {
			return err
		}
		select {
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			drain(ch)
		case <-ctx.Done():
			return nil
		}
	}
}

// drain discards queued events; one snapshot covers them all.
func drain(ch <-chan bus.Event) {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
