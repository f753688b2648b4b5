package client

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/rpc"
)

// ListUsers returns the directory.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	resp, err := c.dir.ListUsers(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, fromStatus(err)
	}
	return rpc.ToUsers(resp.GetUsers()), nil
}

// WatchUsers follows the live directory.
func (c *Client) WatchUsers(ctx context.Context) (<-chan backend.UsersUpdate, error) {
	stream, err := c.dir.WatchUsers(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, fromStatus(err)
	}
	return pump(ctx, stream,
		func(r *chatv1.ListUsersResponse) backend.UsersUpdate {
			return backend.UsersUpdate{Users: rpc.ToUsers(r.GetUsers())}
		},
		func(err error) backend.UsersUpdate {
			return backend.UsersUpdate{Err: err}
		}), nil
}

// SubscribeRecent follows the caller's most recent messages.
func (c *Client) SubscribeRecent(ctx context.Context, limit int) (<-chan backend.FeedUpdate, error) {
	stream, err := c.messages.WatchFeed(ctx, &chatv1.WatchFeedRequest{Limit: int32(limit)})
	if err != nil {
		return nil, fromStatus(err)
	}
	return pump(ctx, stream,
		func(s *chatv1.FeedSnapshot) backend.FeedUpdate {
			return backend.FeedUpdate{Messages: rpc.ToMessages(s.GetMessages())}
		},
		func(err error) backend.FeedUpdate {
			return backend.FeedUpdate{Err: err}
		}), nil
}

// pump forwards stream deliveries to a channel until the stream ends. A
// failure other than cancellation is delivered once before closing.
func pump[Resp, U any](ctx context.Context, stream grpc.ServerStreamingClient[Resp], ok func(*Resp) U, fail func(error) U) <-chan U {
	out := make(chan U, 1)
	go func() {
		defer close(out)
		for {
			resp, err := stream.Recv()
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil || grpcstatus.Code(err) == codes.Canceled {
					return
				}
				select {
				case out <- fail(backend.ClassifyFeedError(fromStatus(err))):
				case <-ctx.Done():
				}
				return
			}
			select {
			case out <- ok(resp):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Create stores a new message and returns its ID.
func (c *Client) Create(ctx context.Context, msg model.NewMessage) (string, error) {
	resp, err := c.messages.Create(ctx, &chatv1.CreateMessageRequest{Message: rpc.FromNewMessage(msg)})
	if err != nil {
		return "", fromStatus(err)
	}
	return resp.GetId(), nil
}

// Update applies a read mark.
func (c *Client) Update(ctx context.Context, id string, mark model.ReadMark) error {
	req := &chatv1.UpdateMessageRequest{Id: id, Read: mark.Read, ReadAt: rpc.Timestamp(mark.ReadAt), Status: string(mark.Status)}
	_, err := c.messages.Update(ctx, req)
	return fromStatus(err)
}

// Upload stores an attachment blob. Failures are *errs.UploadError.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := c.files.Upload(ctx, &chatv1.UploadRequest{Key: key, Data: data, ContentType: contentType})
	return asUploadError(err)
}

// URL returns a retrievable URL for an uploaded key.
func (c *Client) URL(ctx context.Context, key string) (string, error) {
	resp, err := c.files.URL(ctx, &chatv1.URLRequest{Key: key})
	if err != nil {
		return "", asUploadError(err)
	}
	return resp.GetUrl(), nil
}
