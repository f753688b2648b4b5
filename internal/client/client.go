// Package client is the gRPC adapter the TUI and CLI use to reach the
// profile daemon. It implements every contract in internal/backend.
package client

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/model"
)

var (
	_ backend.Identity     = (*Client)(nil)
	_ backend.Registrar    = (*Client)(nil)
	_ backend.Directory    = (*Client)(nil)
	_ backend.Feed         = (*Client)(nil)
	_ backend.MessageStore = (*Client)(nil)
	_ backend.FileStore    = (*Client)(nil)
)

// Client wraps the gRPC connection to the daemon.
type Client struct {
	conn     *grpc.ClientConn
	ids      chatv1.IdentityServiceClient
	dir      chatv1.DirectoryServiceClient
	messages chatv1.MessageServiceClient
	files    chatv1.FileServiceClient

	marker *MarkerFile
	logger *zap.Logger

	mu       sync.RWMutex
	token    string
	identity *model.Identity
}

// Dial connects to the daemon's Unix domain socket. marker may be nil, in
// which case sessions last only as long as the Client.
func Dial(socketPath string, marker *MarkerFile, logger *zap.Logger) (*Client, error) {
	return DialTarget("unix://"+socketPath, marker, logger)
}

// DialTarget is Dial for an arbitrary gRPC target.
func DialTarget(target string, marker *MarkerFile, logger *zap.Logger, extra ...grpc.DialOption) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{marker: marker, logger: logger}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(bearerCreds{c}),
	}, extra...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	c.conn = conn
	c.ids = chatv1.NewIdentityServiceClient(conn)
	c.dir = chatv1.NewDirectoryServiceClient(conn)
	c.messages = chatv1.NewMessageServiceClient(conn)
	c.files = chatv1.NewFileServiceClient(conn)
	return c, nil
}

// Conn exposes the underlying connection, e.g. for health probes.
func (c *Client) Conn() *grpc.ClientConn { return c.conn }

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setSession(id *model.Identity, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = id
	c.token = token
}

// bearerCreds attaches the current session token to every call.
type bearerCreds struct{ c *Client }

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	token := b.c.currentToken()
	if token == "" {
		return nil, nil
	}
	return map[string]string{"authorization": "Bearer " + token}, nil
}

func (bearerCreds) RequireTransportSecurity() bool { return false }
