package api

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
)

// Services groups the chat.v1 endpoints served by the daemon.
type Services struct {
	Identity  *IdentityService
	Directory *DirectoryService
	Messages  *MessageService
	Files     *FileService
}

// Register adds every endpoint to s.
func (sv Services) Register(s grpc.ServiceRegistrar) {
	chatv1.RegisterIdentityServiceServer(s, sv.Identity)
	chatv1.RegisterDirectoryServiceServer(s, sv.Directory)
	chatv1.RegisterMessageServiceServer(s, sv.Messages)
	chatv1.RegisterFileServiceServer(s, sv.Files)
}

// ServerOptions returns the interceptor chain: recovery, logging, then auth.
func ServerOptions(auth Authenticator, logger *zap.Logger) []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(RecoverUnary(logger), LoggingUnary(logger), AuthUnary(auth)),
		grpc.ChainStreamInterceptor(RecoverStream(logger), LoggingStream(logger), AuthStream(auth)),
	}
}
