package api

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/identity"
	"github.com/matheus3301/wchat/internal/rpc"
)

// IdentityService implements chat.v1.IdentityService.
type IdentityService struct {
	chatv1.UnimplementedIdentityServiceServer

	svc    *identity.Service
	bus    *bus.Bus
	logger *zap.Logger
}

var _ chatv1.IdentityServiceServer = (*IdentityService)(nil)

// NewIdentityService creates the identity endpoint.
func NewIdentityService(svc *identity.Service, b *bus.Bus, logger *zap.Logger) *IdentityService {
	return &IdentityService{svc: svc, bus: b, logger: logger}
}

func (s *IdentityService) Register(ctx context.Context, req *chatv1.RegisterRequest) (*chatv1.AuthResponse, error) {
	sess, err := s.svc.Register(ctx, req.GetName(), req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	s.bus.Emit(bus.KindDirectoryChanged, sess.Identity.UID)
	return &chatv1.AuthResponse{Identity: rpc.FromIdentity(sess.Identity), Token: sess.Token}, nil
}

func (s *IdentityService) SignIn(ctx context.Context, req *chatv1.SignInRequest) (*chatv1.AuthResponse, error) {
	sess, err := s.svc.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("signed in", zap.String("uid", sess.Identity.UID))
	return &chatv1.AuthResponse{Identity: rpc.FromIdentity(sess.Identity), Token: sess.Token}, nil
}

func (s *IdentityService) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*chatv1.Identity, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	return rpc.FromIdentity(id), nil
}
