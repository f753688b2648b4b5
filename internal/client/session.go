package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/rpc"
)

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, name, email, password string) (model.Identity, error) {
	resp, err := c.ids.Register(ctx, &chatv1.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return model.Identity{}, fromStatus(err)
	}
	return c.adopt(resp)
}

// SignIn authenticates and persists the session marker.
func (c *Client) SignIn(ctx context.Context, email, password string) (model.Identity, error) {
	resp, err := c.ids.SignIn(ctx, &chatv1.SignInRequest{Email: email, Password: password})
	if err != nil {
		return model.Identity{}, fromStatus(err)
	}
	return c.adopt(resp)
}

func (c *Client) adopt(resp *chatv1.AuthResponse) (model.Identity, error) {
	id := rpc.ToIdentity(resp.GetIdentity())
	c.setSession(&id, resp.GetToken())
	if c.marker != nil {
		m := Marker{UID: id.UID, Name: id.DisplayName, Email: id.Email, Token: resp.GetToken(), SignedInAt: time.Now().UTC()}
		if err := c.marker.Save(m); err != nil {
			return id, fmt.Errorf("save session marker: %w", err)
		}
	}
	c.logger.Info("signed in", zap.String("uid", id.UID))
	return id, nil
}

// SignOut forgets the session and removes the marker.
func (c *Client) SignOut(_ context.Context) error {
	c.setSession(nil, "")
	if c.marker != nil {
		return c.marker.Remove()
	}
	return nil
}

// Current returns the signed-in identity, resuming from the session marker
// when needed. A marker whose token the daemon rejects is removed and
// reported as no session.
func (c *Client) Current(ctx context.Context) (*model.Identity, error) {
	c.mu.RLock()
	id := c.identity
	c.mu.RUnlock()
	if id != nil {
		out := *id
		return &out, nil
	}
	if c.marker == nil {
		return nil, nil
	}

	m, err := c.marker.Load()
	if err != nil || m == nil {
		return nil, err
	}
	c.setSession(nil, m.Token)
	who, err := c.ids.WhoAmI(ctx, &emptypb.Empty{})
	if err != nil {
		err = fromStatus(err)
		if errors.Is(err, errs.ErrUnauthorized) {
			c.setSession(nil, "")
			c.logger.Info("session marker expired", zap.String("path", c.marker.Path()))
			return nil, c.marker.Remove()
		}
		c.setSession(nil, "")
		return nil, err
	}
	resumed := rpc.ToIdentity(who)
	c.setSession(&resumed, m.Token)
	out := resumed
	return &out, nil
}

// RequireSession is the route guard for views that need a signed-in user.
// It returns errs.ErrUnauthorized when there is no valid session.
func RequireSession(ctx context.Context, ids backend.Identity) (model.Identity, error) {
	cur, err := ids.Current(ctx)
	if err != nil {
		return model.Identity{}, err
	}
	if cur == nil {
		return model.Identity{}, errs.ErrUnauthorized
	}
	return *cur, nil
}
