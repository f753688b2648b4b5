package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc/health/grpc_health_v1"
)

// Probe checks the daemon's health service.
func (c *Client) Probe(ctx context.Context) error {
	resp, err := grpc_health_v1.NewHealthClient(c.conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDaemonUnavailable, err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: status %s", ErrDaemonUnavailable, resp.GetStatus())
	}
	return nil
}
