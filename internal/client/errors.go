package client

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/wchat/internal/errs"
)

// ErrDaemonUnavailable means the profile daemon is not reachable.
var ErrDaemonUnavailable = errors.New("daemon unavailable")

// fromStatus maps gRPC status errors back to the shared sentinels.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := grpcstatus.FromError(err)
	if !ok {
		return err
	}
	msg := st.Message()
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", errs.ErrNotFound, msg)
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", errs.ErrAlreadyExists, msg)
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", errs.ErrUnauthorized, msg)
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", errs.ErrPermissionDenied, msg)
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", errs.ErrRateLimited, msg)
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, msg)
	case codes.FailedPrecondition:
		if strings.Contains(strings.ToLower(msg), "index") {
			return fmt.Errorf("%w: %s", errs.ErrFeedDegraded, msg)
		}
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrDaemonUnavailable, msg)
	}
	return err
}

// uploadCode names a failed upload the way storage providers do.
func uploadCode(code codes.Code) string {
	switch code {
	case codes.Unauthenticated:
		return "storage/unauthenticated"
	case codes.PermissionDenied:
		return "storage/unauthorized"
	case codes.InvalidArgument:
		return "storage/invalid-argument"
	case codes.NotFound:
		return "storage/object-not-found"
	case codes.ResourceExhausted:
		return "storage/quota-exceeded"
	case codes.Canceled, codes.DeadlineExceeded:
		return "storage/canceled"
	case codes.Unavailable:
		return "storage/retry-limit-exceeded"
	default:
		return "storage/unknown"
	}
}

func asUploadError(err error) error {
	if err == nil {
		return nil
	}
	return &errs.UploadError{Code: uploadCode(grpcstatus.Code(err)), Err: fromStatus(err)}
}
