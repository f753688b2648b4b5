package api

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/store"
)

// toStatus maps domain errors to gRPC status errors. Errors that already
// carry a status pass through.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := grpcstatus.FromError(err); ok {
		return err
	}
	code := codes.Internal
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, errs.ErrAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, errs.ErrUnauthorized):
		code = codes.Unauthenticated
	case errors.Is(err, errs.ErrPermissionDenied):
		code = codes.PermissionDenied
	case errors.Is(err, errs.ErrRateLimited):
		code = codes.ResourceExhausted
	case errors.Is(err, errs.ErrInvalidArgument), errors.Is(err, errs.ErrEmptyDraft):
		code = codes.InvalidArgument
	case errors.Is(err, errs.ErrAttachmentTooLarge):
		code = codes.InvalidArgument
	case errors.Is(err, store.ErrIndexMissing), errors.Is(err, errs.ErrFeedDegraded):
		code = codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	}
	return grpcstatus.Error(code, err.Error())
}
