// Package errs contains sentinel errors shared by the view-model, the
// backend daemon and the client adapter.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g. email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication or a missing session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPermissionDenied indicates an authenticated caller touching a record it does not own.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRateLimited indicates too many sign-in attempts.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidArgument wraps validation failures.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyDraft is returned when there is neither text nor an attachment to send.
	ErrEmptyDraft = errors.New("nothing to send")

	// ErrNoPeer is returned when sending without a selected conversation partner.
	ErrNoPeer = errors.New("no conversation selected")

	// ErrAttachmentTooLarge is returned for attachments over the configured limit.
	ErrAttachmentTooLarge = errors.New("attachment too large")

	// ErrFeedDegraded marks a backend index/configuration warning on a live query.
	// The feed keeps running, possibly empty.
	ErrFeedDegraded = errors.New("feed degraded")
)

// UploadError carries the provider code and cause of a failed attachment upload.
type UploadError struct {
	Code string
	Err  error
}

func (e *UploadError) Error() string {
	msg := "failed to upload file"
	if e.Code != "" {
		msg += fmt.Sprintf(" (%s)", e.Code)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UploadError) Unwrap() error { return e.Err }
