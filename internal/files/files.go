// Package files hosts attachment blobs for the daemon: key policy, size
// limit, content sniffing and the disk and S3 backends.
package files

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/store"
)

// DefaultMaxSize is the upload size limit (5 MiB).
const DefaultMaxSize int64 = 5 << 20

// Blobs is a blob backend.
type Blobs interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	URL(ctx context.Context, key string) (string, error)
	Name() string
}

// MetaStore records blob metadata.
type MetaStore interface {
	PutFile(ctx context.Context, f *store.File) error
	GetFile(ctx context.Context, key string) (*store.File, error)
}

var _ MetaStore = (*store.DB)(nil)

// Service enforces the upload policy in front of a backend.
type Service struct {
	blobs   Blobs
	meta    MetaStore
	maxSize int64
	logger  *zap.Logger
}

// NewService creates a file service. maxSize <= 0 uses DefaultMaxSize.
func NewService(blobs Blobs, meta MetaStore, maxSize int64, logger *zap.Logger) *Service {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{blobs: blobs, meta: meta, maxSize: maxSize, logger: logger}
}

// ValidateKey checks that key lives under the owner's prefix and has no
// path tricks.
func ValidateKey(owner, key string) error {
	if owner == "" || !strings.HasPrefix(key, owner+"/") {
		return fmt.Errorf("%w: key must start with %q", errs.ErrPermissionDenied, owner+"/")
	}
	name := strings.TrimPrefix(key, owner+"/")
	if name == "" || strings.Contains(name, "/") || path.Clean(key) != key || strings.Contains(key, "..") {
		return fmt.Errorf("%w: malformed key %q", errs.ErrInvalidArgument, key)
	}
	return nil
}

// Upload stores data under key for owner. An empty contentType is sniffed
// from the content. Returns the recorded metadata.
func (s *Service) Upload(ctx context.Context, owner, key string, data []byte, contentType string) (*store.File, error) {
	if err := ValidateKey(owner, key); err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", errs.ErrAttachmentTooLarge, len(data), s.maxSize)
	}
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	if err := s.blobs.Put(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("put %s: %w", key, err)
	}
	f := &store.File{Key: key, OwnerUID: owner, ContentType: contentType, Size: int64(len(data)), Backend: s.blobs.Name()}
	if err := s.meta.PutFile(ctx, f); err != nil {
		return nil, fmt.Errorf("record %s: %w", key, err)
	}
	s.logger.Info("file uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", f.Size),
		zap.String("backend", f.Backend))
	return f, nil
}

// URL returns a retrievable URL for an uploaded key.
func (s *Service) URL(ctx context.Context, key string) (string, error) {
	if _, err := s.meta.GetFile(ctx, key); err != nil {
		return "", err
	}
	return s.blobs.URL(ctx, key)
}
