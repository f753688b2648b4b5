package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/store"
)

type fakeMeta struct {
	mu    sync.Mutex
	files map[string]*store.File
}

var _ MetaStore = (*fakeMeta)(nil)

func (f *fakeMeta) PutFile(_ context.Context, file *store.File) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.files == nil {
		f.files = map[string]*store.File{}
	}
	f.files[file.Key] = file
	return nil
}

func (f *fakeMeta) GetFile(_ context.Context, key string) (*store.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[key]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return file, nil
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr error
	}{
		{"u1/1714566600000_a.txt", nil},
		{"u2/1_a.txt", errs.ErrPermissionDenied},
		{"u1a/1_a.txt", errs.ErrPermissionDenied},
		{"u1/", errs.ErrInvalidArgument},
		{"u1/../u2/x", errs.ErrInvalidArgument},
		{"u1/sub/x", errs.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey("u1", tt.key)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiskUploadAndURL(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	svc := NewService(disk, &fakeMeta{}, 0, zaptest.NewLogger(t))
	ctx := context.Background()

	f, err := svc.Upload(ctx, "u1", "u1/1_hello.txt", []byte("hello world"), "")
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", f.ContentType)
	assert.Equal(t, "disk", f.Backend)

	u, err := svc.URL(ctx, "u1/1_hello.txt")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(u, "file://"), u)

	data, err := os.ReadFile(filepath.Join(disk.root, "u1", "1_hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	_, err = svc.URL(ctx, "u1/missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUploadPolicy(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	meta := &fakeMeta{}
	svc := NewService(disk, meta, 4, nil)
	ctx := context.Background()

	_, err = svc.Upload(ctx, "u1", "u1/1_big", []byte("12345"), "text/plain")
	require.ErrorIs(t, err, errs.ErrAttachmentTooLarge)

	_, err = svc.Upload(ctx, "u1", "u2/1_x", []byte("1"), "text/plain")
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Empty(t, meta.files)
}

func TestS3PresignedURL(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "none"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "none"))

	s, err := NewS3(context.Background(), S3Config{
		Bucket:     "chat-attachments",
		Region:     "us-east-1",
		Prefix:     "attachments/",
		Endpoint:   "http://localhost:9000",
		PresignTTL: time.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, "s3", s.Name())

	u, err := s.URL(context.Background(), "u1/1_a.txt")
	require.NoError(t, err)
	assert.Contains(t, u, "localhost:9000/chat-attachments/attachments/u1/1_a.txt")
	assert.Contains(t, u, "X-Amz-Expires=3600")
}
