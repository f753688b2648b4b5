package api

import (
	"context"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/files"
)

// FileService implements chat.v1.FileService.
type FileService struct {
	chatv1.UnimplementedFileServiceServer

	files *files.Service
}

var _ chatv1.FileServiceServer = (*FileService)(nil)

// NewFileService creates the file endpoint.
func NewFileService(f *files.Service) *FileService {
	return &FileService{files: f}
}

func (s *FileService) Upload(ctx context.Context, req *chatv1.UploadRequest) (*chatv1.UploadResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	f, err := s.files.Upload(ctx, id.UID, req.GetKey(), req.GetData(), req.GetContentType())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatv1.UploadResponse{Key: f.Key, Size: f.Size, ContentType: f.ContentType}, nil
}

func (s *FileService) URL(ctx context.Context, req *chatv1.URLRequest) (*chatv1.URLResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	u, err := s.files.URL(ctx, req.GetKey())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatv1.URLResponse{Url: u}, nil
}
