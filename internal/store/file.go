package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/matheus3301/wchat/internal/errs"
)

// PutFile records (or replaces) the metadata of an uploaded blob.
func (db *DB) PutFile(ctx context.Context, f *File) error {
	if f.CreatedAt == 0 {
		f.CreatedAt = time.Now().UnixMilli()
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO files (key, owner_uid, content_type, size, backend, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			content_type = excluded.content_type,
			size = excluded.size,
			backend = excluded.backend`,
		f.Key, f.OwnerUID, f.ContentType, f.Size, f.Backend, f.CreatedAt)
	return err
}

// GetFile returns blob metadata by key.
func (db *DB) GetFile(ctx context.Context, key string) (*File, error) {
	var f File
	err := db.QueryRowContext(ctx,
		`SELECT key, owner_uid, content_type, size, backend, created_at FROM files WHERE key = ?`, key).
		Scan(&f.Key, &f.OwnerUID, &f.ContentType, &f.Size, &f.Backend, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
