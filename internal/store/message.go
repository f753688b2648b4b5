package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

const messageColumns = `id, uid, display_name, recipient_id, recipient_name, text, created_at,
	status, read, read_at, is_attachment, file_url, file_type, file_size`

// CreateMessage stores a new message with the unread defaults
// (status sent, read false, no read time) and returns it with its ID.
func (db *DB) CreateMessage(ctx context.Context, nm model.NewMessage) (model.Message, error) {
	m := model.Message{
		ID:            uuid.NewString(),
		UID:           nm.UID,
		DisplayName:   nm.DisplayName,
		RecipientID:   nm.RecipientID,
		RecipientName: nm.RecipientName,
		Text:          nm.Text,
		CreatedAt:     nm.CreatedAt,
		Status:        model.StatusSent,
		IsAttachment:  nm.IsAttachment,
		FileURL:       nm.FileURL,
		FileType:      nm.FileType,
		FileSize:      nm.FileSize,
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, NULL, ?, ?, ?, ?)`,
		m.ID, m.UID, m.DisplayName, m.RecipientID, m.RecipientName, m.Text, m.CreatedAt.UnixMilli(),
		string(m.Status), m.IsAttachment, m.FileURL, m.FileType, m.FileSize)
	if err != nil {
		return model.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return m, nil
}

// GetMessage returns a message by ID.
func (db *DB) GetMessage(ctx context.Context, id string) (model.Message, error) {
	row := db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Message{}, errs.ErrNotFound
	}
	return m, err
}

// MarkRead applies a read mark on behalf of reader. Only the recipient may
// mark a message, and only the read-state fields change. Re-applying is a
// plain overwrite.
func (db *DB) MarkRead(ctx context.Context, id, reader string, mark model.ReadMark) error {
	var recipient string
	err := db.QueryRowContext(ctx, `SELECT recipient_id FROM messages WHERE id = ?`, id).Scan(&recipient)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	if err != nil {
		return err
	}
	if recipient != reader {
		return fmt.Errorf("mark %s read: %w", id, errs.ErrPermissionDenied)
	}

	_, err = db.ExecContext(ctx,
		`UPDATE messages SET read = ?, read_at = ?, status = ? WHERE id = ?`,
		mark.Read, mark.ReadAt.UnixMilli(), string(mark.Status), id)
	return err
}

// RecentMessages returns up to limit messages sent or received by uid,
// most recent first. Messages created at the same millisecond come back in
// reverse insertion order.
func (db *DB) RecentMessages(ctx context.Context, uid string, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE uid = ? OR recipient_id = ?
		ORDER BY created_at DESC, seq DESC
		LIMIT ?`, uid, uid, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(r rowScanner) (model.Message, error) {
	var (
		m         model.Message
		status    string
		createdAt int64
		readAt    sql.NullInt64
	)
	if err := r.Scan(&m.ID, &m.UID, &m.DisplayName, &m.RecipientID, &m.RecipientName, &m.Text, &createdAt,
		&status, &m.Read, &readAt, &m.IsAttachment, &m.FileURL, &m.FileType, &m.FileSize); err != nil {
		return model.Message{}, err
	}
	m.Status = model.Status(status)
	m.CreatedAt = time.UnixMilli(createdAt)
	if readAt.Valid {
		t := time.UnixMilli(readAt.Int64)
		m.ReadAt = &t
	}
	return m, nil
}
