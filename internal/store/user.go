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

// CreateUser inserts a user and its credential in one transaction. The UID
// is generated when empty. A taken email returns errs.ErrAlreadyExists.
func (db *DB) CreateUser(ctx context.Context, u *User, cred Credential) error {
	if u.UID == "" {
		u.UID = uuid.NewString()
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().UnixMilli()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (uid, name, email, created_at) VALUES (?, ?, ?, ?)`,
		u.UID, u.Name, u.Email, u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w", u.Email, errs.ErrAlreadyExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO credentials (uid, password_hash, salt, updated_at) VALUES (?, ?, ?, ?)`,
		u.UID, cred.PasswordHash, cred.Salt, u.CreatedAt); err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return tx.Commit()
}

// UserByEmail returns the user and credential for email (case-insensitive).
func (db *DB) UserByEmail(ctx context.Context, email string) (*User, *Credential, error) {
	var u User
	var c Credential
	err := db.QueryRowContext(ctx, `
		SELECT u.uid, u.name, u.email, u.created_at, c.password_hash, c.salt
		FROM users u JOIN credentials c ON c.uid = u.uid
		WHERE u.email = ?`, email).
		Scan(&u.UID, &u.Name, &u.Email, &u.CreatedAt, &c.PasswordHash, &c.Salt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	c.UID = u.UID
	return &u, &c, nil
}

// GetUser returns a user by UID.
func (db *DB) GetUser(ctx context.Context, uid string) (*User, error) {
	var u User
	err := db.QueryRowContext(ctx,
		`SELECT uid, name, email, created_at FROM users WHERE uid = ?`, uid).
		Scan(&u.UID, &u.Name, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns the directory ordered by name, then UID.
func (db *DB) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := db.QueryContext(ctx, `SELECT uid, name, email FROM users ORDER BY name, uid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
