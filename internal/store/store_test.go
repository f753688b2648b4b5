package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func mustUser(t *testing.T, db *DB, name, email string) *User {
	t.Helper()
	u := &User{Name: name, Email: email}
	if err := db.CreateUser(context.Background(), u, Credential{PasswordHash: []byte("h"), Salt: []byte("s")}); err != nil {
		t.Fatal(err)
	}
	return u
}

func TestMigrateAppliesOnFreshDB(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate, so run it again to check idempotency.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 2 {
		t.Errorf("version = %d, want 2 (init + files)", result.Version)
	}
	if err := db.CheckFeedIndexes(); err != nil {
		t.Errorf("CheckFeedIndexes() = %v, want nil", err)
	}
}

func TestCheckFeedIndexesReportsMissing(t *testing.T) {
	db := testDB(t)
	if _, err := db.Exec(`DROP INDEX idx_messages_recipient_created`); err != nil {
		t.Fatal(err)
	}
	err := db.CheckFeedIndexes()
	if !errors.Is(err, ErrIndexMissing) {
		t.Fatalf("CheckFeedIndexes() = %v, want ErrIndexMissing", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := testDB(t)
	mustUser(t, db, "Alice", "alice@example.com")

	err := db.CreateUser(context.Background(), &User{Name: "Other", Email: "ALICE@example.com"}, Credential{PasswordHash: []byte("h"), Salt: []byte("s")})
	if !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("CreateUser duplicate = %v, want ErrAlreadyExists", err)
	}
}

func TestUserLookups(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	alice := mustUser(t, db, "Alice", "alice@example.com")

	u, cred, err := db.UserByEmail(ctx, "Alice@Example.com")
	if err != nil {
		t.Fatal(err)
	}
	if u.UID != alice.UID || string(cred.Salt) != "s" {
		t.Errorf("UserByEmail = %+v %+v", u, cred)
	}

	if _, _, err := db.UserByEmail(ctx, "nobody@example.com"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("UserByEmail(missing) = %v, want ErrNotFound", err)
	}
	if _, err := db.GetUser(ctx, "missing"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("GetUser(missing) = %v, want ErrNotFound", err)
	}
}

func TestListUsersDirectoryOrder(t *testing.T) {
	db := testDB(t)
	mustUser(t, db, "Carol", "c@example.com")
	mustUser(t, db, "Alice", "a@example.com")
	mustUser(t, db, "Bob", "b@example.com")

	users, err := db.ListUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, u := range users {
		names = append(names, u.Name)
	}
	want := []string{"Alice", "Bob", "Carol"}
	if len(names) != 3 || names[0] != want[0] || names[1] != want[1] || names[2] != want[2] {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestCreateMessageDefaults(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	created := time.UnixMilli(1714566600123)

	m, err := db.CreateMessage(ctx, model.NewMessage{UID: "a", RecipientID: "b", Text: "hi", CreatedAt: created})
	if err != nil {
		t.Fatal(err)
	}
	got, err := db.GetMessage(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != model.StatusSent || got.Read || got.ReadAt != nil {
		t.Errorf("defaults = status %s read %v readAt %v", got.Status, got.Read, got.ReadAt)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
	}
}

func TestMarkReadOnlyRecipient(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	m, err := db.CreateMessage(ctx, model.NewMessage{UID: "a", RecipientID: "b", Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	mark := model.NewReadMark(time.UnixMilli(1714566600000))

	if err := db.MarkRead(ctx, m.ID, "a", mark); !errors.Is(err, errs.ErrPermissionDenied) {
		t.Errorf("MarkRead by sender = %v, want ErrPermissionDenied", err)
	}
	if err := db.MarkRead(ctx, "missing", "b", mark); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("MarkRead(missing) = %v, want ErrNotFound", err)
	}

	// Applying twice is harmless.
	for range 2 {
		if err := db.MarkRead(ctx, m.ID, "b", mark); err != nil {
			t.Fatal(err)
		}
	}
	got, err := db.GetMessage(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsRead() {
		t.Errorf("message not read after MarkRead: %+v", got)
	}
	if got.Text != "hi" || got.UID != "a" {
		t.Errorf("MarkRead touched immutable fields: %+v", got)
	}
}

func TestRecentMessagesVisibilityAndOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	base := time.UnixMilli(1714566600000)

	insert := func(from, to, text string, offset time.Duration) {
		t.Helper()
		if _, err := db.CreateMessage(ctx, model.NewMessage{UID: from, RecipientID: to, Text: text, CreatedAt: base.Add(offset)}); err != nil {
			t.Fatal(err)
		}
	}
	insert("a", "b", "one", 0)
	insert("b", "a", "two", time.Second)
	insert("c", "d", "hidden", 2*time.Second)
	insert("c", "a", "three", 3*time.Second)

	msgs, err := db.RecentMessages(ctx, "a", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 || msgs[0].Text != "three" || msgs[1].Text != "two" {
		t.Fatalf("RecentMessages(a, 2) = %+v", msgs)
	}

	msgs, err = db.RecentMessages(ctx, "a", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range msgs {
		if !m.Involves("a") {
			t.Errorf("message %q not visible to a", m.Text)
		}
	}
	if len(msgs) != 3 {
		t.Errorf("got %d messages, want 3", len(msgs))
	}
}

func TestFileMetadata(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Alice", "alice@example.com")

	f := &File{Key: u.UID + "/1_a.txt", OwnerUID: u.UID, ContentType: "text/plain", Size: 3, Backend: "disk"}
	if err := db.PutFile(ctx, f); err != nil {
		t.Fatal(err)
	}
	got, err := db.GetFile(ctx, f.Key)
	if err != nil {
		t.Fatal(err)
	}
	if got.ContentType != "text/plain" || got.Size != 3 {
		t.Errorf("GetFile = %+v", got)
	}
	if _, err := db.GetFile(ctx, "nope"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("GetFile(missing) = %v, want ErrNotFound", err)
	}
}
