package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{DefaultProfile: "work", Files: Files{Backend: "s3", S3: S3{Bucket: "chat", Region: "us-east-1"}}}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", loaded.DefaultProfile, "work")
	}
	if loaded.Files.S3.Bucket != "chat" {
		t.Errorf("Files.S3.Bucket = %q, want chat", loaded.Files.S3.Bucket)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{DefaultProfile: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.FeedLimit != DefaultFeedLimit || cfg.ThreadWindow != DefaultThreadWindow {
		t.Errorf("limits = %d/%d, want %d/%d", cfg.FeedLimit, cfg.ThreadWindow, DefaultFeedLimit, DefaultThreadWindow)
	}
	if cfg.MaxAttachmentBytes != DefaultMaxAttachmentBytes {
		t.Errorf("MaxAttachmentBytes = %d", cfg.MaxAttachmentBytes)
	}
	if cfg.Files.Backend != "disk" {
		t.Errorf("Files.Backend = %q, want disk", cfg.Files.Backend)
	}
	if cfg.PresignTTL() != DefaultPresignTTL {
		t.Errorf("PresignTTL() = %v", cfg.PresignTTL())
	}
}

func TestResolveEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(path, &Config{DefaultProfile: "file", FeedLimit: 50, Files: Files{S3: S3{Bucket: "from-file"}}}); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WCHAT_DEFAULT_PROFILE", "env")
	t.Setenv("WCHAT_FILES_S3_BUCKET", "from-env")
	t.Setenv("WCHAT_FILES_S3_PRESIGN_TTL_SECONDS", "60")

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.DefaultProfile != "env" {
		t.Errorf("DefaultProfile = %q, want env", cfg.DefaultProfile)
	}
	if cfg.FeedLimit != 50 {
		t.Errorf("FeedLimit = %d, want 50 from file", cfg.FeedLimit)
	}
	if cfg.Files.S3.Bucket != "from-env" {
		t.Errorf("Files.S3.Bucket = %q, want from-env", cfg.Files.S3.Bucket)
	}
	if cfg.PresignTTL() != time.Minute {
		t.Errorf("PresignTTL() = %v, want 1m", cfg.PresignTTL())
	}
}
