package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// Defaults.
const (
	DefaultFeedLimit          = 200
	DefaultThreadWindow       = 20
	DefaultMaxAttachmentBytes = 5 << 20
	DefaultFilesBackend       = "disk"
	DefaultPresignTTL         = 15 * time.Minute
	DefaultLogLevel           = "info"
)

// S3 configures the S3 blob backend.
type S3 struct {
	Bucket            string `toml:"bucket" envconfig:"BUCKET"`
	Region            string `toml:"region" envconfig:"REGION"`
	Prefix            string `toml:"prefix" envconfig:"PREFIX"`
	Endpoint          string `toml:"endpoint,omitempty" envconfig:"ENDPOINT"`
	PresignTTLSeconds int    `toml:"presign_ttl_seconds" envconfig:"PRESIGN_TTL_SECONDS"`
}

// Files selects the attachment blob backend.
type Files struct {
	Backend string `toml:"backend" envconfig:"BACKEND"`
	S3      S3     `toml:"s3" envconfig:"S3"`
}

// Config represents the global ~/.wchat/config.toml.
type Config struct {
	DefaultProfile     string `toml:"default_profile" envconfig:"DEFAULT_PROFILE"`
	FeedLimit          int    `toml:"feed_limit" envconfig:"FEED_LIMIT"`
	ThreadWindow       int    `toml:"thread_window" envconfig:"THREAD_WINDOW"`
	MaxAttachmentBytes int64  `toml:"max_attachment_bytes" envconfig:"MAX_ATTACHMENT_BYTES"`
	Files              Files  `toml:"files" envconfig:"FILES"`
	LogLevel           string `toml:"log_level" envconfig:"LOG_LEVEL"`
}

// PresignTTL returns the S3 presigned URL lifetime.
func (c *Config) PresignTTL() time.Duration {
	if c.Files.S3.PresignTTLSeconds <= 0 {
		return DefaultPresignTTL
	}
	return time.Duration(c.Files.S3.PresignTTLSeconds) * time.Second
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.FeedLimit <= 0 {
		c.FeedLimit = DefaultFeedLimit
	}
	if c.ThreadWindow <= 0 {
		c.ThreadWindow = DefaultThreadWindow
	}
	if c.MaxAttachmentBytes <= 0 {
		c.MaxAttachmentBytes = DefaultMaxAttachmentBytes
	}
	if c.Files.Backend == "" {
		c.Files.Backend = DefaultFilesBackend
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve layers WCHAT_* environment variables over the file at path (a
// missing file is not an error) and fills defaults.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := envconfig.Process("wchat", cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
