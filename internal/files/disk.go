package files

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Disk stores blobs under a local directory and hands out file:// URLs.
type Disk struct {
	root string
}

// NewDisk creates the root directory (0700) if needed.
func NewDisk(root string) (*Disk, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0700); err != nil {
		return nil, fmt.Errorf("create files dir: %w", err)
	}
	return &Disk{root: abs}, nil
}

func (d *Disk) Name() string { return "disk" }

func (d *Disk) path(key string) string {
	return filepath.Join(d.root, filepath.FromSlash(key))
}

// Put writes the blob atomically.
func (d *Disk) Put(_ context.Context, key string, data []byte, _ string) error {
	p := d.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// URL returns a file:// URL for an existing blob.
func (d *Disk) URL(_ context.Context, key string) (string, error) {
	p := d.path(key)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(p)}).String(), nil
}
