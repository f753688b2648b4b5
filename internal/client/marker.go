package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/matheus3301/wchat/internal/model"
)

// Marker is the persisted record of a signed-in session.
type Marker struct {
	UID        string    `json:"uid"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Token      string    `json:"token"`
	SignedInAt time.Time `json:"signedInAt"`
}

// Identity returns the marker's identity.
func (m Marker) Identity() model.Identity {
	return model.Identity{UID: m.UID, DisplayName: m.Name, Email: m.Email}
}

// MarkerFile stores a Marker at a fixed path with 0600 permissions.
type MarkerFile struct {
	path string
}

// NewMarkerFile returns the marker stored at path.
func NewMarkerFile(path string) *MarkerFile {
	return &MarkerFile{path: path}
}

// Path returns the marker location.
func (f *MarkerFile) Path() string { return f.path }

// Load returns nil, nil when no marker exists.
func (f *MarkerFile) Load() (*Marker, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session marker: %w", err)
	}
	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode session marker %s: %w", f.path, err)
	}
	if m.UID == "" || m.Token == "" {
		return nil, nil
	}
	return &m, nil
}

// Save writes m atomically.
func (f *MarkerFile) Save(m Marker) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Remove deletes the marker. A missing marker is not an error.
func (f *MarkerFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
