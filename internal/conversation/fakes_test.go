package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/model"
)

type fakeMessages struct {
	mu        sync.Mutex
	created   []model.NewMessage
	updates   []string
	createErr error
	failIDs   map[string]bool
	release   chan struct{} // when set, Create blocks until closed
}

var _ backend.MessageStore = (*fakeMessages)(nil)

func (f *fakeMessages) Create(_ context.Context, msg model.NewMessage) (string, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, msg)
	return fmt.Sprintf("m%d", len(f.created)), nil
}

func (f *fakeMessages) Update(_ context.Context, id string, mark model.ReadMark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id)
	if f.failIDs[id] {
		return errors.New("permission denied")
	}
	if !mark.Read || mark.Status != model.StatusRead || mark.ReadAt.IsZero() {
		return errors.New("bad read mark")
	}
	return nil
}

func (f *fakeMessages) Created() []model.NewMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.NewMessage(nil), f.created...)
}

func (f *fakeMessages) Updates() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.updates...)
}

type fakeFiles struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	types     map[string]string
	uploadErr error
}

var _ backend.FileStore = (*fakeFiles)(nil)

func newFakeFiles() *fakeFiles {
	return &fakeFiles{blobs: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeFiles) Upload(_ context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.blobs[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeFiles) URL(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blobs[key]; !ok {
		return "", errors.New("object not found")
	}
	return "https://files.test/" + key, nil
}
