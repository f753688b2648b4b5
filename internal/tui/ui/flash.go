package ui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rivo/tview"

	"github.com/matheus3301/wchat/internal/errs"
)

// FlashLevel represents the severity of a flash message.
type FlashLevel int

const (
	FlashInfo FlashLevel = iota
	FlashWarn
	FlashErr
)

// FlashMessage is a flash notification with a level and expiry.
type FlashMessage struct {
	Text    string
	Level   FlashLevel
	Expires time.Time
}

// FlashModel holds the current transient notification.
type FlashModel struct {
	mu      sync.RWMutex
	current FlashMessage
	now     func() time.Time
}

// NewFlashModel creates a new flash model.
func NewFlashModel() *FlashModel {
	return &FlashModel{now: time.Now}
}

// Info sets an info-level flash message.
func (f *FlashModel) Info(msg string) {
	f.set(msg, FlashInfo, 5*time.Second)
}

// Warn sets a warn-level flash message.
func (f *FlashModel) Warn(msg string) {
	f.set(msg, FlashWarn, 8*time.Second)
}

// Err sets a flash for err. Draft problems the user can fix are warnings.
func (f *FlashModel) Err(err error) {
	switch {
	case errors.Is(err, errs.ErrEmptyDraft), errors.Is(err, errs.ErrNoPeer):
		f.Warn(err.Error())
	default:
		f.set(err.Error(), FlashErr, 10*time.Second)
	}
}

func (f *FlashModel) set(msg string, level FlashLevel, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = FlashMessage{Text: msg, Level: level, Expires: f.now().Add(d)}
}

// Current returns the current flash message, or nil if expired.
func (f *FlashModel) Current() *FlashMessage {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current.Text == "" || f.now().After(f.current.Expires) {
		return nil
	}
	m := f.current
	return &m
}

// FormatFlash renders msg with its level color.
func FormatFlash(theme *Theme, msg *FlashMessage) string {
	if msg == nil {
		return ""
	}
	var c = theme.FlashInfoColor
	switch msg.Level {
	case FlashWarn:
		c = theme.FlashWarnColor
	case FlashErr:
		c = theme.FlashErrColor
	}
	return fmt.Sprintf("%s%s[-]", Tag(c), tview.Escape(msg.Text))
}
