package conversation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/backend"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

// DefaultMaxAttachment is the attachment size limit (5 MiB).
const DefaultMaxAttachment int64 = 5 << 20

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFileName replaces every character outside [A-Za-z0-9._-] with '_'.
func SanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_")
}

// AttachmentKey returns the storage key for an attachment uploaded by uid.
func AttachmentKey(uid string, at time.Time, name string) string {
	return fmt.Sprintf("%s/%d_%s", uid, at.UnixMilli(), SanitizeFileName(name))
}

// Attachment is a file picked for sending.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Draft is the composer content.
type Draft struct {
	Text       string
	Attachment *Attachment
}

// Empty reports whether there is nothing to send.
func (d Draft) Empty() bool {
	return strings.TrimSpace(d.Text) == "" && d.Attachment == nil
}

// SendResult tells which parts of a draft were created.
type SendResult struct {
	TextID       string
	AttachmentID string
}

// Remaining returns what is left of d after the parts in r were sent.
func (r SendResult) Remaining(d Draft) Draft {
	out := d
	if r.TextID != "" || strings.TrimSpace(d.Text) == "" {
		out.Text = ""
	}
	if r.AttachmentID != "" {
		out.Attachment = nil
	}
	return out
}

// Sender turns drafts into message records.
type Sender struct {
	messages      backend.MessageStore
	files         backend.FileStore
	logger        *zap.Logger
	maxAttachment int64
	now           func() time.Time
}

// SenderOption configures a Sender.
type SenderOption func(*Sender)

// WithMaxAttachment overrides DefaultMaxAttachment.
func WithMaxAttachment(n int64) SenderOption {
	return func(s *Sender) {
		if n > 0 {
			s.maxAttachment = n
		}
	}
}

// WithClock overrides time.Now for creation timestamps and storage keys.
func WithClock(now func() time.Time) SenderOption {
	return func(s *Sender) { s.now = now }
}

// NewSender creates a Sender.
func NewSender(messages backend.MessageStore, files backend.FileStore, logger *zap.Logger, opts ...SenderOption) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sender{
		messages:      messages,
		files:         files,
		logger:        logger,
		maxAttachment: DefaultMaxAttachment,
		now:           time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Send creates the text message (if any) and then the attachment message
// (if any) from self to peer. The peer is fixed by the caller at the moment
// of sending. An upload failure returns an *errs.UploadError and creates no
// attachment record. The result reports the parts that were created even
// when an error is returned.
func (s *Sender) Send(ctx context.Context, self model.Identity, peer model.User, d Draft) (SendResult, error) {
	var res SendResult
	if d.Empty() {
		return res, errs.ErrEmptyDraft
	}
	if peer.UID == "" {
		return res, errs.ErrNoPeer
	}
	if d.Attachment != nil && int64(len(d.Attachment.Data)) > s.maxAttachment {
		return res, fmt.Errorf("%w: %d bytes exceeds %d", errs.ErrAttachmentTooLarge, len(d.Attachment.Data), s.maxAttachment)
	}

	base := model.NewMessage{
		UID:           self.UID,
		DisplayName:   self.Name(),
		RecipientID:   peer.UID,
		RecipientName: peer.Name,
	}

	var textAt time.Time
	if strings.TrimSpace(d.Text) != "" {
		textAt = s.now()
		msg := base
		msg.Text = d.Text
		msg.CreatedAt = textAt
		id, err := s.messages.Create(ctx, msg)
		if err != nil {
			return res, fmt.Errorf("send text: %w", err)
		}
		res.TextID = id
	}

	if d.Attachment != nil {
		id, err := s.sendAttachment(ctx, base, d.Attachment, textAt)
		if err != nil {
			return res, err
		}
		res.AttachmentID = id
	}
	return res, nil
}

// sendAttachment uploads a and creates its record. When a caption was sent
// first at textAt, the record is stamped at least one millisecond later so
// the caption sorts above it at the store's millisecond precision.
func (s *Sender) sendAttachment(ctx context.Context, base model.NewMessage, a *Attachment, textAt time.Time) (string, error) {
	contentType := a.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(a.Data).String()
	}

	key := AttachmentKey(base.UID, s.now(), a.Name)
	if err := s.files.Upload(ctx, key, a.Data, contentType); err != nil {
		return "", asUploadError(err)
	}
	url, err := s.files.URL(ctx, key)
	if err != nil {
		return "", asUploadError(err)
	}
	s.logger.Debug("attachment uploaded", zap.String("key", key), zap.Int("size", len(a.Data)))

	msg := base
	msg.Text = a.Name
	msg.CreatedAt = s.now()
	if !textAt.IsZero() && msg.CreatedAt.Before(textAt.Add(time.Millisecond)) {
		msg.CreatedAt = textAt.Add(time.Millisecond)
	}
	msg.IsAttachment = true
	msg.FileURL = url
	msg.FileType = contentType
	msg.FileSize = int64(len(a.Data))
	id, err := s.messages.Create(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("send attachment: %w", err)
	}
	return id, nil
}

func asUploadError(err error) error {
	var ue *errs.UploadError
	if errors.As(err, &ue) {
		return ue
	}
	return &errs.UploadError{Err: err}
}
