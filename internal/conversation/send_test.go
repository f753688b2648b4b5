package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

var (
	alice = model.Identity{UID: "A", DisplayName: "Alice"}
	bob   = model.User{UID: "B", Name: "Bob"}
)

func newTestSender(t *testing.T, msgs *fakeMessages, files *fakeFiles, opts ...SenderOption) *Sender {
	opts = append([]SenderOption{WithClock(func() time.Time { return t0 })}, opts...)
	return NewSender(msgs, files, zaptest.NewLogger(t), opts...)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"report.pdf", "report.pdf"},
		{"my file (1).png", "my_file__1_.png"},
		{"naïve résumé.txt", "na_ve_r_sum_.txt"},
		{"a-b_c.d", "a-b_c.d"},
		{"../../etc/passwd", ".._.._etc_passwd"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in), tt.in)
	}
	assert.Equal(t, "A/1714564800000_my_file.png", AttachmentKey("A", t0, "my file.png"))
}

func TestSendEmptyDraftIsNoop(t *testing.T) {
	msgs := &fakeMessages{}
	s := newTestSender(t, msgs, newFakeFiles())

	for _, d := range []Draft{{}, {Text: "   \n"}} {
		_, err := s.Send(context.Background(), alice, bob, d)
		require.ErrorIs(t, err, errs.ErrEmptyDraft)
	}
	assert.Empty(t, msgs.Created())
}

func TestSendRequiresPeer(t *testing.T) {
	msgs := &fakeMessages{}
	s := newTestSender(t, msgs, newFakeFiles())
	_, err := s.Send(context.Background(), alice, model.User{}, Draft{Text: "hi"})
	require.ErrorIs(t, err, errs.ErrNoPeer)
	assert.Empty(t, msgs.Created())
}

func TestSendTextAndAttachment(t *testing.T) {
	msgs := &fakeMessages{}
	files := newFakeFiles()
	s := newTestSender(t, msgs, files)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	res, err := s.Send(context.Background(), alice, bob, Draft{
		Text:       " hello ",
		Attachment: &Attachment{Name: "cat pic.png", Data: png},
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", res.TextID)
	assert.Equal(t, "m2", res.AttachmentID)

	created := msgs.Created()
	require.Len(t, created, 2)

	text := created[0]
	assert.Equal(t, " hello ", text.Text)
	assert.Equal(t, "A", text.UID)
	assert.Equal(t, "Alice", text.DisplayName)
	assert.Equal(t, "B", text.RecipientID)
	assert.Equal(t, "Bob", text.RecipientName)
	assert.False(t, text.IsAttachment)
	assert.Equal(t, t0, text.CreatedAt)

	att := created[1]
	assert.True(t, att.IsAttachment)
	assert.Equal(t, "cat pic.png", att.Text)
	assert.Equal(t, "image/png", att.FileType)
	assert.Equal(t, int64(len(png)), att.FileSize)
	assert.Equal(t, "https://files.test/A/1714564800000_cat_pic.png", att.FileURL)
	assert.Equal(t, "image/png", files.types["A/1714564800000_cat_pic.png"])
	assert.Equal(t, t0.Add(time.Millisecond), att.CreatedAt, "attachment sorts after its caption")

	assert.Equal(t, Draft{}, res.Remaining(Draft{Text: " hello ", Attachment: &Attachment{}}))
}

func TestSendAttachmentOnlyKeepsClock(t *testing.T) {
	msgs := &fakeMessages{}
	s := newTestSender(t, msgs, newFakeFiles())
	_, err := s.Send(context.Background(), alice, bob, Draft{Attachment: &Attachment{Name: "a.txt", Data: []byte("hi")}})
	require.NoError(t, err)
	created := msgs.Created()
	require.Len(t, created, 1)
	assert.Equal(t, t0, created[0].CreatedAt)
}

func TestSendAnonymousFallback(t *testing.T) {
	msgs := &fakeMessages{}
	s := newTestSender(t, msgs, newFakeFiles())
	_, err := s.Send(context.Background(), model.Identity{UID: "A"}, bob, Draft{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, model.AnonymousName, msgs.Created()[0].DisplayName)
}

func TestSendUploadFailureCreatesNothing(t *testing.T) {
	msgs := &fakeMessages{}
	files := newFakeFiles()
	files.uploadErr = &errs.UploadError{Code: "unavailable", Err: errors.New("disk full")}
	s := newTestSender(t, msgs, files)

	draft := Draft{Text: "see attached", Attachment: &Attachment{Name: "a.txt", ContentType: "text/plain", Data: []byte("x")}}
	res, err := s.Send(context.Background(), alice, bob, draft)

	var ue *errs.UploadError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "failed to upload file (unavailable): disk full", err.Error())

	// Text went out; the attachment stays in the draft.
	require.Len(t, msgs.Created(), 1)
	assert.False(t, msgs.Created()[0].IsAttachment)
	rest := res.Remaining(draft)
	assert.Empty(t, rest.Text)
	assert.Equal(t, draft.Attachment, rest.Attachment)
}

func TestSendPlainUploadErrorIsWrapped(t *testing.T) {
	files := newFakeFiles()
	files.uploadErr = errors.New("boom")
	s := newTestSender(t, &fakeMessages{}, files)
	_, err := s.Send(context.Background(), alice, bob, Draft{Attachment: &Attachment{Name: "a", Data: []byte("x")}})
	var ue *errs.UploadError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "failed to upload file: boom", err.Error())
}

func TestSendCreateFailureKeepsDraft(t *testing.T) {
	msgs := &fakeMessages{createErr: errors.New("unavailable")}
	s := newTestSender(t, msgs, newFakeFiles())
	draft := Draft{Text: "hello"}
	res, err := s.Send(context.Background(), alice, bob, draft)
	require.Error(t, err)
	assert.Equal(t, draft, res.Remaining(draft))
}

func TestSendAttachmentTooLarge(t *testing.T) {
	msgs := &fakeMessages{}
	files := newFakeFiles()
	s := newTestSender(t, msgs, files, WithMaxAttachment(4))
	_, err := s.Send(context.Background(), alice, bob, Draft{Text: "hi", Attachment: &Attachment{Name: "big", Data: []byte("12345")}})
	require.ErrorIs(t, err, errs.ErrAttachmentTooLarge)
	assert.Empty(t, msgs.Created())
	assert.Empty(t, files.blobs)
}
