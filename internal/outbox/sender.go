// Package outbox sends composer drafts in the background so the TUI never
// blocks on uploads or message creation.
package outbox

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

// DefaultQueueSize bounds the number of drafts waiting to be sent.
const DefaultQueueSize = 32

// ErrQueueFull is returned by Enqueue when the queue has no room.
var ErrQueueFull = errors.New("outbox full")

// DraftSender sends a draft to an explicit peer. *conversation.ViewModel
// satisfies it.
type DraftSender interface {
	SendTo(ctx context.Context, peer model.User, d conversation.Draft) (conversation.SendResult, error)
}

// Job is a queued draft. The peer is the one selected at enqueue time.
type Job struct {
	ID       string
	Peer     model.User
	Draft    conversation.Draft
	QueuedAt time.Time
}

// Result is the payload of send_ack and send_failed events.
type Result struct {
	JobID string
	Peer  model.User
	Sent  conversation.SendResult
	// Remaining is what the composer should keep: the parts not sent.
	Remaining conversation.Draft
	Err       error
}

// Sender drains the outbox on a single worker goroutine, so drafts reach
// the backend in the order they were queued.
type Sender struct {
	send   DraftSender
	bus    *bus.Bus
	logger *zap.Logger

	queue  chan Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSender creates a new outbox sender.
func NewSender(send DraftSender, b *bus.Bus, logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{
		send:   send,
		bus:    b,
		logger: logger,
		queue:  make(chan Job, DefaultQueueSize),
	}
}

// Enqueue queues d for peer and returns the job ID. Drafts that could never
// be sent are rejected immediately.
func (s *Sender) Enqueue(peer model.User, d conversation.Draft) (string, error) {
	if d.Empty() {
		return "", errs.ErrEmptyDraft
	}
	if peer.UID == "" {
		return "", errs.ErrNoPeer
	}
	job := Job{ID: uuid.NewString(), Peer: peer, Draft: d, QueuedAt: time.Now()}
	select {
	case s.queue <- job:
		s.logger.Debug("draft queued", zap.String("job_id", job.ID), zap.String("peer", peer.UID))
		return job.ID, nil
	default:
		return "", ErrQueueFull
	}
}

// Start begins processing queued drafts.
func (s *Sender) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop(ctx)
	}()
}

// Stop stops the worker and waits for the job in progress.
func (s *Sender) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Sender) loop(ctx context.Context) {
	for {
		select {
		case job := <-s.queue:
			s.process(ctx, job)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Sender) process(ctx context.Context, job Job) {
	sent, err := s.send.SendTo(ctx, job.Peer, job.Draft)
	res := Result{
		JobID:     job.ID,
		Peer:      job.Peer,
		Sent:      sent,
		Remaining: sent.Remaining(job.Draft),
		Err:       err,
	}
	if err != nil {
		s.logger.Error("failed to send draft",
			zap.Error(err),
			zap.String("job_id", job.ID),
			zap.String("peer", job.Peer.UID))
		s.bus.Emit(bus.KindSendFailed, res)
		return
	}
	s.logger.Info("draft sent",
		zap.String("job_id", job.ID),
		zap.String("text_id", sent.TextID),
		zap.String("attachment_id", sent.AttachmentID))
	s.bus.Emit(bus.KindSendAck, res)
}
