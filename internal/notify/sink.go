// Package notify delivers user-visible notices (toasts) to pluggable sinks.
package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// Sink receives notices. Delivery is fire-and-forget; sinks must not block callers for long.
type Sink interface {
	Notify(ctx context.Context, notice domain.Notice)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, notice domain.Notice)

// Notify calls f.
func (f SinkFunc) Notify(ctx context.Context, notice domain.Notice) { f(ctx, notice) }

// Fanout delivers every notice to each sink in order.
type Fanout []Sink

// Notify implements Sink.
func (f Fanout) Notify(ctx context.Context, notice domain.Notice) {
	for _, s := range f {
		if s != nil {
			s.Notify(ctx, notice)
		}
	}
}

// Forget passes session cleanup to every sink that buffers notices.
func (f Fanout) Forget(sessionID string) {
	for _, s := range f {
		if b, ok := s.(interface{ Forget(string) }); ok {
			b.Forget(sessionID)
		}
	}
}

// LogSink writes notices to the structured log.
type LogSink struct {
	Logger *zap.Logger
}

// Notify implements Sink.
func (l LogSink) Notify(_ context.Context, notice domain.Notice) {
	if l.Logger == nil {
		return
	}
	l.Logger.Info("notice",
		zap.String("session_id", notice.SessionID),
		zap.String("title", notice.Title),
		zap.String("variant", string(notice.Variant)))
}

// Inbox buffers notices per session until they are drained.
type Inbox struct {
	mu    sync.Mutex
	limit int
	boxes map[string][]domain.Notice
}

// NewInbox keeps at most limit notices per session; older ones are dropped first.
func NewInbox(limit int) *Inbox {
	if limit <= 0 {
		limit = 50
	}
	return &Inbox{limit: limit, boxes: make(map[string][]domain.Notice)}
}

// Notify implements Sink.
func (i *Inbox) Notify(_ context.Context, notice domain.Notice) {
	i.mu.Lock()
	defer i.mu.Unlock()
	box := append(i.boxes[notice.SessionID], notice)
	if len(box) > i.limit {
		box = box[len(box)-i.limit:]
	}
	i.boxes[notice.SessionID] = box
}

// Drain returns and clears the notices of a session.
func (i *Inbox) Drain(sessionID string) []domain.Notice {
	i.mu.Lock()
	defer i.mu.Unlock()
	box := i.boxes[sessionID]
	delete(i.boxes, sessionID)
	if box == nil {
		return []domain.Notice{}
	}
	return box
}

// Forget drops anything buffered for a session.
func (i *Inbox) Forget(sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.boxes, sessionID)
}
