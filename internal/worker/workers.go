package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/service"
)

// SessionSweeper ends sessions older than a cutoff.
type SessionSweeper interface {
	Now() time.Time
	EndCreatedBefore(cutoff time.Time) int
}

// Workers runs background jobs next to the request path.
type Workers struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New builds an idle set of workers.
func New(logger *zap.Logger) *Workers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workers{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		logger: logger,
	}
}

// RegisterNotifications subscribes the notification service to domain events.
func (w *Workers) RegisterNotifications(n *service.NotificationService) {
	if n == nil {
		return
	}
	n.RegisterHandlers()
}

// ScheduleSessionSweep ends sessions older than ttl on every tick of the cron
// expression. An empty expression or a non-positive ttl disables the job.
func (w *Workers) ScheduleSessionSweep(expr string, sessions SessionSweeper, ttl time.Duration) error {
	if expr == "" || ttl <= 0 || sessions == nil {
		w.logger.Info("session sweep disabled")
		return nil
	}
	_, err := w.cron.AddFunc(expr, func() { w.sweep(sessions, ttl) })
	if err != nil {
		return fmt.Errorf("schedule session sweep %q: %w", expr, err)
	}
	w.logger.Info("session sweep scheduled", zap.String("schedule", expr), zap.Duration("ttl", ttl))
	return nil
}

func (w *Workers) sweep(sessions SessionSweeper, ttl time.Duration) int {
	ended := sessions.EndCreatedBefore(sessions.Now().Add(-ttl))
	if ended > 0 {
		w.logger.Info("expired sessions ended", zap.Int("count", ended))
	}
	return ended
}

// Start launches the scheduler in its own goroutine.
func (w *Workers) Start() {
	w.cron.Start()
}

// Stop halts the scheduler and waits for running jobs or ctx.
func (w *Workers) Stop(ctx context.Context) {
	done := w.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		w.logger.Warn("workers stop timed out")
	}
}
