package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/observability"
	"github.com/spec-kit/happy-paws/internal/service"
	"github.com/spec-kit/happy-paws/internal/simulate"
	"github.com/spec-kit/happy-paws/internal/simulate/simtest"
)

type fakeSweeper struct {
	now     time.Time
	cutoffs []time.Time
	ended   int
}

func (f *fakeSweeper) Now() time.Time { return f.now }

func (f *fakeSweeper) EndCreatedBefore(cutoff time.Time) int {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.ended
}

func TestScheduleSessionSweep_RejectsBadSpec(t *testing.T) {
	w := New(zap.NewNop())
	err := w.ScheduleSessionSweep("every now and then", &fakeSweeper{}, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every now and then")
}

func TestScheduleSessionSweep_DisabledIsNoOp(t *testing.T) {
	w := New(nil)
	require.NoError(t, w.ScheduleSessionSweep("", &fakeSweeper{}, time.Minute))
	require.NoError(t, w.ScheduleSessionSweep("@every 1m", &fakeSweeper{}, 0))
	assert.Empty(t, w.cron.Entries())

	require.NoError(t, w.ScheduleSessionSweep("@every 1m", &fakeSweeper{}, time.Minute))
	assert.Len(t, w.cron.Entries(), 1)
}

func TestSweep_UsesTTLCutoff(t *testing.T) {
	now := time.Date(2024, 12, 10, 14, 0, 0, 0, time.UTC)
	f := &fakeSweeper{now: now, ended: 2}
	w := New(nil)

	assert.Equal(t, 2, w.sweep(f, 30*time.Minute))
	require.Len(t, f.cutoffs, 1)
	assert.Equal(t, now.Add(-30*time.Minute), f.cutoffs[0])
}

func TestSweep_EndsExpiredSessions(t *testing.T) {
	clock := simtest.NewClock()
	sessions := service.NewSessionService(service.SessionDependencies{
		Runner: simulate.NewRunner(clock, simulate.PolicyReplace, nil),
	})
	old, err := sessions.Create(context.Background())
	require.NoError(t, err)
	clock.Advance(time.Hour)
	fresh, err := sessions.Create(context.Background())
	require.NoError(t, err)

	w := New(nil)
	assert.Equal(t, 1, w.sweep(sessions, 30*time.Minute))

	_, ok := sessions.SessionFlow(old.SessionID)
	assert.False(t, ok)
	_, ok = sessions.SessionFlow(fresh.SessionID)
	assert.True(t, ok)
}

func TestWorkers_StartStop(t *testing.T) {
	w := New(nil)
	w.RegisterNotifications(nil)
	w.RegisterNotifications(service.NewNotificationService(events.NewInMemoryDispatcher(zap.NewNop()), nil, observability.NewMetrics()))
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	w.Stop(ctx)
	assert.NoError(t, ctx.Err())
}
