package simulate

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/happy-paws/internal/simulate/simtest"
)

func waitDone(t *testing.T, task *Task) {
	t.Helper()
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("task %s did not finish", task.Key)
	}
}

func TestRunner_RunsAfterDelay(t *testing.T) {
	clock := simtest.NewClock()
	r := NewRunner(clock, PolicyReplace, nil)
	var ran atomic.Int32

	task, err := r.Start(context.Background(), "s1:login", time.Second, func(context.Context) { ran.Add(1) })
	require.NoError(t, err)
	assert.True(t, r.Pending("s1:login"))

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())

	clock.Advance(500 * time.Millisecond)
	waitDone(t, task)
	assert.Equal(t, int32(1), ran.Load())
	assert.False(t, r.Pending("s1:login"))
}

func TestRunner_ReplaceCancelsPrevious(t *testing.T) {
	clock := simtest.NewClock()
	r := NewRunner(clock, PolicyReplace, nil)
	var first, second atomic.Int32

	t1, err := r.Start(context.Background(), "s1:payment", time.Second, func(context.Context) { first.Add(1) })
	require.NoError(t, err)
	t2, err := r.Start(context.Background(), "s1:payment", time.Second, func(context.Context) { second.Add(1) })
	require.NoError(t, err)

	waitDone(t, t1)
	clock.Advance(time.Second)
	waitDone(t, t2)

	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestRunner_RejectWhilePending(t *testing.T) {
	clock := simtest.NewClock()
	r := NewRunner(clock, PolicyReject, nil)
	var ran atomic.Int32

	task, err := r.Start(context.Background(), "s1:payment", time.Second, func(context.Context) { ran.Add(1) })
	require.NoError(t, err)

	_, err = r.Start(context.Background(), "s1:payment", time.Second, func(context.Context) { ran.Add(10) })
	assert.ErrorIs(t, err, ErrPending)

	_, err = r.Start(context.Background(), "s2:payment", time.Second, func(context.Context) {})
	assert.NoError(t, err)

	clock.Advance(time.Second)
	waitDone(t, task)
	assert.Equal(t, int32(1), ran.Load())

	_, err = r.Start(context.Background(), "s1:payment", time.Second, func(context.Context) {})
	assert.NoError(t, err)
}

func TestRunner_CancelReachesRunningTask(t *testing.T) {
	clock := simtest.NewClock()
	r := NewRunner(clock, PolicyReplace, nil)
	var mu sync.Mutex
	entered := make(chan struct{})
	var cancelled atomic.Bool

	mu.Lock()
	task, err := r.Start(context.Background(), "s1:login", time.Second, func(ctx context.Context) {
		close(entered)
		mu.Lock()
		defer mu.Unlock()
		cancelled.Store(ctx.Err() != nil)
	})
	require.NoError(t, err)

	clock.Advance(time.Second)
	<-entered
	assert.True(t, r.Pending("s1:login"))
	assert.True(t, r.Cancel("s1:login"))
	mu.Unlock()

	waitDone(t, task)
	assert.True(t, cancelled.Load())
	assert.False(t, r.Pending("s1:login"))
}

func TestRunner_CancelPrefix(t *testing.T) {
	clock := simtest.NewClock()
	r := NewRunner(clock, PolicyReplace, nil)
	var ran atomic.Int32

	a, _ := r.Start(context.Background(), "s1:login", time.Second, func(context.Context) { ran.Add(1) })
	b, _ := r.Start(context.Background(), "s1:photo", time.Second, func(context.Context) { ran.Add(1) })
	c, _ := r.Start(context.Background(), "s2:photo", time.Second, func(context.Context) { ran.Add(100) })

	assert.Equal(t, 2, r.CancelPrefix("s1:"))
	waitDone(t, a)
	waitDone(t, b)

	clock.Advance(time.Second)
	waitDone(t, c)
	assert.Equal(t, int32(100), ran.Load())
	assert.False(t, r.Cancel("s2:photo"))
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, PolicyReject, ParsePolicy("reject"))
	assert.Equal(t, PolicyReplace, ParsePolicy("replace"))
	assert.Equal(t, PolicyReplace, ParsePolicy(""))
}
