// Package simulate runs delayed stand-ins for network calls (payments, uploads,
// push notifications) with an explicit overlap policy.
package simulate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Policy decides what happens when a task is started while one with the same key is pending.
type Policy string

const (
	// PolicyReplace cancels the pending task and schedules the new one.
	PolicyReplace Policy = "replace"
	// PolicyReject refuses the new task until the pending one resolves.
	PolicyReject Policy = "reject"
)

// ParsePolicy maps a config value to a Policy, defaulting to PolicyReplace.
func ParsePolicy(v string) Policy {
	if Policy(v) == PolicyReject {
		return PolicyReject
	}
	return PolicyReplace
}

// ErrPending is returned under PolicyReject while a task with the same key is in flight.
var ErrPending = errors.New("simulated action already pending")

// Clock is the timer primitive tasks wait on.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Task is the handle of a scheduled action.
type Task struct {
	Key    string
	ID     uint64
	cancel context.CancelFunc
	done   chan struct{}
}

// Done is closed once the task has completed or been cancelled.
func (t *Task) Done() <-chan struct{} { return t.done }

// Runner schedules at most one pending task per key.
type Runner struct {
	mu      sync.Mutex
	clock   Clock
	policy  Policy
	logger  *zap.Logger
	pending map[string]*Task
	nextID  uint64
}

// NewRunner creates a runner.
func NewRunner(clock Clock, policy Policy, logger *zap.Logger) *Runner {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		clock:   clock,
		policy:  policy,
		logger:  logger,
		pending: make(map[string]*Task),
	}
}

// Clock exposes the runner's time source.
func (r *Runner) Clock() Clock { return r.clock }

// Start schedules fn to run after delay. fn is skipped if the task is cancelled first
// and should check ctx once it holds whatever lock guards its effects.
func (r *Runner) Start(ctx context.Context, key string, delay time.Duration, fn func(context.Context)) (*Task, error) {
	r.mu.Lock()
	if prev, ok := r.pending[key]; ok {
		if r.policy == PolicyReject {
			r.mu.Unlock()
			return nil, ErrPending
		}
		prev.cancel()
		delete(r.pending, key)
		r.logger.Debug("simulated action replaced", zap.String("key", key), zap.Uint64("task_id", prev.ID))
	}
	r.nextID++
	taskCtx, cancel := context.WithCancel(ctx)
	task := &Task{Key: key, ID: r.nextID, cancel: cancel, done: make(chan struct{})}
	r.pending[key] = task
	timer := r.clock.After(delay)
	r.mu.Unlock()

	go r.run(taskCtx, task, timer, fn)
	return task, nil
}

func (r *Runner) run(ctx context.Context, task *Task, timer <-chan time.Time, fn func(context.Context)) {
	defer close(task.done)
	defer task.cancel()

	select {
	case <-ctx.Done():
		r.release(task)
		return
	case <-timer:
	}

	// The task stays pending while fn runs so a replacement or cancel still
	// reaches ctx if fn is waiting on a lock.
	defer r.release(task)
	if ctx.Err() != nil {
		return
	}
	fn(ctx)
}

// release drops task from the pending set. It reports false if the task was already replaced.
func (r *Runner) release(task *Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.pending[task.Key]; !ok || current != task {
		return false
	}
	delete(r.pending, task.Key)
	return true
}

// Cancel aborts the pending task for key, if any.
func (r *Runner) Cancel(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.pending[key]
	if !ok {
		return false
	}
	task.cancel()
	delete(r.pending, key)
	return true
}

// CancelPrefix aborts every pending task whose key starts with prefix.
func (r *Runner) CancelPrefix(prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for key, task := range r.pending {
		if strings.HasPrefix(key, prefix) {
			task.cancel()
			delete(r.pending, key)
			n++
		}
	}
	return n
}

// Pending reports whether a task for key is in flight.
func (r *Runner) Pending(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[key]
	return ok
}
