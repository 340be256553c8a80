package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/config"
	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/notify"
	"github.com/spec-kit/happy-paws/internal/observability"
	"github.com/spec-kit/happy-paws/internal/simulate"
	"github.com/spec-kit/happy-paws/internal/simulate/simtest"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

var testDelays = Delays{
	Login:     time.Second,
	Payment:   1500 * time.Millisecond,
	WalkStart: 1500 * time.Millisecond,
	Photo:     1500 * time.Millisecond,
	WalkEnd:   3 * time.Second,
}

type harness struct {
	clock    *simtest.Clock
	inbox    *notify.Inbox
	metrics  *observability.Metrics
	sessions *SessionService
	auth     *AuthService
	walks    *WalkService
	tickets  *TicketService
	support  *SupportService
	catalog  *CatalogService

	mu        sync.Mutex
	published []events.Event
}

type harnessOption func(*SessionDependencies)

func withPolicy(p simulate.Policy) harnessOption {
	return func(d *SessionDependencies) {
		d.Runner = simulate.NewRunner(d.Runner.Clock(), p, nil)
	}
}

func withStore(store TicketStore) harnessOption {
	return func(d *SessionDependencies) { d.Store = store }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	h := &harness{
		clock:   simtest.NewClock(),
		inbox:   notify.NewInbox(10),
		metrics: observability.NewMetrics(),
	}
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	dispatcher.SubscribeAll(func(_ context.Context, e events.Event) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.published = append(h.published, e)
		return nil
	})

	deps := SessionDependencies{
		Runner:     simulate.NewRunner(h.clock, simulate.PolicyReplace, nil),
		Sink:       h.inbox,
		Dispatcher: dispatcher,
		Metrics:    h.metrics,
		Logger:     zap.NewNop(),
		Delays:     testDelays,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	h.sessions = NewSessionService(deps)
	h.auth = NewAuthService(config.AuthConfig{JWTSecret: "test", SessionTTLMinutes: 5, BcryptCost: 4}, h.sessions)
	h.walks = NewWalkService(h.sessions)
	h.tickets = NewTicketService(h.sessions)
	h.support = NewSupportService(h.sessions)
	h.catalog = NewCatalogService(h.sessions)
	return h
}

func (h *harness) newSession(t *testing.T) string {
	t.Helper()
	snap, err := h.sessions.Create(context.Background())
	require.NoError(t, err)
	return snap.SessionID
}

// loggedIn creates a session and completes the simulated login for flow.
func (h *harness) loggedIn(t *testing.T, flow domain.Flow) string {
	t.Helper()
	id := h.newSession(t)
	_, task, err := h.auth.Login(context.Background(), id, LoginInput{Email: "a@b.com", Password: "x", Flow: flow})
	require.NoError(t, err)
	h.clock.Advance(testDelays.Login)
	waitTask(t, task)
	return id
}

func (h *harness) dispatch(t *testing.T, id string, evs ...navigation.Event) Snapshot {
	t.Helper()
	var res Result
	for _, ev := range evs {
		var err error
		res, err = h.sessions.Dispatch(context.Background(), id, ev)
		require.NoError(t, err)
		require.True(t, res.Handled, "event %s on %s", ev.Name, res.State.CurrentScreen)
	}
	return res.Snapshot
}

func (h *harness) screen(t *testing.T, id string) domain.Screen {
	t.Helper()
	snap, err := h.sessions.Snapshot(id)
	require.NoError(t, err)
	return snap.State.CurrentScreen
}

func (h *harness) eventTypes() []events.EventType {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]events.EventType, 0, len(h.published))
	for _, e := range h.published {
		out = append(out, e.Type)
	}
	return out
}

func (h *harness) noticeTitles(id string) []string {
	var titles []string
	for _, n := range h.inbox.Drain(id) {
		titles = append(titles, n.Title)
	}
	return titles
}

func waitTask(t *testing.T, task *simulate.Task) {
	t.Helper()
	require.NotNil(t, task)
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("task %s did not finish", task.Key)
	}
}

func errCode(err error) string {
	if de := apperrors.ToDomainError(err); de != nil {
		return de.Code
	}
	return ""
}
