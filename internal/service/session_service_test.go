package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/seed"
	"github.com/spec-kit/happy-paws/internal/simulate"
)

func TestSessionService_CreateStartsAtLogin(t *testing.T) {
	h := newHarness(t)

	snap, err := h.sessions.Create(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, domain.InitialScreenState(), snap.State)
	assert.Equal(t, navigation.Describe(domain.ScreenLogin), snap.Screen)

	flow, ok := h.sessions.SessionFlow(snap.SessionID)
	assert.True(t, ok)
	assert.Equal(t, domain.FlowNone, flow)
}

func TestSessionService_UnknownSession(t *testing.T) {
	h := newHarness(t)

	_, err := h.sessions.Snapshot("missing")
	assert.Equal(t, "NOT_FOUND", errCode(err))

	_, ok := h.sessions.SessionFlow("missing")
	assert.False(t, ok)
}

func TestSessionService_UnhandledEventIsNoOp(t *testing.T) {
	h := newHarness(t)
	id := h.newSession(t)

	res, err := h.sessions.Dispatch(context.Background(), id, navigation.Named(navigation.EventGoHome))
	require.NoError(t, err)

	assert.False(t, res.Handled)
	assert.Equal(t, domain.ScreenLogin, res.State.CurrentScreen)
	assert.Empty(t, h.eventTypes())
	require.Len(t, h.metrics.Snapshot().Ignored, 1)
}

func TestSessionService_DispatchRefusesCompletionEvents(t *testing.T) {
	h := newHarness(t)
	id := h.newSession(t)

	res, err := h.sessions.Dispatch(context.Background(), id, navigation.Login(domain.FlowAttendant))
	require.NoError(t, err)
	assert.False(t, res.Handled)
	assert.Equal(t, domain.ScreenLogin, res.State.CurrentScreen)
	assert.Equal(t, domain.FlowNone, res.State.Flow)

	h.dispatch(t, id, navigation.Named(navigation.EventGoRegister))
	res, err = h.sessions.Dispatch(context.Background(), id, navigation.Event{
		Name: navigation.EventRegistrationCompleted, Flow: domain.FlowWalker,
	})
	require.NoError(t, err)
	assert.False(t, res.Handled)
	assert.Equal(t, domain.ScreenRegister, res.State.CurrentScreen)
	assert.Equal(t, []events.EventType{events.EventScreenChanged}, h.eventTypes())
	assert.Len(t, h.metrics.Snapshot().Ignored, 2)
}

func TestSessionService_ScreenChangePublishesAndResetsLocal(t *testing.T) {
	h := newHarness(t)
	id := h.newSession(t)

	snap := h.dispatch(t, id, navigation.Named(navigation.EventGoRegister))
	assert.Equal(t, domain.ScreenRegister, snap.State.CurrentScreen)
	assert.Equal(t, []events.EventType{events.EventScreenChanged}, h.eventTypes())

	snap = h.dispatch(t, id, navigation.Named(navigation.EventGoBack))
	assert.Equal(t, domain.ScreenLogin, snap.State.CurrentScreen)
	assert.Nil(t, snap.Register)
}

func TestSessionService_SnapshotCopiesSelectedTicket(t *testing.T) {
	h := newHarness(t)
	id := h.loggedIn(t, domain.FlowAttendant)

	snap, err := h.tickets.Select(context.Background(), id, "3")
	require.NoError(t, err)
	require.NotNil(t, snap.State.SelectedTicket)

	snap.State.SelectedTicket.Status = domain.TicketStatusResolved
	again, err := h.tickets.Selected(id)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusUnderReview, again.Status)
}

func TestSessionService_EndForgetsSession(t *testing.T) {
	h := newHarness(t)
	id := h.newSession(t)
	_, task, err := h.auth.Login(context.Background(), id, LoginInput{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	h.sessions.End(id)
	waitTask(t, task)

	_, ok := h.sessions.SessionFlow(id)
	assert.False(t, ok)
}

func TestSessionService_EndCreatedBefore(t *testing.T) {
	h := newHarness(t)
	old := h.newSession(t)
	h.clock.Advance(time.Hour)
	fresh := h.newSession(t)

	assert.Equal(t, h.clock.Now(), h.sessions.Now())
	assert.Equal(t, 1, h.sessions.EndCreatedBefore(h.clock.Now().Add(-time.Minute)))

	_, ok := h.sessions.SessionFlow(old)
	assert.False(t, ok)
	_, ok = h.sessions.SessionFlow(fresh)
	assert.True(t, ok)
	assert.Zero(t, h.sessions.EndCreatedBefore(h.clock.Now().Add(-time.Minute)))
}

type fakeStore struct {
	tickets   []*domain.Ticket
	loadErr   error
	recorded  []domain.Interaction
	statuses  []domain.TicketStatus
	recordErr error
}

func (f *fakeStore) Load(context.Context) ([]*domain.Ticket, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]*domain.Ticket, 0, len(f.tickets))
	for _, t := range f.tickets {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (f *fakeStore) RecordResponse(_ context.Context, _ string, in domain.Interaction, status domain.TicketStatus) error {
	f.recorded = append(f.recorded, in)
	f.statuses = append(f.statuses, status)
	return f.recordErr
}

func TestSessionService_LoadsTicketsFromStore(t *testing.T) {
	store := &fakeStore{tickets: seed.Tickets()[:2]}
	h := newHarness(t, withStore(store))
	id := h.loggedIn(t, domain.FlowAttendant)

	list, err := h.tickets.List(id, TicketFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	store.loadErr = errors.New("db down")
	_, err = h.sessions.Create(context.Background())
	assert.Error(t, err)
}

func TestSessionService_LogoutCancelsPendingActions(t *testing.T) {
	h := newHarness(t)
	id := h.loggedIn(t, domain.FlowWalker)
	require.Equal(t, domain.ScreenWalkerBooking, h.screen(t, id))

	_, task, err := h.walks.StartWalk(context.Background(), id)
	require.NoError(t, err)

	_, err = h.auth.Logout(context.Background(), id)
	require.NoError(t, err)
	waitTask(t, task)
	h.clock.Advance(time.Minute)

	assert.Equal(t, domain.ScreenLogin, h.screen(t, id))
}

func TestSessionService_CancelledCompletionWaitingOnLockIsDropped(t *testing.T) {
	h := newHarness(t)
	id := h.newSession(t)

	_, task, err := h.auth.Login(context.Background(), id, LoginInput{Email: "a@b.com", Password: "x", Flow: domain.FlowTutor})
	require.NoError(t, err)

	sess, err := h.sessions.session(id)
	require.NoError(t, err)
	sess.mu.Lock()
	h.clock.Advance(testDelays.Login)
	// give the completion time to block on the session lock
	time.Sleep(20 * time.Millisecond)
	assert.True(t, h.sessions.runner.Cancel(id+":login"))
	sess.mu.Unlock()
	waitTask(t, task)

	assert.Equal(t, domain.ScreenLogin, h.screen(t, id))
	flow, _ := h.sessions.SessionFlow(id)
	assert.Equal(t, domain.FlowNone, flow)
}

func TestSessionService_RejectPolicyConflicts(t *testing.T) {
	h := newHarness(t, withPolicy(simulate.PolicyReject))
	id := h.newSession(t)

	_, task, err := h.auth.Login(context.Background(), id, LoginInput{Email: "a@b.com", Password: "x", Flow: domain.FlowTutor})
	require.NoError(t, err)

	_, _, err = h.auth.Login(context.Background(), id, LoginInput{Email: "a@b.com", Password: "x", Flow: domain.FlowWalker})
	assert.Equal(t, "CONFLICT", errCode(err))

	h.clock.Advance(testDelays.Login)
	waitTask(t, task)
	assert.Equal(t, domain.ScreenHome, h.screen(t, id))
}

func TestSessionService_ReplacePolicyKeepsLatest(t *testing.T) {
	h := newHarness(t)
	id := h.newSession(t)

	_, first, err := h.auth.Login(context.Background(), id, LoginInput{Email: "a@b.com", Password: "x", Flow: domain.FlowTutor})
	require.NoError(t, err)
	_, second, err := h.auth.Login(context.Background(), id, LoginInput{Email: "a@b.com", Password: "x", Flow: domain.FlowAttendant})
	require.NoError(t, err)
	waitTask(t, first)

	h.clock.Advance(testDelays.Login)
	waitTask(t, second)

	flow, _ := h.sessions.SessionFlow(id)
	assert.Equal(t, domain.FlowAttendant, flow)
	assert.Equal(t, domain.ScreenAttendantDashboard, h.screen(t, id))
}
