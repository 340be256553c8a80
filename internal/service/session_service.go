package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/config"
	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/notify"
	"github.com/spec-kit/happy-paws/internal/observability"
	"github.com/spec-kit/happy-paws/internal/seed"
	"github.com/spec-kit/happy-paws/internal/simulate"
	"github.com/spec-kit/happy-paws/internal/triage"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// Delays are the latencies of the simulated network actions.
type Delays struct {
	Login     time.Duration
	Payment   time.Duration
	WalkStart time.Duration
	Photo     time.Duration
	WalkEnd   time.Duration
}

// DelaysFromConfig converts the millisecond settings.
func DelaysFromConfig(cfg config.SimulationConfig) Delays {
	return Delays{
		Login:     config.Delay(cfg.LoginDelayMS),
		Payment:   config.Delay(cfg.PaymentDelayMS),
		WalkStart: config.Delay(cfg.WalkStartDelayMS),
		Photo:     config.Delay(cfg.PhotoDelayMS),
		WalkEnd:   config.Delay(cfg.WalkEndDelayMS),
	}
}

// TicketStore persists attendant tickets. Sessions fall back to the seed set without one.
type TicketStore interface {
	Load(ctx context.Context) ([]*domain.Ticket, error)
	RecordResponse(ctx context.Context, ticketID string, interaction domain.Interaction, status domain.TicketStatus) error
}

// Session is one user's prototype run. Every field is guarded by mu.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	state   domain.ScreenState
	local   navigation.Local
	board   *triage.Board
	profile *domain.Profile
	support []domain.SupportTicket
}

// SessionService owns live sessions and drives their screen router.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	router     *navigation.Router
	runner     *simulate.Runner
	store      TicketStore
	sink       notify.Sink
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	delays     Delays
}

// SessionDependencies bundles collaborators for the session service.
type SessionDependencies struct {
	Runner     *simulate.Runner
	Store      TicketStore
	Sink       notify.Sink
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Delays     Delays
}

// NewSessionService builds the service.
func NewSessionService(deps SessionDependencies) *SessionService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runner := deps.Runner
	if runner == nil {
		runner = simulate.NewRunner(nil, simulate.PolicyReplace, logger)
	}
	sink := deps.Sink
	if sink == nil {
		sink = notify.LogSink{Logger: logger}
	}
	return &SessionService{
		sessions:   make(map[string]*Session),
		router:     navigation.NewRouter(),
		runner:     runner,
		store:      deps.Store,
		sink:       sink,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		delays:     deps.Delays,
	}
}

// Create starts a session on the login screen with its own ticket board.
func (s *SessionService) Create(ctx context.Context) (Snapshot, error) {
	tickets := seed.Tickets()
	if s.store != nil {
		loaded, err := s.store.Load(ctx)
		if err != nil {
			return Snapshot{}, fmt.Errorf("load tickets: %w", err)
		}
		tickets = loaded
	}

	now := s.now()
	state := domain.InitialScreenState()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		state:     state,
		local:     navigation.NewLocal(state.CurrentScreen, now),
		board:     triage.NewBoard(tickets),
		support:   seed.SupportTickets(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("session created", zap.String("session_id", sess.ID), zap.Int("tickets", sess.board.Len()))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshotLocked(sess), nil
}

// End drops a session and cancels its pending simulated actions.
func (s *SessionService) End(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	s.runner.CancelPrefix(sessionID + ":")
	if f, ok := s.sink.(interface{ Forget(string) }); ok {
		f.Forget(sessionID)
	}
}

// EndCreatedBefore ends every session created before cutoff and reports how many went.
func (s *SessionService) EndCreatedBefore(cutoff time.Time) int {
	s.mu.RLock()
	stale := make([]string, 0)
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()

	for _, id := range stale {
		s.End(id)
	}
	return len(stale)
}

// Now reports the service clock.
func (s *SessionService) Now() time.Time {
	return s.now()
}

// SessionFlow reports the audience of a live session.
func (s *SessionService) SessionFlow(sessionID string) (domain.Flow, bool) {
	sess, err := s.session(sessionID)
	if err != nil {
		return domain.FlowNone, false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state.Flow, true
}

// Snapshot returns the current view of a session.
func (s *SessionService) Snapshot(sessionID string) (Snapshot, error) {
	var snap Snapshot
	err := s.withSession(sessionID, func(sess *Session) error {
		snap = s.snapshotLocked(sess)
		return nil
	})
	return snap, err
}

// Dispatch feeds a client navigation event to the session's router.
// Unhandled events and completion events leave the session untouched.
func (s *SessionService) Dispatch(ctx context.Context, sessionID string, ev navigation.Event) (Result, error) {
	var res Result
	err := s.withSession(sessionID, func(sess *Session) error {
		if ev.Name.Completion() {
			s.metrics.RecordIgnored(string(sess.state.CurrentScreen), string(ev.Name))
			s.logger.Debug("completion event refused",
				zap.String("session_id", sess.ID),
				zap.String("event", string(ev.Name)))
		} else {
			res.Handled = s.applyLocked(ctx, sess, ev)
		}
		res.Snapshot = s.snapshotLocked(sess)
		return nil
	})
	return res, err
}

func (s *SessionService) session(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NewNotFound("session", map[string]any{"session_id": id})
	}
	return sess, nil
}

func (s *SessionService) withSession(id string, fn func(*Session) error) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

// applyLocked routes ev and performs the transition's side effects. sess.mu must be held.
func (s *SessionService) applyLocked(ctx context.Context, sess *Session, ev navigation.Event) bool {
	prev := sess.state
	tr := s.router.Next(prev, ev)
	if !tr.Handled {
		s.metrics.RecordIgnored(string(prev.CurrentScreen), string(ev.Name))
		s.logger.Debug("event ignored",
			zap.String("session_id", sess.ID),
			zap.String("screen", string(prev.CurrentScreen)),
			zap.String("event", string(ev.Name)))
		return false
	}

	now := s.now()
	sess.state = tr.State
	if tr.State.CurrentScreen != prev.CurrentScreen {
		sess.local = navigation.NewLocal(tr.State.CurrentScreen, now)
		s.runner.CancelPrefix(sess.ID + ":")
		s.metrics.RecordTransition(string(prev.CurrentScreen), string(tr.State.CurrentScreen), string(ev.Name))
		s.publish(ctx, events.New(events.EventScreenChanged, sess.ID, tr.State.Flow, now, events.ScreenChangedPayload{
			From:  prev.CurrentScreen,
			To:    tr.State.CurrentScreen,
			Event: string(ev.Name),
		}))
	}

	switch ev.Name {
	case navigation.EventWalkStarted:
		s.publish(ctx, events.New(events.EventWalkStarted, sess.ID, tr.State.Flow, now, events.WalkStartedPayload{}))
	case navigation.EventPhotoPosted:
		s.publish(ctx, events.New(events.EventPhotoPosted, sess.ID, tr.State.Flow, now, events.PhotoPostedPayload{}))
	}

	if tr.Notice != nil {
		s.notifyLocked(ctx, sess, *tr.Notice)
	}
	return true
}

func (s *SessionService) notifyLocked(ctx context.Context, sess *Session, n domain.Notice) {
	n.SessionID = sess.ID
	n.CreatedAt = s.now()
	if n.Variant == "" {
		n.Variant = domain.NoticeDefault
	}
	s.sink.Notify(ctx, n)
}

func (s *SessionService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func (s *SessionService) now() time.Time {
	return s.runner.Clock().Now()
}

// schedule runs ev after delay unless the session leaves origin first.
func (s *SessionService) schedule(ctx context.Context, sess *Session, action string, delay time.Duration, origin domain.Screen, complete func(context.Context) navigation.Event) (*simulate.Task, error) {
	key := sess.ID + ":" + action
	task, err := s.runner.Start(context.WithoutCancel(ctx), key, delay, func(taskCtx context.Context) {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		if taskCtx.Err() != nil || sess.state.CurrentScreen != origin {
			return
		}
		// applyLocked cancels this task's key on a screen change.
		taskCtx = context.WithoutCancel(taskCtx)
		if s.applyLocked(taskCtx, sess, complete(taskCtx)) {
			s.metrics.RecordSimulated(action)
		}
	})
	if err != nil {
		if err == simulate.ErrPending {
			return nil, apperrors.NewConflict(strings.ReplaceAll(action, "_", " ")+" already in progress", map[string]any{"action": action})
		}
		return nil, err
	}
	s.logger.Debug("simulated action scheduled",
		zap.String("session_id", sess.ID),
		zap.String("action", action),
		zap.Duration("delay", delay))
	return task, nil
}

// requireScreen guards a screen-bound action.
func requireScreen(sess *Session, screen domain.Screen, action string) error {
	if sess.state.CurrentScreen != screen {
		return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), action)
	}
	return nil
}
