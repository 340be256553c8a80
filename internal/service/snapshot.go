package service

import (
	"time"

	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/navigation"
)

// Snapshot is a copy of a session's observable state, safe to use without the session lock.
type Snapshot struct {
	SessionID string
	State     domain.ScreenState
	Screen    navigation.Descriptor
	Profile   *domain.Profile
	Walk      *WalkView
	Dashboard *navigation.DashboardLocal
	Draft     string
	Register  map[string]string
	Photo     *navigation.PhotoLocal
}

// WalkView is the walk timer as of the snapshot.
type WalkView struct {
	Elapsed time.Duration
	Paused  bool
}

// Result is the outcome of dispatching one event.
type Result struct {
	Snapshot
	Handled bool
}

func (s *SessionService) snapshotLocked(sess *Session) Snapshot {
	snap := Snapshot{
		SessionID: sess.ID,
		State:     sess.state,
		Screen:    navigation.Describe(sess.state.CurrentScreen),
	}
	if sess.state.SelectedTicket != nil {
		snap.State.SelectedTicket = sess.state.SelectedTicket.Clone()
	}
	if sess.profile != nil {
		p := *sess.profile
		p.PasswordHash = ""
		snap.Profile = &p
	}

	switch local := sess.local.(type) {
	case *navigation.WalkLocal:
		snap.Walk = &WalkView{Elapsed: local.Elapsed(s.now()), Paused: local.PausedAt != nil}
	case *navigation.DashboardLocal:
		d := *local
		snap.Dashboard = &d
	case *navigation.ComposeLocal:
		snap.Draft = local.Draft
	case *navigation.RegisterLocal:
		if len(local.Errors) > 0 {
			snap.Register = make(map[string]string, len(local.Errors))
			for k, v := range local.Errors {
				snap.Register[k] = v
			}
		}
	case *navigation.PhotoLocal:
		p := *local
		snap.Photo = &p
	}
	return snap
}
