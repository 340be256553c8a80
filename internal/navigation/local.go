package navigation

import (
	"time"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// Local is per-screen scratch state. A session holds exactly one slot,
// built on entry to a screen and dropped when the screen changes.
type Local interface {
	Screen() domain.Screen
}

// NewLocal constructs the local record for screen, or nil if the screen keeps none.
func NewLocal(screen domain.Screen, now time.Time) Local {
	switch screen {
	case domain.ScreenActiveWalk, domain.ScreenTutorMonitoring:
		return &WalkLocal{screen: screen, StartedAt: now}
	case domain.ScreenAttendantDashboard:
		return &DashboardLocal{}
	case domain.ScreenAttendantTicket:
		return &ComposeLocal{}
	case domain.ScreenRegister:
		return &RegisterLocal{}
	case domain.ScreenWalkPhotoPost:
		return &PhotoLocal{}
	}
	return nil
}

// WalkLocal is the elapsed-time counter of a walk screen.
type WalkLocal struct {
	screen    domain.Screen
	StartedAt time.Time
	PausedAt  *time.Time
	Paused    time.Duration
}

func (w *WalkLocal) Screen() domain.Screen { return w.screen }

// TogglePause pauses a running counter or resumes a paused one.
func (w *WalkLocal) TogglePause(now time.Time) {
	if w.PausedAt != nil {
		w.Paused += now.Sub(*w.PausedAt)
		w.PausedAt = nil
		return
	}
	w.PausedAt = &now
}

// Elapsed is the running time excluding pauses.
func (w *WalkLocal) Elapsed(now time.Time) time.Duration {
	end := now
	if w.PausedAt != nil {
		end = *w.PausedAt
	}
	elapsed := end.Sub(w.StartedAt) - w.Paused
	if elapsed < 0 {
		return 0
	}
	return elapsed.Truncate(time.Second)
}

// DashboardLocal holds the attendant dashboard filter inputs.
type DashboardLocal struct {
	Search string
	Filter domain.TicketType
}

func (d *DashboardLocal) Screen() domain.Screen { return domain.ScreenAttendantDashboard }

// ComposeLocal holds the attendant's response draft.
type ComposeLocal struct {
	Draft string
}

func (c *ComposeLocal) Screen() domain.Screen { return domain.ScreenAttendantTicket }

// RegisterLocal keeps the inline errors of the last submission.
type RegisterLocal struct {
	Errors map[string]string
}

func (r *RegisterLocal) Screen() domain.Screen { return domain.ScreenRegister }

// PhotoLocal is the photo-post form.
type PhotoLocal struct {
	Photo   string
	Caption string
	Posting bool
}

func (p *PhotoLocal) Screen() domain.Screen { return domain.ScreenWalkPhotoPost }
