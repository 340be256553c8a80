package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/simulate"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// WalkService runs the booking and walk actions that stand in for network calls.
type WalkService struct {
	sessions *SessionService
}

// NewWalkService builds the service.
func NewWalkService(sessions *SessionService) *WalkService {
	return &WalkService{sessions: sessions}
}

// ConfirmSchedule simulates the payment and confirms the booking.
func (s *WalkService) ConfirmSchedule(ctx context.Context, sessionID string) (Snapshot, *simulate.Task, error) {
	return s.delayed(ctx, sessionID, domain.ScreenSchedule, navigation.EventScheduleConfirmed, "payment", s.sessions.delays.Payment)
}

// StartWalk simulates the walker starting the walk; the tutor is notified on completion.
func (s *WalkService) StartWalk(ctx context.Context, sessionID string) (Snapshot, *simulate.Task, error) {
	return s.delayed(ctx, sessionID, domain.ScreenWalkerBooking, navigation.EventWalkStarted, "walk_start", s.sessions.delays.WalkStart)
}

var walkEndedNotice = domain.Notice{
	Title:       "Passeio finalizado",
	Description: "Aguarde, estamos preparando a avaliação.",
}

// EndWalk ends the walk. From the monitoring map it waits for the closing message first.
func (s *WalkService) EndWalk(ctx context.Context, sessionID string) (Snapshot, *simulate.Task, error) {
	var (
		snap Snapshot
		task *simulate.Task
	)
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		switch sess.state.CurrentScreen {
		case domain.ScreenActiveWalk:
			if s.sessions.applyLocked(ctx, sess, navigation.Named(navigation.EventWalkEnded)) {
				s.sessions.notifyLocked(ctx, sess, walkEndedNotice)
			}
		case domain.ScreenTutorMonitoring:
			t, err := s.sessions.schedule(ctx, sess, "walk_end", s.sessions.delays.WalkEnd, domain.ScreenTutorMonitoring,
				func(context.Context) navigation.Event { return navigation.Named(navigation.EventWalkEnded) })
			if err != nil {
				return err
			}
			if w, ok := sess.local.(*navigation.WalkLocal); ok && w.PausedAt == nil {
				w.TogglePause(s.sessions.now())
			}
			s.sessions.notifyLocked(ctx, sess, walkEndedNotice)
			task = t
		default:
			return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), string(navigation.EventWalkEnded))
		}
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, task, err
}

// TogglePause pauses or resumes the walk timer.
func (s *WalkService) TogglePause(sessionID string) (Snapshot, error) {
	var snap Snapshot
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		w, ok := sess.local.(*navigation.WalkLocal)
		if !ok {
			return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), "walk_pause")
		}
		w.TogglePause(s.sessions.now())
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, err
}

// PhotoInput is the photo-post form. Empty fields keep the values already drafted.
type PhotoInput struct {
	Photo   string
	Caption string
}

// DraftPhoto updates the photo-post form without posting.
func (s *WalkService) DraftPhoto(sessionID string, in PhotoInput) (Snapshot, error) {
	var snap Snapshot
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		form, ok := sess.local.(*navigation.PhotoLocal)
		if !ok {
			return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), "photo_draft")
		}
		mergePhoto(form, in)
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, err
}

// PostPhoto uploads the drafted photo and returns to the walk. A missing photo is reported as a destructive notice.
func (s *WalkService) PostPhoto(ctx context.Context, sessionID string, in PhotoInput) (Snapshot, *simulate.Task, error) {
	var (
		snap Snapshot
		task *simulate.Task
	)
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		form, ok := sess.local.(*navigation.PhotoLocal)
		if !ok {
			return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), string(navigation.EventPhotoPosted))
		}
		mergePhoto(form, in)
		if form.Photo == "" {
			s.sessions.notifyLocked(ctx, sess, domain.Notice{
				Title:       "Erro",
				Description: "Selecione uma foto antes de postar",
				Variant:     domain.NoticeDestructive,
			})
			return apperrors.NewValidationError("photo required", map[string]any{"photo": "Selecione uma foto antes de postar"})
		}

		t, err := s.sessions.schedule(ctx, sess, "photo", s.sessions.delays.Photo, domain.ScreenWalkPhotoPost,
			func(context.Context) navigation.Event { return navigation.Named(navigation.EventPhotoPosted) })
		if err != nil {
			return err
		}
		form.Posting = true
		task = t
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, task, err
}

func mergePhoto(form *navigation.PhotoLocal, in PhotoInput) {
	if p := strings.TrimSpace(in.Photo); p != "" {
		form.Photo = p
	}
	if c := strings.TrimSpace(in.Caption); c != "" {
		form.Caption = c
	}
}

func (s *WalkService) delayed(ctx context.Context, sessionID string, origin domain.Screen, event navigation.EventName, action string, delay time.Duration) (Snapshot, *simulate.Task, error) {
	var (
		snap Snapshot
		task *simulate.Task
	)
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		if err := requireScreen(sess, origin, string(event)); err != nil {
			return err
		}
		t, err := s.sessions.schedule(ctx, sess, action, delay, origin,
			func(context.Context) navigation.Event { return navigation.Named(event) })
		if err != nil {
			return err
		}
		task = t
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, task, err
}
