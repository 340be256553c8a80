package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/spec-kit/happy-paws/internal/auth"
	"github.com/spec-kit/happy-paws/internal/config"
	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/simulate"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// AuthService coordinates session tokens, login and registration.
type AuthService struct {
	sessions   *SessionService
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, sessions *SessionService) *AuthService {
	return &AuthService{
		sessions:   sessions,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Tokens exposes the token manager for the HTTP middleware.
func (s *AuthService) Tokens() *auth.TokenManager {
	return s.tokenMgr
}

// IssuedSession is a new session and the bearer token bound to it.
type IssuedSession struct {
	Snapshot
	Token     domain.SessionToken
	ExpiresAt time.Time
}

// StartSession creates a session and signs its token.
func (s *AuthService) StartSession(ctx context.Context) (IssuedSession, error) {
	snap, err := s.sessions.Create(ctx)
	if err != nil {
		return IssuedSession{}, err
	}
	token, expiresAt, err := s.tokenMgr.GenerateToken(snap.SessionID)
	if err != nil {
		s.sessions.End(snap.SessionID)
		return IssuedSession{}, apperrors.NewInternalError(err)
	}
	return IssuedSession{
		Snapshot:  snap,
		Token:     domain.SessionToken{SessionID: snap.SessionID, Token: token, ExpiresAt: expiresAt},
		ExpiresAt: expiresAt,
	}, nil
}

// LoginInput is the login form.
type LoginInput struct {
	Email    string
	Password string
	Flow     domain.Flow
}

// Login validates the form and completes the login after the simulated delay.
// A registered profile with the same email must match its password.
func (s *AuthService) Login(ctx context.Context, sessionID string, in LoginInput) (Snapshot, *simulate.Task, error) {
	var (
		snap Snapshot
		task *simulate.Task
	)
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		if err := requireScreen(sess, domain.ScreenLogin, string(navigation.EventLogin)); err != nil {
			return err
		}

		email := strings.TrimSpace(in.Email)
		fields := map[string]any{}
		if email == "" {
			fields["email"] = "Informe seu email"
		}
		if in.Password == "" {
			fields["password"] = "Informe sua senha"
		}
		flow := in.Flow
		if flow == domain.FlowNone && sess.profile != nil && strings.EqualFold(sess.profile.Email, email) {
			flow = sess.profile.Role
		}
		if flow == domain.FlowNone {
			flow = domain.FlowTutor
		}
		if !flow.Valid() {
			fields["flow"] = "Perfil de acesso inválido"
		}
		if len(fields) > 0 {
			return apperrors.NewValidationError("invalid login", fields)
		}

		if p := sess.profile; p != nil && strings.EqualFold(p.Email, email) {
			if err := auth.ComparePassword(p.PasswordHash, in.Password); err != nil {
				return apperrors.NewUnauthorized("invalid credentials")
			}
		}

		t, err := s.sessions.schedule(ctx, sess, "login", s.sessions.delays.Login, domain.ScreenLogin,
			func(context.Context) navigation.Event { return navigation.Login(flow) })
		if err != nil {
			return err
		}
		task = t
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, task, err
}

// RegisterInput is the registration form.
type RegisterInput struct {
	Role         domain.Flow
	Name         string
	Email        string
	Phone        string
	Password     string
	PetName      string
	PricePerHour int
}

// Validate returns per-field messages; an empty map means the form is valid.
func (in RegisterInput) Validate() map[string]string {
	errs := map[string]string{}
	role := in.Role
	if role == domain.FlowNone {
		role = domain.FlowTutor
	}
	if role != domain.FlowTutor && role != domain.FlowWalker {
		errs["role"] = "Escolha tutor ou passeador"
	}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Nome é obrigatório"
	}
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email é obrigatório"
	} else if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		errs["email"] = "Email inválido"
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs["phone"] = "Telefone é obrigatório"
	}
	if auth.CheckPasswordStrength(in.Password) != nil {
		errs["password"] = "A senha deve ter pelo menos 6 caracteres"
	}
	switch role {
	case domain.FlowTutor:
		if strings.TrimSpace(in.PetName) == "" {
			errs["pet_name"] = "Informe o nome do seu pet"
		}
	case domain.FlowWalker:
		if in.PricePerHour <= 0 {
			errs["price_per_hour"] = "Informe o valor por hora"
		}
	}
	return errs
}

// Register validates the form, stores the profile and completes registration.
func (s *AuthService) Register(ctx context.Context, sessionID string, in RegisterInput) (Snapshot, error) {
	var snap Snapshot
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		if err := requireScreen(sess, domain.ScreenRegister, string(navigation.EventRegistrationCompleted)); err != nil {
			return err
		}

		local, _ := sess.local.(*navigation.RegisterLocal)
		if errs := in.Validate(); len(errs) > 0 {
			if local != nil {
				local.Errors = errs
			}
			details := make(map[string]any, len(errs))
			for k, v := range errs {
				details[k] = v
			}
			return apperrors.NewValidationError("invalid registration", details)
		}

		hash, err := auth.HashPassword(in.Password, s.bcryptCost)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		role := in.Role
		if role == domain.FlowNone {
			role = domain.FlowTutor
		}
		sess.profile = &domain.Profile{
			Role:         role,
			Name:         strings.TrimSpace(in.Name),
			Email:        strings.TrimSpace(in.Email),
			Phone:        strings.TrimSpace(in.Phone),
			PasswordHash: hash,
			PetName:      strings.TrimSpace(in.PetName),
			PricePerHour: in.PricePerHour,
		}
		if role != domain.FlowWalker {
			sess.profile.PricePerHour = 0
		}
		if role != domain.FlowTutor {
			sess.profile.PetName = ""
		}
		s.sessions.applyLocked(ctx, sess, navigation.RegistrationCompleted(role))
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, err
}

// Logout resets the session to the login screen.
func (s *AuthService) Logout(ctx context.Context, sessionID string) (Result, error) {
	return s.sessions.Dispatch(ctx, sessionID, navigation.Named(navigation.EventLogout))
}
