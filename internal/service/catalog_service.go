package service

import (
	"context"
	"sort"
	"strings"

	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/seed"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// CatalogService serves the static marketplace content.
type CatalogService struct {
	sessions     *SessionService
	walkers      []domain.Walker
	pets         []domain.Pet
	achievements []domain.Achievement
}

// NewCatalogService builds the service over the seeded catalog.
func NewCatalogService(sessions *SessionService) *CatalogService {
	return &CatalogService{
		sessions:     sessions,
		walkers:      seed.Walkers(),
		pets:         seed.Pets(),
		achievements: seed.Achievements(),
	}
}

// WalkerQuery filters the walker search.
type WalkerQuery struct {
	Query string
	Size  string
}

// Walkers returns matching walkers, best rated first.
func (s *CatalogService) Walkers(q WalkerQuery) ([]domain.Walker, error) {
	size := strings.ToUpper(strings.TrimSpace(q.Size))
	switch size {
	case "", "P", "M", "G":
	default:
		return nil, apperrors.NewValidationError("invalid size", map[string]any{"size": q.Size})
	}
	query := strings.ToLower(strings.TrimSpace(q.Query))

	out := make([]domain.Walker, 0, len(s.walkers))
	for _, w := range s.walkers {
		if size != "" && !w.Accepts(size) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(w.Name), query) &&
			!strings.Contains(strings.ToLower(w.Neighborhood), query) {
			continue
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

// Walker returns one walker by id.
func (s *CatalogService) Walker(id string) (domain.Walker, error) {
	for _, w := range s.walkers {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Walker{}, apperrors.NewNotFound("walker", map[string]any{"walker_id": id})
}

// Pets returns the tutor's pets.
func (s *CatalogService) Pets() []domain.Pet {
	return append([]domain.Pet(nil), s.pets...)
}

// Achievements returns the activity-feed badges.
func (s *CatalogService) Achievements() []domain.Achievement {
	return append([]domain.Achievement(nil), s.achievements...)
}

// SharePet sends a co-tutor invite from the pet details screen.
func (s *CatalogService) SharePet(ctx context.Context, sessionID, email string) (Snapshot, error) {
	var snap Snapshot
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		if err := requireScreen(sess, domain.ScreenPetDetails, "share_pet"); err != nil {
			return err
		}
		email = strings.TrimSpace(email)
		if email == "" {
			return apperrors.NewValidationError("email required", map[string]any{"email": "Informe o email"})
		}
		s.sessions.notifyLocked(ctx, sess, domain.Notice{
			Title:       "Convite enviado!",
			Description: "Um convite foi enviado para " + email + ".",
		})
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, err
}
