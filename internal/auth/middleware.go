package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/domain"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated session.
type Principal struct {
	SessionID string
	Flow      domain.Flow
}

// SessionResolver reports whether a session is live and which flow it currently runs.
type SessionResolver interface {
	SessionFlow(sessionID string) (domain.Flow, bool)
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions SessionResolver
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if errors.Is(err, ErrTokenExpired) {
		return apperrors.NewUnauthorized("token expired")
	}
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	flow, ok := m.sessions.SessionFlow(claims.SessionID)
	if !ok {
		return apperrors.NewUnauthorized("session not found")
	}

	c.Locals(principalKey, &Principal{SessionID: claims.SessionID, Flow: flow})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated session.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
