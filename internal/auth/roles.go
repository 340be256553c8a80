package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// RequireFlow ensures the session has logged in as one of the allowed audiences.
func RequireFlow(allowed ...domain.Flow) fiber.Handler {
	allowedSet := make(map[domain.Flow]struct{}, len(allowed))
	for _, flow := range allowed {
		allowedSet[flow] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if principal.Flow == domain.FlowNone {
			return fiber.NewError(http.StatusForbidden, "login required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Flow]; !exists {
			return fiber.NewError(http.StatusForbidden, "not available for "+string(principal.Flow))
		}
		return c.Next()
	}
}
