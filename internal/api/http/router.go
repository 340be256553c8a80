package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/api/http/handlers"
	"github.com/spec-kit/happy-paws/internal/auth"
	"github.com/spec-kit/happy-paws/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Sessions       *handlers.SessionsHandler
	Walks          *handlers.WalksHandler
	Attendant      *handlers.AttendantHandler
	Support        *handlers.SupportHandler
	Catalog        *handlers.CatalogHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Get)

	app.Post("/sessions", cfg.Sessions.Create)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	session := protected.Group("/session")
	session.Get("", cfg.Sessions.Get)
	session.Delete("", cfg.Sessions.Delete)
	session.Post("/events", cfg.Sessions.Dispatch)
	session.Post("/login", cfg.Sessions.Login)
	session.Post("/register", cfg.Sessions.Register)
	session.Get("/notices", cfg.Sessions.Notices)

	session.Post("/logout", auth.RequireFlow(), cfg.Sessions.Logout)

	members := auth.RequireFlow(domain.FlowTutor, domain.FlowWalker)
	session.Post("/schedule", members, cfg.Walks.ConfirmSchedule)
	session.Post("/walk/start", members, cfg.Walks.Start)
	session.Post("/walk/end", members, cfg.Walks.End)
	session.Post("/walk/pause", members, cfg.Walks.Pause)
	session.Put("/photos/draft", members, cfg.Walks.DraftPhoto)
	session.Post("/photos", members, cfg.Walks.PostPhoto)

	protected.Get("/walkers", cfg.Catalog.Walkers)
	protected.Get("/walkers/:id", cfg.Catalog.Walker)
	protected.Get("/pets", cfg.Catalog.Pets)
	protected.Get("/achievements", cfg.Catalog.Achievements)
	protected.Post("/pets/share", members, cfg.Catalog.SharePet)

	support := protected.Group("/support", members)
	support.Get("/tickets", cfg.Support.List)
	support.Post("/tickets", cfg.Support.Create)

	attendant := protected.Group("/attendant", auth.RequireFlow(domain.FlowAttendant))
	attendant.Get("/tickets", cfg.Attendant.List)
	attendant.Get("/tickets/selected", cfg.Attendant.Selected)
	attendant.Put("/tickets/selected/draft", cfg.Attendant.Draft)
	attendant.Post("/tickets/selected/responses", cfg.Attendant.Respond)
	attendant.Post("/tickets/:id/select", cfg.Attendant.Select)
}
