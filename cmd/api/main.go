package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/happy-paws/internal/api/http"
	"github.com/spec-kit/happy-paws/internal/api/http/handlers"
	"github.com/spec-kit/happy-paws/internal/auth"
	"github.com/spec-kit/happy-paws/internal/config"
	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/notify"
	"github.com/spec-kit/happy-paws/internal/observability"
	"github.com/spec-kit/happy-paws/internal/persistence"
	"github.com/spec-kit/happy-paws/internal/repository"
	"github.com/spec-kit/happy-paws/internal/seed"
	"github.com/spec-kit/happy-paws/internal/service"
	"github.com/spec-kit/happy-paws/internal/simulate"
	"github.com/spec-kit/happy-paws/internal/worker"
	"github.com/spec-kit/happy-paws/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(pg.PoolHandle(), migrations.FS, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis, err := persistence.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Fatal("failed to configure redis", zap.Error(err))
	}
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	workers := worker.New(logger)
	workers.RegisterNotifications(service.NewNotificationService(dispatcher, logger, metrics))

	inbox := notify.NewInbox(cfg.Notification.InboxLimit)
	sinks := notify.Fanout{inbox, notify.LogSink{Logger: logger}}
	if client := redis.Handle(); client != nil && cfg.Notification.RedisChannel != "" {
		redisSink := notify.NewRedisSink(client, cfg.Notification.RedisChannel, logger)
		defer redisSink.Close()
		sinks = append(sinks, redisSink)
	}

	deps := service.SessionDependencies{
		Runner:     simulate.NewRunner(simulate.SystemClock(), simulate.ParsePolicy(cfg.Simulation.OverlapPolicy), logger),
		Sink:       sinks,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
		Delays:     service.DelaysFromConfig(cfg.Simulation),
	}
	if store := repository.NewTicketStore(pg.PoolHandle()); store != nil {
		seeded, err := store.Seed(ctx, seed.Tickets())
		if err != nil {
			logger.Fatal("failed to seed tickets", zap.Error(err))
		}
		logger.Info("ticket store ready", zap.Int("seeded", seeded))
		deps.Store = store
	}

	sessionService := service.NewSessionService(deps)
	authService := service.NewAuthService(cfg.Auth, sessionService)
	ticketService := service.NewTicketService(sessionService)
	authMiddleware := auth.NewAuthMiddleware(authService.Tokens(), sessionService)

	if err := workers.ScheduleSessionSweep(cfg.Auth.SweepSpec, sessionService, cfg.Auth.SessionTTL()); err != nil {
		logger.Fatal("failed to schedule workers", zap.Error(err))
	}
	workers.Start()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Sessions:       handlers.NewSessionsHandler(authService, sessionService, ticketService, inbox),
		Walks:          handlers.NewWalksHandler(service.NewWalkService(sessionService)),
		Attendant:      handlers.NewAttendantHandler(ticketService),
		Support:        handlers.NewSupportHandler(service.NewSupportService(sessionService)),
		Catalog:        handlers.NewCatalogHandler(service.NewCatalogService(sessionService)),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	workers.Stop(stopCtx)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
