package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/config"
	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/notify"
	"github.com/spec-kit/happy-paws/internal/observability"
	"github.com/spec-kit/happy-paws/internal/service"
	"github.com/spec-kit/happy-paws/internal/simulate"
	"github.com/spec-kit/happy-paws/internal/tui"
	"github.com/spec-kit/happy-paws/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal owns stdout, so logs are discarded.
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	workers := worker.New(logger)
	workers.RegisterNotifications(service.NewNotificationService(dispatcher, logger, metrics))

	inbox := notify.NewInbox(cfg.Notification.InboxLimit)
	sessions := service.NewSessionService(service.SessionDependencies{
		Runner:     simulate.NewRunner(simulate.SystemClock(), simulate.ParsePolicy(cfg.Simulation.OverlapPolicy), logger),
		Sink:       inbox,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
		Delays:     service.DelaysFromConfig(cfg.Simulation),
	})

	ctx := context.Background()
	model, err := tui.New(ctx, tui.Services{
		Auth:     service.NewAuthService(cfg.Auth, sessions),
		Sessions: sessions,
		Tickets:  service.NewTicketService(sessions),
		Walks:    service.NewWalkService(sessions),
		Inbox:    inbox,
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal client: %w", err)
	}
	return nil
}
