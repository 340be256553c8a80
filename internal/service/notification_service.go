package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/observability"
)

// NotificationService logs domain events and counts them.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.SubscribeAll(n.countEvent)
	n.dispatcher.Subscribe(events.EventScreenChanged, n.handleScreenChanged)
	n.dispatcher.Subscribe(events.EventTicketResponded, n.handleTicketEvent)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketEvent)
	n.dispatcher.Subscribe(events.EventWalkStarted, n.handleWalkEvent)
	n.dispatcher.Subscribe(events.EventPhotoPosted, n.handleWalkEvent)
	n.dispatcher.Subscribe(events.EventSupportTicketOpened, n.handleSupportTicketOpened)
}

func (n *NotificationService) countEvent(_ context.Context, event events.Event) error {
	n.metrics.RecordEvent(string(event.Type))
	return nil
}

func (n *NotificationService) handleScreenChanged(_ context.Context, event events.Event) error {
	n.logger.Debug("ScreenChanged", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketEvent(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("session_id", event.SessionID),
		zap.String("event_id", event.ID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleWalkEvent(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("session_id", event.SessionID),
		zap.String("flow", string(event.Flow)))
	return nil
}

func (n *NotificationService) handleSupportTicketOpened(_ context.Context, event events.Event) error {
	n.logger.Info("SupportTicketOpened", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}
