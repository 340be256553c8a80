package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/domain"
)

const redisQueueSize = 256

// RedisSink publishes notices as JSON on a pub/sub channel. Publishing runs on
// a background worker so Notify never blocks the caller on the network.
type RedisSink struct {
	client  redis.UniversalClient
	channel string
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan []byte
	done   chan struct{}
}

// NewRedisSink builds a sink. A nil client yields a sink that drops everything.
func NewRedisSink(client redis.UniversalClient, channel string, logger *zap.Logger) *RedisSink {
	if channel == "" {
		channel = "happypaws:notices"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &RedisSink{
		client:  client,
		channel: channel,
		timeout: time.Second,
		logger:  logger,
		queue:   make(chan []byte, redisQueueSize),
		done:    make(chan struct{}),
	}
	if client == nil {
		close(r.done)
		return r
	}
	go r.run()
	return r
}

// Channel is the pub/sub channel notices are published on.
func (r *RedisSink) Channel() string { return r.channel }

// Notify implements Sink. Notices are dropped when the queue is full.
func (r *RedisSink) Notify(_ context.Context, notice domain.Notice) {
	if r == nil || r.client == nil {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		r.logger.Warn("encode notice", zap.Error(err))
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	select {
	case r.queue <- payload:
	default:
		r.logger.Warn("notice queue full, dropping",
			zap.String("channel", r.channel),
			zap.String("session_id", notice.SessionID))
	}
}

// Close stops accepting notices and waits for queued ones to be published.
func (r *RedisSink) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	if !r.closed && r.client != nil {
		close(r.queue)
	}
	r.closed = true
	r.mu.Unlock()
	<-r.done
}

func (r *RedisSink) run() {
	defer close(r.done)
	for payload := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
			r.logger.Warn("publish notice", zap.String("channel", r.channel), zap.Error(err))
		}
		cancel()
	}
}
