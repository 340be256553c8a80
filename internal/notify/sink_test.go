package notify

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/happy-paws/internal/domain"
)

func TestInbox_DrainIsPerSession(t *testing.T) {
	inbox := NewInbox(2)
	ctx := context.Background()

	inbox.Notify(ctx, domain.Notice{SessionID: "a", Title: "1"})
	inbox.Notify(ctx, domain.Notice{SessionID: "a", Title: "2"})
	inbox.Notify(ctx, domain.Notice{SessionID: "a", Title: "3"})
	inbox.Notify(ctx, domain.Notice{SessionID: "b", Title: "x"})

	got := inbox.Drain("a")
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].Title)
	assert.Equal(t, "3", got[1].Title)
	assert.Empty(t, inbox.Drain("a"))

	inbox.Forget("b")
	assert.Empty(t, inbox.Drain("b"))
}

func TestFanout_DeliversToEverySink(t *testing.T) {
	var seen []string
	record := func(name string) Sink {
		return SinkFunc(func(_ context.Context, n domain.Notice) { seen = append(seen, name+":"+n.Title) })
	}
	f := Fanout{record("one"), nil, record("two"), LogSink{}, NewRedisSink(nil, "", nil)}

	f.Notify(context.Background(), domain.Notice{Title: "hi"})

	assert.Equal(t, []string{"one:hi", "two:hi"}, seen)
}

func TestFanout_ForgetReachesInbox(t *testing.T) {
	inbox := NewInbox(5)
	f := Fanout{LogSink{}, inbox}

	f.Notify(context.Background(), domain.Notice{SessionID: "a", Title: "hi"})
	f.Forget("a")

	assert.Empty(t, inbox.Drain("a"))
}

func TestRedisSink_NotifyDoesNotWaitOnPublish(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	sink := NewRedisSink(client, "test:notices", nil)

	start := time.Now()
	for i := 0; i < redisQueueSize+10; i++ {
		sink.Notify(context.Background(), domain.Notice{SessionID: "a", Title: "hi"})
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	sink.Close()
	sink.Close()
	assert.NotPanics(t, func() {
		sink.Notify(context.Background(), domain.Notice{SessionID: "a", Title: "late"})
	})
}

func TestRedisSink_NilClientCloses(t *testing.T) {
	sink := NewRedisSink(nil, "", nil)
	assert.Equal(t, "happypaws:notices", sink.Channel())
	sink.Notify(context.Background(), domain.Notice{Title: "dropped"})
	sink.Close()
}
