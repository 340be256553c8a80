package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/session", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/session", "GET", 200, 7*time.Millisecond)
	m.RecordError("/session/events", "POST", "VALIDATION_FAILED")
	m.RecordTransition("login", "home", "login")
	m.RecordIgnored("login", "go_home")
	m.RecordSimulated("photo")
	m.RecordEvent("walk_started")

	snap := m.Snapshot()

	require.Len(t, snap.Requests, 1)
	assert.Equal(t, Counter{Key: "/session|GET|200", Value: 2}, snap.Requests[0])
	assert.Equal(t, int64(12), snap.TotalLatencyMS)
	assert.Equal(t, []Counter{{Key: "login|login|home", Value: 1}}, snap.Transitions)
	assert.Equal(t, []Counter{{Key: "login|go_home", Value: 1}}, snap.Ignored)
	assert.Len(t, snap.Errors, 1)
	assert.Len(t, snap.Simulated, 1)
	assert.Equal(t, []Counter{{Key: "walk_started", Value: 1}}, snap.Events)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordTransition("a", "b", "c")
	assert.Equal(t, Snapshot{}, m.Snapshot())
}
