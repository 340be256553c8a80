package observability

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	transitions  map[string]int64
	ignored      map[string]int64
	simulated    map[string]int64
	events       map[string]int64
	totalLatency time.Duration
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		transitions:  make(map[string]int64),
		ignored:      make(map[string]int64),
		simulated:    make(map[string]int64),
		events:       make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.totalLatency += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordTransition counts a screen change.
func (m *Metrics) RecordTransition(from, to, event string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions[from+"|"+event+"|"+to]++
}

// RecordIgnored counts an event that the current screen does not handle.
func (m *Metrics) RecordIgnored(screen, event string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ignored[screen+"|"+event]++
}

// RecordSimulated counts a completed simulated action.
func (m *Metrics) RecordSimulated(action string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.simulated[action]++
}

// RecordEvent counts a published domain event.
func (m *Metrics) RecordEvent(eventType string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[eventType]++
}

// Counter is one labelled counter value.
type Counter struct {
	Key   string `json:"key"`
	Value int64  `json:"value"`
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Requests       []Counter `json:"requests"`
	Errors         []Counter `json:"errors"`
	Transitions    []Counter `json:"transitions"`
	Ignored        []Counter `json:"ignored"`
	Simulated      []Counter `json:"simulated"`
	Events         []Counter `json:"events"`
	TotalLatencyMS int64     `json:"total_latency_ms"`
}

// Snapshot copies the counters, sorted by key.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Requests:       counters(m.requestCount),
		Errors:         counters(m.errorCount),
		Transitions:    counters(m.transitions),
		Ignored:        counters(m.ignored),
		Simulated:      counters(m.simulated),
		Events:         counters(m.events),
		TotalLatencyMS: m.totalLatency.Milliseconds(),
	}
}

func counters(in map[string]int64) []Counter {
	out := make([]Counter, 0, len(in))
	for k, v := range in {
		out = append(out, Counter{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
