package performance

import (
	"fmt"
	"sync"
	"time"
)

// Tracker manages performance markers and slow-response alerts
type Tracker struct {
	markers map[string]*Marker
	alerts  []*Alert
	mu      sync.RWMutex
	started time.Time
	nextID  int
	config  *TrackerConfig
}

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers            int           `json:"maxMarkers"`            // Maximum number of markers to retain
	MaxAlerts             int           `json:"maxAlerts"`             // Maximum number of alerts to retain
	SlowResponseThreshold time.Duration `json:"slowResponseThreshold"` // Duration above which a completed marker raises an alert
}

// DefaultTrackerConfig returns a sensible default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:            10000,
		MaxAlerts:             500,
		SlowResponseThreshold: time.Millisecond * 500,
	}
}

// NewTracker creates a new performance tracker
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{
		markers: make(map[string]*Marker),
		started: time.Now(),
		config:  config,
	}
}

// StartOperation creates and registers a marker for a new operation
func (t *Tracker) StartOperation(operation string) *Marker {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := fmt.Sprintf("%s-%d", operation, t.nextID)

	marker := &Marker{
		Operation: operation,
		StartTime: time.Now(),
		tracker:   t,
	}

	// Drop one completed marker past the retention cap rather than growing forever.
	if len(t.markers) >= t.config.MaxMarkers {
		for key, m := range t.markers {
			if m.Completed {
				delete(t.markers, key)
				break
			}
		}
	}
	t.markers[id] = marker

	return marker
}

// recordCompletion is called by a marker's Complete to evaluate alerts.
func (t *Tracker) recordCompletion(m *Marker) {
	if m.Duration < t.config.SlowResponseThreshold {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	alert := &Alert{
		Timestamp: time.Now(),
		Operation: m.Operation,
		Threshold: t.config.SlowResponseThreshold,
		Actual:    m.Duration,
		Message:   fmt.Sprintf("operation %s exceeded slow-response threshold", m.Operation),
	}

	t.alerts = append(t.alerts, alert)
	if len(t.alerts) > t.config.MaxAlerts {
		t.alerts = t.alerts[len(t.alerts)-t.config.MaxAlerts:]
	}
}

// Alerts returns a copy of the currently retained alerts
func (t *Tracker) Alerts() []*Alert {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*Alert, len(t.alerts))
	copy(out, t.alerts)
	return out
}

// CompletedOperations returns the count of completed markers
func (t *Tracker) CompletedOperations() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, m := range t.markers {
		if m.Completed {
			count++
		}
	}
	return count
}

// Uptime reports how long the tracker has been running
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}
