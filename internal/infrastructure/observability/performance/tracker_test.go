package performance

import (
	"testing"
	"time"
)

func TestMarkerLifecycle(t *testing.T) {
	tracker := NewTracker(nil)

	marker := tracker.StartOperation("test_op")
	marker.SetSuccess(true)
	marker.AddMetadata("key", "value")
	marker.Complete()

	if !marker.Completed {
		t.Error("marker not marked completed")
	}
	if marker.Duration <= 0 {
		t.Errorf("marker duration = %v, want > 0", marker.Duration)
	}
	if tracker.CompletedOperations() != 1 {
		t.Errorf("CompletedOperations() = %d, want 1", tracker.CompletedOperations())
	}
}

func TestSlowOperationRaisesAlert(t *testing.T) {
	tracker := NewTracker(&TrackerConfig{
		MaxMarkers:            100,
		MaxAlerts:             10,
		SlowResponseThreshold: time.Nanosecond,
	})

	marker := tracker.StartOperation("slow_op")
	time.Sleep(time.Millisecond)
	marker.Complete()

	alerts := tracker.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Operation != "slow_op" {
		t.Errorf("alert operation = %q, want slow_op", alerts[0].Operation)
	}
}

func TestFastOperationRaisesNoAlert(t *testing.T) {
	tracker := NewTracker(&TrackerConfig{
		MaxMarkers:            100,
		MaxAlerts:             10,
		SlowResponseThreshold: time.Hour,
	})

	marker := tracker.StartOperation("fast_op")
	marker.Complete()

	if alerts := tracker.Alerts(); len(alerts) != 0 {
		t.Errorf("got %d alerts, want 0", len(alerts))
	}
}
