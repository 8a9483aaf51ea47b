package services

import (
	"errors"
	"testing"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
)

func TestRecordPageView(t *testing.T) {
	meta := user.ClientMeta{IPAddress: "203.0.113.7", Device: "Desktop", Browser: "Firefox", OperatingSystem: "Linux"}

	t.Run("first view creates the session", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		broadcaster := &fakeBroadcaster{}
		svc := NewTrackingService(newTestLogger(t), newTestTracker(), sessionRepo, broadcaster)

		err := svc.RecordPageView(PageViewInput{SessionID: "session_x", Page: "/"}, meta)
		if err != nil {
			t.Fatalf("RecordPageView() error = %v", err)
		}

		session := sessionRepo.sessions["session_x"]
		if session == nil {
			t.Fatal("session was not created")
		}
		if len(session.PageViews) != 1 || session.PageViews[0].Page != "/" {
			t.Errorf("page views = %+v, want single / entry", session.PageViews)
		}
		if session.Meta.Device != "Desktop" {
			t.Errorf("session device = %q, want Desktop", session.Meta.Device)
		}
		if len(broadcaster.events) != 1 || broadcaster.events[0].Type != "page_view" {
			t.Errorf("broadcast events = %+v, want one page_view event", broadcaster.events)
		}
	})

	t.Run("repeat views append to the same session", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		svc := NewTrackingService(newTestLogger(t), newTestTracker(), sessionRepo, &fakeBroadcaster{})

		duration := 12
		pages := []PageViewInput{
			{SessionID: "session_y", Page: "/"},
			{SessionID: "session_y", Page: "/", Duration: &duration},
			{SessionID: "session_y", Page: "/form-submission"},
		}
		for _, p := range pages {
			if err := svc.RecordPageView(p, meta); err != nil {
				t.Fatalf("RecordPageView(%+v) error = %v", p, err)
			}
		}

		session := sessionRepo.sessions["session_y"]
		if session == nil || len(session.PageViews) != 3 {
			t.Fatalf("session = %+v, want 3 page views", session)
		}
		if session.PageViews[1].Duration == nil || *session.PageViews[1].Duration != 12 {
			t.Errorf("second view duration = %v, want 12", session.PageViews[1].Duration)
		}
		if len(sessionRepo.sessions) != 1 {
			t.Errorf("created %d sessions, want 1", len(sessionRepo.sessions))
		}
	})

	t.Run("client event time is kept for late beacons", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		svc := NewTrackingService(newTestLogger(t), newTestTracker(), sessionRepo, &fakeBroadcaster{})

		eventTime := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		err := svc.RecordPageView(PageViewInput{SessionID: "session_late", Page: "/", Timestamp: &eventTime}, meta)
		if err != nil {
			t.Fatalf("RecordPageView() error = %v", err)
		}

		stored := sessionRepo.sessions["session_late"].PageViews[0].Timestamp
		if !stored.Equal(eventTime) {
			t.Errorf("stored timestamp = %v, want client event time %v", stored, eventTime)
		}
	})

	t.Run("server time is used when the beacon has no timestamp", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		svc := NewTrackingService(newTestLogger(t), newTestTracker(), sessionRepo, &fakeBroadcaster{})

		before := time.Now().UTC()
		if err := svc.RecordPageView(PageViewInput{SessionID: "session_now", Page: "/"}, meta); err != nil {
			t.Fatalf("RecordPageView() error = %v", err)
		}
		after := time.Now().UTC()

		stored := sessionRepo.sessions["session_now"].PageViews[0].Timestamp
		if stored.Before(before) || stored.After(after) {
			t.Errorf("stored timestamp = %v, want within [%v, %v]", stored, before, after)
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		svc := NewTrackingService(newTestLogger(t), newTestTracker(), sessionRepo, &fakeBroadcaster{})

		tests := []PageViewInput{
			{SessionID: "", Page: "/"},
			{SessionID: "session_z", Page: ""},
			{SessionID: "  ", Page: "  "},
		}
		for _, input := range tests {
			err := svc.RecordPageView(input, meta)
			if !errors.Is(err, user.ErrInvalidBeacon) {
				t.Errorf("RecordPageView(%+v) error = %v, want ErrInvalidBeacon", input, err)
			}
		}
		if len(sessionRepo.sessions) != 0 {
			t.Errorf("created %d sessions from invalid beacons, want 0", len(sessionRepo.sessions))
		}
	})
}

func TestListSessions(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	svc := NewTrackingService(newTestLogger(t), newTestTracker(), sessionRepo, &fakeBroadcaster{})

	metas := []user.ClientMeta{
		{IPAddress: "203.0.113.1", Device: "Mobile", Browser: "Safari", OperatingSystem: "iOS"},
		{IPAddress: "203.0.113.2", Device: "Desktop", Browser: "Chrome", OperatingSystem: "Windows"},
		{IPAddress: "203.0.113.1", Device: "Mobile", Browser: "Safari", OperatingSystem: "iOS"},
	}
	for i, meta := range metas {
		sessionID := "session_" + string(rune('a'+i))
		if err := svc.RecordPageView(PageViewInput{SessionID: sessionID, Page: "/"}, meta); err != nil {
			t.Fatalf("RecordPageView() error = %v", err)
		}
		if err := svc.RecordPageView(PageViewInput{SessionID: sessionID, Page: "/offer"}, meta); err != nil {
			t.Fatalf("RecordPageView() error = %v", err)
		}
	}

	page, err := svc.ListSessions(1, 10)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(page.Sessions) != 3 {
		t.Errorf("listed %d sessions, want 3", len(page.Sessions))
	}
	if page.Stats == nil {
		t.Fatal("ListSessions() returned nil stats")
	}
	if page.Stats.TotalVisitors != 3 {
		t.Errorf("TotalVisitors = %d, want 3", page.Stats.TotalVisitors)
	}
	if page.Stats.UniqueIPs != 2 {
		t.Errorf("UniqueIPs = %d, want 2", page.Stats.UniqueIPs)
	}
	if page.Stats.TotalPageViews != 6 {
		t.Errorf("TotalPageViews = %d, want 6", page.Stats.TotalPageViews)
	}
	if page.Pagination.HasNextPage {
		t.Error("single page reports a next page")
	}
}
