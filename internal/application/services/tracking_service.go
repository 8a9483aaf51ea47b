package services

import (
	"strings"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/messaging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
)

// TrackingService handles visitor session ingestion and aggregation.
type TrackingService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	sessionRepo user.VisitorSessionRepository
	broadcaster messaging.Broadcaster
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
	sessionRepo user.VisitorSessionRepository,
	broadcaster messaging.Broadcaster,
) *TrackingService {
	return &TrackingService{
		logger:      logger,
		perfTracker: perfTracker,
		sessionRepo: sessionRepo,
		broadcaster: broadcaster,
	}
}

// PageViewInput is one tracking beacon from the wheel page.
type PageViewInput struct {
	SessionID string     `json:"sessionId"`
	Page      string     `json:"page"`
	Timestamp *time.Time `json:"timestamp,omitempty"` // client event time; beacons can arrive late
	Duration  *int       `json:"duration,omitempty"`  // dwell time in seconds
}

// RecordPageView appends a page view to the visitor's session, creating the
// session document on first sight. The upsert is a single statement so two
// concurrent beacons for the same session never lose a view.
func (s *TrackingService) RecordPageView(input PageViewInput, meta user.ClientMeta) error {
	marker := s.perfTracker.StartOperation("record_page_view")
	defer marker.Complete()

	sessionID := strings.TrimSpace(input.SessionID)
	page := strings.TrimSpace(input.Page)
	if sessionID == "" || page == "" {
		s.logger.Tracking().Debug("Rejected beacon with missing fields",
			"sessionId", sessionID, "page", page)
		return user.ErrInvalidBeacon
	}

	// Keep the client's event time when it sends one; a pagehide beacon or a
	// retried request can land well after the view happened.
	timestamp := time.Now().UTC()
	if input.Timestamp != nil {
		timestamp = input.Timestamp.UTC()
	}

	view := user.PageView{
		Page:      page,
		Timestamp: timestamp,
		Duration:  input.Duration,
	}

	if err := s.sessionRepo.RecordPageView(sessionID, meta, view); err != nil {
		s.logger.Tracking().Error("Page view upsert failed",
			"sessionId", sessionID, "page", page, "error", err.Error())
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.Publish(messaging.Event{Type: "page_view", Payload: map[string]any{
			"sessionId": sessionID,
			"page":      page,
			"device":    meta.Device,
			"browser":   meta.Browser,
		}})
	}

	s.logger.Tracking().Debug("Page view recorded", "sessionId", sessionID, "page", page)
	marker.SetSuccess(true)
	return nil
}

// SessionPage is one page of the visitor session listing plus the aggregate
// stats the dashboard renders alongside it.
type SessionPage struct {
	Sessions   []*user.VisitorSession `json:"trackingData"`
	Stats      *user.VisitorStats     `json:"stats"`
	Pagination Pagination             `json:"pagination"`
}

// ListSessions returns a newest-first page of visitor sessions together with
// aggregate visitor stats over the whole collection.
func (s *TrackingService) ListSessions(page, limit int) (*SessionPage, error) {
	marker := s.perfTracker.StartOperation("list_sessions")
	defer marker.Complete()

	page, limit = clampPageParams(page, limit)

	total, err := s.sessionRepo.Count()
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.List((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []*user.VisitorSession{}
	}

	stats, err := s.sessionRepo.Stats()
	if err != nil {
		return nil, err
	}

	marker.SetSuccess(true)
	return &SessionPage{
		Sessions:   sessions,
		Stats:      stats,
		Pagination: buildPagination(page, limit, total),
	}, nil
}
