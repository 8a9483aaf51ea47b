package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/email"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/messaging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/security"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// conversionPage is the synthetic page-view path appended to a session when
// its visitor converts to a lead.
const conversionPage = "/form-submission"

// LeadService handles lead capture: validation, persistence, best-effort
// session linkage and notification.
type LeadService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	leadRepo    user.LeadRepository
	sessionRepo user.VisitorSessionRepository
	emailSvc    email.Service // nil when notifications are disabled
	broadcaster messaging.Broadcaster
}

// NewLeadService creates a new lead service. emailSvc may be nil.
func NewLeadService(
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
	leadRepo user.LeadRepository,
	sessionRepo user.VisitorSessionRepository,
	emailSvc email.Service,
	broadcaster messaging.Broadcaster,
) *LeadService {
	return &LeadService{
		logger:      logger,
		perfTracker: perfTracker,
		leadRepo:    leadRepo,
		sessionRepo: sessionRepo,
		emailSvc:    emailSvc,
		broadcaster: broadcaster,
	}
}

// LeadInput is the submitted contact-capture form.
type LeadInput struct {
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Location    string            `json:"location"`
	Coordinates *user.Coordinates `json:"coordinates,omitempty"`
	SessionID   string            `json:"sessionId"`
	Prize       string            `json:"prize"`
}

// FieldError names one violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateLeadResult holds the result of a lead creation operation
type CreateLeadResult struct {
	Success   bool         `json:"success"`
	LeadID    string       `json:"leadId,omitempty"`
	Duplicate bool         `json:"-"`
	Fields    []FieldError `json:"fields,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// Validate checks the form fields and returns every violated rule, not just
// the first one.
func Validate(input LeadInput) []FieldError {
	var fields []FieldError

	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		fields = append(fields, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if len(strings.TrimSpace(input.Phone)) < 10 {
		fields = append(fields, FieldError{Field: "phone", Message: "Phone number must be at least 10 digits"})
	}
	if strings.TrimSpace(input.Location) == "" {
		fields = append(fields, FieldError{Field: "location", Message: "Please enter your location"})
	}
	if input.Coordinates != nil {
		if input.Coordinates.Latitude < -90 || input.Coordinates.Latitude > 90 {
			fields = append(fields, FieldError{Field: "coordinates.latitude", Message: "Latitude must be between -90 and 90"})
		}
		if input.Coordinates.Longitude < -180 || input.Coordinates.Longitude > 180 {
			fields = append(fields, FieldError{Field: "coordinates.longitude", Message: "Longitude must be between -180 and 180"})
		}
	}

	return fields
}

// CreateLead validates and persists a new lead, then links it to the
// originating visitor session. The linkage, the conversion page view, and
// the notification email are best-effort: a failure there is logged and
// never rolls back the stored lead.
func (s *LeadService) CreateLead(input LeadInput, meta user.ClientMeta) (*CreateLeadResult, error) {
	start := time.Now()
	marker := s.perfTracker.StartOperation("create_lead")
	defer marker.Complete()

	if fields := Validate(input); len(fields) > 0 {
		s.logger.Leads().Debug("Lead submission failed validation", "violations", len(fields))
		return &CreateLeadResult{Success: false, Error: "Invalid form data", Fields: fields}, nil
	}

	lead := &user.Lead{
		ID:          security.GenerateULID(),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		Location:    strings.TrimSpace(input.Location),
		Meta:        meta,
		Coordinates: input.Coordinates,
		Prize:       input.Prize,
		CreatedAt:   time.Now().UTC(),
	}
	if input.SessionID != "" {
		sessionID := input.SessionID
		lead.SessionID = &sessionID
	}

	if err := s.leadRepo.Store(lead); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			s.logger.Leads().Info("Duplicate lead submission rejected", "email", lead.Email)
			return &CreateLeadResult{Success: false, Duplicate: true, Error: "Email already exists"}, nil
		}
		s.logger.Leads().Error("Lead insert failed", "error", err.Error(), "email", lead.Email)
		return nil, err
	}

	// The lead is committed; everything below is best-effort and the
	// partial-success mode is deliberate (see DESIGN.md).
	if input.SessionID != "" {
		// The conversion view goes first: it creates the session document when
		// this submission is the first thing we hear from the visitor, so the
		// linkage below has a row to update.
		view := user.PageView{Page: conversionPage, Timestamp: time.Now().UTC()}
		if err := s.sessionRepo.RecordPageView(input.SessionID, meta, view); err != nil {
			s.logger.Alert().Warn("Lead stored but conversion page view failed",
				"leadId", lead.ID, "sessionId", input.SessionID, "error", err.Error())
		}
		if err := s.sessionRepo.LinkToLead(input.SessionID, lead.ID); err != nil {
			s.logger.Alert().Warn("Lead stored but session linkage failed",
				"leadId", lead.ID, "sessionId", input.SessionID, "error", err.Error())
		}
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendLeadNotification(lead); err != nil {
			s.logger.Email().Warn("Lead notification email failed", "leadId", lead.ID, "error", err.Error())
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.Publish(messaging.Event{Type: "lead", Payload: lead})
	}

	s.logger.Leads().Info("Lead captured", "leadId", lead.ID, "email", lead.Email, "duration", time.Since(start))
	marker.SetSuccess(true)
	return &CreateLeadResult{Success: true, LeadID: lead.ID}, nil
}

// LeadPage is one page of the lead listing.
type LeadPage struct {
	Leads      []*user.Lead `json:"users"`
	Pagination Pagination   `json:"pagination"`
}

// ListLeads returns a newest-first page of captured leads.
func (s *LeadService) ListLeads(page, limit int) (*LeadPage, error) {
	marker := s.perfTracker.StartOperation("list_leads")
	defer marker.Complete()

	page, limit = clampPageParams(page, limit)

	total, err := s.leadRepo.Count()
	if err != nil {
		return nil, err
	}

	leads, err := s.leadRepo.List((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []*user.Lead{}
	}

	marker.SetSuccess(true)
	return &LeadPage{
		Leads:      leads,
		Pagination: buildPagination(page, limit, total),
	}, nil
}
