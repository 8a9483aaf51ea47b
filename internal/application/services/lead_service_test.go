package services

import (
	"testing"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
)

func validInput() LeadInput {
	return LeadInput{
		Email:     "winner@example.com",
		Phone:     "5551234567",
		Location:  "Austin, TX",
		SessionID: "session_abc",
		Prize:     "📱 iPhone 16",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*LeadInput)
		wantFields []string
	}{
		{"valid input", func(in *LeadInput) {}, nil},
		{"missing email", func(in *LeadInput) { in.Email = "" }, []string{"email"}},
		{"email without at sign", func(in *LeadInput) { in.Email = "winner.example.com" }, []string{"email"}},
		{"email without domain dot", func(in *LeadInput) { in.Email = "winner@example" }, []string{"email"}},
		{"email with spaces", func(in *LeadInput) { in.Email = "win ner@example.com" }, []string{"email"}},
		{"short phone", func(in *LeadInput) { in.Phone = "12345" }, []string{"phone"}},
		{"blank location", func(in *LeadInput) { in.Location = "   " }, []string{"location"}},
		{"latitude out of range", func(in *LeadInput) {
			in.Coordinates = &user.Coordinates{Latitude: 91, Longitude: 0}
		}, []string{"coordinates.latitude"}},
		{"longitude out of range", func(in *LeadInput) {
			in.Coordinates = &user.Coordinates{Latitude: 0, Longitude: -181}
		}, []string{"coordinates.longitude"}},
		{"valid coordinates", func(in *LeadInput) {
			in.Coordinates = &user.Coordinates{Latitude: 30.26, Longitude: -97.74}
		}, nil},
		{"multiple violations reported together", func(in *LeadInput) {
			in.Email = "bad"
			in.Phone = "123"
			in.Location = ""
		}, []string{"email", "phone", "location"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			fields := Validate(input)
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d violations, want %d: %+v", len(fields), len(tt.wantFields), fields)
			}
			for i, want := range tt.wantFields {
				if fields[i].Field != want {
					t.Errorf("violation %d field = %q, want %q", i, fields[i].Field, want)
				}
			}
		})
	}
}

func newLeadService(t *testing.T, leadRepo *fakeLeadRepo, sessionRepo *fakeSessionRepo, broadcaster *fakeBroadcaster) *LeadService {
	t.Helper()
	return NewLeadService(newTestLogger(t), newTestTracker(), leadRepo, sessionRepo, nil, broadcaster)
}

func TestCreateLead(t *testing.T) {
	meta := user.ClientMeta{IPAddress: "203.0.113.9", Device: "Mobile", Browser: "Safari", OperatingSystem: "iOS"}

	t.Run("stores lead and links session", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		sessionRepo := newFakeSessionRepo()
		broadcaster := &fakeBroadcaster{}
		svc := newLeadService(t, leadRepo, sessionRepo, broadcaster)

		result, err := svc.CreateLead(validInput(), meta)
		if err != nil {
			t.Fatalf("CreateLead() error = %v", err)
		}
		if !result.Success {
			t.Fatalf("CreateLead() success = false: %+v", result)
		}
		if len(leadRepo.leads) != 1 {
			t.Fatalf("stored %d leads, want 1", len(leadRepo.leads))
		}

		lead := leadRepo.leads[0]
		if lead.ID == "" {
			t.Error("stored lead has no ID")
		}
		if lead.SessionID == nil || *lead.SessionID != "session_abc" {
			t.Errorf("lead session ref = %v, want session_abc", lead.SessionID)
		}

		session := sessionRepo.sessions["session_abc"]
		if session == nil {
			t.Fatal("conversion page view did not create the session")
		}
		if session.LeadID == nil || *session.LeadID != lead.ID {
			t.Errorf("session lead ref = %v, want %s", session.LeadID, lead.ID)
		}
		if len(session.PageViews) != 1 || session.PageViews[0].Page != "/form-submission" {
			t.Errorf("session page views = %+v, want single /form-submission entry", session.PageViews)
		}

		if len(broadcaster.events) != 1 || broadcaster.events[0].Type != "lead" {
			t.Errorf("broadcast events = %+v, want one lead event", broadcaster.events)
		}
	})

	t.Run("links a session that already has beacons", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		sessionRepo := newFakeSessionRepo()
		svc := newLeadService(t, leadRepo, sessionRepo, &fakeBroadcaster{})

		if err := sessionRepo.RecordPageView("session_abc", meta, user.PageView{Page: "/"}); err != nil {
			t.Fatalf("seeding page view: %v", err)
		}

		result, err := svc.CreateLead(validInput(), meta)
		if err != nil || !result.Success {
			t.Fatalf("CreateLead() = %+v, %v", result, err)
		}

		session := sessionRepo.sessions["session_abc"]
		if session.LeadID == nil || *session.LeadID != leadRepo.leads[0].ID {
			t.Errorf("session lead ref = %v, want %s", session.LeadID, leadRepo.leads[0].ID)
		}
		if len(session.PageViews) != 2 || session.PageViews[1].Page != "/form-submission" {
			t.Errorf("session page views = %+v, want / then /form-submission", session.PageViews)
		}
	})

	t.Run("normalizes email casing", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		svc := newLeadService(t, leadRepo, newFakeSessionRepo(), &fakeBroadcaster{})

		input := validInput()
		input.Email = "  Winner@Example.COM "
		if _, err := svc.CreateLead(input, meta); err != nil {
			t.Fatalf("CreateLead() error = %v", err)
		}
		if leadRepo.leads[0].Email != "winner@example.com" {
			t.Errorf("stored email = %q, want winner@example.com", leadRepo.leads[0].Email)
		}
	})

	t.Run("rejects invalid input without persisting", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		svc := newLeadService(t, leadRepo, newFakeSessionRepo(), &fakeBroadcaster{})

		input := validInput()
		input.Email = "not-an-email"
		result, err := svc.CreateLead(input, meta)
		if err != nil {
			t.Fatalf("CreateLead() error = %v", err)
		}
		if result.Success {
			t.Fatal("CreateLead() accepted an invalid email")
		}
		if len(result.Fields) == 0 {
			t.Error("CreateLead() returned no field violations")
		}
		if len(leadRepo.leads) != 0 {
			t.Errorf("persisted %d leads on invalid input, want 0", len(leadRepo.leads))
		}
	})

	t.Run("reports duplicate email", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		svc := newLeadService(t, leadRepo, newFakeSessionRepo(), &fakeBroadcaster{})

		if _, err := svc.CreateLead(validInput(), meta); err != nil {
			t.Fatalf("first CreateLead() error = %v", err)
		}
		result, err := svc.CreateLead(validInput(), meta)
		if err != nil {
			t.Fatalf("second CreateLead() error = %v", err)
		}
		if result.Success || !result.Duplicate {
			t.Errorf("duplicate submission result = %+v, want Duplicate", result)
		}
		if len(leadRepo.leads) != 1 {
			t.Errorf("stored %d leads after duplicate, want 1", len(leadRepo.leads))
		}
	})

	t.Run("session linkage failure does not fail the lead", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		sessionRepo := newFakeSessionRepo()
		sessionRepo.linkErr = errTest
		sessionRepo.recordErr = errTest
		svc := newLeadService(t, leadRepo, sessionRepo, &fakeBroadcaster{})

		result, err := svc.CreateLead(validInput(), meta)
		if err != nil {
			t.Fatalf("CreateLead() error = %v", err)
		}
		if !result.Success {
			t.Fatalf("CreateLead() success = false despite stored lead: %+v", result)
		}
		if len(leadRepo.leads) != 1 {
			t.Errorf("stored %d leads, want 1", len(leadRepo.leads))
		}
	})
}

func TestListLeads(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	svc := newLeadService(t, leadRepo, newFakeSessionRepo(), &fakeBroadcaster{})

	meta := user.ClientMeta{IPAddress: "198.51.100.4"}
	for i := 0; i < 25; i++ {
		input := validInput()
		input.Email = "lead" + string(rune('a'+i)) + "@example.com"
		input.SessionID = ""
		if _, err := svc.CreateLead(input, meta); err != nil {
			t.Fatalf("CreateLead() error = %v", err)
		}
	}

	page, err := svc.ListLeads(2, 10)
	if err != nil {
		t.Fatalf("ListLeads() error = %v", err)
	}
	if len(page.Leads) != 10 {
		t.Errorf("page 2 has %d leads, want 10", len(page.Leads))
	}
	if !page.Pagination.HasNextPage || !page.Pagination.HasPrevPage {
		t.Errorf("page 2 pagination = %+v, want next and prev", page.Pagination)
	}

	last, err := svc.ListLeads(3, 10)
	if err != nil {
		t.Fatalf("ListLeads() error = %v", err)
	}
	if len(last.Leads) != 5 {
		t.Errorf("page 3 has %d leads, want 5", len(last.Leads))
	}
	if last.Pagination.HasNextPage {
		t.Error("last page reports a next page")
	}

	beyond, err := svc.ListLeads(9, 10)
	if err != nil {
		t.Fatalf("ListLeads() error = %v", err)
	}
	if len(beyond.Leads) != 0 {
		t.Errorf("beyond-range page has %d leads, want 0", len(beyond.Leads))
	}
}
