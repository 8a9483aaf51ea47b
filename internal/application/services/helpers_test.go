package services

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/messaging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
)

var errTest = errors.New("injected failure")

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		DefaultLevel:    slog.LevelError + 4,
		ChannelLevels:   make(map[logging.Channel]slog.Level),
	})
	if err != nil {
		t.Fatalf("NewChanneledLogger() error = %v", err)
	}
	return logger
}

func newTestTracker() *performance.Tracker {
	return performance.NewTracker(performance.DefaultTrackerConfig())
}

// fakeLeadRepo is an in-memory LeadRepository for service tests.
type fakeLeadRepo struct {
	leads    []*user.Lead
	storeErr error
}

func (f *fakeLeadRepo) FindByID(id string) (*user.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadRepo) FindByEmail(email string) (*user.Lead, error) {
	for _, l := range f.leads {
		if l.Email == email {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadRepo) Store(lead *user.Lead) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	for _, l := range f.leads {
		if l.Email == lead.Email {
			return user.ErrDuplicateEmail
		}
	}
	f.leads = append(f.leads, lead)
	return nil
}

func (f *fakeLeadRepo) List(offset, limit int) ([]*user.Lead, error) {
	if offset >= len(f.leads) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.leads) {
		end = len(f.leads)
	}
	return f.leads[offset:end], nil
}

func (f *fakeLeadRepo) Count() (int, error) {
	return len(f.leads), nil
}

// fakeSessionRepo is an in-memory VisitorSessionRepository for service tests.
type fakeSessionRepo struct {
	sessions  map[string]*user.VisitorSession
	linkErr   error
	recordErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*user.VisitorSession)}
}

func (f *fakeSessionRepo) FindBySessionID(sessionID string) (*user.VisitorSession, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionRepo) RecordPageView(sessionID string, meta user.ClientMeta, view user.PageView) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		session = &user.VisitorSession{ID: "id_" + sessionID, SessionID: sessionID, Meta: meta}
		f.sessions[sessionID] = session
	}
	session.PageViews = append(session.PageViews, view)
	return nil
}

func (f *fakeSessionRepo) LinkToLead(sessionID, leadID string) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil
	}
	if session.LeadID == nil {
		session.LeadID = &leadID
	}
	return nil
}

func (f *fakeSessionRepo) List(offset, limit int) ([]*user.VisitorSession, error) {
	all := make([]*user.VisitorSession, 0, len(f.sessions))
	for _, s := range f.sessions {
		all = append(all, s)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeSessionRepo) Count() (int, error) {
	return len(f.sessions), nil
}

func (f *fakeSessionRepo) Stats() (*user.VisitorStats, error) {
	stats := &user.VisitorStats{}
	ips := make(map[string]bool)
	for _, s := range f.sessions {
		stats.TotalVisitors++
		stats.TotalPageViews += len(s.PageViews)
		ips[s.Meta.IPAddress] = true
		stats.DeviceTypes = append(stats.DeviceTypes, s.Meta.Device)
		stats.Browsers = append(stats.Browsers, s.Meta.Browser)
		stats.OperatingSystems = append(stats.OperatingSystems, s.Meta.OperatingSystem)
	}
	stats.UniqueIPs = len(ips)
	return stats, nil
}

// fakeAdminRepo is an in-memory AdminRepository for service tests.
type fakeAdminRepo struct {
	accounts []*user.AdminAccount
}

func (f *fakeAdminRepo) FindByUsername(username string) (*user.AdminAccount, error) {
	for _, a := range f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) Store(account *user.AdminAccount) error {
	f.accounts = append(f.accounts, account)
	return nil
}

// fakeBroadcaster records published events.
type fakeBroadcaster struct {
	events []messaging.Event
}

func (f *fakeBroadcaster) Subscribe() chan messaging.Event     { return make(chan messaging.Event, 1) }
func (f *fakeBroadcaster) Unsubscribe(ch chan messaging.Event) {}
func (f *fakeBroadcaster) Publish(event messaging.Event)       { f.events = append(f.events, event) }
func (f *fakeBroadcaster) SubscriberCount() int                { return 0 }
