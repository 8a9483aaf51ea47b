// Package user defines the interfaces for accessing lead, visitor session,
// and admin account entities. These repositories abstract the data
// persistence details, ensuring the core application is clean and decoupled
// from the database.
package user

import "time"

// Coordinates holds an optional geographic position captured from the
// browser. Latitude is bounded to [-90,90] and longitude to [-180,180].
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClientMeta holds network and device metadata derived from request headers.
// Parsing never fails hard; unknown values default to the Unknown* labels.
type ClientMeta struct {
	IPAddress       string `json:"ipAddress"`
	UserAgent       string `json:"userAgent"`
	Device          string `json:"device"`
	Browser         string `json:"browser"`
	OperatingSystem string `json:"operatingSystem"`
}

// Lead represents a converted visitor who completed the contact-capture form.
// Leads are created once on submission and never mutated.
type Lead struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	Meta        ClientMeta   `json:"meta"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Prize       string       `json:"prize"`
	SessionID   *string      `json:"sessionId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// PageView is one entry in a visitor session's ordered page-view sequence.
type PageView struct {
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	Duration  *int      `json:"duration,omitempty"` // dwell time in seconds
}

// VisitorSession is the activity record for one browsing session. It is
// created on the first page view and mutated only by appending page views
// and, on conversion, setting the Lead back-reference.
type VisitorSession struct {
	ID        string     `json:"id"`
	SessionID string     `json:"sessionId"`
	Meta      ClientMeta `json:"meta"`
	LeadID    *string    `json:"leadId,omitempty"`
	PageViews []PageView `json:"pageViews"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// AdminAccount represents an operator identity. The stored password hash is
// never the plaintext and is never serialized.
type AdminAccount struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	Changed      time.Time `json:"changed"`
}

// VisitorStats is the query-time aggregate over the full visitor session
// collection. Label slices are raw lists for client-side tallying.
type VisitorStats struct {
	TotalVisitors    int      `json:"totalVisitors"`
	UniqueIPs        int      `json:"uniqueIPs"`
	TotalPageViews   int      `json:"totalPageViews"`
	DeviceTypes      []string `json:"deviceTypes"`
	Browsers         []string `json:"browsers"`
	OperatingSystems []string `json:"operatingSystems"`
}

// LeadRepository defines the operations for persisting Lead entities.
type LeadRepository interface {
	FindByID(id string) (*Lead, error)
	FindByEmail(email string) (*Lead, error)
	Store(lead *Lead) error
	List(offset, limit int) ([]*Lead, error)
	Count() (int, error)
}

// VisitorSessionRepository defines the operations for persisting
// VisitorSession entities. RecordPageView is the atomic
// get-or-create-then-append operation: if no session exists for the
// session identifier one is created with the supplied metadata, and the
// page view is appended in the same statement so concurrent bursts from
// one session never lose updates.
type VisitorSessionRepository interface {
	FindBySessionID(sessionID string) (*VisitorSession, error)
	RecordPageView(sessionID string, meta ClientMeta, view PageView) error
	LinkToLead(sessionID, leadID string) error
	List(offset, limit int) ([]*VisitorSession, error)
	Count() (int, error)
	Stats() (*VisitorStats, error)
}

// AdminRepository defines the operations for persisting AdminAccount
// entities. Store hashes any plaintext password immediately before
// persistence; callers pass the hash, never the plaintext.
type AdminRepository interface {
	FindByUsername(username string) (*AdminAccount, error)
	Store(account *AdminAccount) error
}
