// Package user provides the concrete SQL-based implementations of
// the user domain repositories (Lead, VisitorSession, AdminAccount).
package user

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/persistence/database"
	"github.com/mattn/go-sqlite3"
)

// SQLLeadRepository is the SQL-based implementation of the LeadRepository.
type SQLLeadRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLLeadRepository creates a new instance of the repository.
func NewSQLLeadRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLLeadRepository {
	return &SQLLeadRepository{
		db:     db,
		logger: logger,
	}
}

const leadColumns = `id, email, phone, location, ip_address, user_agent, device,
	       browser, operating_system, latitude, longitude, prize, session_id, created_at`

// FindByID retrieves a Lead by its unique identifier.
func (r *SQLLeadRepository) FindByID(id string) (*user.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading lead by ID", "id", id)

	row := r.db.QueryRow(query, id)
	lead, err := scanLead(row)
	if err != nil {
		r.logger.Database().Error("Failed to load lead by ID", "error", err.Error(), "id", id)
		return nil, err
	}

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return lead, nil
}

// FindByEmail retrieves a Lead by its normalized email address.
func (r *SQLLeadRepository) FindByEmail(email string) (*user.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE email = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading lead by email", "email", email)

	row := r.db.QueryRow(query, normalizeEmail(email))
	lead, err := scanLead(row)
	if err != nil {
		r.logger.Database().Error("Failed to load lead by email", "error", err.Error(), "email", email)
		return nil, err
	}

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return lead, nil
}

// Store saves a new Lead to the database. A violated email uniqueness
// constraint is surfaced as user.ErrDuplicateEmail.
func (r *SQLLeadRepository) Store(lead *user.Lead) error {
	const query = `
		INSERT INTO leads (id, email, phone, location, ip_address, user_agent, device,
		                   browser, operating_system, latitude, longitude, prize, session_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing lead insert", "id", lead.ID, "email", lead.Email)

	var latitude, longitude any
	if lead.Coordinates != nil {
		latitude = lead.Coordinates.Latitude
		longitude = lead.Coordinates.Longitude
	}
	var sessionID any
	if lead.SessionID != nil {
		sessionID = *lead.SessionID
	}

	_, err := r.db.Exec(
		query,
		lead.ID,
		normalizeEmail(lead.Email),
		lead.Phone,
		lead.Location,
		lead.Meta.IPAddress,
		lead.Meta.UserAgent,
		lead.Meta.Device,
		lead.Meta.Browser,
		lead.Meta.OperatingSystem,
		latitude,
		longitude,
		lead.Prize,
		sessionID,
		lead.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Database().Debug("Lead insert rejected by unique constraint", "email", lead.Email)
			return user.ErrDuplicateEmail
		}
		r.logger.Database().Error("Lead insert failed", "error", err.Error(), "id", lead.ID, "email", lead.Email)
		return err
	}

	r.logger.Database().Info("Lead insert completed", "id", lead.ID, "email", lead.Email, "duration", time.Since(start))
	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return nil
}

// List retrieves a page of Leads ordered newest-first.
func (r *SQLLeadRepository) List(offset, limit int) ([]*user.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT ? OFFSET ?`

	start := time.Now()
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		r.logger.Database().Error("Lead list query failed", "error", err.Error())
		return nil, err
	}
	defer rows.Close()

	var leads []*user.Lead
	for rows.Next() {
		lead, err := scanLeadFromRows(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return leads, nil
}

// Count returns the total number of stored Leads.
func (r *SQLLeadRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&count); err != nil {
		r.logger.Database().Error("Lead count query failed", "error", err.Error())
		return 0, err
	}
	return count, nil
}

// scanLead is a helper function to scan a sql.Row into a Lead struct.
func scanLead(row *sql.Row) (*user.Lead, error) {
	lead, err := scanLeadColumns(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	return lead, err
}

// scanLeadFromRows is a helper function to scan from sql.Rows into a Lead struct.
func scanLeadFromRows(rows *sql.Rows) (*user.Lead, error) {
	return scanLeadColumns(rows.Scan)
}

func scanLeadColumns(scan func(dest ...any) error) (*user.Lead, error) {
	var lead user.Lead
	var latitude, longitude sql.NullFloat64
	var sessionID sql.NullString
	var createdAtStr string

	err := scan(
		&lead.ID,
		&lead.Email,
		&lead.Phone,
		&lead.Location,
		&lead.Meta.IPAddress,
		&lead.Meta.UserAgent,
		&lead.Meta.Device,
		&lead.Meta.Browser,
		&lead.Meta.OperatingSystem,
		&latitude,
		&longitude,
		&lead.Prize,
		&sessionID,
		&createdAtStr,
	)
	if err != nil {
		return nil, err
	}

	// Handle nullable fields
	if latitude.Valid && longitude.Valid {
		lead.Coordinates = &user.Coordinates{
			Latitude:  latitude.Float64,
			Longitude: longitude.Float64,
		}
	}
	if sessionID.Valid {
		lead.SessionID = &sessionID.String
	}

	lead.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

// parseTimestamp parses RFC3339 and falls back to the plain SQL format.
func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02 15:04:05", value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t, nil
}

// normalizeEmail lowercases and trims an email before it touches the store.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isUniqueViolation detects a uniqueness-constraint rejection from either
// driver (go-sqlite3 typed errors, libsql string errors).
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
