package user

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/persistence/database"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/security"
)

// SQLVisitorSessionRepository is the SQL-based implementation of the
// VisitorSessionRepository. Page views live in a JSON array column so the
// append is a single document-style update.
type SQLVisitorSessionRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLVisitorSessionRepository creates a new instance of the repository.
func NewSQLVisitorSessionRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLVisitorSessionRepository {
	return &SQLVisitorSessionRepository{
		db:     db,
		logger: logger,
	}
}

const sessionColumns = `id, session_id, ip_address, user_agent, device, browser,
	       operating_system, lead_id, page_views, created_at, updated_at`

// FindBySessionID retrieves a VisitorSession by its browser session identifier.
func (r *SQLVisitorSessionRepository) FindBySessionID(sessionID string) (*user.VisitorSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM visitor_sessions WHERE session_id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading visitor session", "sessionId", sessionID)

	row := r.db.QueryRow(query, sessionID)
	session, err := scanSession(row)
	if err != nil {
		r.logger.Database().Error("Failed to load visitor session", "error", err.Error(), "sessionId", sessionID)
		return nil, err
	}

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return session, nil
}

// RecordPageView appends a page view to the session identified by sessionID,
// creating the session with the supplied metadata if it does not exist yet.
// The whole operation is one upsert statement so concurrent page-view bursts
// from the same session append instead of overwriting each other.
func (r *SQLVisitorSessionRepository) RecordPageView(sessionID string, meta user.ClientMeta, view user.PageView) error {
	const query = `
		INSERT INTO visitor_sessions (id, session_id, ip_address, user_agent, device,
		                              browser, operating_system, page_views, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, json_array(json(?)), ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			page_views = json_insert(visitor_sessions.page_views, '$[#]', json(?)),
			updated_at = excluded.updated_at`

	start := time.Now()
	r.logger.Database().Debug("Recording page view", "sessionId", sessionID, "page", view.Page)

	viewJSON, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode page view: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.Exec(
		query,
		security.GenerateULID(),
		sessionID,
		meta.IPAddress,
		meta.UserAgent,
		meta.Device,
		meta.Browser,
		meta.OperatingSystem,
		string(viewJSON),
		now,
		now,
		string(viewJSON),
	)
	if err != nil {
		r.logger.Database().Error("Page view upsert failed", "error", err.Error(), "sessionId", sessionID)
		return err
	}

	r.logger.Database().Info("Page view recorded", "sessionId", sessionID, "page", view.Page, "duration", time.Since(start))
	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return nil
}

// LinkToLead sets the lead back-reference on a session. An existing linkage
// is never overwritten.
func (r *SQLVisitorSessionRepository) LinkToLead(sessionID, leadID string) error {
	const query = `
		UPDATE visitor_sessions
		SET lead_id = ?, updated_at = ?
		WHERE session_id = ? AND lead_id IS NULL`

	result, err := r.db.Exec(query, leadID, time.Now().UTC().Format(time.RFC3339), sessionID)
	if err != nil {
		r.logger.Database().Error("Session lead linkage failed", "error", err.Error(), "sessionId", sessionID, "leadId", leadID)
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no unlinked session found for %s", sessionID)
	}

	r.logger.Database().Info("Session linked to lead", "sessionId", sessionID, "leadId", leadID)
	return nil
}

// List retrieves a page of VisitorSessions ordered newest-first.
func (r *SQLVisitorSessionRepository) List(offset, limit int) ([]*user.VisitorSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM visitor_sessions ORDER BY created_at DESC LIMIT ? OFFSET ?`

	start := time.Now()
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		r.logger.Database().Error("Visitor session list query failed", "error", err.Error())
		return nil, err
	}
	defer rows.Close()

	var sessions []*user.VisitorSession
	for rows.Next() {
		session, err := scanSessionFromRows(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return sessions, nil
}

// Count returns the total number of stored VisitorSessions.
func (r *SQLVisitorSessionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM visitor_sessions`).Scan(&count); err != nil {
		r.logger.Database().Error("Visitor session count query failed", "error", err.Error())
		return 0, err
	}
	return count, nil
}

// Stats computes the visitor aggregate in one full-collection pass. This is
// recomputed per request and only acceptable at small scale.
func (r *SQLVisitorSessionRepository) Stats() (*user.VisitorStats, error) {
	const query = `
		SELECT ip_address, device, browser, operating_system, json_array_length(page_views)
		FROM visitor_sessions`

	start := time.Now()
	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Visitor stats query failed", "error", err.Error())
		return nil, err
	}
	defer rows.Close()

	stats := &user.VisitorStats{
		DeviceTypes:      []string{},
		Browsers:         []string{},
		OperatingSystems: []string{},
	}
	seenIPs := make(map[string]struct{})

	for rows.Next() {
		var ip, device, browser, os string
		var pageViews int
		if err := rows.Scan(&ip, &device, &browser, &os, &pageViews); err != nil {
			return nil, err
		}

		stats.TotalVisitors++
		stats.TotalPageViews += pageViews
		seenIPs[ip] = struct{}{}
		stats.DeviceTypes = append(stats.DeviceTypes, device)
		stats.Browsers = append(stats.Browsers, browser)
		stats.OperatingSystems = append(stats.OperatingSystems, os)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	stats.UniqueIPs = len(seenIPs)

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return stats, nil
}

// scanSession is a helper function to scan a sql.Row into a VisitorSession struct.
func scanSession(row *sql.Row) (*user.VisitorSession, error) {
	session, err := scanSessionColumns(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	return session, err
}

// scanSessionFromRows is a helper function to scan from sql.Rows into a VisitorSession struct.
func scanSessionFromRows(rows *sql.Rows) (*user.VisitorSession, error) {
	return scanSessionColumns(rows.Scan)
}

func scanSessionColumns(scan func(dest ...any) error) (*user.VisitorSession, error) {
	var session user.VisitorSession
	var leadID sql.NullString
	var pageViewsJSON, createdAtStr, updatedAtStr string

	err := scan(
		&session.ID,
		&session.SessionID,
		&session.Meta.IPAddress,
		&session.Meta.UserAgent,
		&session.Meta.Device,
		&session.Meta.Browser,
		&session.Meta.OperatingSystem,
		&leadID,
		&pageViewsJSON,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	// Handle nullable lead_id
	if leadID.Valid {
		session.LeadID = &leadID.String
	}

	if err := json.Unmarshal([]byte(pageViewsJSON), &session.PageViews); err != nil {
		return nil, fmt.Errorf("failed to decode page views: %w", err)
	}

	session.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}
	session.UpdatedAt, err = parseTimestamp(updatedAtStr)
	if err != nil {
		return nil, err
	}

	return &session, nil
}
