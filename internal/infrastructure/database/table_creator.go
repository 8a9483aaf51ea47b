// Package database provides schema instantiation
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/security"
	"golang.org/x/crypto/bcrypt"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		location TEXT NOT NULL,
		ip_address TEXT NOT NULL DEFAULT 'unknown',
		user_agent TEXT NOT NULL DEFAULT '',
		device TEXT NOT NULL DEFAULT 'Unknown Device',
		browser TEXT NOT NULL DEFAULT 'Unknown Browser',
		operating_system TEXT NOT NULL DEFAULT 'Unknown OS',
		latitude REAL,
		longitude REAL,
		prize TEXT NOT NULL DEFAULT '',
		session_id TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS visitor_sessions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL UNIQUE,
		ip_address TEXT NOT NULL DEFAULT 'unknown',
		user_agent TEXT NOT NULL DEFAULT '',
		device TEXT NOT NULL DEFAULT 'Unknown Device',
		browser TEXT NOT NULL DEFAULT 'Unknown Browser',
		operating_system TEXT NOT NULL DEFAULT 'Unknown OS',
		lead_id TEXT REFERENCES leads(id),
		page_views TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admin_accounts (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin' CHECK (role IN ('admin', 'super-admin')),
		created_at TEXT NOT NULL,
		changed TEXT
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_visitor_sessions_created_at ON visitor_sessions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_visitor_sessions_ip ON visitor_sessions(ip_address)`,
}

// TableCreator handles the creation of the database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the database tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// SeedDefaultAdmin idempotently creates the default super-admin account from
// the supplied credentials. A blank password skips seeding entirely so a
// production deployment never gets a well-known account by accident.
func (tc *TableCreator) SeedDefaultAdmin(db *sql.DB, username, email, password string) error {
	if password == "" {
		return nil
	}

	var existingID string
	err := db.QueryRow("SELECT id FROM admin_accounts WHERE username = ?", username).Scan(&existingID)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = db.Exec(
		`INSERT INTO admin_accounts (id, username, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		security.GenerateULID(), username, email, string(hash), user.RoleSuperAdmin, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert seed admin: %w", err)
	}
	return nil
}
