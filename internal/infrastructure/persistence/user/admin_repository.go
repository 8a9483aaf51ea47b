package user

import (
	"database/sql"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/persistence/database"
)

// SQLAdminRepository is the SQL-based implementation of the AdminRepository.
type SQLAdminRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLAdminRepository creates a new instance of the repository.
func NewSQLAdminRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLAdminRepository {
	return &SQLAdminRepository{
		db:     db,
		logger: logger,
	}
}

// FindByUsername retrieves an AdminAccount by its unique username.
func (r *SQLAdminRepository) FindByUsername(username string) (*user.AdminAccount, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, changed
		FROM admin_accounts
		WHERE username = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading admin account", "username", username)

	var account user.AdminAccount
	var changed sql.NullString
	var createdAtStr string

	err := r.db.QueryRow(query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&createdAtStr,
		&changed,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Database().Debug("Admin account not found", "username", username)
			return nil, nil
		}
		r.logger.Database().Error("Failed to load admin account", "error", err.Error(), "username", username)
		return nil, err
	}

	account.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}
	if changed.Valid {
		account.Changed, err = parseTimestamp(changed.String)
		if err != nil {
			return nil, err
		}
	}

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return &account, nil
}

// Store saves a new AdminAccount. The caller supplies the password hash;
// plaintext never reaches this layer.
func (r *SQLAdminRepository) Store(account *user.AdminAccount) error {
	const query = `
		INSERT INTO admin_accounts (id, username, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing admin insert", "id", account.ID, "username", account.Username)

	_, err := r.db.Exec(
		query,
		account.ID,
		account.Username,
		normalizeEmail(account.Email),
		account.PasswordHash,
		account.Role,
		account.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		r.logger.Database().Error("Admin insert failed", "error", err.Error(), "username", account.Username)
		return err
	}

	r.logger.Database().Info("Admin insert completed", "id", account.ID, "username", account.Username, "duration", time.Since(start))
	return nil
}
