package services

import (
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/security"
	"github.com/luckyspin/spinwheel-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentialsMessage is returned identically for an unknown username
// and a wrong password so callers cannot enumerate accounts.
const invalidCredentialsMessage = "Invalid credentials"

// AuthService handles authentication workflows and JWT operations
type AuthService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	adminRepo   user.AdminRepository
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker, adminRepo user.AdminRepository) *AuthService {
	return &AuthService{
		logger:      logger,
		perfTracker: perfTracker,
		adminRepo:   adminRepo,
	}
}

// AdminView is the safe projection of an admin account returned to clients.
// It never carries the password hash.
type AdminView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token   string     `json:"token"`
	Admin   *AdminView `json:"admin,omitempty"`
	Success bool       `json:"success"`
	Error   string     `json:"error,omitempty"`
}

// AuthenticateAdmin validates admin credentials and generates a bearer token.
func (a *AuthService) AuthenticateAdmin(username, password string) (*AuthResult, error) {
	start := time.Now()
	marker := a.perfTracker.StartOperation("authenticate_admin")
	defer marker.Complete()

	account, err := a.adminRepo.FindByUsername(username)
	if err != nil {
		a.logger.Auth().Error("Admin lookup failed", "error", err.Error(), "username", username)
		return nil, err
	}
	if account == nil {
		a.logger.LogAuthOperation("login", username, false, map[string]any{"reason": "unknown username"})
		return &AuthResult{Success: false, Error: invalidCredentialsMessage}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		a.logger.LogAuthOperation("login", username, false, map[string]any{"reason": "password mismatch"})
		return &AuthResult{Success: false, Error: invalidCredentialsMessage}, nil
	}

	token, err := security.GenerateAdminToken(account, config.JWTSecret, config.TokenLifetime)
	if err != nil {
		a.logger.Auth().Error("Token generation failed", "error", err.Error(), "username", username)
		return nil, err
	}

	a.logger.LogAuthOperation("login", username, true, map[string]any{"duration": time.Since(start).String()})
	marker.SetSuccess(true)

	return &AuthResult{
		Token:   token,
		Success: true,
		Admin: &AdminView{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
			Role:     account.Role,
		},
	}, nil
}

// VerifyToken decodes a bearer token. A nil result means the caller must be
// treated as unauthenticated; there is no partial trust on a bad token.
func (a *AuthService) VerifyToken(token string) *security.AdminClaims {
	if token == "" {
		return nil
	}

	claims, err := security.ValidateJWT(token, config.JWTSecret)
	if err != nil {
		a.logger.Auth().Debug("Token validation failed", "error", err.Error())
		return nil
	}

	return security.GetAdminFromClaims(claims)
}
