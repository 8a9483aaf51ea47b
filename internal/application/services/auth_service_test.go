package services

import (
	"testing"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/security"
	"github.com/luckyspin/spinwheel-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthService, *user.AdminAccount) {
	t.Helper()
	config.JWTSecret = "test-secret"

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword() error = %v", err)
	}
	account := &user.AdminAccount{
		ID:           "01TESTADMIN",
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleSuperAdmin,
	}
	repo := &fakeAdminRepo{accounts: []*user.AdminAccount{account}}
	return NewAuthService(newTestLogger(t), newTestTracker(), repo), account
}

func TestAuthenticateAdmin(t *testing.T) {
	svc, account := newAuthFixture(t)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		result, err := svc.AuthenticateAdmin("admin", "correct horse")
		if err != nil {
			t.Fatalf("AuthenticateAdmin() error = %v", err)
		}
		if !result.Success || result.Token == "" {
			t.Fatalf("AuthenticateAdmin() = %+v, want success with token", result)
		}
		if result.Admin == nil || result.Admin.ID != account.ID || result.Admin.Role != user.RoleSuperAdmin {
			t.Errorf("admin view = %+v, want account projection", result.Admin)
		}

		claims := svc.VerifyToken(result.Token)
		if claims == nil {
			t.Fatal("VerifyToken() rejected a freshly issued token")
		}
		if claims.AdminID != account.ID || claims.Username != "admin" {
			t.Errorf("claims = %+v, want adminId %s", claims, account.ID)
		}
	})

	t.Run("wrong password and unknown username are indistinguishable", func(t *testing.T) {
		wrongPass, err := svc.AuthenticateAdmin("admin", "wrong")
		if err != nil {
			t.Fatalf("AuthenticateAdmin() error = %v", err)
		}
		unknownUser, err := svc.AuthenticateAdmin("nobody", "correct horse")
		if err != nil {
			t.Fatalf("AuthenticateAdmin() error = %v", err)
		}

		if wrongPass.Success || unknownUser.Success {
			t.Fatal("authentication succeeded with bad credentials")
		}
		if wrongPass.Error != unknownUser.Error {
			t.Errorf("error messages differ: %q vs %q", wrongPass.Error, unknownUser.Error)
		}
		if wrongPass.Token != "" || unknownUser.Token != "" {
			t.Error("failed authentication produced a token")
		}
	})
}

func TestVerifyToken(t *testing.T) {
	svc, account := newAuthFixture(t)

	t.Run("empty token", func(t *testing.T) {
		if claims := svc.VerifyToken(""); claims != nil {
			t.Errorf("VerifyToken(\"\") = %+v, want nil", claims)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if claims := svc.VerifyToken("not.a.jwt"); claims != nil {
			t.Errorf("VerifyToken() = %+v, want nil", claims)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign, err := security.GenerateAdminToken(account, "other-secret", time.Hour)
		if err != nil {
			t.Fatalf("GenerateAdminToken() error = %v", err)
		}
		if claims := svc.VerifyToken(foreign); claims != nil {
			t.Errorf("VerifyToken() accepted a foreign-signed token")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := security.GenerateAdminToken(account, config.JWTSecret, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateAdminToken() error = %v", err)
		}
		if claims := svc.VerifyToken(expired); claims != nil {
			t.Error("VerifyToken() accepted an expired token")
		}
	})
}
