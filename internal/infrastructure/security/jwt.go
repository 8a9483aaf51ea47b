// Package security provides JWT token utilities
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/luckyspin/spinwheel-go/internal/domain/user"
)

// AdminClaims is the decoded view of an admin bearer token.
type AdminClaims struct {
	AdminID  string `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateAdminToken creates a signed bearer token for an admin account
// with the configured validity window.
func GenerateAdminToken(account *user.AdminAccount, jwtSecret string, lifetime time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"adminId":  account.ID,
		"username": account.Username,
		"role":     account.Role,
		"type":     "admin_auth",
		"iat":      now.Unix(),
		"exp":      now.Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// GetAdminFromClaims extracts admin identity from JWT claims. Any missing
// field invalidates the whole set; callers must treat a nil result as
// unauthenticated.
func GetAdminFromClaims(claims jwt.MapClaims) *AdminClaims {
	adminID, ok := claims["adminId"].(string)
	if !ok {
		return nil
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil
	}
	return &AdminClaims{
		AdminID:  adminID,
		Username: username,
		Role:     role,
	}
}
