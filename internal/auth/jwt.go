package auth

import (
	"errors"
	"time"

	"horplus-console/internal/config"
	"horplus-console/internal/timeutil"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the console's own session token. Elevated marks a session that
// has passed the user-management code check; it is granted server-side only.
type Claims struct {
	Username string `json:"username"`
	Elevated bool   `json:"elevated"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	cfg *config.Config
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{cfg: cfg}
}

// GenerateToken creates a session token after a successful upstream login.
func (j *JWTManager) GenerateToken(username string, elevated bool) (string, error) {
	now := timeutil.Now()
	expirationTime := now.Add(time.Duration(j.cfg.Session.ExpirationHours) * time.Hour)

	claims := &Claims{
		Username: username,
		Elevated: elevated,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.cfg.Session.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.cfg.Session.Secret))
}

// ValidateToken verifies a session token and returns the claims
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(j.cfg.Session.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
