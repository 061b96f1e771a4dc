package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sajid-dev/bloghub/backend/internal/models"
)

// ErrInvalidToken is returned for every verification failure. Callers get no
// distinction between a bad signature, a malformed token and an expired one.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies signed, time-limited session tokens
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService with the given symmetric secret and
// token lifetime
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue produces a signed token embedding the user identifier and an
// expiration timestamp
func (s *TokenService) Issue(userID uint, email string) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiration and returns the embedded claims
func (s *TokenService) Verify(tokenString string) (*models.JwtCustomClaims, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
