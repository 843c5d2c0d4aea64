package service

import (
	"time"

	"tube/internal/domain/entity"
	"tube/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens inside the claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// ErrInvalidToken is returned for any token that fails parsing, signature,
// expiry or type checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims for the JWT tokens. The user id travels in
// the registered "sub" claim.
type Claims struct {
	Username string    `json:"username,omitempty"`
	Email    string    `json:"email,omitempty"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the token.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a short-lived token carrying the user's id, username and email.
	GenerateAccessToken(user *entity.User) (string, error)

	// GenerateRefreshToken signs a long-lived token carrying only the user id.
	GenerateRefreshToken(userID string) (string, error)

	// ValidateAccessToken verifies signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
