// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"tube/config"
	"tube/internal/domain/entity"
	"tube/internal/domain/service"
	"tube/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateAccessToken signs an access token carrying the user's identity.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("user id is required")
	}

	claims := s.newClaims(user.ID, service.TokenTypeAccess, s.accessTTL)
	claims.Username = user.Username
	claims.Email = user.Email

	return s.sign(claims, s.accessSecret)
}

// GenerateRefreshToken signs a refresh token carrying only the user id.
func (s *jwtService) GenerateRefreshToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	return s.sign(s.newClaims(userID, service.TokenTypeRefresh, s.refreshTTL), s.refreshSecret)
}

// ValidateAccessToken checks an access token against the access secret.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken checks a refresh token against the refresh secret.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// newClaims builds the registered claims. The random jti keeps two tokens
// issued within the same second distinct, which refresh rotation relies on.
func (s *jwtService) newClaims(userID string, tokenType service.TokenType, ttl time.Duration) *service.Claims {
	now := s.now()

	return &service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
}

func (s *jwtService) sign(claims *service.Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) validate(tokenString string, secret []byte, want service.TokenType) (*service.Claims, error) {
	if tokenString == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "token is empty")
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(errors.Join(service.ErrInvalidToken, err), "failed to parse token")
	}

	if claims.Type != want {
		return nil, errors.Wrapf(service.ErrInvalidToken, "unexpected token type %q", claims.Type)
	}
	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "token has no subject")
	}

	return claims, nil
}
