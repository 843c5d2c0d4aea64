package usecase

import "context"

// LoginInput defines the data required for a user to log in. Either Username
// or Email identifies the account.
type LoginInput struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password" validate:"notblank"`
}

// RefreshTokenInput carries the refresh token when it is not sent as a cookie.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	User *UserOutput `json:"user"`
	TokenPair
}

// AuthUsecase defines session operations: issuing, rotating, revoking and
// resolving tokens.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Logout revokes the stored refresh token of the user.
	Logout(ctx context.Context, userID string) error
	// RefreshToken rotates both tokens. The presented refresh token must be the
	// one currently stored for its user, so every refresh token works once.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Authenticate resolves an access token to the sanitized user it belongs to.
	Authenticate(ctx context.Context, accessToken string) (*UserOutput, error)
}
