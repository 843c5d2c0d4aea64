// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	deliverycontext "tube/internal/delivery/context"
	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/domain/service"
	"tube/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and starts a new session, replacing any
// refresh token issued before.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" && email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username or email is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	srv.log(ctx).Debug("Starting user login", slog.String("username", username), slog.String("email", email))

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("email", email), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("userID", user.ID), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		User:      usecase.NewUserOutput(user),
		TokenPair: *tokens,
	}, nil
}

// Logout unsets the stored refresh token so it can no longer be rotated.
func (srv *authService) Logout(ctx context.Context, userID string) error {
	if err := srv.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "logout")
		}

		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("User logged out", slog.String("userID", userID))

	return nil
}

// RefreshToken verifies the presented token against the stored one and issues
// a new pair, which invalidates the presented token.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "refresh token is missing")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WithDetails("invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WithDetails("invalid refresh token")
		}

		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	if subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(refreshToken)) != 1 {
		srv.log(ctx).Warn("Refresh token does not match the stored token", slog.String("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token mismatch")
	}

	tokens, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Tokens rotated", slog.String("userID", user.ID))

	return tokens, nil
}

// Authenticate resolves an access token to the user it was issued for.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*usecase.UserOutput, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "access token is missing")
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAccessTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccessTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find authenticated user")
	}

	return usecase.NewUserOutput(user), nil
}

// issueTokens signs a new pair and stores the refresh token on the user.
// Every failure is reported as a token generation failure.
func (srv *authService) issueTokens(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, "access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign refresh token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, "refresh token")
	}

	if err := srv.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, "store refresh token")
	}
	user.RefreshToken = refreshToken

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
