package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tube/internal/delivery/context"
	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetChannelProfile retrieves the channel view of username.
func (srv *profileService) GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is missing")
	}

	srv.log(ctx).Debug("Getting channel profile", slog.String("username", username))

	profile, err := srv.profileRepo.FindChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, username)
		}

		return nil, errors.Wrap(err, "failed to get channel profile")
	}

	return profile, nil
}

// GetWatchHistory retrieves the watched videos of the user in watch order.
func (srv *profileService) GetWatchHistory(ctx context.Context, userID string) ([]*entity.WatchedVideo, error) {
	srv.log(ctx).Debug("Getting watch history", slog.String("userID", userID))

	videos, err := srv.profileRepo.FindWatchHistory(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, userID)
		}

		return nil, errors.Wrap(err, "failed to get watch history")
	}
	if videos == nil {
		videos = []*entity.WatchedVideo{}
	}

	return videos, nil
}
