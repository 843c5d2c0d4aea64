package usecase

import (
	"context"

	"tube/internal/domain/entity"
)

// ProfileUsecase defines the read-only channel and history views.
type ProfileUsecase interface {
	// GetChannelProfile returns the channel view of username as seen by viewerID.
	GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID string) ([]*entity.WatchedVideo, error)
}
