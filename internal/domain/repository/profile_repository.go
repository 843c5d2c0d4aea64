package repository

import (
	"context"

	"tube/internal/domain/entity"
	"tube/internal/errors"
)

// ErrChannelNotFound is returned when no user carries the requested username.
var ErrChannelNotFound = errors.New("channel not found")

// ProfileRepository runs the read-only aggregate views over users, subscriptions and videos.
type ProfileRepository interface {
	// FindChannelProfile resolves username to its channel view. viewerID decides
	// IsSubscribed and may be empty for anonymous viewers.
	FindChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)

	// FindWatchHistory returns the videos the user watched, in watch-history order,
	// each with its owner resolved.
	FindWatchHistory(ctx context.Context, userID string) ([]*entity.WatchedVideo, error)
}
