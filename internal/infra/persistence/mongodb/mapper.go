package mongodb

import (
	"tube/internal/domain/entity"
	"tube/internal/errors"
	"tube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toUserDomain(m *model.UserModel) *entity.User {
	history := make([]string, 0, len(m.WatchHistory))
	for _, id := range m.WatchHistory {
		history = append(history, id.Hex())
	}

	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		Avatar:       m.Avatar,
		CoverImage:   m.CoverImage,
		PasswordHash: m.Password,
		RefreshToken: m.RefreshToken,
		WatchHistory: history,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) (*model.UserModel, error) {
	history := make([]primitive.ObjectID, 0, len(u.WatchHistory))
	for _, id := range u.WatchHistory {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid watch history id %q", id)
		}
		history = append(history, oid)
	}

	return &model.UserModel{
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		Password:     u.PasswordHash,
		RefreshToken: u.RefreshToken,
		WatchHistory: history,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}, nil
}

func toChannelProfileDomain(m *model.ChannelProfileModel) *entity.ChannelProfile {
	return &entity.ChannelProfile{
		ID:                m.ID.Hex(),
		Username:          m.Username,
		FullName:          m.FullName,
		Email:             m.Email,
		Avatar:            m.Avatar,
		CoverImage:        m.CoverImage,
		SubscribersCount:  m.SubscribersCount,
		SubscribedToCount: m.SubscribedToCount,
		IsSubscribed:      m.IsSubscribed,
	}
}

func toWatchedVideoDomain(m *model.WatchedVideoModel) *entity.WatchedVideo {
	video := &entity.WatchedVideo{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Owner != nil {
		video.Owner = &entity.VideoOwner{
			ID:       m.Owner.ID.Hex(),
			Username: m.Owner.Username,
			FullName: m.Owner.FullName,
			Avatar:   m.Owner.Avatar,
		}
	}

	return video
}
