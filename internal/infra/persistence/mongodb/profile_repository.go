package mongodb

import (
	"context"

	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// profileRepository implements repository.ProfileRepository with aggregation
// pipelines rooted at the 'users' collection.
type profileRepository struct {
	users *mongo.Collection
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{
		users: db.Collection(model.UsersCollection),
	}
}

// FindChannelProfile runs the channel view pipeline for username.
func (repo *profileRepository) FindChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	// Anonymous or malformed viewer ids never match a subscriber.
	viewer, err := primitive.ObjectIDFromHex(viewerID)
	if err != nil {
		viewer = primitive.NilObjectID
	}

	cursor, err := repo.users.Aggregate(ctx, channelProfilePipeline(username, viewer))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate channel profile")
	}

	var results []model.ChannelProfileModel
	if err := cursor.All(ctx, &results); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode channel profile")
	}
	if len(results) == 0 {
		return nil, repository.ErrChannelNotFound
	}

	return toChannelProfileDomain(&results[0]), nil
}

// FindWatchHistory runs the watch history pipeline for userID.
func (repo *profileRepository) FindWatchHistory(ctx context.Context, userID string) ([]*entity.WatchedVideo, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	cursor, err := repo.users.Aggregate(ctx, watchHistoryPipeline(oid))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate watch history")
	}

	var results []model.WatchHistoryModel
	if err := cursor.All(ctx, &results); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode watch history")
	}
	if len(results) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return orderWatchHistory(&results[0]), nil
}

// orderWatchHistory restores watch-history order, since $lookup returns
// foreign documents in collection order. Ids whose video no longer exists are
// skipped and repeated ids repeat the video.
func orderWatchHistory(m *model.WatchHistoryModel) []*entity.WatchedVideo {
	byID := make(map[primitive.ObjectID]*model.WatchedVideoModel, len(m.Videos))
	for i := range m.Videos {
		byID[m.Videos[i].ID] = &m.Videos[i]
	}

	videos := make([]*entity.WatchedVideo, 0, len(m.WatchHistory))
	for _, id := range m.WatchHistory {
		if video, ok := byID[id]; ok {
			videos = append(videos, toWatchedVideoDomain(video))
		}
	}

	return videos
}

// channelProfilePipeline joins subscriptions twice: once where the user is the
// channel (its subscribers) and once where it is the subscriber (channels it follows).
func channelProfilePipeline(username string, viewer primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.SubscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.SubscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribedTo"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "subscribedToCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
			{Key: "isSubscribed", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$subscribers.subscriber"}}}},
				{Key: "then", Value: true},
				{Key: "else", Value: false},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "fullname", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "subscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
		}}},
	}
}

// watchHistoryPipeline resolves the user's watch history against 'videos' and,
// per video, its owner against 'users' reduced to a single object.
func watchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	ownerLookup := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: model.UsersCollection},
		{Key: "localField", Value: "owner"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "owner"},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "fullname", Value: 1},
				{Key: "username", Value: 1},
				{Key: "avatar", Value: 1},
			}}},
		}},
	}}}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.VideosCollection},
			{Key: "localField", Value: "watchHistory"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videos"},
			{Key: "pipeline", Value: bson.A{
				ownerLookup,
				bson.D{{Key: "$addFields", Value: bson.D{
					{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
				}}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "watchHistory", Value: 1},
			{Key: "videos", Value: 1},
		}}},
	}
}
