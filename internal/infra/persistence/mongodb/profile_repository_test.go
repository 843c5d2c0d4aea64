package mongodb

import (
	"testing"
	"time"

	"tube/internal/domain/repository"
	"tube/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func stageNames(t *testing.T, pipeline []bson.D) []string {
	t.Helper()

	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		require.Len(t, stage, 1)
		names = append(names, stage[0].Key)
	}

	return names
}

func TestChannelProfilePipeline(t *testing.T) {
	viewer := primitive.NewObjectID()
	pipeline := channelProfilePipeline("alice", viewer)

	assert.Equal(t, []string{"$match", "$lookup", "$lookup", "$addFields", "$project"}, stageNames(t, pipeline))
	assert.Equal(t, bson.D{{Key: "username", Value: "alice"}}, pipeline[0][0].Value)

	subscribers := pipeline[1][0].Value.(bson.D)
	assert.Contains(t, subscribers, bson.E{Key: "foreignField", Value: "channel"})
	assert.Contains(t, subscribers, bson.E{Key: "as", Value: "subscribers"})

	subscribedTo := pipeline[2][0].Value.(bson.D)
	assert.Contains(t, subscribedTo, bson.E{Key: "foreignField", Value: "subscriber"})
	assert.Contains(t, subscribedTo, bson.E{Key: "as", Value: "subscribedTo"})

	fields := pipeline[3][0].Value.(bson.D)
	require.Len(t, fields, 3)
	cond := fields[2].Value.(bson.D)[0].Value.(bson.D)
	in := cond[0].Value.(bson.D)[0]
	assert.Equal(t, "$in", in.Key)
	assert.Equal(t, bson.A{viewer, "$subscribers.subscriber"}, in.Value)

	projected := pipeline[4][0].Value.(bson.D)
	for _, field := range projected {
		assert.NotEqual(t, "password", field.Key)
		assert.NotEqual(t, "refreshToken", field.Key)
	}
}

func TestWatchHistoryPipeline(t *testing.T) {
	id := primitive.NewObjectID()
	pipeline := watchHistoryPipeline(id)

	assert.Equal(t, []string{"$match", "$lookup", "$project"}, stageNames(t, pipeline))
	assert.Equal(t, bson.D{{Key: "_id", Value: id}}, pipeline[0][0].Value)

	lookup := pipeline[1][0].Value.(bson.D)
	assert.Contains(t, lookup, bson.E{Key: "from", Value: model.VideosCollection})
	assert.Contains(t, lookup, bson.E{Key: "localField", Value: "watchHistory"})

	nested := lookup[4].Value.(bson.A)
	require.Len(t, nested, 2)
	assert.Equal(t, "$lookup", nested[0].(bson.D)[0].Key)
	assert.Equal(t, bson.D{{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}}}, nested[1].(bson.D)[0].Value)
}

func TestOrderWatchHistory(t *testing.T) {
	first, second, missing := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	owner := primitive.NewObjectID()

	m := &model.WatchHistoryModel{
		WatchHistory: []primitive.ObjectID{second, missing, first, second},
		Videos: []model.WatchedVideoModel{
			{ID: first, Title: "first", Owner: &model.VideoOwnerModel{ID: owner, Username: "bob"}},
			{ID: second, Title: "second"},
		},
	}

	videos := orderWatchHistory(m)

	require.Len(t, videos, 3)
	assert.Equal(t, "second", videos[0].Title)
	assert.Equal(t, "first", videos[1].Title)
	assert.Equal(t, "second", videos[2].Title)
	require.NotNil(t, videos[1].Owner)
	assert.Equal(t, owner.Hex(), videos[1].Owner.ID)
	assert.Equal(t, "bob", videos[1].Owner.Username)
	assert.Nil(t, videos[0].Owner)
}

func TestProfileRepository_FindChannelProfile(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "alice"},
			{Key: "fullname", Value: "Alice Liddell"},
			{Key: "email", Value: "alice@example.com"},
			{Key: "avatar", Value: "a.png"},
			{Key: "coverImage", Value: ""},
			{Key: "subscribersCount", Value: int32(2)},
			{Key: "subscribedToCount", Value: int32(1)},
			{Key: "isSubscribed", Value: true},
		}))

		profile, err := NewProfileRepository(mt.DB).FindChannelProfile(t.Context(), "alice", primitive.NewObjectID().Hex())

		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), profile.ID)
		assert.EqualValues(mt, 2, profile.SubscribersCount)
		assert.EqualValues(mt, 1, profile.SubscribedToCount)
		assert.True(mt, profile.IsSubscribed)
	})

	mt.Run("unknown channel", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		_, err := NewProfileRepository(mt.DB).FindChannelProfile(t.Context(), "ghost", "")

		assert.True(mt, errors.Is(err, repository.ErrChannelNotFound))
	})
}

func TestProfileRepository_FindChannelProfile_SubscriptionCounts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	tests := []struct {
		name         string
		subscribers  int32
		subscribedTo int32
		isSubscribed bool
	}{
		{name: "no subscribers", subscribers: 0, subscribedTo: 0, isSubscribed: false},
		{name: "one subscriber is the viewer", subscribers: 1, subscribedTo: 0, isSubscribed: true},
		{name: "one subscriber other than the viewer", subscribers: 1, subscribedTo: 1, isSubscribed: false},
		{name: "many subscribers including the viewer", subscribers: 5, subscribedTo: 3, isSubscribed: true},
		{name: "many subscribers without the viewer", subscribers: 5, subscribedTo: 1, isSubscribed: false},
	}

	for _, tt := range tests {
		mt.Run(tt.name, func(mt *mtest.T) {
			viewer := primitive.NewObjectID()
			mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "username", Value: "alice"},
				{Key: "subscribersCount", Value: tt.subscribers},
				{Key: "subscribedToCount", Value: tt.subscribedTo},
				{Key: "isSubscribed", Value: tt.isSubscribed},
			}))

			profile, err := NewProfileRepository(mt.DB).FindChannelProfile(t.Context(), "alice", viewer.Hex())

			require.NoError(mt, err)
			assert.EqualValues(mt, tt.subscribers, profile.SubscribersCount)
			assert.EqualValues(mt, tt.subscribedTo, profile.SubscribedToCount)
			assert.Equal(mt, tt.isSubscribed, profile.IsSubscribed)

			evt := mt.GetStartedEvent()
			require.NotNil(mt, evt)
			assert.Equal(mt, "aggregate", evt.CommandName)
			sent := evt.Command.Lookup("pipeline", "3", "$addFields", "isSubscribed", "$cond", "if", "$in", "0")
			assert.Equal(mt, viewer, sent.ObjectID())
		})
	}

	mt.Run("malformed viewer matches nobody", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "username", Value: "alice"},
		}))

		_, err := NewProfileRepository(mt.DB).FindChannelProfile(t.Context(), "alice", "not-an-id")

		require.NoError(mt, err)
		sent := mt.GetStartedEvent().Command.Lookup("pipeline", "3", "$addFields", "isSubscribed", "$cond", "if", "$in", "0")
		assert.Equal(mt, primitive.NilObjectID, sent.ObjectID())
	})
}

func TestProfileRepository_FindWatchHistory(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ordered videos", func(mt *mtest.T) {
		userID, v1, v2 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: userID},
			{Key: "watchHistory", Value: bson.A{v2, v1}},
			{Key: "videos", Value: bson.A{
				bson.D{{Key: "_id", Value: v1}, {Key: "title", Value: "one"}, {Key: "createdAt", Value: created}},
				bson.D{{Key: "_id", Value: v2}, {Key: "title", Value: "two"}, {Key: "duration", Value: 12.5}},
			}},
		}))

		videos, err := NewProfileRepository(mt.DB).FindWatchHistory(t.Context(), userID.Hex())

		require.NoError(mt, err)
		require.Len(mt, videos, 2)
		assert.Equal(mt, "two", videos[0].Title)
		assert.InDelta(mt, 12.5, videos[0].Duration, 0.0001)
		assert.Equal(mt, "one", videos[1].Title)
		assert.True(mt, created.Equal(videos[1].CreatedAt))
	})

	mt.Run("empty history", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: userID},
			{Key: "watchHistory", Value: bson.A{}},
			{Key: "videos", Value: bson.A{}},
		}))

		videos, err := NewProfileRepository(mt.DB).FindWatchHistory(t.Context(), userID.Hex())

		require.NoError(mt, err)
		assert.NotNil(mt, videos)
		assert.Empty(mt, videos)
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		_, err := NewProfileRepository(mt.DB).FindWatchHistory(t.Context(), primitive.NewObjectID().Hex())

		assert.True(mt, errors.Is(err, repository.ErrUserNotFound))
	})
}
