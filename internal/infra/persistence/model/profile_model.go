package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChannelProfileModel is the output shape of the channel view aggregation.
type ChannelProfileModel struct {
	ID                primitive.ObjectID `bson:"_id"`
	Username          string             `bson:"username"`
	FullName          string             `bson:"fullname"`
	Email             string             `bson:"email"`
	Avatar            string             `bson:"avatar"`
	CoverImage        string             `bson:"coverImage"`
	SubscribersCount  int                `bson:"subscribersCount"`
	SubscribedToCount int                `bson:"subscribedToCount"`
	IsSubscribed      bool               `bson:"isSubscribed"`
}

// VideoOwnerModel is the owner projection nested into watched videos.
type VideoOwnerModel struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
	FullName string             `bson:"fullname"`
	Avatar   string             `bson:"avatar"`
}

// WatchedVideoModel is a 'videos' document with its owner already joined.
type WatchedVideoModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	VideoFile   string             `bson:"videoFile"`
	Thumbnail   string             `bson:"thumbnail"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"isPublished"`
	Owner       *VideoOwnerModel   `bson:"owner,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// WatchHistoryModel is the output shape of the watch history aggregation.
type WatchHistoryModel struct {
	ID           primitive.ObjectID   `bson:"_id"`
	WatchHistory []primitive.ObjectID `bson:"watchHistory"`
	Videos       []WatchedVideoModel  `bson:"videos"`
}
