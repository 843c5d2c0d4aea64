// Package model holds the BSON document shapes stored in MongoDB.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	UsersCollection         = "users"
	SubscriptionsCollection = "subscriptions"
	VideosCollection        = "videos"
)

// UserModel mirrors a document of the 'users' collection.
type UserModel struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Email        string               `bson:"email"`
	FullName     string               `bson:"fullname"`
	Avatar       string               `bson:"avatar"`
	CoverImage   string               `bson:"coverImage"`
	Password     string               `bson:"password"`
	RefreshToken string               `bson:"refreshToken,omitempty"`
	WatchHistory []primitive.ObjectID `bson:"watchHistory"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}
