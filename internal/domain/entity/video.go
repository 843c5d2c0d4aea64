package entity

import "time"

// VideoOwner is the reduced user projection embedded in watch history entries.
type VideoOwner struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// WatchedVideo is a video from a user's watch history with its owner resolved.
type WatchedVideo struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	VideoFile   string      `json:"videoFile"`
	Thumbnail   string      `json:"thumbnail"`
	Duration    float64     `json:"duration"`
	Views       int64       `json:"views"`
	IsPublished bool        `json:"isPublished"`
	Owner       *VideoOwner `json:"owner"` // Nil when the owner account no longer exists.
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
