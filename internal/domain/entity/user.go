// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account record behind every channel. Identifiers are hex-encoded
// document ids so the domain stays independent of the storage driver.
type User struct {
	ID           string    // Hex-encoded document id.
	Username     string    // Unique, always lowercase.
	Email        string    // Unique, always lowercase.
	FullName     string    // Display name.
	Avatar       string    // Public URL of the avatar image. Required.
	CoverImage   string    // Public URL of the cover image. Empty when not set.
	PasswordHash string    // bcrypt hash. Never the plaintext password.
	RefreshToken string    // The single active refresh token, empty after logout.
	WatchHistory []string  // Ids of watched videos, oldest first.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// UserUpdate carries the profile fields to overwrite on an existing user.
// Nil fields are left untouched.
type UserUpdate struct {
	FullName     *string
	Email        *string
	Avatar       *string
	CoverImage   *string
	PasswordHash *string
}
