// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tube/internal/domain/entity"
	"tube/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the text fields of a registration form. The avatar and
// cover image travel separately as media files.
type RegisterInput struct {
	FullName string `form:"fullname" json:"fullname" validate:"notblank"`
	Username string `form:"username" json:"username" validate:"notblank"`
	Email    string `form:"email" json:"email" validate:"notblank"`
	Password string `form:"password" json:"password" validate:"notblank,maxbytes=72"`
}

// ChangePasswordInput defines the data required to replace the current password.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" form:"oldPassword" validate:"notblank"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"notblank,maxbytes=72"`
}

// UpdateAccountInput defines the profile fields a user may change.
type UpdateAccountInput struct {
	FullName string `json:"fullname" form:"fullname" validate:"notblank"`
	Email    string `json:"email" form:"email" validate:"notblank"`
}

// --- Output DTOs ---

// UserOutput is the sanitized user returned to clients. It never carries the
// password hash or the refresh token.
type UserOutput struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullname"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage"`
	WatchHistory []string  `json:"watchHistory"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUserOutput projects user onto its client-safe form.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	history := user.WatchHistory
	if history == nil {
		history = []string{}
	}

	return &UserOutput{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Avatar:       user.Avatar,
		CoverImage:   user.CoverImage,
		WatchHistory: history,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// UserUsecase defines the interface for account mutations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an account. avatar is required, cover may be nil.
	Register(ctx context.Context, input *RegisterInput, avatar, cover *service.MediaFile) (*UserOutput, error)
	ChangePassword(ctx context.Context, userID string, input *ChangePasswordInput) (*UserOutput, error)
	UpdateAccount(ctx context.Context, userID string, input *UpdateAccountInput) (*UserOutput, error)
	UpdateAvatar(ctx context.Context, userID string, avatar *service.MediaFile) (*UserOutput, error)
	UpdateCoverImage(ctx context.Context, userID string, cover *service.MediaFile) (*UserOutput, error)
}
