// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/response"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	avatarField     = "avatar"
	coverImageField = "coverImage"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler holds the account endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// Register handles the multipart registration form.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bind(c, &input); err != nil {
		return err
	}

	avatar, avatarCloser, err := formFile(c, avatarField)
	if err != nil {
		return err
	}
	defer avatarCloser.Close()

	cover, coverCloser, err := formFile(c, coverImageField)
	if err != nil {
		return err
	}
	defer coverCloser.Close()

	user, err := h.userUC.Register(c.Request().Context(), &input, avatar, cover)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User registered successfully")
}

// ChangePassword replaces the password of the authenticated user.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.ChangePasswordInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.ChangePassword(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Password changed successfully")
}

// GetCurrentUser returns the user resolved by the auth middleware.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": user}, "User data fetched successfully")
}

// UpdateAccount changes the full name and email of the authenticated user.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.UpdateAccountInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.UpdateAccount(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "user details updated successfully")
}

// UpdateAvatar replaces the avatar of the authenticated user.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	avatar, closer, err := formFile(c, avatarField)
	if err != nil {
		return err
	}
	defer closer.Close()

	user, err := h.userUC.UpdateAvatar(c.Request().Context(), userID, avatar)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "avatar updated successfully")
}

// UpdateCoverImage replaces the cover image of the authenticated user.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	cover, closer, err := formFile(c, coverImageField)
	if err != nil {
		return err
	}
	defer closer.Close()

	user, err := h.userUC.UpdateCoverImage(c.Request().Context(), userID, cover)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "cover image updated successfully")
}
