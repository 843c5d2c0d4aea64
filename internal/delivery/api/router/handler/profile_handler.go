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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the channel and watch history views.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// GetChannelProfile returns the channel named by the path as seen by the caller.
func (h *ProfileHandler) GetChannelProfile(c echo.Context) error {
	viewerID, _ := middleware.GetUserID(c)

	profile, err := h.profileUC.GetChannelProfile(c.Request().Context(), c.Param("username"), viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "User channel fetched successfully")
}

// GetWatchHistory returns the watched videos of the caller.
func (h *ProfileHandler) GetWatchHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	videos, err := h.profileUC.GetWatchHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Watch history fetched successfully")
}
