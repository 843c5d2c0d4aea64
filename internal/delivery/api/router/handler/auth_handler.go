package handler

import (
	"net/http"

	"tube/config"
	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/response"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/service"
	"tube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	TokenService service.TokenService
	Config       *config.Config
}

// AuthHandler holds the session endpoints.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies tokenCookies
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: newTokenCookies(params.Config, params.TokenService),
	}
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bind(c, &input); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, output.TokenPair)

	return response.Success(c, http.StatusOK, output, "User loggedIn successfully")
}

// Logout revokes the refresh token of the authenticated user and clears both cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.authUC.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.clear(c)

	return response.Success(c, http.StatusOK, nil, "User logged out successfully")
}

// RefreshToken rotates the token pair. The refresh token is read from its
// cookie, falling back to the request body. An unreadable body counts as a
// missing token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil && cookie.Value != "" {
		input.RefreshToken = cookie.Value
	} else if err := c.Bind(&input); err != nil {
		input.RefreshToken = ""
	}

	tokens, err := h.authUC.RefreshToken(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, *tokens)

	return response.Success(c, http.StatusOK, tokens, "Access token refreshed")
}
