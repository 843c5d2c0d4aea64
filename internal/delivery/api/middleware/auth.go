package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "tube/internal/delivery/context"
	"tube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// AccessTokenCookie is the cookie carrying the access token.
	AccessTokenCookie = "accessToken"
	// RefreshTokenCookie is the cookie carrying the refresh token.
	RefreshTokenCookie = "refreshToken"

	userKey = "user"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves the access token of a request to its user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate reads the access token from the cookie, falling back to the
// Authorization header, and stores the sanitized user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := m.authUC.Authenticate(ctx, accessToken(c))
		if err != nil {
			return err
		}

		c.Set(userKey, user)

		ctx = deliverycontext.WithUserID(ctx, user.ID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", user.ID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	scheme, token, found := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// GetUser returns the user stored by Authenticate.
func GetUser(c echo.Context) (*usecase.UserOutput, bool) {
	user, ok := c.Get(userKey).(*usecase.UserOutput)

	return user, ok && user != nil
}

// GetUserID returns the id of the user stored by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	user, ok := GetUser(c)
	if !ok {
		return "", false
	}

	return user.ID, true
}
