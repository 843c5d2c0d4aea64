package middleware

import (
	"tube/config"
	domainerrors "tube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// NewRateLimiter limits requests per client IP with a token bucket. A disabled
// configuration yields a pass-through middleware.
func NewRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.PerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errors.Wrap(domainerrors.ErrInternalError, "rate limiter identifier")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return errors.Wrap(domainerrors.ErrTooManyRequests, identifier)
		},
	})
}
