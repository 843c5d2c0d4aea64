package handler

import (
	"context"
	"net/http"
	"time"

	"tube/internal/delivery/api/response"
	domainerrors "tube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB *mongo.Database
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		ping: func(ctx context.Context) error {
			return params.DB.Client().Ping(ctx, readpref.Primary())
		},
	}
}

// HealthCheck pings the database.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		return domainerrors.ErrServiceUnavailable.WithDetails("database unreachable")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
