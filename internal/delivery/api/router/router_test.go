package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tube/config"
	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/router/handler"
	mockService "tube/internal/mocks/service"
	mockUsecase "tube/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *mockService.MockTokenService {
	t.Helper()

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().AccessTokenDuration().Return(15 * time.Minute).Maybe()
	tokens.EXPECT().RefreshTokenDuration().Return(24 * time.Hour).Maybe()

	return tokens
}

func newTestRouter(t *testing.T, registry *prometheus.Registry) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	authUC := mockUsecase.NewMockAuthUsecase(t)

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, TokenService: newTestTokenService(t), Config: cfg}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t)}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t)}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC}),
		Gatherer:       registry,
		Config:         cfg,
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func TestRouter_RegisterRoutes(t *testing.T) {
	e := newTestRouter(t, prometheus.NewRegistry())

	registered := map[string]bool{}
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /metrics",
		"GET /media/*",
		"POST /api/v1/users/register",
		"POST /api/v1/users/login",
		"POST /api/v1/users/refresh-token",
		"POST /api/v1/users/logout",
		"POST /api/v1/users/change-password",
		"GET /api/v1/users/get-user",
		"PATCH /api/v1/users/update-account",
		"PATCH /api/v1/users/update-avatar",
		"PATCH /api/v1/users/update-coverImage",
		"GET /api/v1/users/c/:username",
		"GET /api/v1/users/history",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "tube_test_total", Help: "test counter"})
	require.NoError(t, registry.Register(counter))
	counter.Inc()

	e := newTestRouter(t, registry)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tube_test_total 1")
}
