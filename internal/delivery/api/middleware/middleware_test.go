package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tube/config"
	deliverycontext "tube/internal/delivery/context"
	domainerrors "tube/internal/domain/errors"
	mockUsecase "tube/internal/mocks/usecase"
	"tube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ErrorResponse {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrUserNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   domainerrors.ErrUserNotFound.ErrorCode(),
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.False(t, body.Success)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := newTestEcho()
	e.GET("/", func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "done")

		return errors.New("late failure")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &usecase.UserOutput{ID: "user-1", Username: "alice"}

	tests := []struct {
		name     string
		setup    func(req *http.Request)
		token    string
		authErr  error
		wantCode int
	}{
		{
			name:     "cookie token",
			setup:    func(req *http.Request) { req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-tok"}) },
			token:    "cookie-tok",
			wantCode: http.StatusOK,
		},
		{
			name:     "bearer header",
			setup:    func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer header-tok") },
			token:    "header-tok",
			wantCode: http.StatusOK,
		},
		{
			name: "cookie wins over header",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-tok"})
				req.Header.Set(echo.HeaderAuthorization, "Bearer header-tok")
			},
			token:    "cookie-tok",
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			setup:    func(req *http.Request) {},
			token:    "",
			authErr:  domainerrors.ErrUnauthorized,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non bearer scheme",
			setup:    func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Basic abc") },
			token:    "",
			authErr:  domainerrors.ErrUnauthorized,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "invalid token",
			setup:    func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer bad") },
			token:    "bad",
			authErr:  domainerrors.ErrAccessTokenInvalid,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			if tt.authErr != nil {
				authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(nil, tt.authErr)
			} else {
				authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(user, nil)
			}

			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

			var gotID, ctxID string
			e := newTestEcho()
			e.GET("/", func(c echo.Context) error {
				gotID, _ = GetUserID(c)
				ctxID = deliverycontext.GetUserIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			}, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.authErr == nil {
				assert.Equal(t, "user-1", gotID)
				assert.Equal(t, "user-1", ctxID)
			}
		})
	}
}

func TestGetUser_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUser(c)
	assert.False(t, ok)

	_, ok = GetUserID(c)
	assert.False(t, ok)
}

func TestNewRateLimiter(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, PerSecond: 0.001, Burst: 2, ExpiresIn: time.Minute}

	e := newTestEcho()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewRateLimiter(cfg))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestNewRateLimiter_Disabled(t *testing.T) {
	e := newTestEcho()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewRateLimiter(config.RateLimitConfig{}))

	for range 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
