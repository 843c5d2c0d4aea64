package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tube/config"
	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/validator"
	mockService "tube/internal/mocks/service"
	mockUsecase "tube/internal/mocks/usecase"
	"tube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "valid-access"

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Code       string          `json:"code"`
	Errors     []string        `json:"errors"`
	Success    bool            `json:"success"`
}

type testServer struct {
	echo      *echo.Echo
	authUC    *mockUsecase.MockAuthUsecase
	userUC    *mockUsecase.MockUserUsecase
	profileUC *mockUsecase.MockProfileUsecase
}

func newTestHandlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Cookie = config.CookieConfig{Secure: true, SameSite: "strict"}

	return cfg
}

// newTestTokenService reports a 15 minute access and a 24 hour refresh lifetime.
func newTestTokenService(t *testing.T) *mockService.MockTokenService {
	t.Helper()

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().AccessTokenDuration().Return(15 * time.Minute).Maybe()
	tokens.EXPECT().RefreshTokenDuration().Return(24 * time.Hour).Maybe()

	return tokens
}

func newTestUserOutput() *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice Liddell",
		Avatar:       "https://cdn.example.com/avatars/a.png",
		WatchHistory: []string{},
	}
}

// newTestServer wires the handlers onto echo the same way the router does.
// Requests carrying testAccessToken authenticate as newTestUserOutput.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		echo:      echo.New(),
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		userUC:    mockUsecase.NewMockUserUsecase(t),
		profileUC: mockUsecase.NewMockProfileUsecase(t),
	}
	ts.authUC.EXPECT().Authenticate(mock.Anything, testAccessToken).Return(newTestUserOutput(), nil).Maybe()

	e := ts.echo
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	cfg := newTestHandlerConfig()
	authHandler := NewAuthHandler(AuthHandlerParams{AuthUC: ts.authUC, TokenService: newTestTokenService(t), Config: cfg})
	userHandler := NewUserHandler(UserHandlerParams{UserUC: ts.userUC})
	profileHandler := NewProfileHandler(ProfileHandlerParams{ProfileUC: ts.profileUC})
	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: ts.authUC}).Authenticate

	users := e.Group("/api/v1/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh-token", authHandler.RefreshToken)
	users.POST("/logout", authHandler.Logout, auth)
	users.POST("/change-password", userHandler.ChangePassword, auth)
	users.GET("/get-user", userHandler.GetCurrentUser, auth)
	users.PATCH("/update-account", userHandler.UpdateAccount, auth)
	users.PATCH("/update-avatar", userHandler.UpdateAvatar, auth)
	users.PATCH("/update-coverImage", userHandler.UpdateCoverImage, auth)
	users.GET("/c/:username", profileHandler.GetChannelProfile, auth)
	users.GET("/history", profileHandler.GetWatchHistory, auth)

	return ts
}

func (ts *testServer) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var body envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func authenticated(req *http.Request) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)

	return req
}

type formPart struct {
	field    string
	filename string
	content  string
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...formPart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}
