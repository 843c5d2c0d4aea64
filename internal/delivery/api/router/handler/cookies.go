package handler

import (
	"net/http"
	"strings"
	"time"

	"tube/config"
	"tube/internal/delivery/api/middleware"
	"tube/internal/domain/service"
	"tube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// tokenCookies writes and clears the access and refresh token cookies. Each
// cookie lives exactly as long as the token it carries.
type tokenCookies struct {
	cfg        config.CookieConfig
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newTokenCookies(cfg *config.Config, tokens service.TokenService) tokenCookies {
	return tokenCookies{
		cfg:        cfg.HTTP.Cookie,
		accessTTL:  tokens.AccessTokenDuration(),
		refreshTTL: tokens.RefreshTokenDuration(),
	}
}

func (tc tokenCookies) set(c echo.Context, tokens usecase.TokenPair) {
	c.SetCookie(tc.cookie(middleware.AccessTokenCookie, tokens.AccessToken, int(tc.accessTTL.Seconds())))
	c.SetCookie(tc.cookie(middleware.RefreshTokenCookie, tokens.RefreshToken, int(tc.refreshTTL.Seconds())))
}

func (tc tokenCookies) clear(c echo.Context) {
	c.SetCookie(tc.cookie(middleware.AccessTokenCookie, "", -1))
	c.SetCookie(tc.cookie(middleware.RefreshTokenCookie, "", -1))
}

func (tc tokenCookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   tc.cfg.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   tc.cfg.Secure,
		SameSite: parseSameSite(tc.cfg.SameSite),
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
