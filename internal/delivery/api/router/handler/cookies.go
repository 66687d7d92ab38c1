package handler

import (
	"net/http"
	"strings"
	"time"

	"vidtube/config"
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// sessionCookies writes the token pair as HttpOnly, Secure cookies.
type sessionCookies struct {
	path          string
	sameSite      http.SameSite
	accessMaxAge  time.Duration
	refreshMaxAge time.Duration
}

func newSessionCookies(cfg *config.Config) *sessionCookies {
	sc := &sessionCookies{
		path:          "/",
		sameSite:      http.SameSiteLaxMode,
		accessMaxAge:  cfg.Token.AccessExpiry,
		refreshMaxAge: cfg.Token.RefreshExpiry,
	}

	if cfg.Cookie != nil {
		if cfg.Cookie.Path != "" {
			sc.path = cfg.Cookie.Path
		}
		sc.sameSite = parseSameSite(cfg.Cookie.SameSite)
	}

	return sc
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (sc *sessionCookies) set(c echo.Context, pair *entity.TokenPair) {
	c.SetCookie(sc.cookie(middleware.AccessTokenCookie, pair.AccessToken, int(sc.accessMaxAge.Seconds())))
	c.SetCookie(sc.cookie(middleware.RefreshTokenCookie, pair.RefreshToken, int(sc.refreshMaxAge.Seconds())))
}

func (sc *sessionCookies) clear(c echo.Context) {
	c.SetCookie(sc.cookie(middleware.AccessTokenCookie, "", -1))
	c.SetCookie(sc.cookie(middleware.RefreshTokenCookie, "", -1))
}

func (sc *sessionCookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     sc.path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: sc.sameSite,
	}
}
