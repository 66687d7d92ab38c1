package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSameSite(t *testing.T) {
	tests := []struct {
		in   string
		want http.SameSite
	}{
		{in: "strict", want: http.SameSiteStrictMode},
		{in: " None ", want: http.SameSiteNoneMode},
		{in: "lax", want: http.SameSiteLaxMode},
		{in: "", want: http.SameSiteLaxMode},
		{in: "bogus", want: http.SameSiteLaxMode},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSameSite(tt.in))
		})
	}
}

func TestSessionCookies(t *testing.T) {
	cfg := &config.Config{
		Token:  config.TokenConfig{AccessExpiry: time.Minute, RefreshExpiry: time.Hour},
		Cookie: &config.CookieConfig{SameSite: "none", Path: "/api"},
	}
	sc := newSessionCookies(cfg)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	sc.set(c, &entity.TokenPair{AccessToken: "a", RefreshToken: "r"})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, cookie := range cookies {
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, "/api", cookie.Path)
		assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	}
	assert.Equal(t, 60, cookies[0].MaxAge)
	assert.Equal(t, 3600, cookies[1].MaxAge)
}

func TestSessionCookies_NilCookieConfig(t *testing.T) {
	sc := newSessionCookies(&config.Config{})

	assert.Equal(t, "/", sc.path)
	assert.Equal(t, http.SameSiteLaxMode, sc.sameSite)
}
