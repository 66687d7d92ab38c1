package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"vidtube/config"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router"
	"vidtube/internal/delivery/api/router/handler"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/infra/ratelimit"
	mockUsecase "vidtube/internal/mocks/usecase"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	e          *echo.Echo
	accounts   *mockUsecase.MockAccountUsecase
	sessions   *mockUsecase.MockSessionUsecase
	channels   *mockUsecase.MockChannelUsecase
	videos     *mockUsecase.MockVideoUsecase
	engagement *mockUsecase.MockEngagementUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Token: config.TokenConfig{
			AccessSecret:  "access",
			AccessExpiry:  15 * time.Minute,
			RefreshSecret: "refresh",
			RefreshExpiry: 24 * time.Hour,
		},
		Cookie:    &config.CookieConfig{SameSite: "strict", Path: "/"},
		Storage:   &config.StorageConfig{TempDir: t.TempDir()},
		RateLimit: &config.RateLimitConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "10M"

	return cfg
}

func newAPIFixture(t *testing.T, cfg *config.Config) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		accounts:   mockUsecase.NewMockAccountUsecase(t),
		sessions:   mockUsecase.NewMockSessionUsecase(t),
		channels:   mockUsecase.NewMockChannelUsecase(t),
		videos:     mockUsecase.NewMockVideoUsecase(t),
		engagement: mockUsecase.NewMockEngagementUsecase(t),
	}

	f.e = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			Accounts: f.accounts,
			Sessions: f.sessions,
			Channels: f.channels,
			Config:   cfg,
			Logger:   logger,
		}),
		VideoHandler: handler.NewVideoHandler(handler.VideoHandlerParams{
			Videos: f.videos,
			Config: cfg,
			Logger: logger,
		}),
		EngagementHandler: handler.NewEngagementHandler(handler.EngagementHandlerParams{
			Engagement: f.engagement,
		}),
		SessionMiddleware: apimiddleware.NewSessionMiddleware(apimiddleware.SessionMiddlewareParams{
			Sessions: f.sessions,
			Logger:   logger,
		}),
		RateLimit: apimiddleware.NewRateLimitMiddleware(ratelimit.NewLimiter(cfg)),
	}).RegisterRoutes(f.e)

	return f
}

// authenticate makes the session mock accept token for the returned identity.
func (f *apiFixture) authenticate(token string) *entity.Identity {
	identity := entity.NewIdentity(&entity.Account{ID: uuid.New(), Username: "alice", Email: "alice@example.com"})
	f.sessions.EXPECT().VerifyAccess(mock.Anything, token).Return(identity, nil)

	return identity
}

func (f *apiFixture) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var body envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	rec, body := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestLogin_SetsSecureCookies(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))
	account := &entity.Account{ID: uuid.New(), Username: "alice"}
	pair := &entity.TokenPair{AccessToken: "acc", RefreshToken: "ref"}

	f.accounts.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "alice@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{Account: account, Tokens: pair}, nil)

	rec, body := f.do(jsonRequest(http.MethodPost, "/api/v1/users/login", `{"email":"alice@example.com","password":"secret"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		User         *entity.Account `json:"user"`
		AccessToken  string          `json:"accessToken"`
		RefreshToken string          `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "acc", data.AccessToken)
	assert.Equal(t, "ref", data.RefreshToken)
	assert.Equal(t, account.ID, data.User.ID)

	access := findCookie(rec, apimiddleware.AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, "acc", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)

	refresh := findCookie(rec, apimiddleware.RefreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, "ref", refresh.Value)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refresh.MaxAge)
}

func TestLogin_Validation(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	tests := []struct {
		name string
		body string
	}{
		{name: "missing password", body: `{"username":"alice"}`},
		{name: "missing identifier", body: `{"password":"secret"}`},
		{name: "malformed email", body: `{"email":"nope","password":"secret"}`},
		{name: "malformed body", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := f.do(jsonRequest(http.MethodPost, "/api/v1/users/login", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	f.accounts.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed"))

	rec, body := f.do(jsonRequest(http.MethodPost, "/api/v1/users/login", `{"username":"ghost","password":"x"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Nil(t, findCookie(rec, apimiddleware.AccessTokenCookie))
}

func TestLogin_RateLimited(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1, TTL: time.Minute}
	f := newAPIFixture(t, cfg)

	f.accounts.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")).Once()

	rec, _ := f.do(jsonRequest(http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"x"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body := f.do(jsonRequest(http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"x"}`))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "TOO_MANY_REQUESTS", body.Error.Code)
}

func TestLogin_RateLimitIgnoresForwardedFor(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1, TTL: time.Minute}
	f := newAPIFixture(t, cfg)

	f.accounts.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")).Once()

	limited := 0
	for i := range 20 {
		req := jsonRequest(http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"x"}`)
		req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("203.0.113.%d", i+1))
		req.Header.Set(echo.HeaderXRealIP, fmt.Sprintf("198.51.100.%d", i+1))

		rec, _ := f.do(req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.Equal(t, 19, limited)
}

func TestLogin_RateLimitTrustedProxy(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1, TTL: time.Minute}
	// httptest requests come from 192.0.2.1
	cfg.HTTP.TrustedProxies = []string{"192.0.2.0/24"}
	f := newAPIFixture(t, cfg)

	f.accounts.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")).Times(2)

	login := func(client string) int {
		req := jsonRequest(http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"x"}`)
		req.Header.Set(echo.HeaderXForwardedFor, client)
		rec, _ := f.do(req)

		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, login("203.0.113.1"))
	assert.Equal(t, http.StatusUnauthorized, login("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, login("203.0.113.1"))
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	rec, body := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestProtectedRoute_InvalidToken(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	f.sessions.EXPECT().VerifyAccess(mock.Anything, "forged").
		Return(nil, domainerrors.ErrInvalidAccessToken.WrapMessage("invalid access token"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec, body := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_ACCESS_TOKEN", body.Error.Code)
}

func TestCurrentUser_CookieWinsOverHeader(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))
	identity := f.authenticate("from-cookie")

	f.accounts.EXPECT().CurrentAccount(mock.Anything, identity.AccountID).Return(identity.Profile, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
	req.AddCookie(&http.Cookie{Name: apimiddleware.AccessTokenCookie, Value: "from-cookie"})
	rec, body := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var account entity.Account
	require.NoError(t, json.Unmarshal(body.Data, &account))
	assert.Equal(t, identity.AccountID, account.ID)
	assert.NotContains(t, string(body.Data), "password")
}

func TestRefreshToken(t *testing.T) {
	t.Run("cookie is rotated", func(t *testing.T) {
		f := newAPIFixture(t, newTestConfig(t))
		f.sessions.EXPECT().RotateRefresh(mock.Anything, "r1").
			Return(&entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		req := jsonRequest(http.MethodPost, "/api/v1/users/refresh-token", `{"refreshToken":"ignored"}`)
		req.AddCookie(&http.Cookie{Name: apimiddleware.RefreshTokenCookie, Value: "r1"})
		rec, _ := f.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		refresh := findCookie(rec, apimiddleware.RefreshTokenCookie)
		require.NotNil(t, refresh)
		assert.Equal(t, "r2", refresh.Value)
	})

	t.Run("body is used without cookie", func(t *testing.T) {
		f := newAPIFixture(t, newTestConfig(t))
		f.sessions.EXPECT().RotateRefresh(mock.Anything, "r1").
			Return(&entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		rec, _ := f.do(jsonRequest(http.MethodPost, "/api/v1/users/refresh-token", `{"refreshToken":"r1"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("replayed token is rejected", func(t *testing.T) {
		f := newAPIFixture(t, newTestConfig(t))
		f.sessions.EXPECT().RotateRefresh(mock.Anything, "r0").
			Return(nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token is expired or used"))

		rec, body := f.do(jsonRequest(http.MethodPost, "/api/v1/users/refresh-token", `{"refreshToken":"r0"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "REFRESH_TOKEN_INVALID", body.Error.Code)
		assert.Nil(t, findCookie(rec, apimiddleware.AccessTokenCookie))
	})
}

func TestLogout_ClearsCookies(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))
	identity := f.authenticate("acc")

	f.sessions.EXPECT().Revoke(mock.Anything, identity.AccountID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer acc")
	rec, _ := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, name := range []string{apimiddleware.AccessTokenCookie, apimiddleware.RefreshTokenCookie} {
		cookie := findCookie(rec, name)
		require.NotNil(t, cookie, name)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	}
}

func TestRegister_StagesUploads(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	var stagedAvatar string
	f.accounts.EXPECT().Register(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in usecase.RegisterInput) (*entity.Account, error) {
			stagedAvatar = in.AvatarPath
			content, err := os.ReadFile(in.AvatarPath)
			require.NoError(t, err)
			assert.Equal(t, "avatar-bytes", string(content))
			assert.True(t, strings.HasSuffix(in.AvatarPath, ".png"))
			assert.Empty(t, in.CoverImagePath)
			assert.Equal(t, "alice", in.Username)

			return &entity.Account{ID: uuid.New(), Username: in.Username}, nil
		})

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range map[string]string{
		"fullName": "Alice",
		"email":    "alice@example.com",
		"username": "alice",
		"password": "secret",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("avatar-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec, _ := f.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, stagedAvatar)
	_, err = os.Stat(stagedAvatar)
	assert.True(t, os.IsNotExist(err))
}

func TestRegister_MissingAvatar(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range map[string]string{
		"fullName": "Alice",
		"email":    "alice@example.com",
		"username": "alice",
		"password": "secret",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec, resp := f.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Equal(t, "avatar file is required", resp.Error.Details)
}

func TestListVideos_PassesQuery(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	f.videos.EXPECT().List(mock.Anything, usecase.CatalogParams{
		Page:     "2",
		Limit:    "5",
		Query:    "go",
		SortBy:   "views",
		SortType: "desc",
	}).Return(&entity.VideoPage{Items: []*entity.VideoSummary{}}, nil)

	rec, _ := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/videos?page=2&limit=5&query=go&sortBy=views&sortType=desc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVideoDetail(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		f := newAPIFixture(t, newTestConfig(t))
		f.authenticate("acc")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/not-a-uuid", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer acc")
		rec, body := f.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_IDENTIFIER", body.Error.Code)
	})

	t.Run("viewer is the caller", func(t *testing.T) {
		f := newAPIFixture(t, newTestConfig(t))
		identity := f.authenticate("acc")
		videoID := uuid.New()

		f.videos.EXPECT().Detail(mock.Anything, videoID, identity.AccountID).
			Return(&entity.VideoDetail{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+videoID.String(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer acc")
		rec, _ := f.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		f := newAPIFixture(t, newTestConfig(t))
		f.authenticate("acc")

		f.videos.EXPECT().Detail(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrVideoNotFound.WrapMessage("video not found"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+uuid.NewString(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer acc")
		rec, body := f.do(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VIDEO_NOT_FOUND", body.Error.Code)
	})
}

func TestDeleteVideo_Forbidden(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))
	identity := f.authenticate("acc")
	videoID := uuid.New()

	f.videos.EXPECT().Delete(mock.Anything, videoID, identity.AccountID).
		Return(domainerrors.ErrForbidden.WrapMessage("not the owner"))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/videos/"+videoID.String(), nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer acc")
	rec, body := f.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}

func TestToggleSubscription(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))
	identity := f.authenticate("acc")
	channelID := uuid.New()

	f.engagement.EXPECT().ToggleSubscription(mock.Anything, channelID, identity.AccountID).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/c/"+channelID.String(), nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer acc")
	rec, body := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"subscribed":true}`, string(body.Data))
}

func TestAddComment_TooLong(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))
	f.authenticate("acc")

	payload, err := json.Marshal(map[string]string{"content": strings.Repeat("x", 1001)})
	require.NoError(t, err)

	req := jsonRequest(http.MethodPost, "/api/v1/comments/"+uuid.NewString(), string(payload))
	req.Header.Set(echo.HeaderAuthorization, "Bearer acc")
	rec, body := f.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t, newTestConfig(t))

	rec, body := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
