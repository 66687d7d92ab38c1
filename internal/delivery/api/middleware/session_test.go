package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	mockUsecase "vidtube/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	sessions := mockUsecase.NewMockSessionUsecase(t)

	return NewSessionMiddleware(SessionMiddlewareParams{
		Sessions: sessions,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), sessions
}

func TestAccessToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "cookie wins", header: "Bearer abc", cookie: "xyz", want: "xyz"},
		{name: "basic scheme is ignored", header: "Basic abc"},
		{name: "bare scheme", header: "Bearer "},
		{name: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tt.cookie})
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, accessToken(c))
		})
	}
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	m, sessions := newSessionMiddleware(t)
	identity := entity.NewIdentity(&entity.Account{ID: uuid.New(), Username: "alice"})
	sessions.EXPECT().VerifyAccess(mock.Anything, "tok").Return(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var got *entity.Identity
	err := m.Authenticate(func(c echo.Context) error {
		var err error
		got, err = CurrentIdentity(c)

		return err
	})(c)

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		m, _ := newSessionMiddleware(t)
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := m.Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		m, sessions := newSessionMiddleware(t)
		sessions.EXPECT().VerifyAccess(mock.Anything, "bad").
			Return(nil, domainerrors.ErrInvalidAccessToken.WrapMessage("invalid access token"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "bad"})
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
	})
}

func TestCurrentIdentity_Unauthenticated(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := CurrentIdentity(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

type stubLimiter struct{ allow bool }

func (s stubLimiter) Allow(string) bool { return s.allow }

func TestRateLimit(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	require.NoError(t, NewRateLimitMiddleware(stubLimiter{allow: true}).Limit("login")(next)(c))

	c = echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	err := NewRateLimitMiddleware(stubLimiter{allow: false}).Limit("login")(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}
