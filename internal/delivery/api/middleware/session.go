package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// SessionMiddleware resolves the access token of a request into an identity.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{sessions: params.Sessions, logger: params.Logger}
}

// Authenticate rejects the request unless it carries a valid access token. The cookie wins
// over the Authorization header.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("no access token presented")
		}

		ctx := c.Request().Context()
		identity, err := m.sessions.VerifyAccess(ctx, token)
		if err != nil {
			return err
		}

		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("account_id", identity.AccountID.String()))
		ctx = deliverycontext.WithIdentity(ctx, identity)
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}

	return ""
}

// CurrentIdentity returns the identity attached by Authenticate.
func CurrentIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.IdentityFromContext(c.Request().Context())
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("request is not authenticated")
	}

	return identity, nil
}
