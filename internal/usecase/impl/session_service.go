// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueTokenPair signs a new pair and persists the refresh token. Every failure is reported
// as the same generic error.
func (srv *sessionService) IssueTokenPair(ctx context.Context, accountID uuid.UUID) (*entity.TokenPair, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		srv.log(ctx).Error("Failed to load account for token issuance", slog.Any("account_id", accountID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token pair")
	}

	pair, err := srv.tokenService.GenerateTokens(account)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token pair", slog.Any("account_id", accountID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token pair")
	}

	if err := srv.accountRepo.SetRefreshToken(ctx, accountID, pair.RefreshToken); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.Any("account_id", accountID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token pair")
	}

	srv.log(ctx).Debug("Issued token pair", slog.Any("account_id", accountID))

	return pair, nil
}

// VerifyAccess resolves an access token into an identity built from the public account projection.
func (srv *sessionService) VerifyAccess(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing access token")
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidAccessToken.WrapMessage("invalid access token")
	}

	account, err := srv.accountRepo.FindPublicByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidAccessToken.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account for access token")
	}

	return entity.NewIdentity(account), nil
}

// RotateRefresh accepts only the refresh token currently stored on the account and swaps it
// for a new one with a conditional update, so a superseded token can never be used twice.
func (srv *sessionService) RotateRefresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing refresh token")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Rejected refresh token", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
		}

		return nil, errors.Wrap(err, "failed to load account for refresh")
	}

	if account.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(account.RefreshToken), []byte(refreshToken)) != 1 {
		srv.log(ctx).Warn("Refresh token is revoked or already rotated", slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token is expired or used")
	}

	pair, err := srv.tokenService.GenerateTokens(account)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token pair", slog.Any("account_id", account.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token pair")
	}

	err = srv.accountRepo.CompareAndSwapRefreshToken(ctx, account.ID, refreshToken, pair.RefreshToken)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrRefreshTokenMismatch), errors.Is(err, repository.ErrAccountNotFound):
		srv.log(ctx).Warn("Concurrent refresh token rotation rejected", slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token is expired or used")
	default:
		srv.log(ctx).Error("Failed to store rotated refresh token", slog.Any("account_id", account.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token pair")
	}

	srv.log(ctx).Info("Rotated refresh token", slog.Any("account_id", account.ID))

	return pair, nil
}

// Revoke clears the stored refresh token.
func (srv *sessionService) Revoke(ctx context.Context, accountID uuid.UUID) error {
	if err := srv.accountRepo.ClearRefreshToken(ctx, accountID); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("account_id", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	srv.log(ctx).Info("Revoked refresh token", slog.Any("account_id", accountID))

	return nil
}
