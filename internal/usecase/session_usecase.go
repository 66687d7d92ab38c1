// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase issues, verifies, rotates and revokes the access/refresh token pair.
type SessionUsecase interface {
	// IssueTokenPair signs a new pair and stores the refresh token on the account.
	IssueTokenPair(ctx context.Context, accountID uuid.UUID) (*entity.TokenPair, error)

	// VerifyAccess resolves an access token into the caller's identity.
	VerifyAccess(ctx context.Context, accessToken string) (*entity.Identity, error)

	// RotateRefresh exchanges the currently stored refresh token for a new pair.
	// A superseded or revoked token is rejected even before it expires.
	RotateRefresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// Revoke clears the stored refresh token. Idempotent.
	Revoke(ctx context.Context, accountID uuid.UUID) error
}
