package service

import (
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the verified content of a token. Refresh tokens carry only the subject.
type Claims struct {
	AccountID uuid.UUID
	Username  string
	Email     string
	FullName  string
	Type      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService signs and verifies access and refresh tokens.
type TokenService interface {
	// GenerateTokens signs a new access/refresh pair for the account.
	GenerateTokens(account *entity.Account) (*entity.TokenPair, error)

	// ValidateAccessToken verifies signature, expiry and token type.
	ValidateAccessToken(token string) (*Claims, error)

	// ValidateRefreshToken verifies signature, expiry and token type.
	ValidateRefreshToken(token string) (*Claims, error)

	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
