// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenWrongType = errors.New("unexpected token type")
)

// accountClaims is the signed payload. Identity fields are omitted from refresh tokens.
type accountClaims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService signs access and refresh tokens with distinct HMAC secrets and lifetimes.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService builds the token service from its explicit signing configuration.
func NewJWTService(cfg config.TokenConfig) (service.TokenService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid token configuration")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessExpiry,
		refreshTTL:    cfg.RefreshExpiry,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for the account.
func (s *jwtService) GenerateTokens(account *entity.Account) (*entity.TokenPair, error) {
	if account == nil || account.ID == uuid.Nil {
		return nil, errors.New("account is required to sign tokens")
	}

	now := s.now()

	access := accountClaims{
		Username:         account.Username,
		Email:            account.Email,
		FullName:         account.FullName,
		Type:             service.TokenTypeAccess,
		RegisteredClaims: s.registered(account.ID, now, s.accessTTL),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, access).SignedString(s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refresh := accountClaims{
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: s.registered(account.ID, now, s.refreshTTL),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refresh).SignedString(s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &entity.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// registered carries a random jti so pairs minted in the same second still differ.
func (s *jwtService) registered(subject uuid.UUID, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) ValidateAccessToken(token string) (*service.Claims, error) {
	return s.validate(token, s.accessSecret, service.TokenTypeAccess)
}

func (s *jwtService) ValidateRefreshToken(token string) (*service.Claims, error) {
	return s.validate(token, s.refreshSecret, service.TokenTypeRefresh)
}

func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) validate(tokenString string, secret []byte, wantType string) (*service.Claims, error) {
	claims := &accountClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(ErrTokenInvalid, err.Error())
	}

	if claims.Type != wantType {
		return nil, errors.Wrapf(ErrTokenWrongType, "got %q, want %q", claims.Type, wantType)
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrTokenInvalid, "subject is not an account id")
	}

	out := &service.Claims{
		AccountID: accountID,
		Username:  claims.Username,
		Email:     claims.Email,
		FullName:  claims.FullName,
		Type:      claims.Type,
		TokenID:   claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
