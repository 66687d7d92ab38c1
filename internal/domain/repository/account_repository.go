// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when a unique username or email is taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrRefreshTokenMismatch is returned by CompareAndSwapRefreshToken when the stored
	// token no longer equals the expected value.
	ErrRefreshTokenMismatch = errors.New("stored refresh token does not match")
)

// AccountRepository defines the persistence operations on accounts.
type AccountRepository interface {
	// Create persists a new account. The username must already be normalized.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID returns the full account record, secrets included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindPublicByID returns the account without password hash and refresh token.
	FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsernameOrEmail matches identifier against the normalized username or the email.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error)

	// ExistsByUsernameOrEmail reports whether either value is already registered.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// SetRefreshToken overwrites the stored refresh token.
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error

	// CompareAndSwapRefreshToken replaces the stored refresh token only if it equals expected.
	CompareAndSwapRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error

	// ClearRefreshToken removes the stored refresh token. Clearing an absent token is not an error.
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*entity.Account, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar entity.MediaRef) (*entity.Account, error)
	UpdateCoverImage(ctx context.Context, id uuid.UUID, cover entity.MediaRef) (*entity.Account, error)

	// AppendWatchHistory adds videoID to the watch history unless it is already present.
	AppendWatchHistory(ctx context.Context, id, videoID uuid.UUID) error
}
