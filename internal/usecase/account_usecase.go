package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register an account.
// AvatarPath and CoverImagePath point at staged local files.
type RegisterInput struct {
	FullName       string
	Email          string
	Username       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

// LoginInput identifies the account by username or email.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// Identifier returns the username when set, otherwise the email.
func (in LoginInput) Identifier() string {
	if in.Username != "" {
		return in.Username
	}

	return in.Email
}

type ChangePasswordInput struct {
	AccountID   uuid.UUID
	OldPassword string
	NewPassword string
}

type UpdateDetailsInput struct {
	AccountID uuid.UUID
	FullName  string
	Email     string
}

// --- Output DTOs ---

// LoginOutput returns the sanitized account and the freshly issued tokens.
type LoginOutput struct {
	Account *entity.Account
	Tokens  *entity.TokenPair
}

// AccountUsecase defines account registration, credential checks and profile maintenance.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.Account, error)
	Authenticate(ctx context.Context, identifier, password string) (*entity.Account, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	CurrentAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateDetails(ctx context.Context, input UpdateDetailsInput) (*entity.Account, error)
	UpdateAvatar(ctx context.Context, accountID uuid.UUID, localPath string) (*entity.Account, error)
	UpdateCoverImage(ctx context.Context, accountID uuid.UUID, localPath string) (*entity.Account, error)
}
