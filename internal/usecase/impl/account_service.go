package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vidtube/config"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo            repository.AccountRepository
	sessions               usecase.SessionUsecase
	hasher                 service.PasswordHasher
	blobStore              service.BlobStore
	revokeOnPasswordChange bool
	logger                 *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Sessions    usecase.SessionUsecase
	Hasher      service.PasswordHasher
	BlobStore   service.BlobStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	revoke := false
	if params.Config != nil && params.Config.Auth != nil {
		revoke = params.Config.Auth.RevokeOnPasswordChange
	}

	return &accountService{
		accountRepo:            params.AccountRepo,
		sessions:               params.Sessions,
		hasher:                 params.Hasher,
		blobStore:              params.BlobStore,
		revokeOnPasswordChange: revoke,
		logger:                 params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register creates an account after uploading its avatar and optional cover image.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Account, error) {
	fullName := strings.TrimSpace(input.FullName)
	username := normalizeHandle(input.Username)
	email := normalizeHandle(input.Email)

	if fullName == "" || username == "" || email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("all fields are required")
	}
	if input.AvatarPath == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("avatar file is required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	exists, err := srv.accountRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing account")
	}
	if exists {
		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("user with email or username already exists")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	avatar := &mediaUpload{path: input.AvatarPath, kind: service.MediaAvatar}
	uploads := []*mediaUpload{avatar}
	var cover *mediaUpload
	if input.CoverImagePath != "" {
		cover = &mediaUpload{path: input.CoverImagePath, kind: service.MediaCoverImage}
		uploads = append(uploads, cover)
	}
	if err := uploadMedia(ctx, srv.blobStore, srv.log(ctx), uploads...); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Avatar:       avatar.ref(),
		PasswordHash: passwordHash,
		WatchHistory: []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if cover != nil {
		ref := cover.ref()
		account.CoverImage = &ref
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		discardMedia(context.WithoutCancel(ctx), srv.blobStore, srv.log(ctx), avatar.ref().PublicID, account.CoverImagePublicID())

		if errors.Is(err, repository.ErrAccountAlreadyExists) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("user with email or username already exists")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	created, err := srv.accountRepo.FindPublicByID(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registered account")
	}

	srv.log(ctx).Info("Registration completed", slog.Any("account_id", created.ID))

	return created, nil
}

// Authenticate returns the account matching identifier and password. Unknown identifiers
// and wrong passwords produce the same error.
func (srv *accountService) Authenticate(ctx context.Context, identifier, password string) (*entity.Account, error) {
	identifier = normalizeHandle(identifier)
	if identifier == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username or email and password are required")
	}

	account, err := srv.accountRepo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Login for unknown account")

			return nil, errAuthenticationFailed()
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(password, account.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.Any("account_id", account.ID))

		return nil, errAuthenticationFailed()
	}

	return account, nil
}

func errAuthenticationFailed() error {
	return domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
}

// Login authenticates and issues a new token pair.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.Authenticate(ctx, input.Identifier(), input.Password)
	if err != nil {
		return nil, err
	}

	tokens, err := srv.sessions.IssueTokenPair(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("account_id", account.ID))

	return &usecase.LoginOutput{Account: account.Sanitized(), Tokens: tokens}, nil
}

// ChangePassword re-verifies the old password before storing the new hash.
func (srv *accountService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if input.OldPassword == "" || strings.TrimSpace(input.NewPassword) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("old and new password are required")
	}

	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.OldPassword, account.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("invalid old password")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.accountRepo.UpdatePassword(ctx, account.ID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	if srv.revokeOnPasswordChange {
		if err := srv.sessions.Revoke(ctx, account.ID); err != nil {
			return err
		}
	}

	srv.log(ctx).Info("Password changed", slog.Any("account_id", account.ID))

	return nil
}

func (srv *accountService) CurrentAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindPublicByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func (srv *accountService) UpdateDetails(ctx context.Context, input usecase.UpdateDetailsInput) (*entity.Account, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := normalizeHandle(input.Email)
	if fullName == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name and email are required")
	}

	account, err := srv.accountRepo.UpdateDetails(ctx, input.AccountID, fullName, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountAlreadyExists):
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("email already in use")
		case errors.Is(err, repository.ErrAccountNotFound):
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to update account details")
	}

	return account, nil
}

func (srv *accountService) UpdateAvatar(ctx context.Context, accountID uuid.UUID, localPath string) (*entity.Account, error) {
	return srv.replaceMedia(ctx, accountID, localPath, service.MediaAvatar,
		func(a *entity.Account) string { return a.Avatar.PublicID },
		srv.accountRepo.UpdateAvatar,
	)
}

func (srv *accountService) UpdateCoverImage(ctx context.Context, accountID uuid.UUID, localPath string) (*entity.Account, error) {
	return srv.replaceMedia(ctx, accountID, localPath, service.MediaCoverImage,
		(*entity.Account).CoverImagePublicID,
		srv.accountRepo.UpdateCoverImage,
	)
}

// replaceMedia uploads the new file, stores its reference and then drops the previous blob.
func (srv *accountService) replaceMedia(
	ctx context.Context,
	accountID uuid.UUID,
	localPath string,
	kind service.MediaKind,
	previous func(*entity.Account) string,
	store func(context.Context, uuid.UUID, entity.MediaRef) (*entity.Account, error),
) (*entity.Account, error) {
	if localPath == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(string(kind) + " file is missing")
	}

	current, err := srv.accountRepo.FindPublicByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	upload := &mediaUpload{path: localPath, kind: kind}
	if err := uploadMedia(ctx, srv.blobStore, srv.log(ctx), upload); err != nil {
		return nil, err
	}

	updated, err := store(ctx, accountID, upload.ref())
	if err != nil {
		discardMedia(context.WithoutCancel(ctx), srv.blobStore, srv.log(ctx), upload.ref().PublicID)

		return nil, errors.Wrapf(err, "failed to store %s", kind)
	}

	discardMedia(context.WithoutCancel(ctx), srv.blobStore, srv.log(ctx), previous(current))

	return updated, nil
}
