package impl

import (
	"context"
	"testing"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"
	mockUsecase "vidtube/internal/mocks/usecase"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	accounts *mockRepo.MockAccountRepository
	sessions *mockUsecase.MockSessionUsecase
	hasher   *mockService.MockPasswordHasher
	blobs    *mockService.MockBlobStore
	service  usecase.AccountUsecase
}

func newAccountFixture(t *testing.T, cfg *config.Config) *accountFixture {
	t.Helper()

	f := &accountFixture{
		accounts: mockRepo.NewMockAccountRepository(t),
		sessions: mockUsecase.NewMockSessionUsecase(t),
		hasher:   mockService.NewMockPasswordHasher(t),
		blobs:    mockService.NewMockBlobStore(t),
	}
	f.service = NewAccountService(AccountServiceParams{
		AccountRepo: f.accounts,
		Sessions:    f.sessions,
		Hasher:      f.hasher,
		BlobStore:   f.blobs,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return f
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FullName:       " Alice Liddell ",
		Email:          "Alice@Example.com",
		Username:       "  ALICE ",
		Password:       "wonderland",
		AvatarPath:     "/tmp/avatar.png",
		CoverImagePath: "/tmp/cover.png",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()

	f.accounts.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash("wonderland").Return("hashed", nil)
	f.blobs.EXPECT().Upload(mock.Anything, "/tmp/avatar.png", service.MediaAvatar).
		Return(&service.UploadResult{URL: "https://cdn/avatars/a.png", PublicID: "avatars/a.png"}, nil)
	f.blobs.EXPECT().Upload(mock.Anything, "/tmp/cover.png", service.MediaCoverImage).
		Return(&service.UploadResult{URL: "https://cdn/covers/c.png", PublicID: "covers/c.png"}, nil)

	var created *entity.Account
	f.accounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { created = account }).
		Return(nil)
	f.accounts.EXPECT().FindPublicByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Account, error) {
			return created.Sanitized(), nil
		})

	account, err := f.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "Alice Liddell", created.FullName)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.Equal(t, "avatars/a.png", created.Avatar.PublicID)
	require.NotNil(t, created.CoverImage)
	assert.Equal(t, "covers/c.png", created.CoverImage.PublicID)
	assert.NotNil(t, created.WatchHistory)

	assert.Equal(t, created.ID, account.ID)
	assert.Empty(t, account.PasswordHash)
	assert.Empty(t, account.RefreshToken)
}

func TestAccountService_Register_CaseInsensitiveConflict(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()

	input := validRegisterInput()
	input.Username = "BoB"
	input.Email = "new@example.com"

	f.accounts.EXPECT().ExistsByUsernameOrEmail(ctx, "bob", "new@example.com").Return(true, nil)

	_, err := f.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterInput)
	}{
		{name: "blank full name", mutate: func(in *usecase.RegisterInput) { in.FullName = "   " }},
		{name: "blank username", mutate: func(in *usecase.RegisterInput) { in.Username = "" }},
		{name: "blank email", mutate: func(in *usecase.RegisterInput) { in.Email = " " }},
		{name: "blank password", mutate: func(in *usecase.RegisterInput) { in.Password = "  " }},
		{name: "missing avatar", mutate: func(in *usecase.RegisterInput) { in.AvatarPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t, newTestConfig())
			input := validRegisterInput()
			tt.mutate(&input)

			_, err := f.service.Register(context.Background(), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAccountService_Register_UploadFailureDiscardsUploaded(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()

	f.accounts.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash("wonderland").Return("hashed", nil)
	f.blobs.EXPECT().Upload(mock.Anything, "/tmp/avatar.png", service.MediaAvatar).
		Return(&service.UploadResult{URL: "u", PublicID: "avatars/a.png"}, nil)
	f.blobs.EXPECT().Upload(mock.Anything, "/tmp/cover.png", service.MediaCoverImage).
		Return(nil, errors.New("quota exceeded"))
	f.blobs.EXPECT().Delete(mock.Anything, "avatars/a.png").Return(nil)

	_, err := f.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrMediaUploadFailed)
}

func TestAccountService_Register_DuplicateOnInsert(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()

	input := validRegisterInput()
	input.CoverImagePath = ""

	f.accounts.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash("wonderland").Return("hashed", nil)
	f.blobs.EXPECT().Upload(mock.Anything, "/tmp/avatar.png", service.MediaAvatar).
		Return(&service.UploadResult{URL: "u", PublicID: "avatars/a.png"}, nil)
	f.accounts.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrAccountAlreadyExists)
	f.blobs.EXPECT().Delete(mock.Anything, "avatars/a.png").Return(errors.New("ignored"))

	_, err := f.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Authenticate_IndistinguishableFailures(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "hash"}

	fUnknown := newAccountFixture(t, newTestConfig())
	fUnknown.accounts.EXPECT().FindByUsernameOrEmail(ctx, "ghost").Return(nil, repository.ErrAccountNotFound)
	_, errUnknown := fUnknown.service.Authenticate(ctx, "ghost", "whatever")

	fWrong := newAccountFixture(t, newTestConfig())
	fWrong.accounts.EXPECT().FindByUsernameOrEmail(ctx, "alice").Return(stored, nil)
	fWrong.hasher.EXPECT().Check("wrong", "hash").Return(false)
	_, errWrong := fWrong.service.Authenticate(ctx, "Alice", "wrong")

	require.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAccountService_Authenticate_ByEmail(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()
	stored := &entity.Account{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hash"}

	f.accounts.EXPECT().FindByUsernameOrEmail(ctx, "alice@example.com").Return(stored, nil)
	f.hasher.EXPECT().Check("pw", "hash").Return(true)

	account, err := f.service.Authenticate(ctx, " Alice@Example.com ", "pw")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, account.ID)
}

func TestAccountService_Login(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()
	stored := &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "hash", RefreshToken: "old"}
	pair := &entity.TokenPair{AccessToken: "a", RefreshToken: "r"}

	f.accounts.EXPECT().FindByUsernameOrEmail(ctx, "alice").Return(stored, nil)
	f.hasher.EXPECT().Check("pw", "hash").Return(true)
	f.sessions.EXPECT().IssueTokenPair(ctx, stored.ID).Return(pair, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Username: "alice", Email: "ignored@x.io", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, pair, out.Tokens)
	assert.Empty(t, out.Account.PasswordHash)
	assert.Empty(t, out.Account.RefreshToken)
}

func TestAccountService_Login_IssueFailure(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()
	stored := &entity.Account{ID: uuid.New(), PasswordHash: "hash"}

	f.accounts.EXPECT().FindByUsernameOrEmail(ctx, "a@x.io").Return(stored, nil)
	f.hasher.EXPECT().Check("pw", "hash").Return(true)
	f.sessions.EXPECT().IssueTokenPair(ctx, stored.ID).
		Return(nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token pair"))

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "a@x.io", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}

func TestAccountService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Account{ID: id, PasswordHash: "old-hash"}

	t.Run("wrong old password", func(t *testing.T) {
		f := newAccountFixture(t, newTestConfig())
		f.accounts.EXPECT().FindByID(ctx, id).Return(stored, nil)
		f.hasher.EXPECT().Check("nope", "old-hash").Return(false)

		err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{AccountID: id, OldPassword: "nope", NewPassword: "next"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("keeps sessions by default", func(t *testing.T) {
		f := newAccountFixture(t, newTestConfig())
		f.accounts.EXPECT().FindByID(ctx, id).Return(stored, nil)
		f.hasher.EXPECT().Check("old", "old-hash").Return(true)
		f.hasher.EXPECT().Hash("next").Return("new-hash", nil)
		f.accounts.EXPECT().UpdatePassword(ctx, id, "new-hash").Return(nil)

		err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{AccountID: id, OldPassword: "old", NewPassword: "next"})

		assert.NoError(t, err)
	})

	t.Run("revokes when configured", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Auth.RevokeOnPasswordChange = true
		f := newAccountFixture(t, cfg)
		f.accounts.EXPECT().FindByID(ctx, id).Return(stored, nil)
		f.hasher.EXPECT().Check("old", "old-hash").Return(true)
		f.hasher.EXPECT().Hash("next").Return("new-hash", nil)
		f.accounts.EXPECT().UpdatePassword(ctx, id, "new-hash").Return(nil)
		f.sessions.EXPECT().Revoke(ctx, id).Return(nil)

		err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{AccountID: id, OldPassword: "old", NewPassword: "next"})

		assert.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newAccountFixture(t, newTestConfig())

		err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{AccountID: id, OldPassword: "old"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAccountService_UpdateDetails(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("email taken", func(t *testing.T) {
		f := newAccountFixture(t, newTestConfig())
		f.accounts.EXPECT().UpdateDetails(ctx, id, "Alice", "taken@example.com").Return(nil, repository.ErrAccountAlreadyExists)

		_, err := f.service.UpdateDetails(ctx, usecase.UpdateDetailsInput{AccountID: id, FullName: "Alice", Email: "Taken@Example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	})

	t.Run("blank", func(t *testing.T) {
		f := newAccountFixture(t, newTestConfig())

		_, err := f.service.UpdateDetails(ctx, usecase.UpdateDetailsInput{AccountID: id, FullName: " "})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAccountService_UpdateAvatar_ReplacesPrevious(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()
	id := uuid.New()
	current := &entity.Account{ID: id, Avatar: entity.MediaRef{URL: "old-url", PublicID: "avatars/old.png"}}
	updated := &entity.Account{ID: id, Avatar: entity.MediaRef{URL: "new-url", PublicID: "avatars/new.png"}}

	f.accounts.EXPECT().FindPublicByID(ctx, id).Return(current, nil)
	f.blobs.EXPECT().Upload(mock.Anything, "/tmp/new.png", service.MediaAvatar).
		Return(&service.UploadResult{URL: "new-url", PublicID: "avatars/new.png"}, nil)
	f.accounts.EXPECT().UpdateAvatar(ctx, id, updated.Avatar).Return(updated, nil)
	f.blobs.EXPECT().Delete(mock.Anything, "avatars/old.png").Return(nil)

	got, err := f.service.UpdateAvatar(ctx, id, "/tmp/new.png")

	require.NoError(t, err)
	assert.Equal(t, "new-url", got.Avatar.URL)
}

func TestAccountService_UpdateCoverImage_NoPrevious(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())
	ctx := context.Background()
	id := uuid.New()
	cover := entity.MediaRef{URL: "c-url", PublicID: "covers/c.png"}

	f.accounts.EXPECT().FindPublicByID(ctx, id).Return(&entity.Account{ID: id}, nil)
	f.blobs.EXPECT().Upload(mock.Anything, "/tmp/c.png", service.MediaCoverImage).
		Return(&service.UploadResult{URL: cover.URL, PublicID: cover.PublicID}, nil)
	f.accounts.EXPECT().UpdateCoverImage(ctx, id, cover).Return(&entity.Account{ID: id, CoverImage: &cover}, nil)

	got, err := f.service.UpdateCoverImage(ctx, id, "/tmp/c.png")

	require.NoError(t, err)
	assert.Equal(t, "covers/c.png", got.CoverImagePublicID())
}

func TestAccountService_UpdateAvatar_MissingFile(t *testing.T) {
	f := newAccountFixture(t, newTestConfig())

	_, err := f.service.UpdateAvatar(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
