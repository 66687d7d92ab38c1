package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	accounts *mockRepo.MockAccountRepository
	tokens   *mockService.MockTokenService
	service  *sessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	accounts := mockRepo.NewMockAccountRepository(t)
	tokens := mockService.NewMockTokenService(t)
	srv := NewSessionService(SessionServiceParams{
		AccountRepo:  accounts,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	}).(*sessionService)

	return &sessionFixture{accounts: accounts, tokens: tokens, service: srv}
}

func TestSessionService_IssueTokenPair_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Username: "alice"}
	pair := &entity.TokenPair{AccessToken: "a1", RefreshToken: "r1"}

	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	f.tokens.EXPECT().GenerateTokens(account).Return(pair, nil)
	f.accounts.EXPECT().SetRefreshToken(ctx, account.ID, "r1").Return(nil)

	got, err := f.service.IssueTokenPair(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func TestSessionService_IssueTokenPair_FailuresAreGeneric(t *testing.T) {
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New()}

	tests := []struct {
		name  string
		setup func(f *sessionFixture)
	}{
		{
			name: "account missing",
			setup: func(f *sessionFixture) {
				f.accounts.EXPECT().FindByID(ctx, account.ID).Return(nil, repository.ErrAccountNotFound)
			},
		},
		{
			name: "signing fails",
			setup: func(f *sessionFixture) {
				f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
				f.tokens.EXPECT().GenerateTokens(account).Return(nil, errors.New("boom"))
			},
		},
		{
			name: "persist fails",
			setup: func(f *sessionFixture) {
				f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
				f.tokens.EXPECT().GenerateTokens(account).Return(&entity.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
				f.accounts.EXPECT().SetRefreshToken(ctx, account.ID, "r").Return(errors.New("write conflict"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			tt.setup(f)

			_, err := f.service.IssueTokenPair(ctx, account.ID)

			require.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
			assert.Equal(t, "failed to issue token pair: Something went wrong while generating tokens", err.Error())
		})
	}
}

func TestSessionService_VerifyAccess(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	claims := &service.Claims{AccountID: accountID, Type: service.TokenTypeAccess}

	t.Run("success", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateAccessToken("tok").Return(claims, nil)
		f.accounts.EXPECT().FindPublicByID(ctx, accountID).Return(&entity.Account{ID: accountID, Username: "bob", Email: "b@x.io"}, nil)

		identity, err := f.service.VerifyAccess(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, accountID, identity.AccountID)
		assert.Equal(t, "bob", identity.Username)
		assert.Empty(t, identity.Profile.PasswordHash)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newSessionFixture(t)

		_, err := f.service.VerifyAccess(ctx, "  ")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))

		_, err := f.service.VerifyAccess(ctx, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
	})

	t.Run("account deleted", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateAccessToken("tok").Return(claims, nil)
		f.accounts.EXPECT().FindPublicByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

		_, err := f.service.VerifyAccess(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
	})

	t.Run("store failure is not an auth error", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateAccessToken("tok").Return(claims, nil)
		f.accounts.EXPECT().FindPublicByID(ctx, accountID).Return(nil, errors.New("connection reset"))

		_, err := f.service.VerifyAccess(ctx, "tok")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
	})
}

// statefulAccount wires the account mock to a single stored refresh token.
func statefulAccount(f *sessionFixture, account *entity.Account) {
	f.accounts.EXPECT().FindByID(mock.Anything, account.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Account, error) {
			clone := *account

			return &clone, nil
		}).Maybe()

	f.accounts.EXPECT().CompareAndSwapRefreshToken(mock.Anything, account.ID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, expected, next string) error {
			if account.RefreshToken != expected {
				return repository.ErrRefreshTokenMismatch
			}
			account.RefreshToken = next

			return nil
		}).Maybe()

	f.accounts.EXPECT().ClearRefreshToken(mock.Anything, account.ID).
		RunAndReturn(func(context.Context, uuid.UUID) error {
			account.RefreshToken = ""

			return nil
		}).Maybe()
}

func expectRefreshClaims(f *sessionFixture, accountID uuid.UUID, tokens ...string) {
	for _, tok := range tokens {
		f.tokens.EXPECT().ValidateRefreshToken(tok).
			Return(&service.Claims{AccountID: accountID, Type: service.TokenTypeRefresh}, nil).Maybe()
	}
}

func TestSessionService_RotateRefresh_RejectsReusedToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), RefreshToken: "r1"}
	statefulAccount(f, account)
	expectRefreshClaims(f, account.ID, "r1", "r2")

	f.tokens.EXPECT().GenerateTokens(mock.Anything).
		Return(&entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil).Once()

	pair, err := f.service.RotateRefresh(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r2", pair.RefreshToken)
	assert.Equal(t, "r2", account.RefreshToken)

	_, err = f.service.RotateRefresh(ctx, "r1")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Equal(t, "r2", account.RefreshToken, "failed rotation must not change the stored token")
}

func TestSessionService_RotateRefresh_AfterRevoke(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), RefreshToken: "r1"}
	statefulAccount(f, account)
	expectRefreshClaims(f, account.ID, "r1")

	require.NoError(t, f.service.Revoke(ctx, account.ID))
	require.NoError(t, f.service.Revoke(ctx, account.ID))

	_, err := f.service.RotateRefresh(ctx, "r1")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_RotateRefresh_LosesRace(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), RefreshToken: "r1"}
	expectRefreshClaims(f, account.ID, "r1")

	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	f.tokens.EXPECT().GenerateTokens(account).Return(&entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)
	f.accounts.EXPECT().CompareAndSwapRefreshToken(ctx, account.ID, "r1", "r2").Return(repository.ErrRefreshTokenMismatch)

	_, err := f.service.RotateRefresh(ctx, "r1")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_RotateRefresh_InvalidToken(t *testing.T) {
	ctx := context.Background()

	t.Run("signature or expiry", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateRefreshToken("junk").Return(nil, errors.New("token is expired"))

		_, err := f.service.RotateRefresh(ctx, "junk")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("missing", func(t *testing.T) {
		f := newSessionFixture(t)

		_, err := f.service.RotateRefresh(ctx, "")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("account gone", func(t *testing.T) {
		f := newSessionFixture(t)
		id := uuid.New()
		expectRefreshClaims(f, id, "r1")
		f.accounts.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

		_, err := f.service.RotateRefresh(ctx, "r1")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestSessionService_Revoke_StoreError(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	id := uuid.New()
	f.accounts.EXPECT().ClearRefreshToken(ctx, id).Return(errors.New("timeout"))

	err := f.service.Revoke(ctx, id)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to revoke refresh token")
}
