package mongodb

import (
	"context"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// publicAccountProjection strips credentials from account reads.
var publicAccountProjection = bson.D{{Key: "password", Value: 0}, {Key: "refreshToken", Value: 0}}

type accountRepository struct {
	store
}

// NewAccountRepository returns the MongoDB-backed repository.AccountRepository.
func NewAccountRepository(db *mongo.Database, cfg *config.Config) repository.AccountRepository {
	return &accountRepository{store: newStore(db, cfg)}
}

func (repo *accountRepository) accounts() *mongo.Collection {
	return repo.collection(collAccounts)
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now().UTC()
	account.CreatedAt, account.UpdatedAt = now, now

	if _, err := repo.accounts().InsertOne(ctx, model.FromAccount(account)); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrAccountAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

func (repo *accountRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, options.FindOne().SetProjection(publicAccountProjection))
}

func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: identifier}},
		bson.D{{Key: "email", Value: identifier}},
	}}})
}

func (repo *accountRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	count, err := repo.accounts().CountDocuments(ctx, bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: email}},
	}}}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "failed to check account uniqueness")
	}

	return count > 0, nil
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.D, opts ...*options.FindOneOptions) (*entity.Account, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc model.AccountDocument
	if err := repo.accounts().FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return doc.ToDomain(), nil
}

func (repo *accountRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, bson.D{
		{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: token}, {Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

// CompareAndSwapRefreshToken matches on both the id and the currently stored token so that of two
// concurrent rotations presenting the same token exactly one wins.
func (repo *accountRepository) CompareAndSwapRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error {
	if expected == "" {
		return repository.ErrRefreshTokenMismatch
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.accounts().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id.String()}, {Key: "refreshToken", Value: expected}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: next}, {Key: "updatedAt", Value: time.Now().UTC()}}}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to swap refresh token")
	}
	if res.MatchedCount == 0 {
		return repository.ErrRefreshTokenMismatch
	}

	return nil
}

func (repo *accountRepository) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	_, err := repo.accounts().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id.String()}},
		bson.D{
			{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: ""}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		},
	)

	return errors.Wrap(err, "failed to clear refresh token")
}

func (repo *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, bson.D{
		{Key: "$set", Value: bson.D{{Key: "password", Value: passwordHash}, {Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (repo *accountRepository) UpdateDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*entity.Account, error) {
	return repo.findOneAndSet(ctx, id, bson.D{{Key: "fullName", Value: fullName}, {Key: "email", Value: email}})
}

func (repo *accountRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar entity.MediaRef) (*entity.Account, error) {
	return repo.findOneAndSet(ctx, id, bson.D{{Key: "avatar", Value: model.FromMedia(avatar)}})
}

func (repo *accountRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, cover entity.MediaRef) (*entity.Account, error) {
	return repo.findOneAndSet(ctx, id, bson.D{{Key: "coverImage", Value: model.FromMedia(cover)}})
}

func (repo *accountRepository) AppendWatchHistory(ctx context.Context, id, videoID uuid.UUID) error {
	return repo.updateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "watchHistory", Value: videoID.String()}}},
	})
}

func (repo *accountRepository) updateOne(ctx context.Context, filter, update bson.D) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.accounts().UpdateOne(ctx, filter, update)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrAccountAlreadyExists
		}

		return errors.Wrap(err, "failed to update account")
	}
	if res.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) findOneAndSet(ctx context.Context, id uuid.UUID, fields bson.D) (*entity.Account, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	fields = append(fields, bson.E{Key: "updatedAt", Value: time.Now().UTC()})
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(publicAccountProjection)

	var doc model.AccountDocument
	err := repo.accounts().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id.String()}},
		bson.D{{Key: "$set", Value: fields}},
		opts,
	).Decode(&doc)
	if err != nil {
		switch {
		case isNoDocuments(err):
			return nil, repository.ErrAccountNotFound
		case isDuplicateKey(err):
			return nil, repository.ErrAccountAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	return doc.ToDomain(), nil
}
