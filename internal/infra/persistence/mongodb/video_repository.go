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

type videoRepository struct {
	store
}

// NewVideoRepository returns the MongoDB-backed repository.VideoRepository.
func NewVideoRepository(db *mongo.Database, cfg *config.Config) repository.VideoRepository {
	return &videoRepository{store: newStore(db, cfg)}
}

func (repo *videoRepository) videos() *mongo.Collection {
	return repo.collection(collVideos)
}

func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	now := time.Now().UTC()
	video.CreatedAt, video.UpdatedAt = now, now

	if _, err := repo.videos().InsertOne(ctx, model.FromVideo(video)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	return nil
}

func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc model.VideoDocument
	if err := repo.videos().FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	return doc.ToDomain(), nil
}

func (repo *videoRepository) Update(ctx context.Context, id uuid.UUID, update repository.VideoUpdate) (*entity.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: model.FromMedia(*update.Thumbnail)})
	}

	return repo.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: set}})
}

// TogglePublished uses an update pipeline so the flip happens in a single atomic write.
func (repo *videoRepository) TogglePublished(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	return repo.findOneAndUpdate(ctx, id, mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	})
}

func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.videos().DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete video")
	}
	if res.DeletedCount == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.videos().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id.String()}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to increment views")
	}
	if res.MatchedCount == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func (repo *videoRepository) findOneAndUpdate(ctx context.Context, id uuid.UUID, update any) (*entity.Video, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc model.VideoDocument
	err := repo.videos().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id.String()}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to update video")
	}

	return doc.ToDomain(), nil
}
