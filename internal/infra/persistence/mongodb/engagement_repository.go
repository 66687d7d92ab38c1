package mongodb

import (
	"context"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type subscriptionRepository struct {
	store
}

// NewSubscriptionRepository returns the MongoDB-backed repository.SubscriptionRepository.
func NewSubscriptionRepository(db *mongo.Database, cfg *config.Config) repository.SubscriptionRepository {
	return &subscriptionRepository{store: newStore(db, cfg)}
}

func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.CreatedAt = time.Now().UTC()

	return repo.insertEdge(ctx, collSubscriptions, model.FromSubscription(sub))
}

func (repo *subscriptionRepository) Delete(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	return repo.deleteEdge(ctx, collSubscriptions, bson.D{
		{Key: "channel", Value: channelID.String()},
		{Key: "subscriber", Value: subscriberID.String()},
	})
}

type likeRepository struct {
	store
}

// NewLikeRepository returns the MongoDB-backed repository.LikeRepository.
func NewLikeRepository(db *mongo.Database, cfg *config.Config) repository.LikeRepository {
	return &likeRepository{store: newStore(db, cfg)}
}

func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	like.CreatedAt = time.Now().UTC()

	return repo.insertEdge(ctx, collLikes, model.FromLike(like))
}

func (repo *likeRepository) Delete(ctx context.Context, videoID, likedBy uuid.UUID) (bool, error) {
	return repo.deleteEdge(ctx, collLikes, bson.D{
		{Key: "video", Value: videoID.String()},
		{Key: "likedBy", Value: likedBy.String()},
	})
}

func (repo *likeRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	return repo.deleteMany(ctx, collLikes, bson.D{{Key: "video", Value: videoID.String()}})
}

type commentRepository struct {
	store
}

// NewCommentRepository returns the MongoDB-backed repository.CommentRepository.
func NewCommentRepository(db *mongo.Database, cfg *config.Config) repository.CommentRepository {
	return &commentRepository{store: newStore(db, cfg)}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	now := time.Now().UTC()
	comment.CreatedAt, comment.UpdatedAt = now, now

	if _, err := repo.collection(collComments).InsertOne(ctx, model.FromComment(comment)); err != nil {
		return errors.Wrap(err, "failed to create comment")
	}

	return nil
}

func (repo *commentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	return repo.deleteMany(ctx, collComments, bson.D{{Key: "video", Value: videoID.String()}})
}

func (s store) insertEdge(ctx context.Context, coll string, doc any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.collection(coll).InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrEdgeAlreadyExists
		}

		return errors.Wrapf(err, "failed to insert into %s", coll)
	}

	return nil
}

func (s store) deleteEdge(ctx context.Context, coll string, filter bson.D) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete from %s", coll)
	}

	return res.DeletedCount > 0, nil
}

func (s store) deleteMany(ctx context.Context, coll string, filter bson.D) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.collection(coll).DeleteMany(ctx, filter)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete from %s", coll)
	}

	return res.DeletedCount, nil
}
