package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEdgeAlreadyExists is returned when an identical edge record is already stored.
var ErrEdgeAlreadyExists = errors.New("edge already exists")

// SubscriptionRepository stores channel/subscriber edges.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error

	// Delete removes the edge and reports whether one existed.
	Delete(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error)
}

// LikeRepository stores video/account like edges.
type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, videoID, likedBy uuid.UUID) (bool, error)
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) (int64, error)
}

// CommentRepository stores comments on videos.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) (int64, error)
}
