package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when no video matches the lookup.
var ErrVideoNotFound = errors.New("video not found")

// VideoUpdate holds the mutable fields of a video. Nil fields are left untouched.
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *entity.MediaRef
}

// VideoRepository defines the persistence operations on videos.
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)
	Update(ctx context.Context, id uuid.UUID, update VideoUpdate) (*entity.Video, error)

	// TogglePublished flips isPublished atomically and returns the updated video.
	TogglePublished(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews adds exactly one to the view counter.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
