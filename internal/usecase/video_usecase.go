package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

type PublishVideoInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
	// Duration in seconds, used when the blob store cannot probe the file.
	Duration float64
}

// UpdateVideoInput replaces title and description. ThumbnailPath is optional.
type UpdateVideoInput struct {
	VideoID       uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   string
	ThumbnailPath string
}

// CatalogParams are the raw listing parameters as received from the caller.
type CatalogParams struct {
	Page     string
	Limit    string
	Query    string
	SortBy   string
	SortType string
	UserID   string
}

// VideoUsecase defines video publishing, maintenance and read operations.
type VideoUsecase interface {
	Publish(ctx context.Context, input PublishVideoInput) (*entity.Video, error)

	// Detail returns the video as seen by viewer and records the view.
	Detail(ctx context.Context, videoID, viewer uuid.UUID) (*entity.VideoDetail, error)

	Update(ctx context.Context, input UpdateVideoInput) (*entity.Video, error)
	Delete(ctx context.Context, videoID, ownerID uuid.UUID) error
	TogglePublish(ctx context.Context, videoID, ownerID uuid.UUID) (*entity.Video, error)
	List(ctx context.Context, params CatalogParams) (*entity.VideoPage, error)
}
