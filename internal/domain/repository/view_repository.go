package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ViewRepository computes derived views by joining accounts, videos and edge records.
// A uuid.Nil viewer means an anonymous caller; viewer-relative flags are then false.
type ViewRepository interface {
	// ChannelProfile resolves a channel by normalized username.
	// It returns ErrAccountNotFound when no account matches.
	ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*entity.ChannelProfile, error)

	// VideoDetail returns ErrVideoNotFound when the video does not exist.
	VideoDetail(ctx context.Context, videoID, viewer uuid.UUID) (*entity.VideoDetail, error)

	// WatchHistory resolves the account's watch history in stored order.
	WatchHistory(ctx context.Context, accountID uuid.UUID) ([]*entity.VideoSummary, error)

	// ListVideos runs a catalog query over published videos.
	ListVideos(ctx context.Context, query entity.CatalogQuery) (*entity.VideoPage, error)
}
