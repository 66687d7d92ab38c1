package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ChannelUsecase serves the account-centric derived views.
type ChannelUsecase interface {
	// ChannelProfile resolves a channel by username as seen by viewer (uuid.Nil for anonymous).
	ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*entity.ChannelProfile, error)

	// WatchHistory lists the videos the account has watched, in stored order.
	WatchHistory(ctx context.Context, accountID uuid.UUID) ([]*entity.VideoSummary, error)
}
