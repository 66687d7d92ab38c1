package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// EngagementUsecase manages subscription, like and comment edges.
type EngagementUsecase interface {
	// ToggleSubscription subscribes or unsubscribes and reports the resulting state.
	ToggleSubscription(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error)

	// ToggleVideoLike likes or unlikes and reports the resulting state.
	ToggleVideoLike(ctx context.Context, videoID, accountID uuid.UUID) (bool, error)

	AddComment(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*entity.Comment, error)
}
