package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxCommentLength = 1000

type engagementService struct {
	accountRepo      repository.AccountRepository
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	likeRepo         repository.LikeRepository
	commentRepo      repository.CommentRepository
	logger           *slog.Logger
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	VideoRepo        repository.VideoRepository
	SubscriptionRepo repository.SubscriptionRepository
	LikeRepo         repository.LikeRepository
	CommentRepo      repository.CommentRepository
	Logger           *slog.Logger
}

func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		accountRepo:      params.AccountRepo,
		videoRepo:        params.VideoRepo,
		subscriptionRepo: params.SubscriptionRepo,
		likeRepo:         params.LikeRepo,
		commentRepo:      params.CommentRepo,
		logger:           params.Logger,
	}
}

func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleSubscription removes the edge when present, otherwise creates it.
func (srv *engagementService) ToggleSubscription(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	if channelID == subscriberID {
		return false, domainerrors.ErrSelfSubscription.WrapMessage("cannot subscribe to own channel")
	}

	if _, err := srv.accountRepo.FindPublicByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, domainerrors.ErrChannelNotFound.WrapMessage("channel does not exist")
		}

		return false, errors.Wrap(err, "failed to find channel")
	}

	removed, err := srv.subscriptionRepo.Delete(ctx, channelID, subscriberID)
	if err != nil {
		return false, errors.Wrap(err, "failed to remove subscription")
	}
	if removed {
		srv.log(ctx).Info("Unsubscribed", slog.Any("channel_id", channelID), slog.Any("subscriber_id", subscriberID))

		return false, nil
	}

	err = srv.subscriptionRepo.Create(ctx, &entity.Subscription{
		ID:           uuid.New(),
		ChannelID:    channelID,
		SubscriberID: subscriberID,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, repository.ErrEdgeAlreadyExists) {
		return false, errors.Wrap(err, "failed to create subscription")
	}

	srv.log(ctx).Info("Subscribed", slog.Any("channel_id", channelID), slog.Any("subscriber_id", subscriberID))

	return true, nil
}

// ToggleVideoLike removes the like when present, otherwise creates it.
func (srv *engagementService) ToggleVideoLike(ctx context.Context, videoID, accountID uuid.UUID) (bool, error) {
	if err := srv.ensureVideo(ctx, videoID); err != nil {
		return false, err
	}

	removed, err := srv.likeRepo.Delete(ctx, videoID, accountID)
	if err != nil {
		return false, errors.Wrap(err, "failed to remove like")
	}
	if removed {
		return false, nil
	}

	err = srv.likeRepo.Create(ctx, &entity.Like{
		ID:        uuid.New(),
		VideoID:   videoID,
		LikedBy:   accountID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, repository.ErrEdgeAlreadyExists) {
		return false, errors.Wrap(err, "failed to create like")
	}

	return true, nil
}

func (srv *engagementService) AddComment(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment is too long")
	}

	if err := srv.ensureVideo(ctx, videoID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &entity.Comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

func (srv *engagementService) ensureVideo(ctx context.Context, videoID uuid.UUID) error {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return domainerrors.ErrVideoNotFound.WrapMessage("video not found")
		}

		return errors.Wrap(err, "failed to find video")
	}

	return nil
}
