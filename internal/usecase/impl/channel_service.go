package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type channelService struct {
	viewRepo repository.ViewRepository
	logger   *slog.Logger
}

// ChannelServiceParams holds dependencies for ChannelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	ViewRepo repository.ViewRepository
	Logger   *slog.Logger
}

func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	return &channelService{
		viewRepo: params.ViewRepo,
		logger:   params.Logger,
	}
}

func (srv *channelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *channelService) ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*entity.ChannelProfile, error) {
	username = normalizeHandle(username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username is missing")
	}

	profile, err := srv.viewRepo.ChannelProfile(ctx, username, viewer)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrChannelNotFound.WrapMessage("channel does not exist")
		}

		srv.log(ctx).Error("Failed to build channel profile", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build channel profile")
	}

	return profile, nil
}

func (srv *channelService) WatchHistory(ctx context.Context, accountID uuid.UUID) ([]*entity.VideoSummary, error) {
	history, err := srv.viewRepo.WatchHistory(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to load watch history")
	}
	if history == nil {
		history = []*entity.VideoSummary{}
	}

	srv.log(ctx).Debug("Loaded watch history", slog.Any("account_id", accountID), slog.Int("count", len(history)))

	return history, nil
}
