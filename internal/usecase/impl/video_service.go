package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultCatalogLimit      = 10
	defaultCatalogMaxLimit   = 100
	defaultSideEffectTimeout = 5 * time.Second
)

type videoService struct {
	videoRepo   repository.VideoRepository
	viewRepo    repository.ViewRepository
	accountRepo repository.AccountRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	blobStore   service.BlobStore

	defaultLimit      int
	maxLimit          int
	sideEffectTimeout time.Duration

	// sideEffects tracks view recording still in flight.
	sideEffects sync.WaitGroup
	logger      *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	Lc          fx.Lifecycle `optional:"true"`
	VideoRepo   repository.VideoRepository
	ViewRepo    repository.ViewRepository
	AccountRepo repository.AccountRepository
	LikeRepo    repository.LikeRepository
	CommentRepo repository.CommentRepository
	BlobStore   service.BlobStore
	Config      *config.Config
	Logger      *slog.Logger
}

func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	srv := &videoService{
		videoRepo:         params.VideoRepo,
		viewRepo:          params.ViewRepo,
		accountRepo:       params.AccountRepo,
		likeRepo:          params.LikeRepo,
		commentRepo:       params.CommentRepo,
		blobStore:         params.BlobStore,
		defaultLimit:      defaultCatalogLimit,
		maxLimit:          defaultCatalogMaxLimit,
		sideEffectTimeout: defaultSideEffectTimeout,
		logger:            params.Logger,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Catalog != nil {
			if cfg.Catalog.DefaultLimit > 0 {
				srv.defaultLimit = cfg.Catalog.DefaultLimit
			}
			if cfg.Catalog.MaxLimit > 0 {
				srv.maxLimit = cfg.Catalog.MaxLimit
			}
		}
		if cfg.Views != nil && cfg.Views.SideEffectTimeout > 0 {
			srv.sideEffectTimeout = cfg.Views.SideEffectTimeout
		}
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				srv.sideEffects.Wait()

				return nil
			},
		})
	}

	return srv
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Publish uploads the video file and thumbnail concurrently and stores the video as published.
func (srv *videoService) Publish(ctx context.Context, input usecase.PublishVideoInput) (*entity.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and description are required")
	}
	if input.VideoPath == "" || input.ThumbnailPath == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("video file and thumbnail are required")
	}
	if input.Duration < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("duration must not be negative")
	}

	videoFile := &mediaUpload{path: input.VideoPath, kind: service.MediaVideo}
	thumbnail := &mediaUpload{path: input.ThumbnailPath, kind: service.MediaThumbnail}
	if err := uploadMedia(ctx, srv.blobStore, srv.log(ctx), videoFile, thumbnail); err != nil {
		return nil, err
	}

	duration := input.Duration
	if videoFile.result.Duration != nil {
		duration = *videoFile.result.Duration
	}

	now := time.Now().UTC()
	video := &entity.Video{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Duration:    duration,
		VideoFile:   videoFile.ref(),
		Thumbnail:   thumbnail.ref(),
		OwnerID:     input.OwnerID,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		discardMedia(context.WithoutCancel(ctx), srv.blobStore, srv.log(ctx), video.VideoFile.PublicID, video.Thumbnail.PublicID)

		return nil, errors.Wrap(err, "failed to create video")
	}

	srv.log(ctx).Info("Video published", slog.Any("video_id", video.ID), slog.Any("owner_id", video.OwnerID))

	return video, nil
}

// Detail returns the aggregated video view. Unpublished videos are only visible to their owner.
// The view counter and the viewer's watch history are updated in the background.
func (srv *videoService) Detail(ctx context.Context, videoID, viewer uuid.UUID) (*entity.VideoDetail, error) {
	detail, err := srv.viewRepo.VideoDetail(ctx, videoID, viewer)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound.WrapMessage("video not found")
		}

		srv.log(ctx).Error("Failed to build video detail", slog.Any("video_id", videoID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build video detail")
	}

	if !detail.IsPublished && detail.Owner.ID != viewer {
		return nil, domainerrors.ErrVideoNotFound.WrapMessage("video not found")
	}

	srv.recordView(ctx, videoID, viewer)

	return detail, nil
}

// recordView increments the view counter and appends to the viewer's watch history.
// Both run detached from the request and their failures are only logged.
func (srv *videoService) recordView(ctx context.Context, videoID, viewer uuid.UUID) {
	base := context.WithoutCancel(ctx)
	logger := srv.log(ctx)

	run := func(name string, fn func(context.Context) error) {
		srv.sideEffects.Add(1)
		go func() {
			defer srv.sideEffects.Done()

			opCtx, cancel := context.WithTimeout(base, srv.sideEffectTimeout)
			defer cancel()

			if err := fn(opCtx); err != nil {
				logger.Warn("Failed to record video view", slog.String("step", name), slog.Any("video_id", videoID), slog.Any("error", err))
			}
		}()
	}

	run("increment_views", func(ctx context.Context) error {
		return srv.videoRepo.IncrementViews(ctx, videoID)
	})

	if viewer != uuid.Nil {
		run("watch_history", func(ctx context.Context) error {
			return srv.accountRepo.AppendWatchHistory(ctx, viewer, videoID)
		})
	}
}

// Update replaces title and description and, when given, the thumbnail.
func (srv *videoService) Update(ctx context.Context, input usecase.UpdateVideoInput) (*entity.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and description are required")
	}

	current, err := srv.ownedVideo(ctx, input.VideoID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	update := repository.VideoUpdate{Title: &title, Description: &description}

	var thumbnail *mediaUpload
	if input.ThumbnailPath != "" {
		thumbnail = &mediaUpload{path: input.ThumbnailPath, kind: service.MediaThumbnail}
		if err := uploadMedia(ctx, srv.blobStore, srv.log(ctx), thumbnail); err != nil {
			return nil, err
		}
		ref := thumbnail.ref()
		update.Thumbnail = &ref
	}

	updated, err := srv.videoRepo.Update(ctx, current.ID, update)
	if err != nil {
		if thumbnail != nil {
			discardMedia(context.WithoutCancel(ctx), srv.blobStore, srv.log(ctx), thumbnail.ref().PublicID)
		}
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound.WrapMessage("video not found")
		}

		return nil, errors.Wrap(err, "failed to update video")
	}

	if thumbnail != nil {
		discardMedia(context.WithoutCancel(ctx), srv.blobStore, srv.log(ctx), current.Thumbnail.PublicID)
	}

	return updated, nil
}

// Delete removes the video's likes and comments, then the video, then its blobs.
func (srv *videoService) Delete(ctx context.Context, videoID, ownerID uuid.UUID) error {
	video, err := srv.ownedVideo(ctx, videoID, ownerID)
	if err != nil {
		return err
	}

	var likes, comments int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := srv.likeRepo.DeleteByVideo(gctx, video.ID)
		likes = n

		return errors.Wrap(err, "failed to delete likes")
	})
	g.Go(func() error {
		n, err := srv.commentRepo.DeleteByVideo(gctx, video.ID)
		comments = n

		return errors.Wrap(err, "failed to delete comments")
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := srv.videoRepo.Delete(ctx, video.ID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return domainerrors.ErrVideoNotFound.WrapMessage("video not found")
		}

		return errors.Wrap(err, "failed to delete video")
	}

	discardMedia(context.WithoutCancel(ctx), srv.blobStore, srv.log(ctx), video.VideoFile.PublicID, video.Thumbnail.PublicID)

	srv.log(ctx).Info("Video deleted",
		slog.Any("video_id", video.ID),
		slog.Int64("likes_removed", likes),
		slog.Int64("comments_removed", comments),
	)

	return nil
}

func (srv *videoService) TogglePublish(ctx context.Context, videoID, ownerID uuid.UUID) (*entity.Video, error) {
	if _, err := srv.ownedVideo(ctx, videoID, ownerID); err != nil {
		return nil, err
	}

	video, err := srv.videoRepo.TogglePublished(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound.WrapMessage("video not found")
		}

		return nil, errors.Wrap(err, "failed to toggle publish status")
	}

	return video, nil
}

func (srv *videoService) ownedVideo(ctx context.Context, videoID, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound.WrapMessage("video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	if !video.IsOwnedBy(ownerID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the owner can modify this video")
	}

	return video, nil
}

// List runs a catalog query over published videos.
func (srv *videoService) List(ctx context.Context, params usecase.CatalogParams) (*entity.VideoPage, error) {
	query, err := srv.catalogQuery(params)
	if err != nil {
		return nil, err
	}

	page, err := srv.viewRepo.ListVideos(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to list videos", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list videos")
	}

	return page, nil
}

// catalogQuery normalizes raw listing parameters. An incomplete or unknown sort pair falls back
// to newest first.
func (srv *videoService) catalogQuery(params usecase.CatalogParams) (entity.CatalogQuery, error) {
	query := entity.CatalogQuery{
		Page:     1,
		Limit:    srv.defaultLimit,
		Search:   strings.TrimSpace(params.Query),
		SortBy:   entity.SortByCreatedAt,
		SortType: entity.SortDesc,
	}

	if raw := strings.TrimSpace(params.Page); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return query, domainerrors.ErrValidationFailed.WrapMessage("page must be a positive integer")
		}
		query.Page = page
	}

	if raw := strings.TrimSpace(params.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return query, domainerrors.ErrValidationFailed.WrapMessage("limit must be a positive integer")
		}
		query.Limit = min(limit, srv.maxLimit)
	}

	sortBy := entity.SortField(strings.TrimSpace(params.SortBy))
	sortType := entity.SortDirection(strings.ToLower(strings.TrimSpace(params.SortType)))
	if sortBy.Valid() && sortType.Valid() {
		query.SortBy = sortBy
		query.SortType = sortType
	}

	if raw := strings.TrimSpace(params.UserID); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return query, domainerrors.ErrInvalidIdentifier.WrapMessage("invalid userId")
		}
		query.OwnerID = &ownerID
	}

	return query, nil
}
