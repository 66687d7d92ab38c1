package handler

import (
	"log/slog"
	"net/http"

	"vidtube/config"
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	Videos usecase.VideoUsecase
	Config *config.Config
	Logger *slog.Logger
}

// VideoHandler handles the catalog and video maintenance endpoints.
type VideoHandler struct {
	videos  usecase.VideoUsecase
	uploads *uploadStager
}

func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videos:  params.Videos,
		uploads: newUploadStager(params.Config, params.Logger),
	}
}

type listVideosRequest struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserID   string `query:"userId"`
}

type publishVideoRequest struct {
	Title       string  `form:"title" validate:"required"`
	Description string  `form:"description" validate:"required"`
	Duration    float64 `form:"duration" validate:"gte=0"`
}

type updateVideoRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
}

// List serves the paginated catalog of published videos.
func (h *VideoHandler) List(c echo.Context) error {
	var req listVideosRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed query parameters")
	}

	page, err := h.videos.List(c.Request().Context(), usecase.CatalogParams(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, page, "Videos fetched successfully")
}

// Publish uploads a video file and its thumbnail and creates the video.
func (h *VideoHandler) Publish(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req publishVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	videoPath, err := h.uploads.stage(c, "videoFile")
	if err != nil {
		return err
	}
	defer h.uploads.cleanup(videoPath)

	thumbnailPath, err := h.uploads.stage(c, "thumbnail")
	if err != nil {
		return err
	}
	defer h.uploads.cleanup(thumbnailPath)

	if videoPath == "" || thumbnailPath == "" {
		return domainerrors.ErrValidationFailed.WithDetails("videoFile and thumbnail are required")
	}

	video, err := h.videos.Publish(c.Request().Context(), usecase.PublishVideoInput{
		OwnerID:       identity.AccountID,
		Title:         req.Title,
		Description:   req.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
		Duration:      req.Duration,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, video, "Video published successfully")
}

// Detail returns a video with its owner and engagement counts and records the view.
func (h *VideoHandler) Detail(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	detail, err := h.videos.Detail(ctx, videoID, deliverycontext.ViewerID(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, detail, "Video fetched successfully")
}

// Update changes title and description and optionally replaces the thumbnail.
func (h *VideoHandler) Update(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	var req updateVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	thumbnailPath := ""
	if isMultipart(c) {
		thumbnailPath, err = h.uploads.stage(c, "thumbnail")
		if err != nil {
			return err
		}
		defer h.uploads.cleanup(thumbnailPath)
	}

	video, err := h.videos.Update(c.Request().Context(), usecase.UpdateVideoInput{
		VideoID:       videoID,
		OwnerID:       identity.AccountID,
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.videos.Delete(c.Request().Context(), videoID, identity.AccountID); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, map[string]any{}, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videos.TogglePublish(c.Request().Context(), videoID, identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, video, "Publish status toggled successfully")
}
