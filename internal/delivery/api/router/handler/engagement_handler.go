package handler

import (
	"net/http"

	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	Engagement usecase.EngagementUsecase
}

// EngagementHandler handles subscriptions, likes and comments.
type EngagementHandler struct {
	engagement usecase.EngagementUsecase
}

func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{engagement: params.Engagement}
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

func (h *EngagementHandler) ToggleSubscription(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}

	subscribed, err := h.engagement.ToggleSubscription(c.Request().Context(), channelID, identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}

	return response.SuccessWithMessage(c, http.StatusOK, map[string]bool{"subscribed": subscribed}, message)
}

func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	liked, err := h.engagement.ToggleVideoLike(c.Request().Context(), videoID, identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Video unliked successfully"
	if liked {
		message = "Video liked successfully"
	}

	return response.SuccessWithMessage(c, http.StatusOK, map[string]bool{"liked": liked}, message)
}

func (h *EngagementHandler) AddComment(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.engagement.AddComment(c.Request().Context(), videoID, identity.AccountID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, comment, "Comment added successfully")
}
