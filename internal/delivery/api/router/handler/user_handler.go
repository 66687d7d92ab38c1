package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"vidtube/config"
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Sessions usecase.SessionUsecase
	Channels usecase.ChannelUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// UserHandler handles account, session and channel endpoints.
type UserHandler struct {
	accounts usecase.AccountUsecase
	sessions usecase.SessionUsecase
	channels usecase.ChannelUsecase
	cookies  *sessionCookies
	uploads  *uploadStager
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accounts: params.Accounts,
		sessions: params.Sessions,
		channels: params.Channels,
		cookies:  newSessionCookies(params.Config),
		uploads:  newUploadStager(params.Config, params.Logger),
	}
}

type registerRequest struct {
	FullName string `form:"fullName" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type loginResponse struct {
	User         *entity.Account `json:"user"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

// Register creates an account from a multipart form with an avatar and an optional cover image.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	avatarPath, err := h.uploads.stage(c, "avatar")
	if err != nil {
		return err
	}
	defer h.uploads.cleanup(avatarPath)

	if avatarPath == "" {
		return domainerrors.ErrValidationFailed.WithDetails("avatar file is required")
	}

	coverPath, err := h.uploads.stage(c, "coverImage")
	if err != nil {
		return err
	}
	defer h.uploads.cleanup(coverPath)

	account, err := h.accounts.Register(c.Request().Context(), usecase.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		AvatarPath:     avatarPath,
		CoverImagePath: coverPath,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, account, "User registered successfully")
}

// Login authenticates by username or email and sets the session cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accounts.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, out.Tokens)

	return response.SuccessWithMessage(c, http.StatusOK, loginResponse{
		User:         out.Account,
		AccessToken:  out.Tokens.AccessToken,
		RefreshToken: out.Tokens.RefreshToken,
	}, "User logged in successfully")
}

// Logout revokes the stored refresh token and clears the cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Revoke(c.Request().Context(), identity.AccountID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.clear(c)

	return response.SuccessWithMessage(c, http.StatusOK, map[string]any{}, "User logged out")
}

// RefreshToken rotates the pair. The cookie wins over the body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		token = cookie.Value
	}

	if token == "" {
		var req refreshRequest
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
		}
		token = strings.TrimSpace(req.RefreshToken)
	}

	pair, err := h.sessions.RotateRefresh(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, pair)

	return response.SuccessWithMessage(c, http.StatusOK, pair, "Access token refreshed")
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.accounts.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		AccountID:   identity.AccountID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, map[string]any{}, "Password changed successfully")
}

func (h *UserHandler) CurrentUser(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.CurrentAccount(c.Request().Context(), identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, account, "Current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accounts.UpdateDetails(c.Request().Context(), usecase.UpdateDetailsInput{
		AccountID: identity.AccountID,
		FullName:  req.FullName,
		Email:     req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, account, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.replaceImage(c, "avatar", h.accounts.UpdateAvatar, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.replaceImage(c, "coverImage", h.accounts.UpdateCoverImage, "Cover image updated successfully")
}

type imageUpdater func(ctx context.Context, accountID uuid.UUID, localPath string) (*entity.Account, error)

func (h *UserHandler) replaceImage(c echo.Context, field string, update imageUpdater, message string) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	path, err := h.uploads.stage(c, field)
	if err != nil {
		return err
	}
	defer h.uploads.cleanup(path)

	if path == "" {
		return domainerrors.ErrValidationFailed.WithDetails(field + " file is missing")
	}

	account, err := update(c.Request().Context(), identity.AccountID, path)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, account, message)
}

// ChannelProfile returns the channel named by :username as seen by the caller.
func (h *UserHandler) ChannelProfile(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username is missing")
	}

	profile, err := h.channels.ChannelProfile(c.Request().Context(), username, identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *UserHandler) WatchHistory(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	history, err := h.channels.WatchHistory(c.Request().Context(), identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, history, "Watch history fetched successfully")
}
