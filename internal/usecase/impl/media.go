package impl

import (
	"context"
	"log/slog"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"

	"golang.org/x/sync/errgroup"
)

// mediaUpload is one staged file headed for the blob store. Result is set on success.
type mediaUpload struct {
	path   string
	kind   service.MediaKind
	result *service.UploadResult
}

func (m *mediaUpload) ref() entity.MediaRef {
	if m.result == nil {
		return entity.MediaRef{}
	}

	return entity.MediaRef{URL: m.result.URL, PublicID: m.result.PublicID}
}

// uploadMedia stores the uploads concurrently. If any fails, those that succeeded are removed again.
func uploadMedia(ctx context.Context, store service.BlobStore, logger *slog.Logger, uploads ...*mediaUpload) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, up := range uploads {
		g.Go(func() error {
			res, err := store.Upload(gctx, up.path, up.kind)
			if err != nil {
				logger.Error("Failed to upload media", slog.String("kind", string(up.kind)), slog.Any("error", err))

				return err
			}
			up.result = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var uploaded []string
		for _, up := range uploads {
			if up.result != nil {
				uploaded = append(uploaded, up.result.PublicID)
			}
		}
		discardMedia(context.WithoutCancel(ctx), store, logger, uploaded...)

		return domainerrors.ErrMediaUploadFailed.WrapMessage("failed to upload media")
	}

	return nil
}

// discardMedia deletes blobs best-effort. Failures are logged and swallowed.
func discardMedia(ctx context.Context, store service.BlobStore, logger *slog.Logger, publicIDs ...string) {
	for _, id := range publicIDs {
		if id == "" {
			continue
		}
		if err := store.Delete(ctx, id); err != nil {
			logger.Warn("Failed to delete media", slog.String("public_id", id), slog.Any("error", err))
		}
	}
}
