// Package storage provides BlobStore implementations for uploaded media.
package storage

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderBucket = "bucket"
	ProviderS3     = "s3"
)

// BlobStoreParams holds dependencies for the BlobStore, injected by Fx
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type closableBlobStore interface {
	service.BlobStore
	Close() error
}

// NewBlobStore creates the BlobStore selected by storage.provider.
func NewBlobStore(params BlobStoreParams) (service.BlobStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var store closableBlobStore
	var err error

	switch cfg.Provider {
	case ProviderBucket, "":
		if cfg.BucketURL == "" {
			return nil, errors.New("storage.bucketUrl is required for bucket provider")
		}
		logger.Info("Using bucket blob store", slog.String("public_base_url", cfg.PublicBaseURL))

		store, err = NewBucketStore(ctx, cfg.BucketURL, cfg.PublicBaseURL, logger)

	case ProviderS3:
		if cfg.S3.Bucket == "" {
			return nil, errors.New("storage.s3.bucket is required for s3 provider")
		}
		logger.Info("Using S3 blob store",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("region", cfg.S3.Region),
		)

		store, err = NewS3Store(ctx, cfg.S3, cfg.PublicBaseURL, logger)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing blob store")

			return store.Close()
		},
	})

	return store, nil
}

// objectKey places the object under its kind prefix with a random name, keeping the extension.
func objectKey(kind service.MediaKind, localPath string) string {
	ext := strings.ToLower(filepath.Ext(localPath))

	return path.Join(string(kind), uuid.NewString()+ext)
}

func contentType(localPath string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(localPath))); ct != "" {
		return ct
	}

	return "application/octet-stream"
}

func publicURL(baseURL, key string) string {
	if baseURL == "" {
		return key
	}

	return strings.TrimSuffix(baseURL, "/") + "/" + key
}

// removeLocal deletes the staged upload. Failures are logged, never returned.
func removeLocal(logger *slog.Logger, localPath string) {
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove staged upload",
			slog.String("path", localPath),
			slog.Any("error", err),
		)
	}
}
