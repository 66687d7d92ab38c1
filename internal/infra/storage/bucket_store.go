package storage

import (
	"context"
	"io"
	"log/slog"
	"os"

	"vidtube/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// bucketStore stores media in any gocloud.dev bucket (file://, mem://, s3://).
type bucketStore struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// NewBucketStore opens the bucket at bucketURL.
func NewBucketStore(ctx context.Context, bucketURL, baseURL string, logger *slog.Logger) (*bucketStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket")
	}

	return newBucketStore(bucket, baseURL, logger), nil
}

func newBucketStore(bucket *blob.Bucket, baseURL string, logger *slog.Logger) *bucketStore {
	return &bucketStore{bucket: bucket, baseURL: baseURL, logger: logger}
}

func (s *bucketStore) Upload(ctx context.Context, localPath string, kind service.MediaKind) (*service.UploadResult, error) {
	defer removeLocal(s.logger, localPath)

	src, err := os.Open(localPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open staged upload")
	}
	defer src.Close()

	key := objectKey(kind, localPath)
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType(localPath)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()

		return nil, errors.Wrap(err, "failed to write object")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit object")
	}

	return &service.UploadResult{URL: publicURL(s.baseURL, key), PublicID: key}, nil
}

func (s *bucketStore) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, publicID); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete object")
	}

	return nil
}

func (s *bucketStore) Close() error {
	return s.bucket.Close()
}
