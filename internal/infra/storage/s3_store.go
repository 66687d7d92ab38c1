package storage

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// s3Store uploads media with the multipart S3 uploader to S3 or an S3-compatible service.
type s3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	baseURL  string
	logger   *slog.Logger
}

// NewS3Store configures an uploader targeting the configured bucket.
func NewS3Store(ctx context.Context, cfg config.S3Config, baseURL string, logger *slog.Logger) (*s3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 8 * 1024 * 1024
		u.LeavePartsOnError = false
	})

	return &s3Store{
		client:   client,
		uploader: uploader,
		bucket:   cfg.Bucket,
		baseURL:  baseURL,
		logger:   logger,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, localPath string, kind service.MediaKind) (*service.UploadResult, error) {
	defer removeLocal(s.logger, localPath)

	src, err := os.Open(localPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open staged upload")
	}
	defer src.Close()

	key := objectKey(kind, localPath)
	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upload %s", key)
	}

	url := publicURL(s.baseURL, key)
	if s.baseURL == "" && out.Location != "" {
		url = out.Location
	}

	return &service.UploadResult{URL: url, PublicID: key}, nil
}

// Delete removes the object. S3 reports success for missing keys.
func (s *s3Store) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})

	return errors.Wrapf(err, "failed to delete %s", publicID)
}

func (s *s3Store) Close() error {
	return nil
}
