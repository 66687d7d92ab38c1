package handler

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxExtensionLength = 10

// uploadStager copies multipart files to local temp files for the blob store.
type uploadStager struct {
	dir    string
	logger *slog.Logger
}

func newUploadStager(cfg *config.Config, logger *slog.Logger) *uploadStager {
	dir := ""
	if cfg.Storage != nil {
		dir = cfg.Storage.TempDir
	}

	return &uploadStager{dir: dir, logger: logger}
}

// stage writes the form file to a temp file and returns its path.
// A missing field yields "" and no error.
func (s *uploadStager) stage(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}

		return "", domainerrors.ErrValidationFailed.WithDetails("expected multipart form with " + field)
	}

	src, err := fh.Open()
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", field)
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.dir, "upload-*"+safeExtension(fh.Filename))
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		s.cleanup(dst.Name())

		return "", errors.Wrapf(err, "failed to stage %s", field)
	}
	if err := dst.Close(); err != nil {
		s.cleanup(dst.Name())

		return "", errors.Wrapf(err, "failed to stage %s", field)
	}

	return dst.Name(), nil
}

// cleanup removes staged files the blob store did not consume.
func (s *uploadStager) cleanup(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove staged upload", slog.String("path", p), slog.Any("error", err))
		}
	}
}

func safeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > maxExtensionLength {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
