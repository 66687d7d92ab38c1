package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStager(t *testing.T) *uploadStager {
	t.Helper()

	cfg := &config.Config{Storage: &config.StorageConfig{TempDir: t.TempDir()}}

	return newUploadStager(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func multipartContext(t *testing.T, field, filename string, content []byte) echo.Context {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("title", "x"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestUploadStager_Stage(t *testing.T) {
	stager := newTestStager(t)
	c := multipartContext(t, "videoFile", "clip.MP4", []byte("frames"))

	path, err := stager.stage(c, "videoFile")
	require.NoError(t, err)

	assert.Equal(t, stager.dir, filepath.Dir(path))
	assert.Equal(t, ".mp4", filepath.Ext(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "frames", string(content))

	stager.cleanup(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUploadStager_MissingField(t *testing.T) {
	stager := newTestStager(t)
	c := multipartContext(t, "", "", nil)

	path, err := stager.stage(c, "thumbnail")

	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestUploadStager_NotMultipart(t *testing.T) {
	stager := newTestStager(t)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	_, err := stager.stage(c, "avatar")

	assert.True(t, domainerrors.IsKind(err, domainerrors.ErrValidationFailed))
}

func TestUploadStager_CleanupIgnoresMissing(t *testing.T) {
	stager := newTestStager(t)

	assert.NotPanics(t, func() {
		stager.cleanup("", filepath.Join(stager.dir, "gone"))
	})
}

func TestSafeExtension(t *testing.T) {
	assert.Equal(t, ".png", safeExtension("a.PNG"))
	assert.Equal(t, ".mp4", safeExtension("dir/clip.mp4"))
	assert.Empty(t, safeExtension("noext"))
	assert.Empty(t, safeExtension("evil.p/ng"))
	assert.Empty(t, safeExtension("x.verylongextension"))
	assert.Empty(t, safeExtension("x.p$g"))
}
