package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidtube/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stageFile(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestBucketStore_UploadRemovesLocalFile(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := newBucketStore(bucket, "https://cdn.example.com/media/", newDiscardLogger())
	t.Cleanup(func() { _ = store.Close() })

	local := stageFile(t, "clip.MP4", "video-bytes")

	res, err := store.Upload(ctx, local, service.MediaVideo)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.PublicID, "videos/"))
	assert.True(t, strings.HasSuffix(res.PublicID, ".mp4"))
	assert.Equal(t, "https://cdn.example.com/media/"+res.PublicID, res.URL)
	assert.Nil(t, res.Duration)

	_, statErr := os.Stat(local)
	assert.True(t, os.IsNotExist(statErr), "staged file must be removed")

	data, err := bucket.ReadAll(ctx, res.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, res.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", attrs.ContentType)
}

func TestBucketStore_UploadMissingFile(t *testing.T) {
	store := newBucketStore(memblob.OpenBucket(nil), "", newDiscardLogger())

	_, err := store.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.png"), service.MediaAvatar)
	assert.Error(t, err)
}

func TestBucketStore_UploadFailureStillRemovesLocalFile(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := newBucketStore(bucket, "", newDiscardLogger())
	local := stageFile(t, "avatar.png", "png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _ = store.Upload(ctx, local, service.MediaAvatar)

	_, statErr := os.Stat(local)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBucketStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := newBucketStore(bucket, "", newDiscardLogger())

	res, err := store.Upload(ctx, stageFile(t, "thumb.jpg", "jpg"), service.MediaThumbnail)
	require.NoError(t, err)
	assert.Equal(t, res.PublicID, res.URL)

	require.NoError(t, store.Delete(ctx, res.PublicID))
	require.NoError(t, store.Delete(ctx, res.PublicID))
	require.NoError(t, store.Delete(ctx, ""))

	exists, err := bucket.Exists(ctx, res.PublicID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewBucketStore_FileBlob(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewBucketStore(ctx, "file://"+filepath.ToSlash(dir), "", newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	res, err := store.Upload(ctx, stageFile(t, "cover.webp", "webp"), service.MediaCoverImage)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(res.PublicID)))
	assert.NoError(t, err)
}

func TestObjectKeyAndPublicURL(t *testing.T) {
	key := objectKey(service.MediaAvatar, "/tmp/upload-123.JPG")

	assert.True(t, strings.HasPrefix(key, "avatars/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, "http://x/y/k", publicURL("http://x/y/", "k"))
	assert.Equal(t, "k", publicURL("", "k"))
	assert.Equal(t, "application/octet-stream", contentType("noext"))
}
