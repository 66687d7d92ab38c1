package service

import "context"

// MediaKind groups uploaded objects under a key prefix.
type MediaKind string

const (
	MediaAvatar     MediaKind = "avatars"
	MediaCoverImage MediaKind = "covers"
	MediaVideo      MediaKind = "videos"
	MediaThumbnail  MediaKind = "thumbnails"
)

// UploadResult describes a stored object. Duration is set only when the provider can probe media.
type UploadResult struct {
	URL      string
	PublicID string
	Duration *float64
}

// BlobStore stores media files outside the document store.
type BlobStore interface {
	// Upload stores the file at localPath and removes the local file afterwards,
	// whether or not the upload succeeded.
	Upload(ctx context.Context, localPath string, kind MediaKind) (*UploadResult, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, publicID string) error
}
