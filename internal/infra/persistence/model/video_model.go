package model

import (
	"time"

	"vidtube/internal/domain/entity"
)

// VideoDocument mirrors the 'videos' collection.
type VideoDocument struct {
	ID          string        `bson:"_id"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Duration    float64       `bson:"duration"`
	VideoFile   MediaDocument `bson:"videoFile"`
	Thumbnail   MediaDocument `bson:"thumbnail"`
	Owner       string        `bson:"owner"`
	IsPublished bool          `bson:"isPublished"`
	Views       int64         `bson:"views"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func FromVideo(v *entity.Video) *VideoDocument {
	return &VideoDocument{
		ID:          v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		VideoFile:   FromMedia(v.VideoFile),
		Thumbnail:   FromMedia(v.Thumbnail),
		Owner:       v.OwnerID.String(),
		IsPublished: v.IsPublished,
		Views:       v.Views,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (d *VideoDocument) ToDomain() *entity.Video {
	return &entity.Video{
		ID:          ParseID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		VideoFile:   d.VideoFile.ToDomain(),
		Thumbnail:   d.Thumbnail.ToDomain(),
		OwnerID:     ParseID(d.Owner),
		IsPublished: d.IsPublished,
		Views:       d.Views,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
