package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded media item owned by exactly one account.
type Video struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	VideoFile   MediaRef  `json:"videoFile"`
	Thumbnail   MediaRef  `json:"thumbnail"`
	OwnerID     uuid.UUID `json:"owner"`
	IsPublished bool      `json:"isPublished"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether accountID owns the video.
func (v *Video) IsOwnedBy(accountID uuid.UUID) bool {
	return v != nil && v.OwnerID == accountID
}
