package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is an edge from a subscriber account to a channel account.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	ChannelID    uuid.UUID `json:"channel"`
	SubscriberID uuid.UUID `json:"subscriber"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Like is an edge from an account to a video.
type Like struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"video"`
	LikedBy   uuid.UUID `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a piece of text an account left on a video.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"video"`
	OwnerID   uuid.UUID `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
