package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChannelProfile is the public view of an account with its subscription counts
// and whether the viewer subscribes to it.
type ChannelProfile struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FullName          string    `json:"fullName"`
	Avatar            MediaRef  `json:"avatar"`
	CoverImage        *MediaRef `json:"coverImage,omitempty"`
	SubscriberCount   int64     `json:"subscribersCount"`
	SubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed      bool      `json:"isSubscribed"`
	CreatedAt         time.Time `json:"createdAt"`
}

// OwnerSummary is the minimal owner projection embedded in video listings.
type OwnerSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Avatar   MediaRef  `json:"avatar"`
}

// VideoOwner extends OwnerSummary with viewer-relative subscription state.
type VideoOwner struct {
	OwnerSummary
	SubscriberCount int64 `json:"subscribersCount"`
	IsSubscribed    bool  `json:"isSubscribed"`
}

// VideoDetail is the full view of one video for a given viewer.
type VideoDetail struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     float64    `json:"duration"`
	VideoFile    MediaRef   `json:"videoFile"`
	Thumbnail    MediaRef   `json:"thumbnail"`
	IsPublished  bool       `json:"isPublished"`
	Views        int64      `json:"views"`
	CreatedAt    time.Time  `json:"createdAt"`
	Owner        VideoOwner `json:"owner"`
	LikeCount    int64      `json:"likesCount"`
	CommentCount int64      `json:"commentsCount"`
	IsLiked      bool       `json:"isLiked"`
	HasCommented bool       `json:"hasCommented"`
}

// VideoSummary is a video joined with its owner summary, used by listings and watch history.
type VideoSummary struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Duration    float64      `json:"duration"`
	VideoFile   MediaRef     `json:"videoFile"`
	Thumbnail   MediaRef     `json:"thumbnail"`
	IsPublished bool         `json:"isPublished"`
	Views       int64        `json:"views"`
	CreatedAt   time.Time    `json:"createdAt"`
	Owner       OwnerSummary `json:"owner"`
}
