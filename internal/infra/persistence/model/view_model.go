package model

import (
	"time"

	"vidtube/internal/domain/entity"
)

// ChannelProfileDocument is the projected output of the channel profile pipeline.
type ChannelProfileDocument struct {
	ID                string         `bson:"_id"`
	Username          string         `bson:"username"`
	Email             string         `bson:"email"`
	FullName          string         `bson:"fullName"`
	Avatar            MediaDocument  `bson:"avatar"`
	CoverImage        *MediaDocument `bson:"coverImage,omitempty"`
	SubscriberCount   int64          `bson:"subscribersCount"`
	SubscribedToCount int64          `bson:"channelsSubscribedToCount"`
	IsSubscribed      bool           `bson:"isSubscribed"`
	CreatedAt         time.Time      `bson:"createdAt"`
}

func (d *ChannelProfileDocument) ToDomain() *entity.ChannelProfile {
	return &entity.ChannelProfile{
		ID:                ParseID(d.ID),
		Username:          d.Username,
		Email:             d.Email,
		FullName:          d.FullName,
		Avatar:            d.Avatar.ToDomain(),
		CoverImage:        d.CoverImage.toDomainPtr(),
		SubscriberCount:   d.SubscriberCount,
		SubscribedToCount: d.SubscribedToCount,
		IsSubscribed:      d.IsSubscribed,
		CreatedAt:         d.CreatedAt,
	}
}

// OwnerDocument is the owner sub-document embedded by the join stages.
// SubscriberCount and IsSubscribed are only populated by the video detail pipeline.
type OwnerDocument struct {
	ID              string        `bson:"_id"`
	Username        string        `bson:"username"`
	FullName        string        `bson:"fullName"`
	Avatar          MediaDocument `bson:"avatar"`
	SubscriberCount int64         `bson:"subscribersCount"`
	IsSubscribed    bool          `bson:"isSubscribed"`
}

func (d OwnerDocument) toSummary() entity.OwnerSummary {
	return entity.OwnerSummary{
		ID:       ParseID(d.ID),
		Username: d.Username,
		FullName: d.FullName,
		Avatar:   d.Avatar.ToDomain(),
	}
}

// VideoDetailDocument is the projected output of the video detail pipeline.
type VideoDetailDocument struct {
	ID           string        `bson:"_id"`
	Title        string        `bson:"title"`
	Description  string        `bson:"description"`
	Duration     float64       `bson:"duration"`
	VideoFile    MediaDocument `bson:"videoFile"`
	Thumbnail    MediaDocument `bson:"thumbnail"`
	IsPublished  bool          `bson:"isPublished"`
	Views        int64         `bson:"views"`
	CreatedAt    time.Time     `bson:"createdAt"`
	Owner        OwnerDocument `bson:"owner"`
	LikeCount    int64         `bson:"likesCount"`
	CommentCount int64         `bson:"commentsCount"`
	IsLiked      bool          `bson:"isLiked"`
	HasCommented bool          `bson:"hasCommented"`
}

func (d *VideoDetailDocument) ToDomain() *entity.VideoDetail {
	return &entity.VideoDetail{
		ID:          ParseID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		VideoFile:   d.VideoFile.ToDomain(),
		Thumbnail:   d.Thumbnail.ToDomain(),
		IsPublished: d.IsPublished,
		Views:       d.Views,
		CreatedAt:   d.CreatedAt,
		Owner: entity.VideoOwner{
			OwnerSummary:    d.Owner.toSummary(),
			SubscriberCount: d.Owner.SubscriberCount,
			IsSubscribed:    d.Owner.IsSubscribed,
		},
		LikeCount:    d.LikeCount,
		CommentCount: d.CommentCount,
		IsLiked:      d.IsLiked,
		HasCommented: d.HasCommented,
	}
}

// VideoSummaryDocument is a video with its owner replaced by an OwnerDocument.
type VideoSummaryDocument struct {
	ID          string        `bson:"_id"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Duration    float64       `bson:"duration"`
	VideoFile   MediaDocument `bson:"videoFile"`
	Thumbnail   MediaDocument `bson:"thumbnail"`
	IsPublished bool          `bson:"isPublished"`
	Views       int64         `bson:"views"`
	CreatedAt   time.Time     `bson:"createdAt"`
	Owner       OwnerDocument `bson:"owner"`
}

func (d *VideoSummaryDocument) ToDomain() *entity.VideoSummary {
	return &entity.VideoSummary{
		ID:          ParseID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		VideoFile:   d.VideoFile.ToDomain(),
		Thumbnail:   d.Thumbnail.ToDomain(),
		IsPublished: d.IsPublished,
		Views:       d.Views,
		CreatedAt:   d.CreatedAt,
		Owner:       d.Owner.toSummary(),
	}
}

// CatalogFacetDocument is the single document produced by the catalog $facet stage.
type CatalogFacetDocument struct {
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
	Items []VideoSummaryDocument `bson:"items"`
}

// Total returns the matched document count; $count emits nothing for an empty match.
func (d *CatalogFacetDocument) Total() int64 {
	if len(d.Metadata) == 0 {
		return 0
	}

	return d.Metadata[0].Total
}
