package model

import (
	"time"

	"vidtube/internal/domain/entity"
)

// SubscriptionDocument mirrors the 'subscriptions' collection.
type SubscriptionDocument struct {
	ID         string    `bson:"_id"`
	Channel    string    `bson:"channel"`
	Subscriber string    `bson:"subscriber"`
	CreatedAt  time.Time `bson:"createdAt"`
}

func FromSubscription(s *entity.Subscription) *SubscriptionDocument {
	return &SubscriptionDocument{
		ID:         s.ID.String(),
		Channel:    s.ChannelID.String(),
		Subscriber: s.SubscriberID.String(),
		CreatedAt:  s.CreatedAt,
	}
}

// LikeDocument mirrors the 'likes' collection.
type LikeDocument struct {
	ID        string    `bson:"_id"`
	Video     string    `bson:"video"`
	LikedBy   string    `bson:"likedBy"`
	CreatedAt time.Time `bson:"createdAt"`
}

func FromLike(l *entity.Like) *LikeDocument {
	return &LikeDocument{
		ID:        l.ID.String(),
		Video:     l.VideoID.String(),
		LikedBy:   l.LikedBy.String(),
		CreatedAt: l.CreatedAt,
	}
}

// CommentDocument mirrors the 'comments' collection.
type CommentDocument struct {
	ID        string    `bson:"_id"`
	Video     string    `bson:"video"`
	Owner     string    `bson:"owner"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func FromComment(c *entity.Comment) *CommentDocument {
	return &CommentDocument{
		ID:        c.ID.String(),
		Video:     c.VideoID.String(),
		Owner:     c.OwnerID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
