package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	indexAccountUsername = "accounts_username_unique"
	indexAccountEmail    = "accounts_email_unique"
	indexVideoText       = "videos_text_search"
)

// collectionIndexes lists the indexes every collection needs. Unique edge indexes make
// concurrent duplicate subscribes and likes collapse into one record.
func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		collAccounts: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName(indexAccountUsername).SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(indexAccountEmail).SetUnique(true)},
		},
		collVideos: {
			{
				Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
				Options: options.Index().SetName(indexVideoText),
			},
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		collSubscriptions: {
			{
				Keys:    bson.D{{Key: "channel", Value: 1}, {Key: "subscriber", Value: 1}},
				Options: options.Index().SetName("subscriptions_edge_unique").SetUnique(true),
			},
			{Keys: bson.D{{Key: "subscriber", Value: 1}}},
		},
		collLikes: {
			{
				Keys:    bson.D{{Key: "video", Value: 1}, {Key: "likedBy", Value: 1}},
				Options: options.Index().SetName("likes_edge_unique").SetUnique(true),
			},
		},
		collComments: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
}

// EnsureIndexes creates missing indexes. Existing identical indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for name, models := range collectionIndexes() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}
