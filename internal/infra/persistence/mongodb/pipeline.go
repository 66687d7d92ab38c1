package mongodb

import (
	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// viewerIn tests whether the viewer id is a member of the array expression.
// An anonymous viewer is never a member.
func viewerIn(viewer uuid.UUID, arrayExpr string) any {
	if viewer == uuid.Nil {
		return false
	}

	return bson.D{{Key: "$in", Value: bson.A{viewer.String(), arrayExpr}}}
}

func size(arrayExpr string) bson.D {
	return bson.D{{Key: "$size", Value: arrayExpr}}
}

func lookup(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

// ownerLookup joins the owning account through a sub-pipeline. Extra stages run against the
// matched account before the projection is applied.
func ownerLookup(projection bson.D, extra ...bson.D) bson.D {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$ownerId"}}}}}}},
	}
	for _, stage := range extra {
		pipeline = append(pipeline, stage)
	}
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: projection}})

	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: collAccounts},
		{Key: "let", Value: bson.D{{Key: "ownerId", Value: "$owner"}}},
		{Key: "pipeline", Value: pipeline},
		{Key: "as", Value: "owner"},
	}}}
}

func ownerSummaryProjection() bson.D {
	return bson.D{
		{Key: "username", Value: 1},
		{Key: "fullName", Value: 1},
		{Key: "avatar", Value: 1},
	}
}

// channelProfilePipeline joins subscriptions twice: once where the account is the channel
// (its subscribers) and once where it is the subscriber (channels it follows).
func channelProfilePipeline(username string, viewer uuid.UUID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		lookup(collSubscriptions, "_id", "channel", "subscribers"),
		lookup(collSubscriptions, "_id", "subscriber", "subscribedTo"),
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: size("$subscribers")},
			{Key: "channelsSubscribedToCount", Value: size("$subscribedTo")},
			{Key: "isSubscribed", Value: viewerIn(viewer, "$subscribers.subscriber")},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "email", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
			{Key: "createdAt", Value: 1},
		}}},
	}
}

// videoDetailPipeline counts likes and comments, embeds the owner with its own subscriber
// count, and computes the viewer-relative flags. Only allowlisted fields leave the pipeline.
func videoDetailPipeline(videoID, viewer uuid.UUID) mongo.Pipeline {
	ownerProjection := append(ownerSummaryProjection(),
		bson.E{Key: "subscribersCount", Value: 1},
		bson.E{Key: "isSubscribed", Value: 1},
	)

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: videoID.String()}}}},
		lookup(collLikes, "_id", "video", "likes"),
		lookup(collComments, "_id", "video", "comments"),
		ownerLookup(ownerProjection,
			lookup(collSubscriptions, "_id", "channel", "subscribers"),
			bson.D{{Key: "$addFields", Value: bson.D{
				{Key: "subscribersCount", Value: size("$subscribers")},
				{Key: "isSubscribed", Value: viewerIn(viewer, "$subscribers.subscriber")},
			}}},
		),
		{{Key: "$addFields", Value: bson.D{
			{Key: "likesCount", Value: size("$likes")},
			{Key: "commentsCount", Value: size("$comments")},
			{Key: "owner", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$owner", 0}}}},
			{Key: "isLiked", Value: viewerIn(viewer, "$likes.likedBy")},
			{Key: "hasCommented", Value: viewerIn(viewer, "$comments.owner")},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "isPublished", Value: 1},
			{Key: "views", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "commentsCount", Value: 1},
			{Key: "isLiked", Value: 1},
			{Key: "hasCommented", Value: 1},
		}}},
	}
}

// watchHistoryPipeline resolves the given video ids and replaces each owner reference
// with a minimal owner summary. Ordering is restored by the caller.
func watchHistoryPipeline(videoIDs []uuid.UUID) mongo.Pipeline {
	ids := make(bson.A, 0, len(videoIDs))
	for _, id := range videoIDs {
		ids = append(ids, id.String())
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}}},
		ownerLookup(ownerSummaryProjection()),
		{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$owner", 0}}}},
		}}},
	}
}

// sortStage orders by the requested field, falling back to newest first when the
// field/direction pair is incomplete. _id breaks ties so page windows are stable.
func sortStage(sortBy entity.SortField, sortType entity.SortDirection) bson.D {
	field, dir := string(entity.SortByCreatedAt), -1
	if sortBy.Valid() && sortType.Valid() {
		field = string(sortBy)
		if sortType == entity.SortAsc {
			dir = 1
		}
	}

	return bson.D{{Key: "$sort", Value: bson.D{
		{Key: field, Value: dir},
		{Key: "_id", Value: dir},
	}}}
}

// catalogPipeline builds the listing in a fixed order: text search, owner filter,
// published-only filter, sort, owner join, then pagination with the total count.
func catalogPipeline(q entity.CatalogQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{}

	if q.Search != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "$text", Value: bson.D{{Key: "$search", Value: q.Search}}},
		}}})
	}

	if q.OwnerID != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{{Key: "owner", Value: q.OwnerID.String()}}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$match", Value: bson.D{{Key: "isPublished", Value: true}}}},
		sortStage(q.SortBy, q.SortType),
		ownerLookup(ownerSummaryProjection()),
		bson.D{{Key: "$unwind", Value: "$owner"}},
		bson.D{{Key: "$facet", Value: bson.D{
			{Key: "metadata", Value: bson.A{bson.D{{Key: "$count", Value: "total"}}}},
			{Key: "items", Value: bson.A{
				bson.D{{Key: "$skip", Value: q.Skip()}},
				bson.D{{Key: "$limit", Value: int64(q.Limit)}},
			}},
		}}},
	)

	return pipeline
}
