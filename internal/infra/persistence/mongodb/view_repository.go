package mongodb

import (
	"context"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type viewRepository struct {
	store
}

// NewViewRepository returns the aggregation-backed repository.ViewRepository.
func NewViewRepository(db *mongo.Database, cfg *config.Config) repository.ViewRepository {
	return &viewRepository{store: newStore(db, cfg)}
}

func (repo *viewRepository) ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*entity.ChannelProfile, error) {
	var docs []model.ChannelProfileDocument
	if err := repo.aggregate(ctx, collAccounts, channelProfilePipeline(username, viewer), &docs); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate channel profile")
	}
	if len(docs) == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return docs[0].ToDomain(), nil
}

func (repo *viewRepository) VideoDetail(ctx context.Context, videoID, viewer uuid.UUID) (*entity.VideoDetail, error) {
	var docs []model.VideoDetailDocument
	if err := repo.aggregate(ctx, collVideos, videoDetailPipeline(videoID, viewer), &docs); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate video detail")
	}
	if len(docs) == 0 {
		return nil, repository.ErrVideoNotFound
	}

	return docs[0].ToDomain(), nil
}

func (repo *viewRepository) WatchHistory(ctx context.Context, accountID uuid.UUID) ([]*entity.VideoSummary, error) {
	history, err := repo.watchHistoryIDs(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return []*entity.VideoSummary{}, nil
	}

	var docs []model.VideoSummaryDocument
	if err := repo.aggregate(ctx, collVideos, watchHistoryPipeline(history), &docs); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate watch history")
	}

	return orderByHistory(history, docs), nil
}

func (repo *viewRepository) watchHistoryIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc struct {
		WatchHistory []string `bson:"watchHistory"`
	}
	err := repo.collection(collAccounts).FindOne(ctx,
		bson.D{{Key: "_id", Value: accountID.String()}},
		options.FindOne().SetProjection(bson.D{{Key: "watchHistory", Value: 1}}),
	).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load watch history")
	}

	ids := make([]uuid.UUID, 0, len(doc.WatchHistory))
	for _, raw := range doc.WatchHistory {
		if id := model.ParseID(raw); id != uuid.Nil {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// orderByHistory returns the resolved videos in watch-history order. Ids whose video no
// longer exists are dropped.
func orderByHistory(history []uuid.UUID, docs []model.VideoSummaryDocument) []*entity.VideoSummary {
	byID := make(map[uuid.UUID]*entity.VideoSummary, len(docs))
	for i := range docs {
		v := docs[i].ToDomain()
		byID[v.ID] = v
	}

	out := make([]*entity.VideoSummary, 0, len(history))
	for _, id := range history {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}

	return out
}

func (repo *viewRepository) ListVideos(ctx context.Context, query entity.CatalogQuery) (*entity.VideoPage, error) {
	var facets []model.CatalogFacetDocument
	if err := repo.aggregate(ctx, collVideos, catalogPipeline(query), &facets); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate video catalog")
	}

	var facet model.CatalogFacetDocument
	if len(facets) > 0 {
		facet = facets[0]
	}

	items := make([]*entity.VideoSummary, 0, len(facet.Items))
	for i := range facet.Items {
		items = append(items, facet.Items[i].ToDomain())
	}

	return entity.NewVideoPage(items, facet.Total(), query.Page, query.Limit), nil
}

func (repo *viewRepository) aggregate(ctx context.Context, coll string, pipeline mongo.Pipeline, out any) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	cursor, err := repo.collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}

	return cursor.All(ctx, out)
}
