package mongodb

import (
	"testing"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage[0].Key)
	}

	return names
}

func stageValue(t *testing.T, stage bson.D) bson.D {
	t.Helper()

	v, ok := stage[0].Value.(bson.D)
	require.True(t, ok, "stage %s has no document value", stage[0].Key)

	return v
}

func field(d bson.D, key string) any {
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}

	return nil
}

func TestCatalogPipeline_StageOrder(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name  string
		query entity.CatalogQuery
		want  []string
	}{
		{
			name:  "no filters",
			query: entity.CatalogQuery{Page: 1, Limit: 10},
			want:  []string{"$match", "$sort", "$lookup", "$unwind", "$facet"},
		},
		{
			name:  "search and owner",
			query: entity.CatalogQuery{Page: 1, Limit: 10, Search: "go", OwnerID: &owner},
			want:  []string{"$match", "$match", "$match", "$sort", "$lookup", "$unwind", "$facet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stageNames(catalogPipeline(tt.query)))
		})
	}
}

func TestCatalogPipeline_FilterContent(t *testing.T) {
	owner := uuid.New()
	p := catalogPipeline(entity.CatalogQuery{Page: 1, Limit: 10, Search: "gopher", OwnerID: &owner})

	text := stageValue(t, p[0])
	require.Equal(t, "$text", text[0].Key)
	assert.Equal(t, "gopher", field(text[0].Value.(bson.D), "$search"))

	assert.Equal(t, owner.String(), field(stageValue(t, p[1]), "owner"))
	assert.Equal(t, true, field(stageValue(t, p[2]), "isPublished"))
}

func TestCatalogPipeline_PublishedFilterAlwaysPresent(t *testing.T) {
	p := catalogPipeline(entity.CatalogQuery{Page: 3, Limit: 5})

	assert.Equal(t, true, field(stageValue(t, p[0]), "isPublished"))
}

func TestCatalogPipeline_PaginationWindow(t *testing.T) {
	p := catalogPipeline(entity.CatalogQuery{Page: 2, Limit: 10})

	facet := stageValue(t, p[len(p)-1])
	items, ok := field(facet, "items").(bson.A)
	require.True(t, ok)
	require.Len(t, items, 2)

	assert.Equal(t, int64(10), field(items[0].(bson.D), "$skip"))
	assert.Equal(t, int64(10), field(items[1].(bson.D), "$limit"))
	assert.NotNil(t, field(facet, "metadata"))
}

func TestSortStage(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    entity.SortField
		sortType  entity.SortDirection
		wantField string
		wantDir   int
	}{
		{name: "default", wantField: "createdAt", wantDir: -1},
		{name: "views asc", sortBy: entity.SortByViews, sortType: entity.SortAsc, wantField: "views", wantDir: 1},
		{name: "duration desc", sortBy: entity.SortByDuration, sortType: entity.SortDesc, wantField: "duration", wantDir: -1},
		{name: "field without direction", sortBy: entity.SortByViews, wantField: "createdAt", wantDir: -1},
		{name: "unknown field", sortBy: "title", sortType: entity.SortAsc, wantField: "createdAt", wantDir: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := stageValue(t, sortStage(tt.sortBy, tt.sortType))

			require.Len(t, keys, 2)
			assert.Equal(t, tt.wantField, keys[0].Key)
			assert.Equal(t, tt.wantDir, keys[0].Value)
			assert.Equal(t, "_id", keys[1].Key)
			assert.Equal(t, tt.wantDir, keys[1].Value)
		})
	}
}

func TestViewerIn_AnonymousIsFalse(t *testing.T) {
	assert.Equal(t, false, viewerIn(uuid.Nil, "$subscribers.subscriber"))

	viewer := uuid.New()
	expr, ok := viewerIn(viewer, "$likes.likedBy").(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$in", expr[0].Key)
	assert.Equal(t, bson.A{viewer.String(), "$likes.likedBy"}, expr[0].Value)
}

func TestChannelProfilePipeline(t *testing.T) {
	p := channelProfilePipeline("alice", uuid.Nil)

	assert.Equal(t, []string{"$match", "$lookup", "$lookup", "$addFields", "$project"}, stageNames(p))
	assert.Equal(t, "alice", field(stageValue(t, p[0]), "username"))
	assert.Equal(t, "channel", field(stageValue(t, p[1]), "foreignField"))
	assert.Equal(t, "subscriber", field(stageValue(t, p[2]), "foreignField"))

	project := stageValue(t, p[4])
	assert.Nil(t, field(project, "password"))
	assert.Nil(t, field(project, "refreshToken"))
	assert.Nil(t, field(project, "watchHistory"))
}

func TestVideoDetailPipeline_ProjectsAllowlist(t *testing.T) {
	p := videoDetailPipeline(uuid.New(), uuid.New())

	assert.Equal(t, []string{"$match", "$lookup", "$lookup", "$lookup", "$addFields", "$project"}, stageNames(p))

	project := stageValue(t, p[len(p)-1])
	for _, key := range []string{"likes", "comments", "password", "refreshToken"} {
		assert.Nil(t, field(project, key), key)
	}
	for _, key := range []string{"owner", "likesCount", "commentsCount", "isLiked", "hasCommented"} {
		assert.NotNil(t, field(project, key), key)
	}

	ownerJoin := stageValue(t, p[3])
	subPipeline, ok := field(ownerJoin, "pipeline").(bson.A)
	require.True(t, ok)
	ownerProject := stageValue(t, subPipeline[len(subPipeline)-1].(bson.D))
	assert.Nil(t, field(ownerProject, "email"))
	assert.NotNil(t, field(ownerProject, "subscribersCount"))
}

func TestWatchHistoryPipeline_MatchesIDs(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	p := watchHistoryPipeline(ids)

	assert.Equal(t, []string{"$match", "$lookup", "$addFields"}, stageNames(p))
	in := field(stageValue(t, p[0]), "_id").(bson.D)
	assert.Equal(t, bson.A{ids[0].String(), ids[1].String()}, in[0].Value)
}
