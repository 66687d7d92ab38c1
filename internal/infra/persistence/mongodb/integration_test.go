package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testMongoURIEnv = "VIDTUBE_TEST_MONGO_URI"

type fixture struct {
	ctx      context.Context
	db       *mongo.Database
	accounts repository.AccountRepository
	videos   repository.VideoRepository
	subs     repository.SubscriptionRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	views    repository.ViewRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	uri := os.Getenv(testMongoURIEnv)
	if uri == "" {
		t.Skipf("%s not set; skipping MongoDB integration test", testMongoURIEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancel)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("vidtube_test_%s", uuid.NewString()[:8]))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	require.NoError(t, EnsureIndexes(ctx, db))

	cfg := &config.Config{Mongo: &config.MongoConfig{QueryTimeout: 10 * time.Second}}

	return &fixture{
		ctx:      ctx,
		db:       db,
		accounts: NewAccountRepository(db, cfg),
		videos:   NewVideoRepository(db, cfg),
		subs:     NewSubscriptionRepository(db, cfg),
		likes:    NewLikeRepository(db, cfg),
		comments: NewCommentRepository(db, cfg),
		views:    NewViewRepository(db, cfg),
	}
}

func (f *fixture) account(t *testing.T, username string) *entity.Account {
	t.Helper()

	a := &entity.Account{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     username,
		Avatar:       entity.MediaRef{URL: "http://blob/" + username, PublicID: "avatars/" + username},
		PasswordHash: "hash",
	}
	require.NoError(t, f.accounts.Create(f.ctx, a))

	return a
}

func (f *fixture) video(t *testing.T, owner uuid.UUID, title string, published bool) *entity.Video {
	t.Helper()

	v := &entity.Video{
		Title:       title,
		Description: "about " + title,
		Duration:    60,
		OwnerID:     owner,
		IsPublished: published,
	}
	require.NoError(t, f.videos.Create(f.ctx, v))

	return v
}

func (f *fixture) subscribe(t *testing.T, channel, subscriber uuid.UUID) {
	t.Helper()
	require.NoError(t, f.subs.Create(f.ctx, &entity.Subscription{ChannelID: channel, SubscriberID: subscriber}))
}

func TestIntegration_AccountUniqueness(t *testing.T) {
	f := newFixture(t)
	f.account(t, "alice")

	err := f.accounts.Create(f.ctx, &entity.Account{Username: "alice", Email: "other@example.com"})
	assert.True(t, errors.Is(err, repository.ErrAccountAlreadyExists))

	exists, err := f.accounts.ExistsByUsernameOrEmail(f.ctx, "nobody", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestIntegration_PublicProjectionStripsSecrets(t *testing.T) {
	f := newFixture(t)
	a := f.account(t, "alice")
	require.NoError(t, f.accounts.SetRefreshToken(f.ctx, a.ID, "rt"))

	public, err := f.accounts.FindPublicByID(f.ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, public.PasswordHash)
	assert.Empty(t, public.RefreshToken)

	full, err := f.accounts.FindByUsernameOrEmail(f.ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", full.PasswordHash)
	assert.Equal(t, "rt", full.RefreshToken)
}

func TestIntegration_RefreshTokenCompareAndSwap(t *testing.T) {
	f := newFixture(t)
	a := f.account(t, "alice")
	require.NoError(t, f.accounts.SetRefreshToken(f.ctx, a.ID, "first"))

	require.NoError(t, f.accounts.CompareAndSwapRefreshToken(f.ctx, a.ID, "first", "second"))

	err := f.accounts.CompareAndSwapRefreshToken(f.ctx, a.ID, "first", "third")
	assert.True(t, errors.Is(err, repository.ErrRefreshTokenMismatch))

	require.NoError(t, f.accounts.ClearRefreshToken(f.ctx, a.ID))
	require.NoError(t, f.accounts.ClearRefreshToken(f.ctx, a.ID))

	err = f.accounts.CompareAndSwapRefreshToken(f.ctx, a.ID, "second", "fourth")
	assert.True(t, errors.Is(err, repository.ErrRefreshTokenMismatch))
}

func TestIntegration_ChannelProfileCounts(t *testing.T) {
	f := newFixture(t)
	channel := f.account(t, "channel")
	viewer := f.account(t, "viewer")
	stranger := f.account(t, "stranger")

	// N = 3 subscribers, M = 2 subscribed-to.
	extra := f.account(t, "extra")
	f.subscribe(t, channel.ID, viewer.ID)
	f.subscribe(t, channel.ID, stranger.ID)
	f.subscribe(t, channel.ID, extra.ID)
	f.subscribe(t, viewer.ID, channel.ID)
	f.subscribe(t, stranger.ID, channel.ID)

	profile, err := f.views.ChannelProfile(f.ctx, "channel", viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.SubscriberCount)
	assert.Equal(t, int64(2), profile.SubscribedToCount)
	assert.True(t, profile.IsSubscribed)

	// extra follows channel, but channel does not follow extra.
	other, err := f.views.ChannelProfile(f.ctx, "extra", channel.ID)
	require.NoError(t, err)
	assert.False(t, other.IsSubscribed)
	assert.Equal(t, int64(0), other.SubscriberCount)
	assert.Equal(t, int64(1), other.SubscribedToCount)

	anonymous, err := f.views.ChannelProfile(f.ctx, "channel", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, anonymous.IsSubscribed)

	_, err = f.views.ChannelProfile(f.ctx, "ghost", viewer.ID)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestIntegration_VideoDetailAndSideEffects(t *testing.T) {
	f := newFixture(t)
	owner := f.account(t, "owner")
	viewer := f.account(t, "viewer")
	v := f.video(t, owner.ID, "intro", true)

	f.subscribe(t, owner.ID, viewer.ID)
	require.NoError(t, f.likes.Create(f.ctx, &entity.Like{VideoID: v.ID, LikedBy: viewer.ID}))
	require.NoError(t, f.comments.Create(f.ctx, &entity.Comment{VideoID: v.ID, OwnerID: owner.ID, Content: "first"}))

	detail, err := f.views.VideoDetail(f.ctx, v.ID, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.LikeCount)
	assert.Equal(t, int64(1), detail.CommentCount)
	assert.True(t, detail.IsLiked)
	assert.False(t, detail.HasCommented)
	assert.Equal(t, owner.ID, detail.Owner.ID)
	assert.Equal(t, "owner", detail.Owner.Username)
	assert.Equal(t, int64(1), detail.Owner.SubscriberCount)
	assert.True(t, detail.Owner.IsSubscribed)

	for range 2 {
		require.NoError(t, f.videos.IncrementViews(f.ctx, v.ID))
		require.NoError(t, f.accounts.AppendWatchHistory(f.ctx, viewer.ID, v.ID))
	}

	stored, err := f.videos.FindByID(f.ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Views)

	account, err := f.accounts.FindByID(f.ctx, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{v.ID}, account.WatchHistory)

	_, err = f.views.VideoDetail(f.ctx, uuid.New(), viewer.ID)
	assert.True(t, errors.Is(err, repository.ErrVideoNotFound))
}

func TestIntegration_WatchHistoryOrderAndOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.account(t, "owner")
	viewer := f.account(t, "viewer")
	first := f.video(t, owner.ID, "first", true)
	second := f.video(t, owner.ID, "second", true)

	require.NoError(t, f.accounts.AppendWatchHistory(f.ctx, viewer.ID, second.ID))
	require.NoError(t, f.accounts.AppendWatchHistory(f.ctx, viewer.ID, first.ID))

	history, err := f.views.WatchHistory(f.ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
	assert.Equal(t, "owner", history[0].Owner.Username)
	assert.Equal(t, "owner", history[0].Owner.FullName)
	assert.Equal(t, owner.Avatar, history[0].Owner.Avatar)
}

func TestIntegration_CatalogExcludesUnpublished(t *testing.T) {
	f := newFixture(t)
	owner := f.account(t, "owner")
	f.video(t, owner.ID, "hidden gopher", false)
	visible := f.video(t, owner.ID, "visible gopher", true)

	queries := []entity.CatalogQuery{
		{Page: 1, Limit: 10},
		{Page: 1, Limit: 10, Search: "gopher"},
		{Page: 1, Limit: 10, OwnerID: &owner.ID},
		{Page: 1, Limit: 10, SortBy: entity.SortByViews, SortType: entity.SortAsc},
	}

	for _, q := range queries {
		page, err := f.views.ListVideos(f.ctx, q)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, visible.ID, page.Items[0].ID)
		assert.Equal(t, int64(1), page.TotalDocs)
		assert.Equal(t, "owner", page.Items[0].Owner.Username)
	}
}

func TestIntegration_CatalogPagination(t *testing.T) {
	f := newFixture(t)
	owner := f.account(t, "owner")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ordered := make([]uuid.UUID, 25)
	for i := range 25 {
		v := f.video(t, owner.ID, fmt.Sprintf("video %02d", i), true)
		// Newest first: index 0 is the most recent.
		_, err := f.db.Collection(collVideos).UpdateOne(f.ctx,
			bson.D{{Key: "_id", Value: v.ID.String()}},
			bson.D{{Key: "$set", Value: bson.D{{Key: "createdAt", Value: base.Add(-time.Duration(i) * time.Hour)}}}},
		)
		require.NoError(t, err)
		ordered[i] = v.ID
	}

	page, err := f.views.ListVideos(f.ctx, entity.CatalogQuery{Page: 2, Limit: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 10)
	for i, item := range page.Items {
		assert.Equal(t, ordered[10+i], item.ID, "position %d", i)
	}
	assert.Equal(t, int64(25), page.TotalDocs)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrevPage)
	assert.True(t, page.HasNextPage)
}

func TestIntegration_TogglePublishedAndEdges(t *testing.T) {
	f := newFixture(t)
	owner := f.account(t, "owner")
	viewer := f.account(t, "viewer")
	v := f.video(t, owner.ID, "draft", false)

	toggled, err := f.videos.TogglePublished(f.ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPublished)

	require.NoError(t, f.likes.Create(f.ctx, &entity.Like{VideoID: v.ID, LikedBy: viewer.ID}))
	err = f.likes.Create(f.ctx, &entity.Like{VideoID: v.ID, LikedBy: viewer.ID})
	assert.True(t, errors.Is(err, repository.ErrEdgeAlreadyExists))

	removed, err := f.likes.DeleteByVideo(f.ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	deleted, err := f.subs.Delete(f.ctx, owner.ID, viewer.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
