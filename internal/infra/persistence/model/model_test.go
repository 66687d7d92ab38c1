package model

import (
	"testing"
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAccount_WatchHistoryNeverNil(t *testing.T) {
	doc := FromAccount(&entity.Account{ID: uuid.New(), Username: "alice"})

	require.NotNil(t, doc.WatchHistory)
	assert.Empty(t, doc.WatchHistory)
}

func TestAccountDocument_ToDomainSkipsMalformedHistory(t *testing.T) {
	good := uuid.New()
	doc := &AccountDocument{
		ID:           uuid.NewString(),
		Username:     "alice",
		Password:     "hash",
		RefreshToken: "rt",
		WatchHistory: []string{good.String(), "garbage"},
		CoverImage:   &MediaDocument{URL: "u", PublicID: "p"},
		CreatedAt:    time.Now(),
	}

	account := doc.ToDomain()

	assert.Equal(t, []uuid.UUID{good}, account.WatchHistory)
	assert.Equal(t, "hash", account.PasswordHash)
	require.NotNil(t, account.CoverImage)
	assert.Equal(t, "p", account.CoverImage.PublicID)
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, id, ParseID(id.String()))
	assert.Equal(t, uuid.Nil, ParseID("not-a-uuid"))
}

func TestCatalogFacetDocument_Total(t *testing.T) {
	assert.Equal(t, int64(0), (&CatalogFacetDocument{}).Total())

	doc := &CatalogFacetDocument{}
	doc.Metadata = append(doc.Metadata, struct {
		Total int64 `bson:"total"`
	}{Total: 25})
	assert.Equal(t, int64(25), doc.Total())
}
