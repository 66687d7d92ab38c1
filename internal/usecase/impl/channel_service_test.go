package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelService_ChannelProfile(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()

	t.Run("normalizes username", func(t *testing.T) {
		views := mockRepo.NewMockViewRepository(t)
		srv := NewChannelService(ChannelServiceParams{ViewRepo: views, Logger: newDiscardLogger()})
		profile := &entity.ChannelProfile{Username: "alice", SubscriberCount: 3, SubscribedToCount: 1, IsSubscribed: true}
		views.EXPECT().ChannelProfile(ctx, "alice", viewer).Return(profile, nil)

		got, err := srv.ChannelProfile(ctx, " Alice ", viewer)

		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("unknown channel", func(t *testing.T) {
		views := mockRepo.NewMockViewRepository(t)
		srv := NewChannelService(ChannelServiceParams{ViewRepo: views, Logger: newDiscardLogger()})
		views.EXPECT().ChannelProfile(ctx, "ghost", uuid.Nil).Return(nil, repository.ErrAccountNotFound)

		_, err := srv.ChannelProfile(ctx, "ghost", uuid.Nil)

		assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
	})

	t.Run("blank username", func(t *testing.T) {
		srv := NewChannelService(ChannelServiceParams{ViewRepo: mockRepo.NewMockViewRepository(t), Logger: newDiscardLogger()})

		_, err := srv.ChannelProfile(ctx, "  ", viewer)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestChannelService_WatchHistory_NeverNil(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	views := mockRepo.NewMockViewRepository(t)
	srv := NewChannelService(ChannelServiceParams{ViewRepo: views, Logger: newDiscardLogger()})
	views.EXPECT().WatchHistory(ctx, id).Return(nil, nil)

	history, err := srv.WatchHistory(ctx, id)

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
