package page

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcastr/podcastr/pkg/api"
	"github.com/podcastr/podcastr/pkg/model"
)

func TestStaticPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockEpisodeLister(ctrl)
	lister.EXPECT().
		ListEpisodes(gomock.Any(), api.ListOptions{Limit: 2, Sort: "published_at", Order: api.OrderDesc}).
		Times(1).
		Return([]*model.RawEpisode{{ID: "newest"}, {ID: "older"}}, nil)

	paths, err := StaticPaths(testCtx, lister, 2)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"older", "newest"}, paths.Slugs)
	assert.Equal(t, FallbackBlocking, paths.Fallback)
}

func TestStaticPaths_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockEpisodeLister(ctrl)
	lister.EXPECT().
		ListEpisodes(gomock.Any(), api.ListOptions{Limit: model.DefaultStaticPaths, Sort: "published_at", Order: api.OrderDesc}).
		Return(nil, nil)

	paths, err := StaticPaths(testCtx, lister, 0)
	require.NoError(t, err)
	assert.Empty(t, paths.Slugs)
}

func TestStaticPaths_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("connection refused")

	lister := NewMockEpisodeLister(ctrl)
	lister.EXPECT().ListEpisodes(gomock.Any(), gomock.Any()).Return(nil, boom)

	paths, err := StaticPaths(testCtx, lister, 2)
	assert.Nil(t, paths)
	assert.Equal(t, boom, errors.Cause(err))
}
