package build

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcastr/podcastr/pkg/api"
	"github.com/podcastr/podcastr/pkg/fs"
	"github.com/podcastr/podcastr/pkg/model"
)

var testCtx = context.Background()

type fakeLister struct {
	episodes []*model.RawEpisode
	err      error
	opts     []api.ListOptions
}

func (f *fakeLister) ListEpisodes(_ context.Context, opts api.ListOptions) ([]*model.RawEpisode, error) {
	f.opts = append(f.opts, opts)
	return f.episodes, f.err
}

type fakeRefresher struct {
	lock  sync.Mutex
	slugs []string
	fail  map[string]error
}

func (f *fakeRefresher) Refresh(_ context.Context, slug string) (*model.Page, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.slugs = append(f.slugs, slug)
	if err, ok := f.fail[slug]; ok {
		return nil, err
	}

	return &model.Page{Slug: slug, HTML: []byte("<html>" + slug + "</html>")}, nil
}

func TestBuilder_Build(t *testing.T) {
	lister := &fakeLister{episodes: []*model.RawEpisode{{ID: "ep2"}, {ID: "ep1"}}}
	pages := &fakeRefresher{}

	paths, err := New(lister, pages, nil, 2).Build(testCtx)
	require.NoError(t, err)

	assert.Equal(t, []string{"ep2", "ep1"}, paths.Slugs)
	assert.ElementsMatch(t, []string{"ep1", "ep2"}, pages.slugs)

	require.Len(t, lister.opts, 1)
	assert.Equal(t, api.ListOptions{Limit: 2, Sort: "published_at", Order: api.OrderDesc}, lister.opts[0])
}

func TestBuilder_Export(t *testing.T) {
	lister := &fakeLister{episodes: []*model.RawEpisode{{ID: "ep2"}, {ID: "ep1"}}}
	export := fs.NewLocalFs(afero.NewMemMapFs())

	_, err := New(lister, &fakeRefresher{}, export, 2).Build(testCtx)
	require.NoError(t, err)

	sz, err := export.Size(testCtx, "episodes/ep1.html")
	require.NoError(t, err)
	assert.EqualValues(t, len("<html>ep1</html>"), sz)

	_, err = export.Size(testCtx, ExportName("ep2"))
	assert.NoError(t, err)
}

func TestBuilder_UpstreamFailureAbortsBuild(t *testing.T) {
	boom := errors.New("connection refused")
	lister := &fakeLister{err: boom}
	pages := &fakeRefresher{}

	_, err := New(lister, pages, nil, 2).Build(testCtx)
	assert.Equal(t, boom, errors.Cause(err))
	assert.Empty(t, pages.slugs)
}

func TestBuilder_GenerationFailureAbortsBuild(t *testing.T) {
	lister := &fakeLister{episodes: []*model.RawEpisode{{ID: "ep2"}, {ID: "ep1"}}}
	pages := &fakeRefresher{fail: map[string]error{"ep2": model.ErrMalformed}}

	_, err := New(lister, pages, nil, 2).Build(testCtx)
	assert.Equal(t, model.ErrMalformed, errors.Cause(err))
	assert.Equal(t, []string{"ep2"}, pages.slugs)
}
