//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=page

package page

import (
	"context"

	"github.com/podcastr/podcastr/pkg/api"
	"github.com/podcastr/podcastr/pkg/model"
)

type EpisodeLister interface {
	ListEpisodes(ctx context.Context, opts api.ListOptions) ([]*model.RawEpisode, error)
}

type EpisodeGetter interface {
	GetEpisode(ctx context.Context, id string) (*model.RawEpisode, error)
}
