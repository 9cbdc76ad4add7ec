//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=web

package web

import (
	"context"

	"github.com/podcastr/podcastr/pkg/model"
	"github.com/podcastr/podcastr/pkg/player"
)

type pageSource interface {
	Get(ctx context.Context, slug string) (*model.Page, error)
}

type catalog interface {
	LatestEpisodes(ctx context.Context) ([]*model.Episode, error)
}

type audioPlayer interface {
	Play(episode model.Episode)
	State() player.State
}
