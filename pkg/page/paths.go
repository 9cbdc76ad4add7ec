package page

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/podcastr/podcastr/pkg/api"
	"github.com/podcastr/podcastr/pkg/model"
)

// Fallback is the policy for slugs that were not pre-rendered.
type Fallback string

// FallbackBlocking renders unknown slugs on first request; the request
// waits for the result.
const FallbackBlocking = Fallback("blocking")

// Paths is the set of slugs to pre-render at build time.
type Paths struct {
	Slugs    []string
	Fallback Fallback
}

// StaticPaths returns the slugs of the most recent episodes.
func StaticPaths(ctx context.Context, lister EpisodeLister, limit int) (*Paths, error) {
	if limit <= 0 {
		limit = model.DefaultStaticPaths
	}

	episodes, err := lister.ListEpisodes(ctx, latest(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query static paths")
	}

	slugs := lo.Map(episodes, func(episode *model.RawEpisode, _ int) string {
		return episode.ID
	})

	log.Debugf("got %d static path(s)", len(slugs))

	return &Paths{
		Slugs:    slugs,
		Fallback: FallbackBlocking,
	}, nil
}

func latest(limit int) api.ListOptions {
	return api.ListOptions{
		Limit: limit,
		Sort:  "published_at",
		Order: api.OrderDesc,
	}
}
