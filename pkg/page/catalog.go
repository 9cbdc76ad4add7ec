package page

import (
	"context"

	"github.com/podcastr/podcastr/pkg/format"
	"github.com/podcastr/podcastr/pkg/model"
)

// Catalog lists the episodes shown on the home page.
type Catalog struct {
	lister EpisodeLister
	dates  *format.DateFormatter
	limit  int
}

func NewCatalog(lister EpisodeLister, dates *format.DateFormatter, limit int) *Catalog {
	return &Catalog{lister: lister, dates: dates, limit: limit}
}

func (c *Catalog) LatestEpisodes(ctx context.Context) ([]*model.Episode, error) {
	return LatestEpisodes(ctx, c.lister, c.dates, c.limit)
}
