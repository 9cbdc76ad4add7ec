package page

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/podcastr/podcastr/pkg/format"
	"github.com/podcastr/podcastr/pkg/model"
)

// Props is what a page is rendered from, plus how long the rendered output
// may be served before it is regenerated.
type Props struct {
	Episode    model.Episode
	Revalidate time.Duration
}

// LoadProps fetches the episode with the given slug and maps it for rendering.
func LoadProps(ctx context.Context, getter EpisodeGetter, dates *format.DateFormatter, slug string) (*Props, error) {
	raw, err := getter.GetEpisode(ctx, slug)
	if err != nil {
		return nil, err
	}

	episode, err := NewEpisode(raw, dates)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to map episode %q", slug)
	}

	return &Props{
		Episode:    *episode,
		Revalidate: model.DefaultRevalidate,
	}, nil
}

// NewEpisode maps an upstream record to an Episode.
func NewEpisode(raw *model.RawEpisode, dates *format.DateFormatter) (*model.Episode, error) {
	if raw.File == nil {
		return nil, errors.Wrap(model.ErrMalformed, "missing file")
	}

	duration, err := raw.File.Duration.Seconds()
	if err != nil {
		return nil, err
	}

	publishedAt, err := dates.Format(raw.PublishedAt)
	if err != nil {
		return nil, errors.Wrap(model.ErrMalformed, err.Error())
	}

	return &model.Episode{
		ID:               raw.ID,
		Title:            raw.Title,
		Thumbnail:        raw.Thumbnail,
		Members:          raw.Members,
		PublishedAt:      publishedAt,
		Duration:         duration,
		DurationAsString: format.DurationToTimeString(duration),
		Description:      raw.Description,
		URL:              raw.File.URL,
	}, nil
}

// LatestEpisodes returns the most recent episodes, newest first.
func LatestEpisodes(ctx context.Context, lister EpisodeLister, dates *format.DateFormatter, limit int) ([]*model.Episode, error) {
	raw, err := lister.ListEpisodes(ctx, latest(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query latest episodes")
	}

	episodes := make([]*model.Episode, 0, len(raw))
	for _, item := range raw {
		episode, err := NewEpisode(item, dates)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to map episode %q", item.ID)
		}
		episodes = append(episodes, episode)
	}

	return episodes, nil
}
