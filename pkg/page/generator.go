package page

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/podcastr/podcastr/pkg/format"
	"github.com/podcastr/podcastr/pkg/model"
)

// Generator produces rendered episode pages.
type Generator struct {
	getter EpisodeGetter
	dates  *format.DateFormatter
}

func NewGenerator(getter EpisodeGetter, dates *format.DateFormatter) *Generator {
	return &Generator{getter: getter, dates: dates}
}

// Generate loads the props for slug and renders them. GeneratedAt is left for
// the caller to stamp.
func (g *Generator) Generate(ctx context.Context, slug string) (*model.Page, error) {
	logger := log.WithField("slug", slug)

	props, err := LoadProps(ctx, g.getter, g.dates, slug)
	if err != nil {
		return nil, err
	}

	buf := bytes.Buffer{}
	if err := Render(&buf, &props.Episode); err != nil {
		return nil, errors.Wrapf(err, "failed to render episode %q", slug)
	}

	logger.Debugf("rendered %d bytes", buf.Len())

	return &model.Page{
		Slug:       slug,
		Episode:    &props.Episode,
		HTML:       buf.Bytes(),
		Revalidate: props.Revalidate,
	}, nil
}
