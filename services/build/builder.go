package build

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/podcastr/podcastr/pkg/fs"
	"github.com/podcastr/podcastr/pkg/model"
	"github.com/podcastr/podcastr/pkg/page"
)

type Refresher interface {
	Refresh(ctx context.Context, slug string) (*model.Page, error)
}

// Builder pre-renders the static paths.
type Builder struct {
	lister page.EpisodeLister
	pages  Refresher
	export fs.Storage
	limit  int
}

// New creates a builder. export may be nil when pages are only cached.
func New(lister page.EpisodeLister, pages Refresher, export fs.Storage, limit int) *Builder {
	return &Builder{
		lister: lister,
		pages:  pages,
		export: export,
		limit:  limit,
	}
}

// Build queries the static paths and generates each of them. The first
// failure aborts the build.
func (b *Builder) Build(ctx context.Context) (*page.Paths, error) {
	log.WithField("limit", b.limit).Info("-> building static pages")

	started := time.Now()

	paths, err := page.StaticPaths(ctx, b.lister, b.limit)
	if err != nil {
		return nil, errors.Wrap(err, "build failed")
	}

	for _, slug := range paths.Slugs {
		logger := log.WithField("slug", slug)

		logger.Debug("generating page")
		generated, err := b.pages.Refresh(ctx, slug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate page %q", slug)
		}

		if b.export == nil {
			continue
		}

		name := ExportName(slug)
		written, err := b.export.Create(ctx, name, bytes.NewReader(generated.HTML))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to export page %q", slug)
		}

		logger.Debugf("exported %d bytes to %s", written, name)
	}

	elapsed := time.Since(started)
	log.WithField("fallback", paths.Fallback).Infof("successfully built %d page(s) in %s", len(paths.Slugs), elapsed)

	return paths, nil
}

// ExportName is the file name an exported page is written to.
func ExportName(slug string) string {
	return fmt.Sprintf("episodes/%s.html", slug)
}
