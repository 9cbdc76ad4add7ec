package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/podcastr/podcastr/pkg/model"
)

// GenerateFunc renders the page for slug.
type GenerateFunc func(ctx context.Context, slug string) (*model.Page, error)

// Policy controls how long generated pages are served.
type Policy struct {
	// TTL overrides the revalidation interval a page was generated with
	TTL time.Duration
	// Timeout bounds a single generation, 0 means no limit
	Timeout time.Duration
}

// Regenerator serves pages from a store, generating missing ones on demand
// and refreshing stale ones in the background.
//
// A slug missing from the store is generated while the caller waits. A stale
// page is returned as is and one background regeneration is started; if it
// fails the stale page stays. Concurrent generations of the same slug share a
// single upstream fetch.
type Regenerator struct {
	store    Store
	generate GenerateFunc
	policy   Policy
	now      func() time.Time

	group      singleflight.Group
	background sync.WaitGroup
}

type Option func(r *Regenerator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Regenerator) {
		r.now = now
	}
}

func NewRegenerator(store Store, generate GenerateFunc, policy Policy, opts ...Option) *Regenerator {
	r := &Regenerator{
		store:    store,
		generate: generate,
		policy:   policy,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Get returns the page for slug.
func (r *Regenerator) Get(ctx context.Context, slug string) (*model.Page, error) {
	logger := log.WithField("slug", slug)

	page, err := r.store.Get(ctx, slug)
	switch {
	case err == nil:
		if page.Stale(r.now()) {
			logger.Debug("page is stale, regenerating in background")
			r.refreshInBackground(slug)
		}
		return page, nil
	case err == model.ErrNotFound:
		logger.Debug("page is not cached, generating")
		return r.Refresh(ctx, slug)
	default:
		logger.WithError(err).Warn("failed to query page store, generating")
		return r.Refresh(ctx, slug)
	}
}

// Refresh generates the page for slug, waits for the result and stores it.
// The generation is shared with concurrent callers, so it is not canceled
// together with ctx; only the wait is.
func (r *Regenerator) Refresh(ctx context.Context, slug string) (*model.Page, error) {
	result := r.group.DoChan(slug, func() (interface{}, error) {
		genCtx := context.WithoutCancel(ctx)
		if r.policy.Timeout > 0 {
			var cancel context.CancelFunc
			genCtx, cancel = context.WithTimeout(genCtx, r.policy.Timeout)
			defer cancel()
		}
		return r.regenerate(genCtx, slug)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Page), nil
	}
}

// Wait blocks until all background refreshes complete.
func (r *Regenerator) Wait() {
	r.background.Wait()
}

func (r *Regenerator) refreshInBackground(slug string) {
	r.background.Add(1)

	go func() {
		defer r.background.Done()

		if _, err := r.Refresh(context.Background(), slug); err != nil {
			log.WithError(err).WithField("slug", slug).Error("background regeneration failed, keeping stale page")
		}
	}()
}

func (r *Regenerator) regenerate(ctx context.Context, slug string) (*model.Page, error) {
	started := r.now()

	page, err := r.generate(ctx, slug)
	if err != nil {
		return nil, err
	}

	page.Slug = slug
	page.GeneratedAt = r.now()
	if r.policy.TTL > 0 {
		page.Revalidate = r.policy.TTL
	}
	if page.Revalidate <= 0 {
		page.Revalidate = model.DefaultRevalidate
	}

	if err := r.store.Set(ctx, page); err != nil {
		return nil, errors.Wrapf(err, "failed to store page %q", slug)
	}

	log.WithFields(log.Fields{
		"slug":    slug,
		"elapsed": r.now().Sub(started),
	}).Info("page generated")

	return page, nil
}
