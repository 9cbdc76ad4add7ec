package cache

import (
	"context"

	"github.com/pkg/errors"

	"github.com/podcastr/podcastr/pkg/model"
)

// Store keeps rendered pages between requests.
type Store interface {
	// Get returns model.ErrNotFound if there is no page for the slug
	Get(ctx context.Context, slug string) (*model.Page, error)
	// Set inserts or replaces the page
	Set(ctx context.Context, page *model.Page) error
	// Delete removes the page, missing slugs are not an error
	Delete(ctx context.Context, slug string) error
	// Walk calls cb for every stored page, in no particular order
	Walk(ctx context.Context, cb func(page *model.Page) error) error
	Close() error
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendBadger = "badger"
)

// Config selects and configures the page store.
type Config struct {
	// Backend is one of "memory", "redis" or "badger"
	Backend string `toml:"backend"`
	// RedisURL is used by the redis backend, e.g. redis://localhost:6379
	RedisURL string `toml:"redis_url"`
	// Dir is the database directory of the badger backend
	Dir    string        `toml:"dir"`
	Badger *BadgerConfig `toml:"badger"`
}

// New creates the store selected by cfg.
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return NewRedis(cfg.RedisURL)
	case BackendBadger:
		return NewBadger(&cfg)
	default:
		return nil, errors.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}
