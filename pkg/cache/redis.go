package cache

import (
	"context"
	"strings"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack"

	"github.com/podcastr/podcastr/pkg/model"
)

const redisKeyPrefix = "podcastr/page/"

// Redis keeps pages in Redis so several instances can share them
type Redis struct {
	client *redis.Client
}

var _ Store = (*Redis)(nil)

func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse redis URL %q", redisURL)
	}

	log.Infof("connecting to redis %s", opts.Addr)

	client := redis.NewClient(opts)
	if err := client.Ping().Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, slug string) (*model.Page, error) {
	data, err := r.client.WithContext(ctx).Get(redisKeyPrefix + slug).Bytes()
	if err == redis.Nil {
		return nil, model.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to query page %q", slug)
	}

	page := &model.Page{}
	if err := msgpack.Unmarshal(data, page); err != nil {
		return nil, errors.Wrapf(err, "failed to decode page %q", slug)
	}

	return page, nil
}

func (r *Redis) Set(ctx context.Context, page *model.Page) error {
	data, err := msgpack.Marshal(page)
	if err != nil {
		return errors.Wrapf(err, "failed to encode page %q", page.Slug)
	}

	// Keys never expire, stale pages are served until regenerated.
	return r.client.WithContext(ctx).Set(redisKeyPrefix+page.Slug, data, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, slug string) error {
	return r.client.WithContext(ctx).Del(redisKeyPrefix + slug).Err()
}

func (r *Redis) Walk(ctx context.Context, cb func(page *model.Page) error) error {
	client := r.client.WithContext(ctx)

	iter := client.Scan(0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next() {
		slug := strings.TrimPrefix(iter.Val(), redisKeyPrefix)

		page, err := r.Get(ctx, slug)
		if err == model.ErrNotFound {
			// Deleted while scanning
			continue
		} else if err != nil {
			return err
		}

		if err := cb(page); err != nil {
			return err
		}
	}

	return iter.Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
