package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/podcastr/podcastr/pkg/model"
)

// Config describes the upstream episodes API
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:3333
	BaseURL string `toml:"base_url"`
	// Timeout of a single upstream request
	Timeout time.Duration `toml:"timeout"`
}

type SortOrder string

const (
	OrderAsc  = SortOrder("asc")
	OrderDesc = SortOrder("desc")
)

// ListOptions are json-server style collection parameters.
type ListOptions struct {
	Limit int       `url:"_limit,omitempty"`
	Sort  string    `url:"_sort,omitempty"`
	Order SortOrder `url:"_order,omitempty"`
}

// Client talks to the upstream episodes API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("API base URL can't be empty")
	}

	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse API base URL %q", cfg.BaseURL)
	}

	if !base.IsAbs() {
		return nil, errors.Errorf("API base URL must be absolute (got %q)", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = model.DefaultAPITimeout
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// ListEpisodes queries the episode collection.
func (c *Client) ListEpisodes(ctx context.Context, opts ListOptions) ([]*model.RawEpisode, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode list options")
	}

	var episodes []*model.RawEpisode
	if err := c.get(ctx, "episodes", values, &episodes); err != nil {
		return nil, errors.Wrap(err, "failed to list episodes")
	}

	return episodes, nil
}

// GetEpisode fetches one episode. Returns model.ErrNotFound if upstream
// doesn't know the identifier.
func (c *Client) GetEpisode(ctx context.Context, id string) (*model.RawEpisode, error) {
	if id == "" {
		return nil, model.ErrNotFound
	}

	var episode model.RawEpisode
	if err := c.get(ctx, "episodes/"+url.PathEscape(id), nil, &episode); err != nil {
		return nil, errors.Wrapf(err, "failed to get episode %q", id)
	}

	if episode.ID == "" {
		return nil, errors.Wrapf(model.ErrNotFound, "episode %q", id)
	}

	return &episode, nil
}

// get issues a GET for an already escaped path relative to the base URL.
func (c *Client) get(ctx context.Context, path string, values url.Values, out interface{}) error {
	ref, err := url.Parse(path)
	if err != nil {
		return errors.Wrapf(err, "invalid API path %q", path)
	}

	if len(values) > 0 {
		ref.RawQuery = values.Encode()
	}

	endpoint := c.baseURL.ResolveReference(ref)
	logger := log.WithField("url", endpoint.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/json")

	logger.Debug("querying upstream API")
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	logger.WithFields(log.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(started),
	}).Debug("upstream API responded")

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}
