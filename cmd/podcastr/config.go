package main

import (
	"io/ioutil"
	"net/url"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"golang.org/x/text/language"

	"github.com/podcastr/podcastr/pkg/api"
	"github.com/podcastr/podcastr/pkg/cache"
	"github.com/podcastr/podcastr/pkg/fs"
	"github.com/podcastr/podcastr/pkg/model"
	"github.com/podcastr/podcastr/services/web"
)

type Config struct {
	// Server is the web server configuration
	Server web.Config `toml:"server"`
	// Log is the optional logging configuration
	Log Log `toml:"log"`
	// API is the upstream episodes API
	API api.Config `toml:"api"`
	// Pages controls pre-rendering and revalidation
	Pages Pages `toml:"pages"`
	// Cache is the rendered page store
	Cache cache.Config `toml:"cache"`
	// Export optionally writes pre-rendered pages to a directory or S3 bucket
	Export fs.Config `toml:"export"`
}

type Pages struct {
	// StaticPaths is the number of most recent episodes to pre-render
	StaticPaths int `toml:"static_paths"`
	// HomeLimit is the number of episodes listed on the home page
	HomeLimit int `toml:"home_limit"`
	// Revalidate is how long a page is served before it's regenerated.
	// Format is "300ms", "1.5h" or "2h45m".
	Revalidate time.Duration `toml:"revalidate"`
	// Locale used to format dates (BCP 47)
	Locale string `toml:"locale"`
	// Timezone used to format dates (IANA name)
	Timezone string `toml:"timezone"`
	// RebuildSchedule is a cron expression to rebuild static pages, empty disables it
	RebuildSchedule string `toml:"rebuild_schedule"`
}

type Log struct {
	// Filename to write the log to (instead of stdout)
	Filename string `toml:"filename"`
	// MaxSize is the maximum size of the log file in MB
	MaxSize int `toml:"max_size"`
	// MaxBackups is the maximum number of log file backups to keep after rotation
	MaxBackups int `toml:"max_backups"`
	// MaxAge is the maximum number of days to keep the logs for
	MaxAge int `toml:"max_age"`
	// Compress old backups
	Compress bool `toml:"compress"`
}

// LoadConfig loads TOML configuration from a file path
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	config := Config{}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal toml")
	}

	config.applyDefaults(path)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	if c.API.BaseURL == "" {
		result = multierror.Append(result, errors.New("API base URL is required"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || !u.IsAbs() {
		result = multierror.Append(result, errors.Errorf("API base URL must be an absolute URL (got %q)", c.API.BaseURL))
	}

	if c.Pages.Revalidate < time.Second {
		result = multierror.Append(result, errors.Errorf("revalidate interval is too short: %s", c.Pages.Revalidate))
	}

	if _, err := language.Parse(c.Pages.Locale); err != nil {
		result = multierror.Append(result, errors.Errorf("invalid locale %q", c.Pages.Locale))
	}

	if _, err := time.LoadLocation(c.Pages.Timezone); err != nil {
		result = multierror.Append(result, errors.Errorf("invalid timezone %q", c.Pages.Timezone))
	}

	if c.Pages.RebuildSchedule != "" {
		if _, err := cron.ParseStandard(c.Pages.RebuildSchedule); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid rebuild schedule %q", c.Pages.RebuildSchedule))
		}
	}

	switch c.Cache.Backend {
	case cache.BackendMemory, cache.BackendBadger:
	case cache.BackendRedis:
		if c.Cache.RedisURL == "" {
			result = multierror.Append(result, errors.New("redis URL is required for redis cache backend"))
		}
	default:
		result = multierror.Append(result, errors.Errorf("unsupported cache backend %q", c.Cache.Backend))
	}

	if c.Export.Dir != "" && c.Export.S3.Bucket != "" {
		result = multierror.Append(result, errors.New("export directory and S3 bucket are mutually exclusive"))
	}

	if c.Server.TLS && (c.Server.CertificatePath == "" || c.Server.KeyFilePath == "") {
		result = multierror.Append(result, errors.New("certificate and key file paths are required for TLS"))
	}

	return result.ErrorOrNil()
}

// requireExport fails when there is no target to export pages to.
func (c *Config) requireExport() error {
	if !c.Export.Enabled() {
		return errors.New("no export target configured, set export.dir or export.s3.bucket")
	}
	return nil
}

func (c *Config) applyDefaults(configPath string) {
	if c.Log.Filename != "" {
		if c.Log.MaxSize == 0 {
			c.Log.MaxSize = model.DefaultLogMaxSize
		}
		if c.Log.MaxAge == 0 {
			c.Log.MaxAge = model.DefaultLogMaxAge
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = model.DefaultLogMaxBackups
		}
	}

	if c.API.Timeout == 0 {
		c.API.Timeout = model.DefaultAPITimeout
	}

	if c.Pages.StaticPaths == 0 {
		c.Pages.StaticPaths = model.DefaultStaticPaths
	}

	if c.Pages.HomeLimit == 0 {
		c.Pages.HomeLimit = c.Pages.StaticPaths
	}

	if c.Pages.Revalidate == 0 {
		c.Pages.Revalidate = model.DefaultRevalidate
	}

	if c.Pages.Locale == "" {
		c.Pages.Locale = model.DefaultLocale
	}

	if c.Pages.Timezone == "" {
		c.Pages.Timezone = model.DefaultTimezone
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = model.DefaultCacheBackend
	}

	if c.Cache.Backend == cache.BackendBadger && c.Cache.Dir == "" {
		c.Cache.Dir = filepath.Join(filepath.Dir(configPath), "db")
	}
}
