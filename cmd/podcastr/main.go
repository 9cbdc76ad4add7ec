package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/podcastr/podcastr/pkg/api"
	"github.com/podcastr/podcastr/pkg/cache"
	"github.com/podcastr/podcastr/pkg/format"
	"github.com/podcastr/podcastr/pkg/fs"
	"github.com/podcastr/podcastr/pkg/model"
	"github.com/podcastr/podcastr/pkg/page"
	"github.com/podcastr/podcastr/pkg/player"
	"github.com/podcastr/podcastr/services/build"
	"github.com/podcastr/podcastr/services/web"
)

type Opts struct {
	ConfigPath string `long:"config" short:"c" default:"config.toml" env:"PODCASTR_CONFIG_PATH"`
	Debug      bool   `long:"debug"`
	NoBanner   bool   `long:"no-banner"`
	Export     bool   `long:"export" description:"Pre-render static pages, export them and exit"`
}

const banner = `
                 _                _
 _ __   ___   __| | ___ __ _  ___| |_ _ __
| '_ \ / _ \ / _` + "`" + ` |/ __/ _` + "`" + ` |/ __| __| '__|
| |_) | (_) | (_| | (_| (_| |\__ \ |_| |
| .__/ \___/ \__,_|\___\__,_||___/\__|_|
|_|
`

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	// Parse args
	opts := Opts{}
	_, err := flags.Parse(&opts)
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if !opts.NoBanner {
		log.Info(banner)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("running podcastr")

	// Load TOML file
	log.Debugf("loading configuration %q", opts.ConfigPath)
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	if cfg.Log.Filename != "" {
		log.Infof("Using log file: %s", cfg.Log.Filename)
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.Log.Filename,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
	}

	client, err := api.New(cfg.API)
	if err != nil {
		log.WithError(err).Fatal("failed to create API client")
	}

	dates, err := format.NewDateFormatter(cfg.Pages.Locale, cfg.Pages.Timezone)
	if err != nil {
		log.WithError(err).Fatal("failed to create date formatter")
	}

	log.Debugf("opening %s page store", cfg.Cache.Backend)
	store, err := cache.New(cfg.Cache)
	if err != nil {
		log.WithError(err).Fatal("failed to open page store")
	}

	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Error("failed to close page store")
		}
	}()

	if err := logStoredPages(ctx, store, time.Now()); err != nil {
		log.WithError(err).Warn("failed to read page store")
	}

	pages := cache.NewRegenerator(
		store,
		page.NewGenerator(client, dates).Generate,
		cache.Policy{TTL: cfg.Pages.Revalidate, Timeout: cfg.API.Timeout},
	)

	if opts.Export {
		if err := cfg.requireExport(); err != nil {
			log.WithError(err).Fatal("nothing to export")
		}
	}

	var export fs.Storage
	if cfg.Export.Enabled() {
		export, err = fs.New(cfg.Export)
		if err != nil {
			log.WithError(err).Fatal("failed to create export storage")
		}
	}

	builder := build.New(client, pages, export, cfg.Pages.StaticPaths)

	// Pre-render static paths before accepting requests
	paths, err := builder.Build(ctx)
	if err != nil {
		log.WithError(err).Fatal("build failed")
	}

	if opts.Export {
		log.Infof("exported %d page(s)", len(paths.Slugs))
		return
	}

	if cfg.Pages.RebuildSchedule != "" {
		c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

		_, err = c.AddFunc(cfg.Pages.RebuildSchedule, func() {
			log.Debug("rebuilding static pages")
			if _, err := builder.Build(ctx); err != nil {
				log.WithError(err).Error("rebuild failed")
			}
		})
		if err != nil {
			log.WithError(err).Fatalf("can't create cron task for schedule %q", cfg.Pages.RebuildSchedule)
		}

		group.Go(func() error {
			defer func() {
				log.Info("shutting down cron")
				<-c.Stop().Done()
			}()

			log.Debugf("-> rebuilding on schedule %q", cfg.Pages.RebuildSchedule)
			c.Start()

			<-ctx.Done()
			return ctx.Err()
		})
	}

	// Run web server
	srv := web.New(cfg.Server, pages, page.NewCatalog(client, dates, cfg.Pages.HomeLimit), player.New())

	group.Go(func() error {
		log.Infof("running listener at %s", srv.Addr)
		if cfg.Server.TLS {
			return srv.ListenAndServeTLS(cfg.Server.CertificatePath, cfg.Server.KeyFilePath)
		}
		return srv.ListenAndServe()
	})

	group.Go(func() error {
		// Shutdown web server
		defer func() {
			log.Info("shutting down web server")
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelShutdown()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("server shutdown failed")
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			cancel()
			return nil
		}
	})

	if err := group.Wait(); err != nil && (err != context.Canceled && err != http.ErrServerClosed) {
		log.WithError(err).Error("wait error")
	}

	log.Info("waiting for background regenerations")
	pages.Wait()

	log.Info("gracefully stopped")
}

// logStoredPages reports the pages left in the store by a previous run.
func logStoredPages(ctx context.Context, store cache.Store, now time.Time) error {
	var (
		slugs []string
		stale int
	)

	err := store.Walk(ctx, func(p *model.Page) error {
		slugs = append(slugs, p.Slug)
		if p.Stale(now) {
			stale++
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"pages": len(slugs),
		"stale": stale,
	}).Info("opened page store")
	log.Debugf("stored pages: %v", slugs)

	return nil
}
