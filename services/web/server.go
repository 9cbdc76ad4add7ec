package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"expvar"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/podcastr/podcastr/pkg/model"
	"github.com/podcastr/podcastr/pkg/page"
)

//go:embed public/*
var publicFS embed.FS

type Server struct {
	http.Server
}

type Config struct {
	// Hostname to use for absolute links
	Hostname string `toml:"hostname"`
	// Port is a server port to listen to
	Port int `toml:"port"`
	// Bind a specific IP addresses for server
	// "*": bind all IP addresses which is default option
	// localhost or 127.0.0.1  bind a single IPv4 address
	BindAddress string `toml:"bind_address"`
	// Flag indicating if the server will use TLS
	TLS bool `toml:"tls"`
	// Path to a certificate file for TLS connections
	CertificatePath string `toml:"certificate_path"`
	// Path to a private key file for TLS connections
	KeyFilePath string `toml:"key_file_path"`
	// DebugEndpoints enables /debug/vars
	DebugEndpoints bool `toml:"debug_endpoints"`
}

type handler struct {
	pages   pageSource
	catalog catalog
	player  audioPlayer
}

func New(cfg Config, pages pageSource, catalog catalog, player audioPlayer) *Server {
	port := cfg.Port
	if port == 0 {
		port = 8080
	}

	bindAddress := cfg.BindAddress
	if bindAddress == "*" {
		bindAddress = ""
	}

	srv := Server{}

	srv.Addr = fmt.Sprintf("%s:%d", bindAddress, port)
	log.Debugf("using address: %s", srv.Addr)

	h := handler{
		pages:   pages,
		catalog: catalog,
		player:  player,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", h.home)
	r.Get("/healthz", h.health)
	r.Get("/episodes/{slug}", h.episode)
	r.Post("/episodes/{slug}/play", h.play)
	r.Get("/player", h.playerState)

	public, _ := fs.Sub(publicFS, "public")
	assets := http.FileServer(http.FS(public))
	r.Get("/arrow-left.svg", assets.ServeHTTP)
	r.Get("/play.svg", assets.ServeHTTP)

	if cfg.DebugEndpoints {
		log.Info("debug endpoints enabled at /debug/vars")
		r.Handle("/debug/vars", expvar.Handler())
	}

	srv.Handler = r
	return &srv
}

func (h handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func (h handler) home(w http.ResponseWriter, r *http.Request) {
	episodes, err := h.catalog.LatestEpisodes(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	buf := bytes.Buffer{}
	if err := page.RenderHome(&buf, episodes); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h handler) episode(w http.ResponseWriter, r *http.Request) {
	slug, err := slugParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.pages.Get(r.Context(), slug)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("s-maxage=%d, stale-while-revalidate", int64(p.Revalidate.Seconds())))
	_, _ = w.Write(p.HTML)
}

// play hands the episode the page was rendered from to the player.
func (h handler) play(w http.ResponseWriter, r *http.Request) {
	slug, err := slugParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.pages.Get(r.Context(), slug)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if p.Episode == nil {
		h.fail(w, r, errors.Errorf("page %q has no episode", slug))
		return
	}

	h.player.Play(*p.Episode)

	http.Redirect(w, r, "/episodes/"+url.PathEscape(slug), http.StatusSeeOther)
}

func (h handler) playerState(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.player.State()); err != nil {
		log.WithError(err).Error("failed to encode player state")
	}
}

// slugParam returns the decoded slug. chi matches against the raw path when
// it differs from the decoded one, e.g. for ids with an escaped "/".
func slugParam(r *http.Request) (string, error) {
	slug := chi.URLParam(r, "slug")
	if r.URL.RawPath == "" {
		return slug, nil
	}

	decoded, err := url.PathUnescape(slug)
	if err != nil {
		return "", errors.Wrapf(model.ErrNotFound, "invalid slug %q", slug)
	}

	return decoded, nil
}

func (h handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Cause(err) == model.ErrNotFound {
		http.NotFound(w, r)
		return
	}

	log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
