package web

import (
	"context"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/catalog/search"
	"github.com/BurntSushi/cinedex/hangul"
)

var (
	sf = fmt.Sprintf
	ef = fmt.Errorf
)

// DefaultFacetTTL is how long facets are cached when Config doesn't say.
const DefaultFacetTTL = 5 * time.Minute

// Config controls how a server searches.
type Config struct {
	// PageSize is the number of movies on a page of results.
	PageSize int

	// IndexMode decides whether tense consonants are listed under their
	// base consonant in the index.
	IndexMode hangul.Mode

	// FacetTTL is how long the facet lists are cached. Facets are always
	// loaded on first use.
	FacetTTL time.Duration

	// Debug logs the SQL of every search at the debug level.
	Debug bool
}

// Server serves the movies in a catalog.
type Server struct {
	db      *catalog.DB
	conf    Config
	tpls    *htmltemplate.Template
	log     *Logger
	metrics *metrics
	facets  *expirable.LRU[string, *catalog.Facets]
	echo    *echo.Echo
}

// New creates a server. tpls must define the "search_page" template (see
// tpl.ParseHTML).
func New(
	db *catalog.DB,
	conf Config,
	tpls *htmltemplate.Template,
	log *Logger,
) (*Server, error) {
	if tpls.Lookup("search_page") == nil {
		return nil, ef("Templates do not define 'search_page'.")
	}
	if conf.PageSize < 1 {
		conf.PageSize = search.DefaultPageSize
	}
	if conf.FacetTTL <= 0 {
		conf.FacetTTL = DefaultFacetTTL
	}
	if log == nil {
		log = NoopLogger()
	}

	s := &Server{
		db:      db,
		conf:    conf,
		tpls:    tpls,
		log:     log,
		metrics: newMetrics(),
		facets:  expirable.NewLRU[string, *catalog.Facets](1, nil, conf.FacetTTL),
		echo:    echo.New(),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.JSONSerializer = jsonSerializer{}
	s.echo.HTTPErrorHandler = s.handleError
	s.echo.Use(requestID, s.logRequests, middleware.Recover())
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.echo.Match([]string{http.MethodGet, http.MethodPost},
		"/movies/search", s.searchPage)
	s.echo.GET("/api/movies/search", s.apiSearch)
	s.echo.GET("/api/movies/facets", s.apiFacets)
	s.echo.GET("/api/movies/:mid", s.apiMovie)
	s.echo.GET("/metrics", echo.WrapHandler(
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	s.echo.GET("/healthz", s.healthz)
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/movies/search")
	})
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// ListenAndServe serves on the address given until ctx is done, and then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "address", addr)
		errc <- s.echo.Start(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.log.Info("shutting down")
	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(shutdown); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// handleError logs errors that aren't meant for the client before echo
// writes the response.
func (s *Server) handleError(err error, c echo.Context) {
	if _, ok := err.(*echo.HTTPError); !ok {
		s.logger(c).Error("request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"error", err)
	}
	s.echo.DefaultHTTPErrorHandler(err, c)
}
