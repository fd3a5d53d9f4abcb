package web

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/catalog/search"
	"github.com/BurntSushi/cinedex/tpl"
)

// searchResponse is the JSON form of a page of search results.
type searchResponse struct {
	Results     []catalog.Movie `json:"results"`
	Total       int             `json:"total"`
	Page        int             `json:"page"`
	NumPages    int             `json:"num_pages"`
	HasNext     bool            `json:"has_next"`
	HasPrevious bool            `json:"has_previous"`
	QueryTimeMs float64         `json:"query_time_ms"`
	Params      search.Params   `json:"params"`
}

// GET|POST /movies/search
func (s *Server) searchPage(c echo.Context) error {
	params, page, err := s.search(c, "page")
	if err != nil {
		return err
	}
	facets, err := s.loadFacets(c.Request().Context())
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	data := tpl.NewSearchPage(params, page, facets)
	if err := tpl.ExecHTML(s.tpls.Lookup("search_page"), buf, data); err != nil {
		return errors.Wrap(err, "could not render search page")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// GET /api/movies/search
func (s *Server) apiSearch(c echo.Context) error {
	params, page, err := s.search(c, "api")
	if err != nil {
		return err
	}
	resp := searchResponse{
		Results:     page.Movies,
		Total:       page.Total,
		Page:        page.Number,
		NumPages:    page.NumPages,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
		QueryTimeMs: page.QueryMillis(),
		Params:      params,
	}
	if resp.Results == nil {
		resp.Results = []catalog.Movie{}
	}
	return c.JSON(http.StatusOK, resp)
}

// GET /api/movies/facets
func (s *Server) apiFacets(c echo.Context) error {
	facets, err := s.loadFacets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, facets)
}

// GET /api/movies/:mid
func (s *Server) apiMovie(c echo.Context) error {
	mid, err := strconv.ParseInt(c.Param("mid"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			sf("Invalid movie id '%s'.", c.Param("mid")))
	}
	d, err := s.db.DetailsByID(c.Request().Context(), mid)
	if errors.Is(err, catalog.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound,
			sf("Movie %d does not exist.", mid))
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// GET /healthz
func (s *Server) healthz(c echo.Context) error {
	if err := s.db.PingContext(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable,
			"database unavailable").SetInternal(err)
	}
	return c.String(http.StatusOK, "ok")
}

// search runs the search described by the request's form values.
func (s *Server) search(
	c echo.Context,
	endpoint string,
) (search.Params, *search.Page, error) {
	values, err := c.FormParams()
	if err != nil {
		return search.Params{}, nil,
			echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	params := search.ParamsFromValues(values)
	srch, err := params.Searcher(s.db)
	if err != nil {
		s.metrics.searches.WithLabelValues("invalid").Inc()
		return params, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	srch.IndexMode(s.conf.IndexMode).PageSize(s.conf.PageSize)
	if s.conf.Debug {
		log := s.logger(c)
		srch.Debug(func(format string, v ...interface{}) {
			log.Debug("search query", "sql", sf(format, v...))
		})
	}

	start := time.Now()
	page, err := srch.Results(c.Request().Context())
	s.metrics.duration.WithLabelValues(endpoint).
		Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.searches.WithLabelValues("error").Inc()
		return params, nil, err
	}
	s.metrics.searches.WithLabelValues("ok").Inc()
	return params, page, nil
}

const facetsKey = "facets"

// loadFacets returns the cached facets, loading them if they have expired.
func (s *Server) loadFacets(ctx context.Context) (*catalog.Facets, error) {
	if f, ok := s.facets.Get(facetsKey); ok {
		s.metrics.facets.WithLabelValues("hit").Inc()
		return f, nil
	}
	s.metrics.facets.WithLabelValues("miss").Inc()
	f, err := s.db.LoadFacets(ctx)
	if err != nil {
		return nil, err
	}
	s.facets.Add(facetsKey, f)
	return f, nil
}

// ForgetFacets drops the cached facets, so that the next request loads them
// again. It should be called after the catalog changes.
func (s *Server) ForgetFacets() {
	s.facets.Purge()
}
