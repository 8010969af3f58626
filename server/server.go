// Package server serves the bulk population payload the dashboard fetches.
// It starts answering at once and loads its data in the background; until
// the data is in, /api/data answers 503.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/registry"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Loader produces the dataset to serve.
type Loader func(ctx context.Context) (*registry.Dataset, error)

type Server struct {
	e *echo.Echo

	mu      sync.RWMutex
	ds      *registry.Dataset
	payload registry.Payload
	loadErr error
}

// New builds the echo app. Request logs go to logOut.
func New(logOut io.Writer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = &jsonSerializer{}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: logOut}))

	s := &Server{e: e}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.e.Group("/api")
	api.GET("/data", s.getData)
	api.GET("/countries", s.getCountries)
	api.GET("/health", s.getHealth)
}

// Handler exposes the app for tests and embedding.
func (s *Server) Handler() http.Handler { return s.e }

// SetData publishes ds to the handlers.
func (s *Server) SetData(ds *registry.Dataset) {
	p := ds.Payload()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds
	s.payload = p
	s.loadErr = nil
}

func (s *Server) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

func (s *Server) snapshot() (*registry.Dataset, registry.Payload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds, s.payload, s.loadErr
}

// Run serves on addr while load runs in the background. It returns when ctx
// is cancelled, the server fails, or load fails.
func (s *Server) Run(ctx context.Context, addr string, load Loader) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Infof("server listening on %s (data loading in background)", addr)
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	})

	g.Go(func() error {
		t0 := time.Now()
		ds, err := load(ctx)
		if err != nil {
			s.setError(err)
			return fmt.Errorf("load data: %w", err)
		}
		s.SetData(ds)
		logging.Infof("loaded %d countries in %v; API is ready", len(ds.Countries), time.Since(t0))
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// --- HANDLERS ---

func (s *Server) getData(c echo.Context) error {
	ds, payload, err := s.snapshot()
	if ds == nil {
		return unavailable(err)
	}
	return c.JSON(http.StatusOK, payload)
}

type countryDTO struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	LatestPopulation *int64 `json:"latest_population"`
	Rank             *int   `json:"rank"`
}

func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *Server) getCountries(c echo.Context) error {
	ds, _, err := s.snapshot()
	if ds == nil {
		return unavailable(err)
	}
	total := len(ds.Countries)
	limit, offset := getPaginationParams(c, total)
	start, end := projection.Paginate(total, offset, limit)

	out := make([]countryDTO, 0, end-start)
	for _, ct := range ds.Countries[start:end] {
		out = append(out, countryDTO{
			Code:             ct.Code,
			Name:             ct.Name,
			LatestPopulation: ct.LatestPopulation,
			Rank:             ct.Rank,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   out,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (s *Server) getHealth(c echo.Context) error {
	ds, _, err := s.snapshot()
	body := map[string]interface{}{"status": "loading"}
	switch {
	case err != nil:
		body["status"] = "error"
		body["error"] = err.Error()
	case ds != nil:
		body["status"] = "ready"
		body["countries"] = len(ds.Countries)
		if min, max, ok := ds.Bounds(); ok {
			body["years"] = []int{min, max}
		}
	}
	return c.JSON(http.StatusOK, body)
}

func unavailable(loadErr error) error {
	if loadErr != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "data failed to load")
	}
	return echo.NewHTTPError(http.StatusServiceUnavailable, "data is still loading")
}
