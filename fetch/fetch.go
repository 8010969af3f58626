// Package fetch loads the bulk population payload from the companion server
// or from a local file. It performs no retries or caching.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/registry"
)

// DataPath is the bulk endpoint relative to the server base URL.
const DataPath = "/api/data"

// DefaultTimeout bounds a single HTTP fetch.
const DefaultTimeout = 30 * time.Second

// ErrStatus is wrapped by StatusError.
var ErrStatus = errors.New("unexpected status")

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s %d %s", e.URL, ErrStatus, e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// Source delivers a parsed dataset.
type Source interface {
	Fetch(ctx context.Context) (*registry.Dataset, error)
	String() string
}

// HTTPSource GETs the bulk payload from BaseURL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s *HTTPSource) String() string { return s.url() }

func (s *HTTPSource) url() string {
	return strings.TrimRight(s.BaseURL, "/") + DataPath
}

func (s *HTTPSource) Fetch(ctx context.Context) (*registry.Dataset, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	url := s.url()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logging.Debugf("fetching %s", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	ds, err := registry.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return ds, nil
}

// FileSource reads a payload file from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) String() string { return s.Path }

func (s *FileSource) Fetch(ctx context.Context) (*registry.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	defer f.Close()

	ds, err := registry.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return ds, nil
}

// New picks a source for location: http and https URLs go to the server,
// anything else is read as a file.
func New(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{BaseURL: location}
	}
	return &FileSource{Path: location}
}
