package provider

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"osm-road-names/internal/config"
	"osm-road-names/pkg/geometry"
	"osm-road-names/pkg/road"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   4,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Client fetches map payloads for bounding boxes from an OSM v0.6 API
// endpoint. Each client owns its own payload cache directory; there is no
// process-wide state.
type Client struct {
	BaseURL    string
	UserAgent  string
	CacheDir   string
	HTTPClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		CacheDir:   cfg.CacheDir,
		HTTPClient: newHTTPClient(cfg.FetchTimeout),
	}
}

// FetchMap returns the raw OSM XML for the box, from the cache when a
// previous run already downloaded it. One synchronous request, no retries.
func (c *Client) FetchMap(ctx context.Context, bbox geometry.BBox) ([]byte, error) {
	if c.CacheDir != "" {
		if data, err := os.ReadFile(c.cachePath(bbox)); err == nil && len(data) > 0 {
			log.Printf("provider: cache hit for %s", bbox.ID())
			return data, nil
		}
	}

	url := fmt.Sprintf("%s/map?bbox=%s", c.BaseURL, bbox.QueryString())
	log.Printf("provider: downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(60 * time.Second)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests, 509: // 509 Bandwidth Limit Exceeded
		return nil, &RateLimitError{Status: resp.Status}
	default:
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	if len(data) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("empty response from %s", url)}
	}

	c.storeCache(bbox, data)
	return data, nil
}

// LoadSegments fetches and parses the road segments for the box.
func (c *Client) LoadSegments(ctx context.Context, bbox geometry.BBox) ([]road.Segment, error) {
	data, err := c.FetchMap(ctx, bbox)
	if err != nil {
		return nil, err
	}
	return ParseSegments(ctx, data, bbox)
}

func (c *Client) cachePath(bbox geometry.BBox) string {
	return filepath.Join(c.CacheDir, bbox.ID()+".osm")
}

// The cache is an optimization: a failed write is logged, not fatal.
func (c *Client) storeCache(bbox geometry.BBox, data []byte) {
	if c.CacheDir == "" {
		return
	}
	if err := os.MkdirAll(c.CacheDir, 0o755); err != nil {
		log.Printf("provider: cannot create cache dir %s: %v", c.CacheDir, err)
		return
	}
	if err := os.WriteFile(c.cachePath(bbox), data, 0o644); err != nil {
		log.Printf("provider: cannot cache %s: %v", bbox.ID(), err)
	}
}
