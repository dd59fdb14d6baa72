package config

import (
	"os"
	"time"
)

const (
	defaultBaseURL   = "https://api.openstreetmap.org/api/0.6"
	defaultUserAgent = "osm-road-names/1.0"
	defaultCacheDir  = "osm"
	defaultTimeout   = 60 * time.Second
)

type Config struct {
	BaseURL      string
	UserAgent    string
	CacheDir     string
	FetchTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		BaseURL:      defaultBaseURL,
		UserAgent:    defaultUserAgent,
		CacheDir:     defaultCacheDir,
		FetchTimeout: defaultTimeout,
	}
	if v := os.Getenv("OSM_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("OSM_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("OSM_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("OSM_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FetchTimeout = d
		}
	}
	return cfg
}
