package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the endpoints and tuning knobs Breeze needs. Every field
// has a working default so the app runs with no config file at all.
type Config struct {
	APIBase      string
	GeoBase      string
	IconBase     string // {icon} is replaced with the icon identifier
	FetchTimeout time.Duration
	GeoTimeout   time.Duration
	RateLimit    float64 // API requests per second
	RateBurst    int
	LogPath      string
}

const (
	defaultConfigPath = "~/.config/breeze/config.toml"
	defaultAPIBase    = "https://api.openweathermap.org"
	defaultGeoBase    = "https://api.openweathermap.org"
	defaultIconBase   = "https://openweathermap.org/img/wn/{icon}@2x.png"
	defaultLogPath    = "~/.local/state/breeze/breeze.log"

	defaultFetchTimeout = 10 * time.Second
	defaultGeoTimeout   = 5 * time.Second
	defaultRateLimit    = 1.0
	defaultRateBurst    = 4
)

// Load locates and parses the Breeze config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase         string  `toml:"api_base"`
		GeoBase         string  `toml:"geo_base"`
		IconBase        string  `toml:"icon_base"`
		FetchTimeoutSec int     `toml:"fetch_timeout_seconds"`
		GeoTimeoutSec   int     `toml:"geo_timeout_seconds"`
		RateLimit       float64 `toml:"rate_limit"`
		RateBurst       int     `toml:"rate_burst"`
		LogPath         string  `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(raw.GeoBase); v != "" {
		cfg.GeoBase = v
	}
	if v := strings.TrimSpace(raw.IconBase); v != "" {
		cfg.IconBase = v
	}
	if raw.FetchTimeoutSec > 0 {
		cfg.FetchTimeout = time.Duration(raw.FetchTimeoutSec) * time.Second
	}
	if raw.GeoTimeoutSec > 0 {
		cfg.GeoTimeout = time.Duration(raw.GeoTimeoutSec) * time.Second
	}
	if raw.RateLimit > 0 {
		cfg.RateLimit = raw.RateLimit
	}
	if raw.RateBurst > 0 {
		cfg.RateBurst = raw.RateBurst
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = v
	}
	cfg.LogPath = mustExpand(cfg.LogPath)

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIBase:      defaultAPIBase,
		GeoBase:      defaultGeoBase,
		IconBase:     defaultIconBase,
		FetchTimeout: defaultFetchTimeout,
		GeoTimeout:   defaultGeoTimeout,
		RateLimit:    defaultRateLimit,
		RateBurst:    defaultRateBurst,
		LogPath:      mustExpand(defaultLogPath),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
