package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Feeds   FeedsConfig
	Map     MapConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	RateLimitRPS int
}

type FeedsConfig struct {
	EarthquakeURL string
	TectonicURL   string
	Timeout       time.Duration
}

type MapConfig struct {
	CenterLat     float64
	CenterLon     float64
	Zoom          int
	BaseTileURL   string
	TopoTileURL   string
	PopupTimezone string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "localhost"),
			Port:         getEnvInt("SERVER_PORT", 8080),
			RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 20),
		},
		Feeds: FeedsConfig{
			EarthquakeURL: getEnv("EARTHQUAKE_FEED_URL", "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_week.geojson"),
			TectonicURL:   getEnv("TECTONIC_FEED_URL", "https://raw.githubusercontent.com/fraxen/tectonicplates/master/GeoJSON/PB2002_boundaries.json"),
			Timeout:       getEnvDuration("FETCH_TIMEOUT", 15*time.Second),
		},
		Map: MapConfig{
			CenterLat:     getEnvFloat("MAP_CENTER_LAT", 37.09),
			CenterLon:     getEnvFloat("MAP_CENTER_LON", -95.71),
			Zoom:          getEnvInt("MAP_ZOOM", 5),
			BaseTileURL:   getEnv("BASE_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"),
			TopoTileURL:   getEnv("TOPO_TILE_URL", "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png"),
			PopupTimezone: getEnv("POPUP_TIMEZONE", "UTC"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the popup time zone. validate has already checked it.
func (m MapConfig) Location() *time.Location {
	loc, err := time.LoadLocation(m.PopupTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimitRPS < 1 {
		return fmt.Errorf("invalid rate limit: %d", c.Server.RateLimitRPS)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Feeds.EarthquakeURL == "" {
		return fmt.Errorf("EARTHQUAKE_FEED_URL is required")
	}
	if c.Feeds.TectonicURL == "" {
		return fmt.Errorf("TECTONIC_FEED_URL is required")
	}
	if c.Feeds.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}

	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 {
		return fmt.Errorf("invalid map center latitude: %v", c.Map.CenterLat)
	}
	if c.Map.CenterLon < -180 || c.Map.CenterLon > 180 {
		return fmt.Errorf("invalid map center longitude: %v", c.Map.CenterLon)
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 19 {
		return fmt.Errorf("invalid map zoom: %d", c.Map.Zoom)
	}
	if _, err := time.LoadLocation(c.Map.PopupTimezone); err != nil {
		return fmt.Errorf("invalid popup timezone %q: %w", c.Map.PopupTimezone, err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
