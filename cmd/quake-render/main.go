// Command quake-render fetches the earthquake feed once and writes the styled
// earthquake overlay to stdout as GeoJSON.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mr1hm/go-quake-map/internal/config"
	"github.com/mr1hm/go-quake-map/internal/ingestion"
	"github.com/mr1hm/go-quake-map/internal/logging"
	"github.com/mr1hm/go-quake-map/internal/mapview"
	"github.com/mr1hm/go-quake-map/internal/quake"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	// stdout carries the GeoJSON, so logs go to stderr.
	slog.SetDefault(logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Feeds.Timeout)
	defer cancel()

	client := ingestion.NewClient(cfg.Feeds.Timeout)
	quakes, skipped, err := client.FetchEarthquakes(ctx, cfg.Feeds.EarthquakeURL)
	if err != nil {
		logging.Fatalf("Failed to fetch earthquakes: %v", err)
	}

	layers, err := quake.Render(quakes, cfg.Map.Location())
	if err != nil {
		logging.Fatalf("Failed to render earthquakes: %v", err)
	}

	group := mapview.NewOverlayGroup("Earthquakes", mapview.EarthquakesSlug, true)
	group.Add(layers...)
	group.Skip(skipped)

	out, err := group.FeatureCollection().MarshalJSON()
	if err != nil {
		logging.Fatalf("Failed to encode overlay: %v", err)
	}
	if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
		logging.Fatalf("Failed to write overlay: %v", err)
	}

	slog.Info("rendered earthquakes", "features", len(layers), "skipped", skipped)
}
