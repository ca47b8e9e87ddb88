package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mr1hm/go-quake-map/internal/models"
)

type quakeFeature struct {
	ID         string          `json:"id"`
	Properties quakeProperties `json:"properties"`
	Geometry   *quakeGeometry  `json:"geometry"`
}
type quakeProperties struct {
	Mag   *float64 `json:"mag"`
	Place string   `json:"place"`
	Time  *int64   `json:"time"` // unix millis
}
type quakeGeometry struct {
	Coordinates []*float64 `json:"coordinates"` // [lon, lat, depth]
}

// FetchEarthquakes returns the decodable earthquakes in the feed at url and
// the number of features skipped as malformed.
func (c *Client) FetchEarthquakes(ctx context.Context, url string) ([]models.Earthquake, int, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, 0, err
	}
	return DecodeEarthquakes(body)
}

// DecodeEarthquakes parses a GeoJSON FeatureCollection of earthquake points.
// Features missing a magnitude or a full [lon, lat, depth] triple are skipped.
func DecodeEarthquakes(body []byte) ([]models.Earthquake, int, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, 0, err
	}

	quakes := make([]models.Earthquake, 0, len(env.Features))
	skipped := 0
	for i, raw := range env.Features {
		q, err := decodeEarthquake(raw)
		if err != nil {
			slog.Debug("skipping earthquake feature", "index", i, "error", err)
			skipped++
			continue
		}
		quakes = append(quakes, q)
	}

	return quakes, skipped, nil
}

func decodeEarthquake(raw []byte) (models.Earthquake, error) {
	var f quakeFeature
	if err := json.Unmarshal(raw, &f); err != nil {
		return models.Earthquake{}, fmt.Errorf("error decoding feature: %w", err)
	}
	if f.Properties.Mag == nil {
		return models.Earthquake{}, fmt.Errorf("feature %q has no magnitude", f.ID)
	}
	if f.Geometry == nil || len(f.Geometry.Coordinates) < 3 {
		return models.Earthquake{}, fmt.Errorf("feature %q has no [lon, lat, depth] coordinates", f.ID)
	}
	coords := f.Geometry.Coordinates
	for i := 0; i < 3; i++ {
		if coords[i] == nil {
			return models.Earthquake{}, fmt.Errorf("feature %q has a null coordinate at index %d", f.ID, i)
		}
	}

	q := models.Earthquake{
		ID:        f.ID,
		Place:     f.Properties.Place,
		Magnitude: *f.Properties.Mag,
		Longitude: *coords[0],
		Latitude:  *coords[1],
		Depth:     *coords[2],
	}
	if f.Properties.Time != nil {
		q.Time = time.UnixMilli(*f.Properties.Time)
	}
	return q, nil
}
