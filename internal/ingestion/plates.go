package ingestion

import (
	"context"
	"log/slog"

	"github.com/paulmach/orb/geojson"
)

// FetchPlates returns the boundary features in the feed at url and the number
// of features that could not be decoded.
func (c *Client) FetchPlates(ctx context.Context, url string) ([]*geojson.Feature, int, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, 0, err
	}
	return DecodePlates(body)
}

func DecodePlates(body []byte) ([]*geojson.Feature, int, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, 0, err
	}

	features := make([]*geojson.Feature, 0, len(env.Features))
	skipped := 0
	for i, raw := range env.Features {
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil || f.Geometry == nil {
			slog.Debug("skipping plate feature", "index", i, "error", err)
			skipped++
			continue
		}
		features = append(features, f)
	}

	return features, skipped, nil
}
