package quake

import (
	"fmt"
	"time"

	"github.com/mr1hm/go-quake-map/internal/mapview"
	"github.com/mr1hm/go-quake-map/internal/models"
)

// Render builds one circle marker per earthquake.
func Render(quakes []models.Earthquake, loc *time.Location) ([]mapview.Layer, error) {
	layers := make([]mapview.Layer, 0, len(quakes))
	for _, q := range quakes {
		popup, err := Popup(q, loc)
		if err != nil {
			return nil, fmt.Errorf("error rendering popup for %s: %w", q.ID, err)
		}
		layers = append(layers, mapview.CircleMarker{
			Lat:   q.Latitude,
			Lon:   q.Longitude,
			Style: StyleFor(q),
			Popup: popup,
			Quake: q,
		})
	}
	return layers, nil
}
