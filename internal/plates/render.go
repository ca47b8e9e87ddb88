// Package plates draws tectonic plate boundaries as unstyled shapes.
package plates

import (
	"github.com/paulmach/orb/geojson"

	"github.com/mr1hm/go-quake-map/internal/mapview"
)

// Render keeps only the geometry of each boundary feature. Features without
// geometry are dropped.
func Render(features []*geojson.Feature) []mapview.Layer {
	layers := make([]mapview.Layer, 0, len(features))
	for _, f := range features {
		if f == nil || f.Geometry == nil {
			continue
		}
		layers = append(layers, mapview.Shape{Geometry: f.Geometry})
	}
	return layers
}
