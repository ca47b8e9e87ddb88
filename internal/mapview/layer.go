package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mr1hm/go-quake-map/internal/models"
)

// Layer is anything an overlay group can hold.
type Layer interface {
	Feature() *geojson.Feature
}

// CircleMarker is a styled point marker with a popup.
type CircleMarker struct {
	Lat   float64
	Lon   float64
	Style models.Style
	Popup string
	Quake models.Earthquake
}

func (m CircleMarker) Feature() *geojson.Feature {
	f := geojson.NewFeature(orb.Point{m.Lon, m.Lat})
	if m.Quake.ID != "" {
		f.ID = m.Quake.ID
	}
	f.Properties["marker"] = "circle"
	f.Properties["color"] = m.Style.Color
	f.Properties["fillColor"] = m.Style.FillColor
	f.Properties["radius"] = m.Style.Radius
	f.Properties["fillOpacity"] = m.Style.FillOpacity
	f.Properties["popup"] = m.Popup
	f.Properties["place"] = m.Quake.Place
	f.Properties["mag"] = m.Quake.Magnitude
	f.Properties["depth"] = m.Quake.Depth
	if !m.Quake.Time.IsZero() {
		f.Properties["time"] = m.Quake.Time.UnixMilli()
	}
	return f
}

// Shape is unstyled geometry drawn with the library defaults.
type Shape struct {
	Geometry orb.Geometry
}

func (s Shape) Feature() *geojson.Feature {
	return geojson.NewFeature(s.Geometry)
}
