// Package mapview holds the map application context: viewport, base layers,
// overlay groups, the layer control and the legend. It is built once at
// startup and shared by the loaders and the HTTP handlers.
package mapview

import (
	"github.com/mr1hm/go-quake-map/internal/config"
	"github.com/mr1hm/go-quake-map/internal/legend"
)

const (
	EarthquakesSlug    = "earthquakes"
	TectonicPlatesSlug = "tectonic-plates"

	osmAttribution  = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	topoAttribution = `Map data: &copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors, <a href="http://viewfinderpanoramas.org">SRTM</a> | Map style: &copy; <a href="https://opentopomap.org">OpenTopoMap</a> (<a href="https://creativecommons.org/licenses/by-sa/3.0/">CC-BY-SA</a>)`
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BaseLayer is a background tile layer. Exactly one is active.
type BaseLayer struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	Active      bool   `json:"active"`
}

type LayerControl struct {
	Collapsed bool   `json:"collapsed"`
	Position  string `json:"position"`
}

type Map struct {
	Center         LatLng
	Zoom           int
	BaseLayers     []BaseLayer
	Earthquakes    *OverlayGroup
	TectonicPlates *OverlayGroup
	Control        LayerControl
	Legend         legend.Legend
}

func Bootstrap(cfg config.MapConfig, lg legend.Legend) *Map {
	return &Map{
		Center: LatLng{Lat: cfg.CenterLat, Lon: cfg.CenterLon},
		Zoom:   cfg.Zoom,
		BaseLayers: []BaseLayer{
			{Name: "Base Map", URL: cfg.BaseTileURL, Attribution: osmAttribution},
			{Name: "Street Layer", URL: cfg.TopoTileURL, Attribution: topoAttribution, Active: true},
		},
		Earthquakes:    NewOverlayGroup("Earthquakes", EarthquakesSlug, true),
		TectonicPlates: NewOverlayGroup("Tectonic Plates", TectonicPlatesSlug, false),
		Control: LayerControl{
			Collapsed: false,
			Position:  "topright",
		},
		Legend: lg,
	}
}

// Overlays returns the overlay groups in layer control order.
func (m *Map) Overlays() []*OverlayGroup {
	return []*OverlayGroup{m.Earthquakes, m.TectonicPlates}
}

func (m *Map) Overlay(slug string) (*OverlayGroup, bool) {
	for _, g := range m.Overlays() {
		if g.Slug == slug {
			return g, true
		}
	}
	return nil, false
}
