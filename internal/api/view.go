package api

import (
	"html/template"

	"github.com/mr1hm/go-quake-map/internal/legend"
	"github.com/mr1hm/go-quake-map/internal/mapview"
	"github.com/mr1hm/go-quake-map/internal/models"
)

// mapConfig is everything the page needs to build the Leaflet map.
type mapConfig struct {
	Center     mapview.LatLng       `json:"center"`
	Zoom       int                  `json:"zoom"`
	BaseLayers []mapview.BaseLayer  `json:"baseLayers"`
	Overlays   []overlayConfig      `json:"overlays"`
	Control    mapview.LayerControl `json:"control"`
	Legend     legendView           `json:"legend"`
}

type overlayConfig struct {
	Name    string               `json:"name"`
	Slug    string               `json:"slug"`
	URL     string               `json:"url"`
	Visible bool                 `json:"visible"`
	Status  models.OverlayStatus `json:"status"`
}

type legendView struct {
	legend.Legend
	HTML template.HTML `json:"html"`
}

func overlayURL(slug string) string {
	return "/api/overlays/" + slug
}

func toMapConfig(m *mapview.Map) (mapConfig, error) {
	lv, err := toLegendView(m.Legend)
	if err != nil {
		return mapConfig{}, err
	}

	overlays := make([]overlayConfig, 0, len(m.Overlays()))
	for _, g := range m.Overlays() {
		overlays = append(overlays, overlayConfig{
			Name:    g.Name,
			Slug:    g.Slug,
			URL:     overlayURL(g.Slug),
			Visible: g.Visible,
			Status:  g.State().Status,
		})
	}

	return mapConfig{
		Center:     m.Center,
		Zoom:       m.Zoom,
		BaseLayers: m.BaseLayers,
		Overlays:   overlays,
		Control:    m.Control,
		Legend:     lv,
	}, nil
}

func toLegendView(lg legend.Legend) (legendView, error) {
	html, err := lg.HTML()
	if err != nil {
		return legendView{}, err
	}
	return legendView{Legend: lg, HTML: html}, nil
}
