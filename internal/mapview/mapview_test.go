package mapview

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/go-quake-map/internal/config"
	"github.com/mr1hm/go-quake-map/internal/legend"
	"github.com/mr1hm/go-quake-map/internal/models"
)

func testMapConfig() config.MapConfig {
	return config.MapConfig{
		CenterLat:   37.09,
		CenterLon:   -95.71,
		Zoom:        5,
		BaseTileURL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		TopoTileURL: "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
	}
}

func TestBootstrap(t *testing.T) {
	lg := legend.Legend{Position: legend.PositionBottomRight}
	m := Bootstrap(testMapConfig(), lg)

	assert.Equal(t, LatLng{Lat: 37.09, Lon: -95.71}, m.Center)
	assert.Equal(t, 5, m.Zoom)

	require.Len(t, m.BaseLayers, 2)
	active := 0
	for _, b := range m.BaseLayers {
		if b.Active {
			active++
		}
	}
	assert.Equal(t, 1, active, "base layers are mutually exclusive")
	assert.Equal(t, "Street Layer", m.BaseLayers[1].Name)
	assert.True(t, m.BaseLayers[1].Active)

	assert.False(t, m.Control.Collapsed)
	assert.Equal(t, "topright", m.Control.Position)
	assert.Equal(t, lg, m.Legend)

	require.Len(t, m.Overlays(), 2)
	assert.True(t, m.Earthquakes.Visible)
	assert.False(t, m.TectonicPlates.Visible)
	assert.Equal(t, models.OverlayStatusPending, m.Earthquakes.State().Status)
}

func TestMap_Overlay(t *testing.T) {
	m := Bootstrap(testMapConfig(), legend.Legend{})

	g, ok := m.Overlay(EarthquakesSlug)
	require.True(t, ok)
	assert.Same(t, m.Earthquakes, g)

	g, ok = m.Overlay(TectonicPlatesSlug)
	require.True(t, ok)
	assert.Same(t, m.TectonicPlates, g)

	_, ok = m.Overlay("volcanoes")
	assert.False(t, ok)
}

func TestOverlayGroup_SettlesOnce(t *testing.T) {
	g := NewOverlayGroup("Earthquakes", EarthquakesSlug, true)
	at := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	select {
	case <-g.Done():
		t.Fatal("pending group should not be done")
	default:
	}

	assert.True(t, g.MarkReady(at))
	assert.False(t, g.MarkFailed(errors.New("late"), at.Add(time.Second)))

	<-g.Done()
	st := g.State()
	assert.Equal(t, models.OverlayStatusReady, st.Status)
	assert.NoError(t, st.Err)
	assert.Equal(t, at, st.SettledAt)
}

func TestOverlayGroup_Failed(t *testing.T) {
	g := NewOverlayGroup("Tectonic Plates", TectonicPlatesSlug, false)
	boom := errors.New("connection refused")

	assert.True(t, g.MarkFailed(boom, time.Now()))

	st := g.State()
	assert.Equal(t, models.OverlayStatusFailed, st.Status)
	assert.ErrorIs(t, st.Err, boom)
	assert.Equal(t, 0, st.Layers)
	assert.Empty(t, g.FeatureCollection().Features)
}

func TestOverlayGroup_ConcurrentReadWrite(t *testing.T) {
	g := NewOverlayGroup("Earthquakes", EarthquakesSlug, true)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			g.Add(CircleMarker{Lat: float64(n), Lon: float64(n)})
		}(i)
		go func() {
			defer wg.Done()
			_ = g.FeatureCollection()
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, g.State().Layers)
}

func TestCircleMarker_Feature(t *testing.T) {
	quakeTime := time.UnixMilli(1700000000000)
	m := CircleMarker{
		Lat: 35.7,
		Lon: -117.5,
		Style: models.Style{
			Color:       "#fcdd75",
			FillColor:   "#fcdd75",
			Radius:      20,
			FillOpacity: 0.5,
		},
		Popup: "<h3>Ridgecrest</h3>",
		Quake: models.Earthquake{ID: "ci123", Place: "Ridgecrest", Magnitude: 4, Depth: 25, Time: quakeTime},
	}

	f := m.Feature()
	assert.Equal(t, orb.Point{-117.5, 35.7}, f.Geometry)
	assert.Equal(t, "ci123", f.ID)
	assert.Equal(t, "#fcdd75", f.Properties["color"])
	assert.Equal(t, 20.0, f.Properties["radius"])
	assert.Equal(t, 0.5, f.Properties["fillOpacity"])
	assert.Equal(t, int64(1700000000000), f.Properties["time"])
}

func TestShape_FeatureHasNoProperties(t *testing.T) {
	s := Shape{Geometry: orb.LineString{{0, 0}, {1, 1}}}

	data, err := json.Marshal(s.Feature())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Feature", out["type"])
	assert.Empty(t, out["properties"])
}

func TestOverlayGroup_Event(t *testing.T) {
	g := NewOverlayGroup("Earthquakes", EarthquakesSlug, true)
	at := time.Date(2026, 10, 14, 8, 30, 0, 0, time.UTC)

	g.Add(CircleMarker{}, CircleMarker{})
	g.Skip(1)
	g.MarkReady(at)

	assert.Equal(t, models.OverlayEvent{
		Overlay:  EarthquakesSlug,
		Status:   models.OverlayStatusReady,
		Features: 2,
		Skipped:  1,
		At:       at,
	}, g.Event())

	failed := NewOverlayGroup("Tectonic Plates", TectonicPlatesSlug, false)
	failed.MarkFailed(errors.New("unexpected status code: 404"), at)
	assert.Equal(t, "unexpected status code: 404", failed.Event().Error)
}
