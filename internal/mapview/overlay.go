package mapview

import (
	"sync"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/mr1hm/go-quake-map/internal/models"
)

// OverlayGroup is a named, independently toggleable collection of layers.
// Layers are only ever added. The group settles once, as ready or failed.
type OverlayGroup struct {
	Name    string
	Slug    string
	Visible bool // shown when the page loads

	mu        sync.RWMutex
	layers    []Layer
	skipped   int
	status    models.OverlayStatus
	err       error
	settledAt time.Time
	done      chan struct{}
}

type OverlayState struct {
	Status    models.OverlayStatus
	Err       error
	SettledAt time.Time
	Layers    int
	Skipped   int
}

func NewOverlayGroup(name, slug string, visible bool) *OverlayGroup {
	return &OverlayGroup{
		Name:    name,
		Slug:    slug,
		Visible: visible,
		status:  models.OverlayStatusPending,
		done:    make(chan struct{}),
	}
}

func (g *OverlayGroup) Add(layers ...Layer) {
	g.mu.Lock()
	g.layers = append(g.layers, layers...)
	g.mu.Unlock()
}

// Skip records n source features that could not be turned into layers.
func (g *OverlayGroup) Skip(n int) {
	g.mu.Lock()
	g.skipped += n
	g.mu.Unlock()
}

// MarkReady settles the group as loaded. It returns false if the group had
// already settled.
func (g *OverlayGroup) MarkReady(at time.Time) bool {
	return g.settle(models.OverlayStatusReady, nil, at)
}

// MarkFailed settles the group as failed, keeping whatever layers it has.
func (g *OverlayGroup) MarkFailed(err error, at time.Time) bool {
	return g.settle(models.OverlayStatusFailed, err, at)
}

func (g *OverlayGroup) settle(status models.OverlayStatus, err error, at time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != models.OverlayStatusPending {
		return false
	}
	g.status = status
	g.err = err
	g.settledAt = at
	close(g.done)
	return true
}

// Done is closed once the group has settled.
func (g *OverlayGroup) Done() <-chan struct{} {
	return g.done
}

func (g *OverlayGroup) State() OverlayState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return OverlayState{
		Status:    g.status,
		Err:       g.err,
		SettledAt: g.settledAt,
		Layers:    len(g.layers),
		Skipped:   g.skipped,
	}
}

func (g *OverlayGroup) Layers() []Layer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Layer, len(g.layers))
	copy(out, g.layers)
	return out
}

func (g *OverlayGroup) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, l := range g.Layers() {
		fc.Append(l.Feature())
	}
	return fc
}

// Event describes the group's current state for event streams.
func (g *OverlayGroup) Event() models.OverlayEvent {
	st := g.State()
	ev := models.OverlayEvent{
		Overlay:  g.Slug,
		Status:   st.Status,
		Features: st.Layers,
		Skipped:  st.Skipped,
		At:       st.SettledAt,
	}
	if st.Err != nil {
		ev.Error = st.Err.Error()
	}
	return ev
}
