package ingestion

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/mr1hm/go-quake-map/internal/config"
	"github.com/mr1hm/go-quake-map/internal/events"
	"github.com/mr1hm/go-quake-map/internal/mapview"
	"github.com/mr1hm/go-quake-map/internal/observability"
	"github.com/mr1hm/go-quake-map/internal/plates"
	"github.com/mr1hm/go-quake-map/internal/quake"
	"github.com/mr1hm/go-quake-map/internal/worker"
)

// loadFunc fetches one feed and renders it into layers.
type loadFunc func(ctx context.Context) ([]mapview.Layer, int, error)

// Manager loads each overlay group once, on its own worker, so a slow or
// failing feed never holds up the other.
type Manager struct {
	cfg         *config.Config
	client      *Client
	view        *mapview.Map
	broadcaster *events.Broadcaster
	metrics     *observability.Metrics
	clock       clockwork.Clock
	pool        *worker.Pool
}

func NewManager(cfg *config.Config, client *Client, view *mapview.Map, broadcaster *events.Broadcaster, metrics *observability.Metrics) *Manager {
	return &Manager{
		cfg:         cfg,
		client:      client,
		view:        view,
		broadcaster: broadcaster,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
	}
}

func (m *Manager) Start(ctx context.Context) {
	loads := []struct {
		group *mapview.OverlayGroup
		load  loadFunc
	}{
		{m.view.Earthquakes, m.loadEarthquakes},
		{m.view.TectonicPlates, m.loadPlates},
	}

	m.pool = worker.NewPool(len(loads), len(loads))
	m.pool.Start(ctx)

	for _, l := range loads {
		m.pool.Submit(worker.Task{
			Name: l.group.Slug,
			Run:  m.overlayTask(l.group, l.load),
		})
	}
}

func (m *Manager) Stop() {
	if m.pool == nil {
		return
	}
	m.pool.Stop()
	slog.Info("ingestion manager stopped")
}

func (m *Manager) overlayTask(group *mapview.OverlayGroup, load loadFunc) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		slog.Debug("loading overlay", "overlay", group.Slug)

		start := m.clock.Now()
		layers, skipped, err := load(ctx)
		m.metrics.FeedFetchDuration.WithLabelValues(group.Slug).Observe(m.clock.Since(start).Seconds())

		if err != nil {
			m.metrics.FeedFetches.WithLabelValues(group.Slug, "error").Inc()
			if group.MarkFailed(err, m.clock.Now()) {
				m.publish(group)
			}
			return err
		}

		m.metrics.FeedFetches.WithLabelValues(group.Slug, "success").Inc()
		m.metrics.FeaturesRendered.WithLabelValues(group.Slug).Add(float64(len(layers)))
		m.metrics.FeaturesSkipped.WithLabelValues(group.Slug).Add(float64(skipped))

		group.Add(layers...)
		group.Skip(skipped)
		if group.MarkReady(m.clock.Now()) {
			m.publish(group)
		}

		slog.Info("overlay ready", "overlay", group.Slug, "features", len(layers), "skipped", skipped)
		return nil
	}
}

func (m *Manager) publish(group *mapview.OverlayGroup) {
	if m.broadcaster == nil {
		return
	}
	m.broadcaster.Broadcast(group.Event())
}

func (m *Manager) loadEarthquakes(ctx context.Context) ([]mapview.Layer, int, error) {
	quakes, skipped, err := m.client.FetchEarthquakes(ctx, m.cfg.Feeds.EarthquakeURL)
	if err != nil {
		return nil, 0, err
	}
	layers, err := quake.Render(quakes, m.cfg.Map.Location())
	if err != nil {
		return nil, skipped, err
	}
	return layers, skipped, nil
}

func (m *Manager) loadPlates(ctx context.Context) ([]mapview.Layer, int, error) {
	features, skipped, err := m.client.FetchPlates(ctx, m.cfg.Feeds.TectonicURL)
	if err != nil {
		return nil, 0, err
	}
	return plates.Render(features), skipped, nil
}
