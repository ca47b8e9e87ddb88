package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mr1hm/go-quake-map/internal/events"
	"github.com/mr1hm/go-quake-map/internal/mapview"
	"github.com/mr1hm/go-quake-map/internal/models"
	"github.com/mr1hm/go-quake-map/internal/observability"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Handler struct {
	view        *mapview.Map
	broadcaster *events.Broadcaster
	metrics     *observability.Metrics
}

func NewHandler(view *mapview.Map, broadcaster *events.Broadcaster, metrics *observability.Metrics) *Handler {
	return &Handler{
		view:        view,
		broadcaster: broadcaster,
		metrics:     metrics,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", h.index)
	r.GET("/api/map", h.getMap)
	r.GET("/api/overlays/:name", h.getOverlay)
	r.GET("/api/legend", h.getLegend)
	r.GET("/api/events", h.streamEvents)
	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Handler) index(c *gin.Context) {
	cfg, err := toMapConfig(h.view)
	if err != nil {
		slog.Error("error building map config", "error", err)
		c.String(http.StatusInternalServerError, "failed to render map")
		return
	}
	c.HTML(http.StatusOK, "map.html", gin.H{
		"Config": cfg,
	})
}

func (h *Handler) getMap(c *gin.Context) {
	cfg, err := toMapConfig(h.view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to build map config",
		})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) getOverlay(c *gin.Context) {
	group, ok := h.view.Overlay(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown overlay",
		})
		return
	}

	c.Header("X-Overlay-Status", string(group.State().Status))
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, group.FeatureCollection())
}

func (h *Handler) getLegend(c *gin.Context) {
	lv, err := toLegendView(h.view.Legend)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to render legend",
		})
		return
	}
	c.JSON(http.StatusOK, lv)
}

// streamEvents sends one "overlay" event per overlay group as it settles.
// Groups that settled before the client connected are replayed first. The
// stream ends once every group has been reported.
func (h *Handler) streamEvents(c *gin.Context) {
	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	if h.metrics != nil {
		h.metrics.EventSubscribers.Inc()
		defer h.metrics.EventSubscribers.Dec()
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	overlays := h.view.Overlays()
	sent := make(map[string]bool, len(overlays))
	for _, g := range overlays {
		if g.State().Status == models.OverlayStatusPending {
			continue
		}
		c.SSEvent("overlay", g.Event())
		sent[g.Slug] = true
	}
	c.Writer.Flush()

	ctx := c.Request.Context()
	for len(sent) < len(overlays) {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if sent[ev.Overlay] {
				continue
			}
			sent[ev.Overlay] = true
			c.SSEvent("overlay", ev)
			c.Writer.Flush()
		}
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
