// Package quake turns earthquakes into styled circle markers: color from
// depth, radius from magnitude, and an HTML popup.
package quake

import "github.com/mr1hm/go-quake-map/internal/models"

const (
	FallbackColor = "black"
	FillOpacity   = 0.5
	RadiusScale   = 5
)

// DepthIntervals are the lower bounds (km) of the depth bands, paired with
// DepthColors. The first band is closed at both ends, the others are
// (lower, upper], and the last is open-ended.
var (
	DepthIntervals = []float64{-10, 10, 30, 50, 70, 90}
	DepthColors    = []string{"#57ea2c", "#fcdd75", "#f7b356", "#eb9929", "#e97500", "#f3230f"}
)

// Color returns the band color for depth, or FallbackColor below the first
// band (and for NaN).
func Color(depth float64) string {
	last := len(DepthIntervals) - 1
	if depth >= DepthIntervals[0] && depth <= DepthIntervals[1] {
		return DepthColors[0]
	}
	for i := 1; i < last; i++ {
		if depth > DepthIntervals[i] && depth <= DepthIntervals[i+1] {
			return DepthColors[i]
		}
	}
	if depth > DepthIntervals[last] {
		return DepthColors[last]
	}
	return FallbackColor
}

// Radius scales magnitude to a marker radius. Magnitude 0 gives radius 0 and
// negative magnitudes are scaled like any other.
func Radius(magnitude float64) float64 {
	if magnitude == 0 {
		return 0
	}
	return magnitude * RadiusScale
}

func StyleFor(q models.Earthquake) models.Style {
	color := Color(q.Depth)
	return models.Style{
		Color:       color,
		FillColor:   color,
		Radius:      Radius(q.Magnitude),
		FillOpacity: FillOpacity,
	}
}
