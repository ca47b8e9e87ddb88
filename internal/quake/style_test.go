package quake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mr1hm/go-quake-map/internal/models"
)

func TestColor(t *testing.T) {
	tests := []struct {
		depth float64
		want  string
	}{
		{-10, "#57ea2c"},
		{0, "#57ea2c"},
		{10, "#57ea2c"},
		{10.01, "#fcdd75"},
		{25, "#fcdd75"},
		{30, "#fcdd75"},
		{30.5, "#f7b356"},
		{50, "#f7b356"},
		{51, "#eb9929"},
		{70, "#eb9929"},
		{71, "#e97500"},
		{90, "#e97500"},
		{90.1, "#f3230f"},
		{95, "#f3230f"},
		{700, "#f3230f"},
		{-10.01, "black"},
		{-15, "black"},
		{math.NaN(), "black"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Color(tt.depth), "depth %v", tt.depth)
	}
}

func TestRadius(t *testing.T) {
	assert.Equal(t, 0.0, Radius(0))
	assert.Equal(t, 15.0, Radius(3))
	assert.Equal(t, 20.0, Radius(4))
	assert.Equal(t, -5.0, Radius(-1))
	assert.InDelta(t, 12.5, Radius(2.5), 1e-9)
}

func TestStyleFor(t *testing.T) {
	got := StyleFor(models.Earthquake{Depth: 25, Magnitude: 4})

	assert.Equal(t, models.Style{
		Color:       "#fcdd75",
		FillColor:   "#fcdd75",
		Radius:      20,
		FillOpacity: 0.5,
	}, got)
}

func TestDepthTableShape(t *testing.T) {
	assert.Len(t, DepthColors, len(DepthIntervals))
	for i := 1; i < len(DepthIntervals); i++ {
		assert.Less(t, DepthIntervals[i-1], DepthIntervals[i])
	}
}
