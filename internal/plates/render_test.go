package plates

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/go-quake-map/internal/mapview"
)

func TestRender(t *testing.T) {
	boundary := geojson.NewFeature(orb.LineString{{-180, -10}, {-170, -12}})
	boundary.Properties["Name"] = "PA-AU"
	plate := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})

	layers := Render([]*geojson.Feature{boundary, nil, {Type: "Feature"}, plate})
	require.Len(t, layers, 2)

	shape, ok := layers[0].(mapview.Shape)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{-180, -10}, {-170, -12}}, shape.Geometry)
	assert.Empty(t, shape.Feature().Properties, "boundary properties are not carried")

	_, ok = layers[1].(mapview.Shape).Geometry.(orb.Polygon)
	assert.True(t, ok)
}
