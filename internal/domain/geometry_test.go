package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2ccombos/internal/domain"
)

func geomFromJSON(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var geom map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &geom))
	return geom
}

func TestExtractPoint(t *testing.T) {
	t.Run("point", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "Point", "coordinates": [1, 2]}`)

		pt, ok := domain.ExtractPoint(geom)
		require.True(t, ok)
		assert.Equal(t, domain.GeoPoint{X: 1, Y: 2}, pt)
	})

	t.Run("point with elevation", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "Point", "coordinates": [703332.9, 5645975.5, 1820]}`)

		pt, ok := domain.ExtractPoint(geom)
		require.True(t, ok)
		assert.Equal(t, 703332.9, pt.X)
		assert.Equal(t, 5645975.5, pt.Y)
	})

	t.Run("linestring first vertex", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "LineString", "coordinates": [[5, 6], [7, 8]]}`)

		pt, ok := domain.ExtractPoint(geom)
		require.True(t, ok)
		assert.Equal(t, domain.GeoPoint{X: 5, Y: 6}, pt)
	})

	t.Run("polygon first vertex not centroid", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "Polygon", "coordinates": [[[1, 2], [3, 4], [1, 2]]]}`)

		pt, ok := domain.ExtractPoint(geom)
		require.True(t, ok)
		assert.Equal(t, domain.GeoPoint{X: 1, Y: 2}, pt)
	})

	t.Run("multipolygon", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "MultiPolygon", "coordinates": [[[[10, 20], [30, 40]]]]}`)

		pt, ok := domain.ExtractPoint(geom)
		require.True(t, ok)
		assert.Equal(t, domain.GeoPoint{X: 10, Y: 20}, pt)
	})

	t.Run("geom string wrapper", func(t *testing.T) {
		geom := geomFromJSON(t, `{"geom": "{\"type\": \"Point\", \"coordinates\": [703332.906594, 5645975.4795]}"}`)

		pt, ok := domain.ExtractPoint(geom)
		require.True(t, ok)
		assert.Equal(t, 703332.906594, pt.X)
		assert.Equal(t, 5645975.4795, pt.Y)
	})

	t.Run("malformed geom string", func(t *testing.T) {
		geom := map[string]interface{}{"geom": "{not json"}

		_, ok := domain.ExtractPoint(geom)
		assert.False(t, ok)
	})

	t.Run("nil geometry", func(t *testing.T) {
		_, ok := domain.ExtractPoint(nil)
		assert.False(t, ok)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "Point"}`)

		_, ok := domain.ExtractPoint(geom)
		assert.False(t, ok)
	})

	t.Run("empty coordinates", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "LineString", "coordinates": []}`)

		_, ok := domain.ExtractPoint(geom)
		assert.False(t, ok)
	})

	t.Run("single coordinate is not a pair", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "Point", "coordinates": [5]}`)

		_, ok := domain.ExtractPoint(geom)
		assert.False(t, ok)
	})

	t.Run("non numeric coordinates", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "Point", "coordinates": ["a", "b"]}`)

		_, ok := domain.ExtractPoint(geom)
		assert.False(t, ok)
	})

	t.Run("nesting deeper than the limit", func(t *testing.T) {
		geom := geomFromJSON(t, `{"type": "GeometryCollection", "coordinates": [[[[[[[[[[1, 2]]]]]]]]]]}`)

		_, ok := domain.ExtractPoint(geom)
		assert.False(t, ok)
	})
}
