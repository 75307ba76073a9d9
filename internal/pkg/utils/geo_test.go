package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2ccombos/internal/domain"
	"github.com/c2ccombos/internal/pkg/utils"
)

func TestProject(t *testing.T) {
	t.Run("origin maps to origin", func(t *testing.T) {
		pt := utils.Project(0, 0)
		assert.InDelta(t, 0, pt.X, 1e-6)
		assert.InDelta(t, 0, pt.Y, 1e-6)
	})

	t.Run("known values", func(t *testing.T) {
		pt := utils.Project(1, 45)
		assert.InDelta(t, 111319.49079, pt.X, 0.001)
		assert.InDelta(t, 5621521.486, pt.Y, 0.1)
	})

	t.Run("latitude is clamped at the mercator limit", func(t *testing.T) {
		atLimit := utils.Project(0, 85.05112878)
		beyond := utils.Project(0, 89.9)
		assert.InDelta(t, atLimit.Y, beyond.Y, 1e-6)

		belowLimit := utils.Project(0, -85.05112878)
		farSouth := utils.Project(0, -89.9)
		assert.InDelta(t, belowLimit.Y, farSouth.Y, 1e-6)
	})

	t.Run("round trip", func(t *testing.T) {
		lon, lat := 6.32, 45.2
		gotLon, gotLat := utils.Unproject(utils.Project(lon, lat))
		assert.InDelta(t, lon, gotLon, 1e-9)
		assert.InDelta(t, lat, gotLat, 1e-9)
	})
}

func TestDistance(t *testing.T) {
	t.Run("3-4-5 triangle", func(t *testing.T) {
		d := utils.Distance(domain.GeoPoint{X: 0, Y: 0}, domain.GeoPoint{X: 3, Y: 4})
		assert.Equal(t, 5.0, d)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := domain.GeoPoint{X: 10, Y: -20}
		b := domain.GeoPoint{X: -7, Y: 13}
		assert.Equal(t, utils.Distance(a, b), utils.Distance(b, a))
	})

	t.Run("zero for identical points", func(t *testing.T) {
		p := domain.GeoPoint{X: 703332.9, Y: 5645975.5}
		assert.Equal(t, 0.0, utils.Distance(p, p))
	})
}

func TestExpandBBox(t *testing.T) {
	b := domain.BoundingBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	expanded := utils.ExpandBBox(b, 2)

	assert.Equal(t, domain.BoundingBox{MinX: -2, MinY: -2, MaxX: 12, MaxY: 12}, expanded)
	assert.True(t, utils.BBoxContains(expanded, 5, 5))
	assert.True(t, utils.BBoxContains(expanded, -2, 12), "bounds are inclusive")
	assert.False(t, utils.BBoxContains(expanded, -3, 5))
}

func TestBBoxAround(t *testing.T) {
	b := utils.BBoxAround(domain.GeoPoint{X: 100, Y: 200}, 20)

	assert.Equal(t, domain.BoundingBox{MinX: 90, MinY: 190, MaxX: 110, MaxY: 210}, b)
	assert.Equal(t, domain.GeoPoint{X: 100, Y: 200}, b.Center())
}

func TestDocumentLonLat(t *testing.T) {
	t.Run("from geometry", func(t *testing.T) {
		pt := utils.Project(6.32, 45.2)
		doc := domain.Document{
			"geometry": map[string]interface{}{
				"type":        "Point",
				"coordinates": []interface{}{pt.X, pt.Y},
			},
		}

		lon, lat, ok := utils.DocumentLonLat(doc)
		require.True(t, ok)
		assert.InDelta(t, 6.32, lon, 1e-9)
		assert.InDelta(t, 45.2, lat, 1e-9)
	})

	t.Run("no coordinates", func(t *testing.T) {
		doc := domain.Document{"document_id": float64(1)}

		_, _, ok := utils.DocumentLonLat(doc)
		assert.False(t, ok)
	})
}
