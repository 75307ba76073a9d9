package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2ccombos/internal/domain"
)

func TestDocument_ID(t *testing.T) {
	t.Run("document_id", func(t *testing.T) {
		doc := domain.Document{"document_id": float64(123)}

		id, ok := doc.ID()
		require.True(t, ok)
		assert.Equal(t, int64(123), id)
	})

	t.Run("id fallback", func(t *testing.T) {
		doc := domain.Document{"id": float64(456)}

		id, ok := doc.ID()
		require.True(t, ok)
		assert.Equal(t, int64(456), id)
	})

	t.Run("no identifier", func(t *testing.T) {
		doc := domain.Document{"title": "nameless"}

		_, ok := doc.ID()
		assert.False(t, ok)
	})
}

func TestDocument_Title(t *testing.T) {
	doc := domain.Document{
		"document_id": float64(42),
		"locales": []interface{}{
			map[string]interface{}{"lang": "fr", "title": "Voie du Pilier"},
			map[string]interface{}{"lang": "en", "title": "Pillar Route"},
		},
	}

	t.Run("matching lang wins", func(t *testing.T) {
		assert.Equal(t, "Pillar Route", doc.Title("en"))
	})

	t.Run("unknown lang falls back to first locale", func(t *testing.T) {
		assert.Equal(t, "Voie du Pilier", doc.Title("de"))
	})

	t.Run("empty lang takes first locale", func(t *testing.T) {
		assert.Equal(t, "Voie du Pilier", doc.Title(""))
	})

	t.Run("name field when no locales", func(t *testing.T) {
		d := domain.Document{"name": "Aiguille du Midi"}
		assert.Equal(t, "Aiguille du Midi", d.Title("fr"))
	})

	t.Run("id as last resort", func(t *testing.T) {
		d := domain.Document{"document_id": float64(42)}
		assert.Equal(t, "42", d.Title("fr"))
	})

	t.Run("locale without title is skipped", func(t *testing.T) {
		d := domain.Document{
			"locales": []interface{}{
				map[string]interface{}{"lang": "fr"},
				map[string]interface{}{"lang": "en", "title": "Named"},
			},
		}
		assert.Equal(t, "Named", d.Title("fr"))
	})
}

func TestDocument_Point(t *testing.T) {
	t.Run("geometry point", func(t *testing.T) {
		doc := domain.Document{
			"geometry": map[string]interface{}{
				"type":        "Point",
				"coordinates": []interface{}{1.0, 2.0},
			},
		}

		pt, ok := doc.Point()
		require.True(t, ok)
		assert.Equal(t, domain.GeoPoint{X: 1, Y: 2}, pt)
	})

	t.Run("bbox centroid fallback", func(t *testing.T) {
		doc := domain.Document{
			"bbox": []interface{}{0.0, 0.0, 10.0, 10.0},
		}

		pt, ok := doc.Point()
		require.True(t, ok)
		assert.Equal(t, domain.GeoPoint{X: 5, Y: 5}, pt)
	})

	t.Run("broken geometry falls back to bbox", func(t *testing.T) {
		doc := domain.Document{
			"geometry": map[string]interface{}{"type": "Point"},
			"bbox":     []interface{}{0.0, 0.0, 4.0, 8.0},
		}

		pt, ok := doc.Point()
		require.True(t, ok)
		assert.Equal(t, domain.GeoPoint{X: 2, Y: 4}, pt)
	})

	t.Run("no usable coordinates", func(t *testing.T) {
		doc := domain.Document{
			"bbox": []interface{}{0.0, 0.0, 10.0},
		}

		_, ok := doc.Point()
		assert.False(t, ok)
	})
}

func TestDocument_URL(t *testing.T) {
	t.Run("type code", func(t *testing.T) {
		doc := domain.Document{"document_id": float64(123), "type": "r"}

		url, ok := doc.URL("https://www.camptocamp.org")
		require.True(t, ok)
		assert.Equal(t, "https://www.camptocamp.org/routes/123", url)
	})

	t.Run("waypoint type code", func(t *testing.T) {
		doc := domain.Document{"document_id": float64(7), "type": "w"}

		url, ok := doc.URL("https://www.camptocamp.org")
		require.True(t, ok)
		assert.Equal(t, "https://www.camptocamp.org/waypoints/7", url)
	})

	t.Run("waypoint_type heuristic", func(t *testing.T) {
		doc := domain.Document{
			"document_id":   float64(8),
			"waypoint_type": "paragliding_takeoff",
		}

		url, ok := doc.URL("https://www.camptocamp.org")
		require.True(t, ok)
		assert.Equal(t, "https://www.camptocamp.org/waypoints/8", url)
	})

	t.Run("activities heuristic", func(t *testing.T) {
		doc := domain.Document{
			"document_id": float64(9),
			"activities":  []interface{}{"rock_climbing"},
		}

		url, ok := doc.URL("https://www.camptocamp.org")
		require.True(t, ok)
		assert.Equal(t, "https://www.camptocamp.org/routes/9", url)
	})

	t.Run("trailing slash in base", func(t *testing.T) {
		doc := domain.Document{"document_id": float64(1), "type": "o"}

		url, ok := doc.URL("https://www.camptocamp.org/")
		require.True(t, ok)
		assert.Equal(t, "https://www.camptocamp.org/outings/1", url)
	})

	t.Run("unknown type code", func(t *testing.T) {
		doc := domain.Document{"document_id": float64(1), "type": "zz"}

		_, ok := doc.URL("https://www.camptocamp.org")
		assert.False(t, ok)
	})

	t.Run("missing id", func(t *testing.T) {
		doc := domain.Document{"type": "r"}

		_, ok := doc.URL("https://www.camptocamp.org")
		assert.False(t, ok)
	})
}
