package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c2ccombos/internal/domain"
)

func TestRange_Wire(t *testing.T) {
	assert.Equal(t, "1000,3000", domain.Between("1000", "3000").Wire())
	assert.Equal(t, "200,", domain.AtLeast("200").Wire())
	assert.Equal(t, ",10000", domain.AtMost("10000").Wire())
	assert.Equal(t, "500,1500", domain.IntRange(500, 1500).Wire())
	assert.Equal(t, "4a,6c", domain.RawRange("4a,6c").Wire())
}

func TestRouteFilter_ToQuery(t *testing.T) {
	t.Run("empty filter gives no parameters", func(t *testing.T) {
		params := domain.RouteFilter{}.ToQuery()
		assert.Empty(t, params)
	})

	t.Run("activities are comma joined", func(t *testing.T) {
		f := domain.RouteFilter{
			Activities: []string{"rock_climbing", "hiking"},
		}

		params := f.ToQuery()
		assert.Equal(t, "rock_climbing,hiking", params["act"])
	})

	t.Run("ranges use the wire format", func(t *testing.T) {
		f := domain.RouteFilter{
			Elevation:    domain.IntRange(1000, 3000),
			HeightDiffUp: domain.AtLeast("200"),
			RouteLength:  domain.AtMost("10000"),
		}

		params := f.ToQuery()
		assert.Equal(t, "1000,3000", params["ele"])
		assert.Equal(t, "200,", params["hdif"])
		assert.Equal(t, ",10000", params["rlen"])
	})

	t.Run("rating ranges", func(t *testing.T) {
		f := domain.RouteFilter{
			RockFreeRating:     domain.Between("5c", "6b"),
			RockRequiredRating: domain.AtMost("6a"),
			GlobalRating:       domain.RawRange("AD,TD"),
		}

		params := f.ToQuery()
		assert.Equal(t, "5c,6b", params["frat"])
		assert.Equal(t, ",6a", params["rrat"])
		assert.Equal(t, "AD,TD", params["grat"])
	})

	t.Run("base fields", func(t *testing.T) {
		bbox := domain.BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 200}
		f := domain.RouteFilter{
			BaseFilter: domain.BaseFilter{
				Query:   "pilier",
				Lang:    "fr",
				BBox:    &bbox,
				Fields:  []string{"document_id", "geometry"},
				OrderBy: "elevation_max",
				Order:   "desc",
				Limit:   domain.Int(30),
				Offset:  domain.Int(60),
			},
		}

		params := f.ToQuery()
		assert.Equal(t, "pilier", params["q"])
		assert.Equal(t, "fr", params["lang"])
		assert.Equal(t, "0,0,100,200", params["bbox"])
		assert.Equal(t, "document_id,geometry", params["fields"])
		assert.Equal(t, "elevation_max", params["orderby"])
		assert.Equal(t, "desc", params["order"])
		assert.Equal(t, "30", params["limit"])
		assert.Equal(t, "60", params["offset"])
	})

	t.Run("extras override named fields", func(t *testing.T) {
		f := domain.RouteFilter{
			Activities: []string{"rock_climbing"},
		}
		f = f.Set("act", "paragliding").Set("new_param", 7)

		params := f.ToQuery()
		assert.Equal(t, "paragliding", params["act"])
		assert.Equal(t, "7", params["new_param"])
	})

	t.Run("extras join string slices", func(t *testing.T) {
		f := domain.RouteFilter{}.Set("fac", []string{"S", "SW"})

		params := f.ToQuery()
		assert.Equal(t, "S,SW", params["fac"])
	})

	t.Run("set does not mutate the receiver", func(t *testing.T) {
		base := domain.RouteFilter{Activities: []string{"hiking"}}
		modified := base.Set("ele", "1000,2000")

		baseParams := base.ToQuery()
		modParams := modified.ToQuery()
		assert.NotContains(t, baseParams, "ele")
		assert.Equal(t, "1000,2000", modParams["ele"])
	})
}

func TestWaypointFilter_ToQuery(t *testing.T) {
	t.Run("waypoint keys", func(t *testing.T) {
		f := domain.WaypointFilter{
			Activities:    []string{"paragliding"},
			WaypointTypes: []string{"paragliding_takeoff"},
			Elevation:     domain.IntRange(500, 2500),
			Prominence:    domain.AtLeast("100"),
			Orientations:  []string{"S", "SE"},
			LiftAccess:    domain.Bool(true),
		}

		params := f.ToQuery()
		assert.Equal(t, "paragliding", params["act"])
		assert.Equal(t, "paragliding_takeoff", params["wtyp"])
		assert.Equal(t, "500,2500", params["walt"])
		assert.Equal(t, "100,", params["prom"])
		assert.Equal(t, "S,SE", params["wfac"])
		assert.Equal(t, "true", params["plift"])
	})

	t.Run("extras applied last", func(t *testing.T) {
		f := domain.WaypointFilter{
			Prominence: domain.AtLeast("100"),
		}
		f = f.Set("prom", "300,")

		params := f.ToQuery()
		assert.Equal(t, "300,", params["prom"])
	})
}
