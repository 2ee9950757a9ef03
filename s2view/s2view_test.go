package s2view

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
	"github.com/arloliu/geog/wkt"
)

func mustParse(t *testing.T, text string) geography.Record {
	t.Helper()

	rec, err := wkt.Parse(text)
	require.NoError(t, err)

	return rec
}

func at(lng, lat float64) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))
}

func TestPoint(t *testing.T) {
	p, err := Point(mustParse(t, "POINT (121.5654 25.033)"))
	require.NoError(t, err)

	ll := s2.LatLngFromPoint(p)
	require.InDelta(t, 121.5654, ll.Lng.Degrees(), 1e-9)
	require.InDelta(t, 25.033, ll.Lat.Degrees(), 1e-9)

	_, err = Point(mustParse(t, "POINT EMPTY"))
	require.ErrorIs(t, err, errs.ErrEmptyGeography)

	_, err = Point(mustParse(t, "LINESTRING (0 0, 1 1)"))
	require.ErrorIs(t, err, errs.ErrUnsupportedKind)
}

func TestPolyline(t *testing.T) {
	line, err := Polyline(mustParse(t, "LINESTRING (0 0, 0 10, 10 10)"))
	require.NoError(t, err)
	require.Equal(t, 2, line.NumEdges())
	require.True(t, (*line)[1].ApproxEqual(at(0, 10)))
	require.InDelta(t, 20*math.Pi/180, line.Length().Radians(), 0.01)

	_, err = Polyline(mustParse(t, "POINT (1 1)"))
	require.ErrorIs(t, err, errs.ErrUnsupportedKind)
}

func TestPolygon(t *testing.T) {
	rec := mustParse(t, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (4 4, 6 4, 6 6, 4 6, 4 4))")

	poly, err := Polygon(rec)
	require.NoError(t, err)
	require.Equal(t, 2, poly.NumLoops())
	require.Equal(t, 4, poly.Loop(0).NumVertices(), "closing vertex is dropped")

	require.True(t, poly.ContainsPoint(at(2, 2)))
	require.False(t, poly.ContainsPoint(at(5, 5)), "hole")
	require.False(t, poly.ContainsPoint(at(20, 20)))

	t.Run("Clockwise ring is normalized", func(t *testing.T) {
		cw, err := Polygon(mustParse(t, "POLYGON ((0 0, 0 10, 10 10, 10 0, 0 0))"))
		require.NoError(t, err)
		require.True(t, cw.ContainsPoint(at(5, 5)))
		require.Less(t, cw.Loop(0).Area(), 2*math.Pi)
	})

	t.Run("Degenerate ring", func(t *testing.T) {
		_, err := Polygon(mustParse(t, "POLYGON ((0 0, 1 1, 0 0))"))
		require.ErrorIs(t, err, errs.ErrInvalidRecord)
	})

	t.Run("Empty and wrong kind", func(t *testing.T) {
		_, err := Polygon(mustParse(t, "POLYGON EMPTY"))
		require.ErrorIs(t, err, errs.ErrEmptyGeography)

		_, err = Polygon(mustParse(t, "MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)))"))
		require.ErrorIs(t, err, errs.ErrUnsupportedKind)
	})
}

func TestMultiPolygon(t *testing.T) {
	rec := mustParse(t, "MULTIPOLYGON (((0 0, 1 0, 1 1, 0 1, 0 0)), EMPTY, ((10 10, 11 10, 11 11, 10 10)))")

	polys, err := MultiPolygon(rec)
	require.NoError(t, err)
	require.Len(t, polys, 2)
	require.True(t, polys[0].ContainsPoint(at(0.5, 0.5)))
	require.False(t, polys[1].ContainsPoint(at(0.5, 0.5)))
	require.Equal(t, 3, polys[1].Loop(0).NumVertices())
}

func TestRegions(t *testing.T) {
	tests := []struct {
		name  string
		wkt   string
		types []string
	}{
		{name: "point", wkt: "POINT (1 2)", types: []string{"point"}},
		{name: "multipoint", wkt: "MULTIPOINT (1 2, 3 4)", types: []string{"point", "point"}},
		{name: "multilinestring", wkt: "MULTILINESTRING ((0 0, 1 1), EMPTY, (2 2, 3 3))", types: []string{"polyline", "polyline"}},
		{name: "polygon", wkt: "POLYGON ((0 0, 1 0, 1 1, 0 0))", types: []string{"polygon"}},
		{
			name:  "collection",
			wkt:   "GEOMETRYCOLLECTION (POINT (1 1), POINT EMPTY, LINESTRING (0 0, 1 1), MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5))))",
			types: []string{"point", "polyline", "polygon", "polygon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions, err := Regions(mustParse(t, tt.wkt))
			require.NoError(t, err)

			got := make([]string, 0, len(regions))
			for _, r := range regions {
				switch r.(type) {
				case s2.Point:
					got = append(got, "point")
				case *s2.Polyline:
					got = append(got, "polyline")
				case *s2.Polygon:
					got = append(got, "polygon")
				default:
					t.Fatalf("unexpected region %T", r)
				}
			}
			require.Equal(t, tt.types, got)
		})
	}

	t.Run("Empty record", func(t *testing.T) {
		_, err := Regions(mustParse(t, "GEOMETRYCOLLECTION EMPTY"))
		require.ErrorIs(t, err, errs.ErrEmptyGeography)
	})
}
