// Package s2view builds golang/geo S2 objects from geography records.
//
// The views are pure functions of a record's public accessors and copy the
// coordinates, so the S2 objects stay valid after the record's owner is gone.
// Longitudes and latitudes are interpreted as degrees.
//
// Polygon rings become S2 loops: a closing vertex equal to the first one is
// dropped, and every loop is normalized to enclose at most half the sphere,
// so ring orientation in the source text does not matter.
package s2view

import (
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
)

// Point returns the S2 point of a non-empty Point record.
func Point(rec geography.Record) (s2.Point, error) {
	if err := expect(rec, geography.KindPoint); err != nil {
		return s2.Point{}, err
	}

	return point(rec.Lngs()[0], rec.Lats()[0]), nil
}

// Polyline returns the S2 polyline of a non-empty LineString record.
func Polyline(rec geography.Record) (*s2.Polyline, error) {
	if err := expect(rec, geography.KindLineString); err != nil {
		return nil, err
	}

	return polyline(geography.Ring{Lngs: rec.Lngs(), Lats: rec.Lats()}), nil
}

// Polygon returns the S2 polygon of a non-empty Polygon record.
func Polygon(rec geography.Record) (*s2.Polygon, error) {
	if err := expect(rec, geography.KindPolygon); err != nil {
		return nil, err
	}

	shapes, err := rec.Shapes()
	if err != nil {
		return nil, err
	}

	return polygon(shapes[0].Parts[0])
}

// MultiPolygon returns one S2 polygon per non-empty polygon of a MultiPolygon record.
func MultiPolygon(rec geography.Record) ([]*s2.Polygon, error) {
	if err := expect(rec, geography.KindMultiPolygon); err != nil {
		return nil, err
	}

	shapes, err := rec.Shapes()
	if err != nil {
		return nil, err
	}

	polygons := make([]*s2.Polygon, 0, len(shapes[0].Parts))
	for _, rings := range shapes[0].Parts {
		if len(rings) == 0 {
			continue
		}
		p, err := polygon(rings)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, p)
	}

	return polygons, nil
}

// Regions returns the S2 regions of a non-empty record of any kind. Multi
// kinds contribute one region per part and collections are expanded member by
// member. Empty parts and members are omitted.
//
// Points are s2.Point, lines *s2.Polyline and polygons *s2.Polygon.
func Regions(rec geography.Record) ([]s2.Region, error) {
	if rec.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", errs.ErrEmptyGeography, rec.Kind())
	}

	shapes, err := rec.Shapes()
	if err != nil {
		return nil, err
	}

	var regions []s2.Region
	for _, shape := range shapes {
		for _, rings := range shape.Parts {
			if len(rings) == 0 || rings[0].Len() == 0 {
				continue
			}

			switch shape.Kind {
			case geography.KindPoint, geography.KindMultiPoint:
				regions = append(regions, point(rings[0].Lngs[0], rings[0].Lats[0]))
			case geography.KindLineString, geography.KindMultiLineString:
				regions = append(regions, polyline(rings[0]))
			case geography.KindPolygon, geography.KindMultiPolygon:
				p, err := polygon(rings)
				if err != nil {
					return nil, err
				}
				regions = append(regions, p)
			case geography.KindGeometryCollection, geography.KindUnknown:
				return nil, fmt.Errorf("%w: %s shape", errs.ErrUnsupportedKind, shape.Kind)
			}
		}
	}

	return regions, nil
}

func expect(rec geography.Record, kind geography.Kind) error {
	if rec.Kind() != kind {
		return fmt.Errorf("%w: want %s, got %s", errs.ErrUnsupportedKind, kind, rec.Kind())
	}
	if rec.IsEmpty() {
		return fmt.Errorf("%w: %s", errs.ErrEmptyGeography, kind)
	}

	return nil
}

func point(lng, lat float64) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))
}

func polyline(ring geography.Ring) *s2.Polyline {
	latlngs := make([]s2.LatLng, ring.Len())
	for i := range latlngs {
		latlngs[i] = s2.LatLngFromDegrees(ring.Lats[i], ring.Lngs[i])
	}

	return s2.PolylineFromLatLngs(latlngs)
}

func polygon(rings []geography.Ring) (*s2.Polygon, error) {
	loops := make([]*s2.Loop, 0, len(rings))
	for i, ring := range rings {
		l, err := loop(ring)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		loops = append(loops, l)
	}

	return s2.PolygonFromLoops(loops), nil
}

// loop converts a ring into a normalized S2 loop, dropping the closing vertex.
func loop(ring geography.Ring) (*s2.Loop, error) {
	n := ring.Len()
	if n > 1 && ring.Lngs[0] == ring.Lngs[n-1] && ring.Lats[0] == ring.Lats[n-1] {
		n--
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: a loop needs 3 distinct vertices, got %d", errs.ErrInvalidRecord, n)
	}

	points := make([]s2.Point, n)
	for i := range points {
		points[i] = point(ring.Lngs[i], ring.Lats[i])
	}

	l := s2.LoopFromPoints(points)
	l.Normalize()

	return l, nil
}
