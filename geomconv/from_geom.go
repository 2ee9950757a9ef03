package geomconv

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/arloliu/geog/arena"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
)

// FromGeom builds a record from g, writing its coordinates into a.
//
// g must use the XY layout; an empty geometry without a layout is accepted.
// On error nothing is left in a and an empty record of unknown kind is returned.
func FromGeom(a *arena.Arena, g geom.T) (geography.Record, error) {
	fail := geography.NewEmpty(geography.KindUnknown)

	if err := checkLayout(g); err != nil {
		return fail, err
	}

	kind, err := kindOf(g)
	if err != nil {
		return fail, err
	}
	if g.Empty() {
		return geography.NewEmpty(kind), nil
	}

	b := geography.NewBuilder(a, kind)
	if err := build(b, g, false); err != nil {
		b.Discard()
		return fail, err
	}

	return b.Finish(), nil
}

func checkLayout(g geom.T) error {
	l := g.Layout()
	if l == geom.XY || (l == geom.NoLayout && g.Empty()) {
		return nil
	}

	return fmt.Errorf("%w: %s layout", errs.ErrUnsupportedDimension, l)
}

func kindOf(g geom.T) (geography.Kind, error) {
	switch g.(type) {
	case *geom.Point:
		return geography.KindPoint, nil
	case *geom.LineString:
		return geography.KindLineString, nil
	case *geom.Polygon:
		return geography.KindPolygon, nil
	case *geom.MultiPoint:
		return geography.KindMultiPoint, nil
	case *geom.MultiLineString:
		return geography.KindMultiLineString, nil
	case *geom.MultiPolygon:
		return geography.KindMultiPolygon, nil
	case *geom.GeometryCollection:
		return geography.KindGeometryCollection, nil
	default:
		return geography.KindUnknown, fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometryType, g)
	}
}

// build writes g into b using the top-level layout, or the member layout of a
// collection when member is true.
func build(b *geography.Builder, g geom.T, member bool) error {
	switch g := g.(type) {
	case *geom.Point:
		if g.Empty() {
			b.AddEmptyRing()
		} else {
			addRing(b, g.FlatCoords())
		}
	case *geom.LineString:
		addRing(b, g.FlatCoords())
	case *geom.Polygon:
		n := addPolygon(b, g)
		if member {
			b.AddGroup(n)
		}
	case *geom.MultiPoint:
		for i := range g.NumPoints() {
			p := g.Point(i)
			if p.Empty() {
				b.AddEmptyRing()
			} else {
				addRing(b, p.FlatCoords())
			}
			if !member {
				b.AddGroup(1)
			}
		}
		if member {
			b.AddGroup(g.NumPoints())
		}
	case *geom.MultiLineString:
		for i := range g.NumLineStrings() {
			addRing(b, g.LineString(i).FlatCoords())
			if !member {
				b.AddGroup(1)
			}
		}
		if member {
			b.AddGroup(g.NumLineStrings())
		}
	case *geom.MultiPolygon:
		if member {
			b.AddPolygonCount(g.NumPolygons())
		}
		for i := range g.NumPolygons() {
			b.AddGroup(addPolygon(b, g.Polygon(i)))
		}
	case *geom.GeometryCollection:
		if member {
			return errs.ErrNestedCollection
		}
		for i, m := range g.Geoms() {
			if err := checkLayout(m); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
			kind, err := kindOf(m)
			if err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
			if kind == geography.KindGeometryCollection {
				return fmt.Errorf("member %d: %w", i, errs.ErrNestedCollection)
			}

			b.AddMemberKind(kind)
			if err := build(b, m, true); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometryType, g)
	}

	return nil
}

func addRing(b *geography.Builder, flat []float64) {
	if len(flat) == 0 {
		b.AddEmptyRing()
		return
	}

	for i := 0; i+1 < len(flat); i += 2 {
		b.AddPoint(flat[i], flat[i+1])
	}
	b.EndRing()
}

func addPolygon(b *geography.Builder, p *geom.Polygon) int {
	n := p.NumLinearRings()
	for i := range n {
		addRing(b, p.LinearRing(i).FlatCoords())
	}

	return n
}
