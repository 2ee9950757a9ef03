// Package geomconv converts geography records to and from go-geom geometries,
// and through go-geom to and from WKB.
//
// Only the XY layout is supported, mirroring the two-dimensional coordinate
// model of the records. X is the longitude and Y the latitude.
package geomconv

import (
	"encoding/binary"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkbcommon"

	"github.com/arloliu/geog/arena"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
)

// ToGeom returns the go-geom geometry of rec. The coordinates are copied.
//
// An empty record becomes an empty geometry of its kind; an empty record of
// unknown kind becomes an empty geometry collection.
func ToGeom(rec geography.Record) (geom.T, error) {
	if rec.IsEmpty() {
		return emptyGeom(rec.Kind())
	}

	shapes, err := rec.Shapes()
	if err != nil {
		return nil, err
	}

	if rec.Kind() != geography.KindGeometryCollection {
		return shapeToGeom(shapes[0])
	}

	gc := geom.NewGeometryCollection()
	for i, s := range shapes {
		g, err := shapeToGeom(s)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		if err := gc.Push(g); err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
	}

	return gc, nil
}

// MarshalWKB encodes rec as WKB in the given byte order, wkb.NDR or wkb.XDR.
// An empty point is written with NaN coordinates.
func MarshalWKB(rec geography.Record, byteOrder binary.ByteOrder) ([]byte, error) {
	g, err := ToGeom(rec)
	if err != nil {
		return nil, err
	}

	return wkb.Marshal(g, byteOrder, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
}

// UnmarshalWKB decodes WKB into a record whose coordinates live in a.
func UnmarshalWKB(a *arena.Arena, data []byte) (geography.Record, error) {
	g, err := wkb.Unmarshal(data, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
	if err != nil {
		return geography.NewEmpty(geography.KindUnknown), err
	}

	return FromGeom(a, g)
}

func emptyGeom(kind geography.Kind) (geom.T, error) {
	switch kind {
	case geography.KindPoint:
		return geom.NewPointEmpty(geom.XY), nil
	case geography.KindLineString:
		return geom.NewLineString(geom.XY), nil
	case geography.KindPolygon:
		return geom.NewPolygon(geom.XY), nil
	case geography.KindMultiPoint:
		return geom.NewMultiPoint(geom.XY), nil
	case geography.KindMultiLineString:
		return geom.NewMultiLineString(geom.XY), nil
	case geography.KindMultiPolygon:
		return geom.NewMultiPolygon(geom.XY), nil
	case geography.KindGeometryCollection, geography.KindUnknown:
		return geom.NewGeometryCollection(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, kind)
	}
}

func shapeToGeom(s geography.Shape) (geom.T, error) {
	switch s.Kind {
	case geography.KindPoint:
		return toPoint(s.Parts[0][0]), nil
	case geography.KindLineString:
		return toLineString(s.Parts[0][0]), nil
	case geography.KindPolygon:
		if len(s.Parts) == 0 {
			return geom.NewPolygon(geom.XY), nil
		}

		return toPolygon(s.Parts[0]), nil
	case geography.KindMultiPoint:
		mp := geom.NewMultiPoint(geom.XY)
		for _, part := range s.Parts {
			if err := mp.Push(toPoint(part[0])); err != nil {
				return nil, err
			}
		}

		return mp, nil
	case geography.KindMultiLineString:
		mls := geom.NewMultiLineString(geom.XY)
		for _, part := range s.Parts {
			if err := mls.Push(toLineString(part[0])); err != nil {
				return nil, err
			}
		}

		return mls, nil
	case geography.KindMultiPolygon:
		mp := geom.NewMultiPolygon(geom.XY)
		for _, part := range s.Parts {
			if err := mp.Push(toPolygon(part)); err != nil {
				return nil, err
			}
		}

		return mp, nil
	case geography.KindGeometryCollection, geography.KindUnknown:
		return nil, fmt.Errorf("%w: %s shape", errs.ErrUnsupportedKind, s.Kind)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedKind, s.Kind)
	}
}

func toPoint(r geography.Ring) *geom.Point {
	if r.Len() == 0 {
		return geom.NewPointEmpty(geom.XY)
	}

	return geom.NewPointFlat(geom.XY, []float64{r.Lngs[0], r.Lats[0]})
}

func toLineString(r geography.Ring) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, appendFlat(nil, r))
}

func toPolygon(rings []geography.Ring) *geom.Polygon {
	var flat []float64
	ends := make([]int, 0, len(rings))
	for _, r := range rings {
		flat = appendFlat(flat, r)
		ends = append(ends, len(flat))
	}

	return geom.NewPolygonFlat(geom.XY, flat, ends)
}

func appendFlat(dst []float64, r geography.Ring) []float64 {
	for i := range r.Len() {
		dst = append(dst, r.Lngs[i], r.Lats[i])
	}

	return dst
}
