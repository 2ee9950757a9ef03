package geography

import (
	"fmt"

	"github.com/arloliu/geog/errs"
)

// Ring is one line or ring of a Shape, as views into the record coordinates.
type Ring struct {
	Lngs []float64
	Lats []float64
}

// Len returns the number of points in the ring.
func (r Ring) Len() int {
	return len(r.Lngs)
}

// Shape is one non-collection geometry decoded from a Record.
//
// Parts holds one entry per part: a single part for Point, LineString and
// Polygon, one per point for MultiPoint, one per line for MultiLineString and
// one per polygon for MultiPolygon. Points and lines have exactly one ring per
// part; a part with no rings is an empty polygon.
type Shape struct {
	Kind  Kind
	Parts [][]Ring
}

// NumPoints returns the number of points across all parts.
func (s Shape) NumPoints() int {
	n := 0
	for _, part := range s.Parts {
		for _, ring := range part {
			n += ring.Len()
		}
	}

	return n
}

// IsEmpty reports whether the shape has no points.
func (s Shape) IsEmpty() bool {
	return s.NumPoints() == 0
}

func (s Shape) validate() error {
	switch s.Kind {
	case KindPoint, KindMultiPoint:
		for _, part := range s.Parts {
			if len(part) != 1 || part[0].Len() > 1 {
				return fmt.Errorf("%w: malformed point in %s", errs.ErrInvalidRecord, s.Kind)
			}
		}
	case KindLineString, KindMultiLineString:
		for _, part := range s.Parts {
			if len(part) != 1 {
				return fmt.Errorf("%w: malformed line in %s", errs.ErrInvalidRecord, s.Kind)
			}
		}
	case KindPolygon, KindMultiPolygon:
	case KindGeometryCollection, KindUnknown:
		return fmt.Errorf("%w: %s is not a shape", errs.ErrInvalidRecord, s.Kind)
	default:
		return fmt.Errorf("%w: invalid kind %d", errs.ErrInvalidRecord, s.Kind)
	}

	if (s.Kind == KindPoint || s.Kind == KindLineString || s.Kind == KindPolygon) && len(s.Parts) != 1 {
		return fmt.Errorf("%w: %s must have exactly one part", errs.ErrInvalidRecord, s.Kind)
	}

	return nil
}

// Shapes decodes the record into its shapes: one for a non-collection record,
// one per member for a GeometryCollection and none for an empty record.
//
// The rings alias the record coordinates. Decoding fails with an error wrapping
// errs.ErrInvalidRecord when the count sequences are inconsistent or not fully
// consumed, and with errs.ErrNestedCollection for a nested collection member.
func (r Record) Shapes() ([]Shape, error) {
	if r.IsEmpty() {
		return nil, nil
	}

	c := r.Cursor()

	var shapes []Shape
	if r.kind == KindGeometryCollection {
		shapes = make([]Shape, 0, len(r.layout.MemberKinds))
		for c.RemainingMembers() > 0 {
			kind, err := c.NextMemberKind()
			if err != nil {
				return nil, err
			}

			s, err := c.readMember(kind)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, s)
		}
	} else {
		s, err := c.readTopLevel(r.kind)
		if err != nil {
			return nil, err
		}
		shapes = []Shape{s}
	}

	if !c.Done() {
		return nil, fmt.Errorf("%w: trailing counts or coordinates", errs.ErrInvalidRecord)
	}

	return shapes, nil
}

func (c *Cursor) readTopLevel(kind Kind) (Shape, error) {
	s := Shape{Kind: kind}

	switch kind {
	case KindPoint, KindLineString:
		ring, err := c.readRings(1)
		if err != nil {
			return s, err
		}
		s.Parts = [][]Ring{ring}
	case KindPolygon:
		rings, err := c.readRings(c.RemainingRings())
		if err != nil {
			return s, err
		}
		s.Parts = [][]Ring{rings}
	case KindMultiPoint, KindMultiLineString, KindMultiPolygon:
		s.Parts = make([][]Ring, 0, c.RemainingGroups())
		for c.RemainingGroups() > 0 {
			part, err := c.readGroup()
			if err != nil {
				return s, err
			}
			s.Parts = append(s.Parts, part)
		}
	case KindGeometryCollection, KindUnknown:
		return s, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, kind)
	default:
		return s, fmt.Errorf("%w: %d", errs.ErrUnsupportedKind, kind)
	}

	return s, nil
}

func (c *Cursor) readMember(kind Kind) (Shape, error) {
	s := Shape{Kind: kind}

	switch kind {
	case KindPoint, KindLineString:
		ring, err := c.readRings(1)
		if err != nil {
			return s, err
		}
		s.Parts = [][]Ring{ring}
	case KindPolygon:
		rings, err := c.readGroup()
		if err != nil {
			return s, err
		}
		s.Parts = [][]Ring{rings}
	case KindMultiPoint, KindMultiLineString:
		n, err := c.NextGroup()
		if err != nil {
			return s, err
		}
		s.Parts = make([][]Ring, 0, n)
		for range n {
			ring, err := c.readRings(1)
			if err != nil {
				return s, err
			}
			s.Parts = append(s.Parts, ring)
		}
	case KindMultiPolygon:
		n, err := c.NextPolygonCount()
		if err != nil {
			return s, err
		}
		s.Parts = make([][]Ring, 0, n)
		for range n {
			rings, err := c.readGroup()
			if err != nil {
				return s, err
			}
			s.Parts = append(s.Parts, rings)
		}
	case KindGeometryCollection:
		return s, errs.ErrNestedCollection
	case KindUnknown:
		return s, fmt.Errorf("%w: %s member", errs.ErrUnsupportedKind, kind)
	default:
		return s, fmt.Errorf("%w: member kind %d", errs.ErrUnsupportedKind, kind)
	}

	return s, nil
}

// readGroup consumes one group length and that many rings.
func (c *Cursor) readGroup() ([]Ring, error) {
	n, err := c.NextGroup()
	if err != nil {
		return nil, err
	}

	return c.readRings(n)
}

func (c *Cursor) readRings(n int) ([]Ring, error) {
	rings := make([]Ring, 0, n)
	for range n {
		lngs, lats, err := c.NextRing()
		if err != nil {
			return nil, err
		}
		rings = append(rings, Ring{Lngs: lngs, Lats: lats})
	}

	return rings, nil
}
