package wkt

import (
	"fmt"
	"strconv"

	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
	"github.com/arloliu/geog/internal/pool"
)

// Write renders rec as WKT text.
//
// A record without coordinates renders as EMPTY. Other records render as
// KEYWORD(body) with items separated by ", ", e.g. POINT(1 2) or
// MULTIPOINT((1 2), (3 4)). Empty parts render as EMPTY, and empty collection
// members as KEYWORD EMPTY, so the output always parses back.
func Write(rec geography.Record) (string, error) {
	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	var err error
	bb.B, err = AppendWKT(bb.B, rec)
	if err != nil {
		return "", err
	}

	return bb.String(), nil
}

// AppendWKT appends the WKT text of rec to dst and returns the extended slice.
//
// On error the returned slice holds dst plus a partial rendering.
func AppendWKT(dst []byte, rec geography.Record) ([]byte, error) {
	if rec.IsEmpty() {
		return append(dst, emptyWord...), nil
	}

	w := writer{buf: dst, c: rec.Cursor()}
	if err := w.record(rec.Kind()); err != nil {
		return w.buf, err
	}

	if !w.c.Done() {
		return w.buf, fmt.Errorf("%w: trailing counts or coordinates", errs.ErrInvalidRecord)
	}

	return w.buf, nil
}

type writer struct {
	buf []byte
	c   *geography.Cursor
}

func (w *writer) record(kind geography.Kind) error {
	w.buf = append(w.buf, kind.String()...)

	switch kind {
	case geography.KindPoint, geography.KindLineString:
		return w.ring()
	case geography.KindPolygon:
		return w.rings(w.c.RemainingRings())
	case geography.KindMultiPoint, geography.KindMultiLineString:
		return w.list(w.c.RemainingGroups(), w.groupOfRings)
	case geography.KindMultiPolygon:
		return w.list(w.c.RemainingGroups(), w.polygon)
	case geography.KindGeometryCollection:
		return w.list(w.c.RemainingMembers(), w.member)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, kind)
	}
}

func (w *writer) member() error {
	kind, err := w.c.NextMemberKind()
	if err != nil {
		return err
	}

	w.buf = append(w.buf, kind.String()...)

	switch kind {
	case geography.KindPoint, geography.KindLineString:
		lngs, lats, err := w.c.NextRing()
		if err != nil {
			return err
		}
		if len(lngs) == 0 {
			w.buf = append(w.buf, " "+emptyWord...)
			return nil
		}
		w.coordinates(lngs, lats)

		return nil
	case geography.KindPolygon:
		return w.memberBody(w.c.NextGroup, w.rings)
	case geography.KindMultiPoint, geography.KindMultiLineString:
		return w.memberBody(w.c.NextGroup, func(n int) error {
			return w.list(n, w.ring)
		})
	case geography.KindMultiPolygon:
		return w.memberBody(w.c.NextPolygonCount, func(n int) error {
			return w.list(n, w.polygon)
		})
	case geography.KindGeometryCollection:
		return errs.ErrNestedCollection
	default:
		return fmt.Errorf("%w: member %s", errs.ErrUnsupportedKind, kind)
	}
}

// memberBody reads a member's count and renders " EMPTY" for zero, the body otherwise.
func (w *writer) memberBody(count func() (int, error), body func(int) error) error {
	n, err := count()
	if err != nil {
		return err
	}
	if n == 0 {
		w.buf = append(w.buf, " "+emptyWord...)
		return nil
	}

	return body(n)
}

// list renders "(item, item, ...)".
func (w *writer) list(n int, item func() error) error {
	w.buf = append(w.buf, '(')
	for i := range n {
		if i > 0 {
			w.buf = append(w.buf, ", "...)
		}
		if err := item(); err != nil {
			return err
		}
	}
	w.buf = append(w.buf, ')')

	return nil
}

// rings renders n rings as "(ring, ring)".
func (w *writer) rings(n int) error {
	return w.list(n, w.ring)
}

// polygon renders the next group of rings, or EMPTY when it has none.
func (w *writer) polygon() error {
	n, err := w.c.NextGroup()
	if err != nil {
		return err
	}
	if n == 0 {
		w.buf = append(w.buf, emptyWord...)
		return nil
	}

	return w.rings(n)
}

// groupOfRings renders the rings of the next group without extra nesting.
func (w *writer) groupOfRings() error {
	n, err := w.c.NextGroup()
	if err != nil {
		return err
	}

	for i := range n {
		if i > 0 {
			w.buf = append(w.buf, ", "...)
		}
		if err := w.ring(); err != nil {
			return err
		}
	}

	return nil
}

// ring renders the next ring as "(x y, x y)" or EMPTY.
func (w *writer) ring() error {
	lngs, lats, err := w.c.NextRing()
	if err != nil {
		return err
	}
	if len(lngs) == 0 {
		w.buf = append(w.buf, emptyWord...)
		return nil
	}
	w.coordinates(lngs, lats)

	return nil
}

func (w *writer) coordinates(lngs, lats []float64) {
	w.buf = append(w.buf, '(')
	for i := range lngs {
		if i > 0 {
			w.buf = append(w.buf, ", "...)
		}
		w.buf = strconv.AppendFloat(w.buf, lngs[i], 'g', -1, 64)
		w.buf = append(w.buf, ' ')
		w.buf = strconv.AppendFloat(w.buf, lats[i], 'g', -1, 64)
	}
	w.buf = append(w.buf, ')')
}
