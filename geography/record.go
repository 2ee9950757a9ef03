// Package geography defines the flat nested-length encoding of a geography value.
//
// A Record keeps every coordinate of a geometry in two parallel slices
// (longitudes and latitudes) and describes the nesting with up to four count
// sequences, consumed in encounter order:
//
//   - RingLengths: points per line or ring.
//   - GroupLengths: rings per group. At top level this is rings per part of a
//     multi-part kind (always 1 for MultiPoint and MultiLineString); Polygon
//     keeps its single group implicit. Inside a collection it holds one entry
//     per Polygon, MultiPoint or MultiLineString member, plus one entry per
//     polygon of a MultiPolygon member.
//   - CollectionPolygonCounts: polygons per MultiPolygon collection member.
//   - MemberKinds: kind of every collection member.
//
// For example, MULTIPOLYGON(((0 0, 4 0, 4 4, 0 0)), ((5 5, 6 5, 6 6, 5 5)))
// is stored as RingLengths [4 4], GroupLengths [1 1] and eight coordinates.
//
// Coordinates are either borrowed from an arena.Arena, which outlives the
// record, or owned by the record in a single contiguous allocation. Ownership
// changes only through the named operations BorrowView, ToOwned, Assign and
// Release.
package geography

import (
	"fmt"
	"slices"

	"github.com/arloliu/geog/errs"
)

// Ownership tells whether a Record owns its coordinate storage.
type Ownership uint8

const (
	// Borrowed records alias storage owned by someone else, usually an arena.
	Borrowed Ownership = iota
	// Owned records hold the only reference to one allocation of 2n floats.
	Owned
)

func (o Ownership) String() string {
	if o == Owned {
		return "Owned"
	}

	return "Borrowed"
}

// Layout holds the count sequences of a Record.
type Layout struct {
	RingLengths             []int
	GroupLengths            []int
	CollectionPolygonCounts []int
	MemberKinds             []Kind
}

// Clone returns a deep copy of the count sequences.
func (l Layout) Clone() Layout {
	return Layout{
		RingLengths:             slices.Clone(l.RingLengths),
		GroupLengths:            slices.Clone(l.GroupLengths),
		CollectionPolygonCounts: slices.Clone(l.CollectionPolygonCounts),
		MemberKinds:             slices.Clone(l.MemberKinds),
	}
}

func (l Layout) equal(o Layout) bool {
	return slices.Equal(l.RingLengths, o.RingLengths) &&
		slices.Equal(l.GroupLengths, o.GroupLengths) &&
		slices.Equal(l.CollectionPolygonCounts, o.CollectionPolygonCounts) &&
		slices.Equal(l.MemberKinds, o.MemberKinds)
}

// Record is one geography value in flat nested-length form.
//
// The zero value is an empty record of kind Point; use NewEmpty to pick the kind.
type Record struct {
	kind      Kind
	lngs      []float64
	lats      []float64
	layout    Layout
	ownership Ownership
}

// NewEmpty returns an empty record of the given kind. It has no coordinate
// reference and no counts.
func NewEmpty(kind Kind) Record {
	return Record{kind: kind}
}

// NewBorrowed returns a record aliasing lngs and lats without copying them.
//
// The caller guarantees that the storage outlives the record, which holds for
// views returned by an arena.Arena. When lngs is empty the result is an empty
// record of the given kind.
func NewBorrowed(kind Kind, lngs, lats []float64, layout Layout) Record {
	if len(lngs) == 0 {
		return NewEmpty(kind)
	}

	return Record{kind: kind, lngs: lngs, lats: lats, layout: layout}
}

// NewOwned returns a record holding a private copy of lngs, lats and layout.
func NewOwned(kind Kind, lngs, lats []float64, layout Layout) Record {
	return NewBorrowed(kind, lngs, lats, layout).ToOwned()
}

// Kind returns the geometry kind.
func (r Record) Kind() Kind { return r.kind }

// Ownership returns whether the record owns its coordinates.
func (r Record) Ownership() Ownership { return r.ownership }

// Lngs returns the longitude view. It is nil for an empty record.
func (r Record) Lngs() []float64 { return r.lngs }

// Lats returns the latitude view. It is nil for an empty record.
func (r Record) Lats() []float64 { return r.lats }

// Layout returns the count sequences. The slices are shared with the record.
func (r Record) Layout() Layout { return r.layout }

// RingLengths returns the number of points of every line or ring.
func (r Record) RingLengths() []int { return r.layout.RingLengths }

// GroupLengths returns the number of rings of every group.
func (r Record) GroupLengths() []int { return r.layout.GroupLengths }

// CollectionPolygonCounts returns the polygon count of every MultiPolygon collection member.
func (r Record) CollectionPolygonCounts() []int { return r.layout.CollectionPolygonCounts }

// MemberKinds returns the kind of every collection member.
func (r Record) MemberKinds() []Kind { return r.layout.MemberKinds }

// IsEmpty reports whether the record has no coordinate reference.
func (r Record) IsEmpty() bool { return r.lngs == nil }

// NumPoints returns the number of coordinate pairs.
func (r Record) NumPoints() int { return len(r.lngs) }

// BorrowView returns a record aliasing the same coordinates. The view never
// owns storage and must not outlive r's storage.
func (r Record) BorrowView() Record {
	r.ownership = Borrowed
	return r
}

// ToOwned returns a deep copy of r that owns its coordinates.
//
// Both coordinate slices are copied into a single allocation of 2n floats,
// longitudes first. Nothing is allocated for an empty record, which stays
// borrowed because there is nothing to own.
func (r Record) ToOwned() Record {
	out := Record{kind: r.kind, layout: r.layout.Clone()}
	n := len(r.lngs)
	if n == 0 {
		out.layout = Layout{}
		return out
	}

	buf := make([]float64, 2*n)
	copy(buf[:n], r.lngs)
	copy(buf[n:], r.lats)

	out.lngs = buf[:n:n]
	out.lats = buf[n : 2*n : 2*n]
	out.ownership = Owned

	return out
}

// Assign replaces r with src following copy-assignment rules.
//
// When either side owns storage and src has coordinates, r receives a deep
// copy and owns it. When src has no coordinates r becomes an empty borrowed
// record. Otherwise r aliases src's coordinates.
func (r *Record) Assign(src Record) {
	switch {
	case src.IsEmpty():
		r.Release()
		*r = Record{kind: src.kind}
	case r.ownership == Owned || src.ownership == Owned:
		*r = src.ToOwned()
	default:
		*r = src.BorrowView()
	}
}

// Release drops the record's coordinate reference and counts. Owned storage is
// released exactly once; calling Release again, or on a borrowed record, only
// clears the references. The kind is kept.
func (r *Record) Release() {
	r.lngs = nil
	r.lats = nil
	r.layout = Layout{}
	r.ownership = Borrowed
}

// Equal reports whether r and o hold the same geometry: same kind, same count
// sequences and elementwise equal coordinates. Ownership is ignored.
//
// Empty records compare equal to each other whatever their kind, since they
// all serialize to the same bare EMPTY.
func (r Record) Equal(o Record) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return r.IsEmpty() && o.IsEmpty()
	}

	return r.kind == o.kind &&
		r.layout.equal(o.layout) &&
		slices.Equal(r.lngs, o.lngs) &&
		slices.Equal(r.lats, o.lats)
}

// Equal reports whether a and b hold the same geometry. See Record.Equal.
func Equal(a, b Record) bool {
	return a.Equal(b)
}

// Compare always fails: geography values have no ordering.
func (r Record) Compare(Record) (int, error) {
	return 0, errs.ErrUnsupportedComparison
}

// Validate checks that the count sequences and coordinates of r are consistent.
//
// It returns nil or an error wrapping errs.ErrInvalidRecord. A collection
// member that is itself a collection yields errs.ErrNestedCollection, and an
// unknown member kind errs.ErrUnsupportedKind.
func (r Record) Validate() error {
	if !r.kind.IsValid() {
		return fmt.Errorf("%w: invalid kind %d", errs.ErrInvalidRecord, r.kind)
	}

	if len(r.lngs) != len(r.lats) {
		return fmt.Errorf("%w: %d longitudes but %d latitudes", errs.ErrInvalidRecord, len(r.lngs), len(r.lats))
	}

	if r.IsEmpty() {
		return nil
	}

	if r.kind == KindUnknown {
		return fmt.Errorf("%w: unknown kind with coordinates", errs.ErrInvalidRecord)
	}

	total := 0
	for _, n := range r.layout.RingLengths {
		if n < 0 {
			return fmt.Errorf("%w: negative ring length", errs.ErrInvalidRecord)
		}
		total += n
	}
	if total != len(r.lngs) {
		return fmt.Errorf("%w: ring lengths sum to %d, have %d points", errs.ErrInvalidRecord, total, len(r.lngs))
	}

	if r.kind != KindGeometryCollection &&
		(len(r.layout.MemberKinds) != 0 || len(r.layout.CollectionPolygonCounts) != 0) {
		return fmt.Errorf("%w: collection counts on %s", errs.ErrInvalidRecord, r.kind)
	}

	shapes, err := r.Shapes()
	if err != nil {
		return err
	}

	for _, s := range shapes {
		if err := s.validate(); err != nil {
			return err
		}
	}

	return nil
}
