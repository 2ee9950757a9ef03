package geography

import (
	"github.com/arloliu/geog/arena"
)

// Builder writes one record into an arena while its structure is being read.
//
// Coordinates go straight into an arena run, so the finished record borrows a
// single contiguous range. A Builder must be ended with Finish or Discard, and
// no other append may happen on the arena meanwhile.
type Builder struct {
	kind      Kind
	run       *arena.Run
	layout    Layout
	ringStart int
}

// NewBuilder starts a record of the given kind in a.
func NewBuilder(a *arena.Arena, kind Kind) *Builder {
	return &Builder{kind: kind, run: a.StartRun()}
}

// Kind returns the kind the record will have.
func (b *Builder) Kind() Kind { return b.kind }

// SetKind changes the kind the record will have.
func (b *Builder) SetKind(kind Kind) { b.kind = kind }

// AddPoint appends a coordinate to the current ring.
func (b *Builder) AddPoint(lng, lat float64) {
	b.run.Append(lng, lat)
}

// EndRing closes the current ring, recording the points added since the
// previous EndRing. A ring without points records a zero length.
func (b *Builder) EndRing() {
	n := b.run.Len()
	b.layout.RingLengths = append(b.layout.RingLengths, n-b.ringStart)
	b.ringStart = n
}

// AddEmptyRing records a zero-length ring.
func (b *Builder) AddEmptyRing() {
	b.layout.RingLengths = append(b.layout.RingLengths, 0)
}

// AddGroup records a group of n rings.
func (b *Builder) AddGroup(n int) {
	b.layout.GroupLengths = append(b.layout.GroupLengths, n)
}

// AddPolygonCount records the polygon count of a MultiPolygon collection member.
func (b *Builder) AddPolygonCount(n int) {
	b.layout.CollectionPolygonCounts = append(b.layout.CollectionPolygonCounts, n)
}

// AddMemberKind records the kind of a collection member.
func (b *Builder) AddMemberKind(kind Kind) {
	b.layout.MemberKinds = append(b.layout.MemberKinds, kind)
}

// NumRings returns the number of ring lengths recorded so far.
func (b *Builder) NumRings() int {
	return len(b.layout.RingLengths)
}

// NumPoints returns the number of coordinates added so far.
func (b *Builder) NumPoints() int {
	return b.run.Len()
}

// Finish closes the run and returns a record borrowing its coordinates. A
// record without coordinates is returned empty, with no counts.
func (b *Builder) Finish() Record {
	lngs, lats := b.run.Finish()

	return NewBorrowed(b.kind, lngs, lats, b.layout)
}

// Discard abandons the record and rolls the arena back.
func (b *Builder) Discard() {
	b.run.Discard()
}
