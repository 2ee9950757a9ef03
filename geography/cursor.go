package geography

import (
	"fmt"

	"github.com/arloliu/geog/errs"
)

// Cursor walks the count sequences of a Record in encounter order.
//
// Each sequence has its own position, so consumers that read coordinates,
// rings, groups, polygon counts and member kinds in lockstep can share one
// cursor. Every advance is bounds checked and fails with errs.ErrInvalidRecord
// instead of reading past the end.
type Cursor struct {
	rec    Record
	coord  int
	ring   int
	group  int
	poly   int
	member int
}

// Cursor returns a cursor positioned at the start of every sequence.
func (r Record) Cursor() *Cursor {
	return &Cursor{rec: r}
}

// NextRing consumes the next ring length and returns views of its coordinates.
// A zero-length ring returns empty views.
func (c *Cursor) NextRing() ([]float64, []float64, error) {
	rings := c.rec.layout.RingLengths
	if c.ring >= len(rings) {
		return nil, nil, fmt.Errorf("%w: ring lengths exhausted after %d entries", errs.ErrInvalidRecord, len(rings))
	}

	n := rings[c.ring]
	end := c.coord + n
	if n < 0 || end > len(c.rec.lngs) || end > len(c.rec.lats) {
		return nil, nil, fmt.Errorf("%w: ring %d overruns coordinates", errs.ErrInvalidRecord, c.ring)
	}

	lngs, lats := c.rec.lngs[c.coord:end:end], c.rec.lats[c.coord:end:end]
	c.ring++
	c.coord = end

	return lngs, lats, nil
}

// NextGroup consumes the next group length.
func (c *Cursor) NextGroup() (int, error) {
	groups := c.rec.layout.GroupLengths
	if c.group >= len(groups) {
		return 0, fmt.Errorf("%w: group lengths exhausted after %d entries", errs.ErrInvalidRecord, len(groups))
	}

	n := groups[c.group]
	if n < 0 {
		return 0, fmt.Errorf("%w: negative group length", errs.ErrInvalidRecord)
	}
	c.group++

	return n, nil
}

// NextPolygonCount consumes the polygon count of the next MultiPolygon member.
func (c *Cursor) NextPolygonCount() (int, error) {
	counts := c.rec.layout.CollectionPolygonCounts
	if c.poly >= len(counts) {
		return 0, fmt.Errorf("%w: collection polygon counts exhausted after %d entries", errs.ErrInvalidRecord, len(counts))
	}

	n := counts[c.poly]
	if n < 0 {
		return 0, fmt.Errorf("%w: negative polygon count", errs.ErrInvalidRecord)
	}
	c.poly++

	return n, nil
}

// NextMemberKind consumes the kind of the next collection member.
func (c *Cursor) NextMemberKind() (Kind, error) {
	kinds := c.rec.layout.MemberKinds
	if c.member >= len(kinds) {
		return KindUnknown, fmt.Errorf("%w: member kinds exhausted after %d entries", errs.ErrInvalidRecord, len(kinds))
	}

	k := kinds[c.member]
	c.member++

	return k, nil
}

// RemainingRings returns the number of ring lengths not consumed yet.
func (c *Cursor) RemainingRings() int {
	return len(c.rec.layout.RingLengths) - c.ring
}

// RemainingGroups returns the number of group lengths not consumed yet.
func (c *Cursor) RemainingGroups() int {
	return len(c.rec.layout.GroupLengths) - c.group
}

// RemainingMembers returns the number of member kinds not consumed yet.
func (c *Cursor) RemainingMembers() int {
	return len(c.rec.layout.MemberKinds) - c.member
}

// Done reports whether every sequence and every coordinate has been consumed.
func (c *Cursor) Done() bool {
	l := c.rec.layout

	return c.coord == len(c.rec.lngs) &&
		c.ring == len(l.RingLengths) &&
		c.group == len(l.GroupLengths) &&
		c.poly == len(l.CollectionPolygonCounts) &&
		c.member == len(l.MemberKinds)
}
