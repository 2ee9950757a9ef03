package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
	"github.com/arloliu/geog/section"
)

// appendRowLayout appends the layout entry of one row.
func appendRowLayout(dst []byte, rec geography.Record, null bool) []byte {
	if null {
		return append(dst, section.RowTagNull)
	}

	dst = append(dst, byte(rec.Kind()))
	dst = appendCounts(dst, rec.RingLengths())
	dst = appendCounts(dst, rec.GroupLengths())
	dst = appendCounts(dst, rec.CollectionPolygonCounts())

	kinds := rec.MemberKinds()
	dst = binary.AppendUvarint(dst, uint64(len(kinds)))
	for _, k := range kinds {
		dst = append(dst, byte(k))
	}

	return dst
}

func appendCounts(dst []byte, counts []int) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(counts)))
	for _, n := range counts {
		dst = binary.AppendUvarint(dst, uint64(n)) //nolint: gosec
	}

	return dst
}

// layoutReader reads row layout entries back from a decompressed layout payload.
type layoutReader struct {
	buf []byte
	pos int
}

// row reads the next entry. null is true for a null row; otherwise kind and
// layout describe the record.
func (r *layoutReader) row() (kind geography.Kind, layout geography.Layout, null bool, err error) {
	tag, err := r.byte()
	if err != nil {
		return 0, layout, false, err
	}
	if tag == section.RowTagNull {
		return 0, layout, true, nil
	}

	kind = geography.Kind(tag)
	if !kind.IsValid() {
		return 0, layout, false, fmt.Errorf("%w: invalid kind tag %#x at offset %d", errs.ErrInvalidPayload, tag, r.pos-1)
	}

	if layout.RingLengths, err = r.counts(); err != nil {
		return 0, layout, false, err
	}
	if layout.GroupLengths, err = r.counts(); err != nil {
		return 0, layout, false, err
	}
	if layout.CollectionPolygonCounts, err = r.counts(); err != nil {
		return 0, layout, false, err
	}

	n, err := r.length()
	if err != nil {
		return 0, layout, false, err
	}
	if n > 0 {
		layout.MemberKinds = make([]geography.Kind, n)
		for i := range layout.MemberKinds {
			b, err := r.byte()
			if err != nil {
				return 0, layout, false, err
			}
			layout.MemberKinds[i] = geography.Kind(b)
		}
	}

	return kind, layout, false, nil
}

// remaining returns the number of unread bytes.
func (r *layoutReader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *layoutReader) byte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, fmt.Errorf("%w: layout payload truncated at offset %d", errs.ErrInvalidPayload, r.pos)
	}
	b := r.buf[r.pos]
	r.pos++

	return b, nil
}

func (r *layoutReader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: malformed uvarint at offset %d", errs.ErrInvalidPayload, r.pos)
	}
	r.pos += n

	return v, nil
}

// length reads a sequence length. Every element takes at least one byte, so a
// length beyond the unread bytes is corrupt.
func (r *layoutReader) length() (int, error) {
	v, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if v > uint64(r.remaining()) {
		return 0, fmt.Errorf("%w: sequence of %d entries exceeds layout payload", errs.ErrInvalidPayload, v)
	}

	return int(v), nil
}

func (r *layoutReader) counts() ([]int, error) {
	n, err := r.length()
	if err != nil || n == 0 {
		return nil, err
	}

	counts := make([]int, n)
	for i := range counts {
		v, err := r.uvarint()
		if err != nil {
			return nil, err
		}
		if v > section.MaxPointCount {
			return nil, fmt.Errorf("%w: count %d out of range", errs.ErrInvalidPayload, v)
		}
		counts[i] = int(v)
	}

	return counts, nil
}
