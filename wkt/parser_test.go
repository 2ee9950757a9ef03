package wkt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geog/arena"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		kind   geography.Kind
		lngs   []float64
		lats   []float64
		layout geography.Layout
	}{
		{
			name:   "point",
			text:   "POINT (1 2)",
			kind:   geography.KindPoint,
			lngs:   []float64{1},
			lats:   []float64{2},
			layout: geography.Layout{RingLengths: []int{1}},
		},
		{
			name:   "linestring",
			text:   "LINESTRING (30 10, 10 30, 40 40)",
			kind:   geography.KindLineString,
			lngs:   []float64{30, 10, 40},
			lats:   []float64{10, 30, 40},
			layout: geography.Layout{RingLengths: []int{3}},
		},
		{
			name:   "polygon",
			text:   "POLYGON ((30 10, 40 40, 20 40, 10 20, 30 10))",
			kind:   geography.KindPolygon,
			lngs:   []float64{30, 40, 20, 10, 30},
			lats:   []float64{10, 40, 40, 20, 10},
			layout: geography.Layout{RingLengths: []int{5}},
		},
		{
			name:   "polygon with hole and empty ring",
			text:   "polygon((0 0, 4 0, 4 4, 0 0), (1 1, 2 1, 1 1), EMPTY)",
			kind:   geography.KindPolygon,
			lngs:   []float64{0, 4, 4, 0, 1, 2, 1},
			lats:   []float64{0, 0, 4, 0, 1, 1, 1},
			layout: geography.Layout{RingLengths: []int{4, 3, 0}},
		},
		{
			name:   "multipoint ungrouped",
			text:   "MULTIPOINT (10 40, 40 30)",
			kind:   geography.KindMultiPoint,
			lngs:   []float64{10, 40},
			lats:   []float64{40, 30},
			layout: geography.Layout{RingLengths: []int{1, 1}, GroupLengths: []int{1, 1}},
		},
		{
			name:   "multipoint grouped with empty point",
			text:   "MULTIPOINT ((10 40), EMPTY, (40 30))",
			kind:   geography.KindMultiPoint,
			lngs:   []float64{10, 40},
			lats:   []float64{40, 30},
			layout: geography.Layout{RingLengths: []int{1, 0, 1}, GroupLengths: []int{1, 1, 1}},
		},
		{
			name:   "multilinestring",
			text:   "MULTILINESTRING ((10 10, 20 20), (40 40, 30 30, 40 20))",
			kind:   geography.KindMultiLineString,
			lngs:   []float64{10, 20, 40, 30, 40},
			lats:   []float64{10, 20, 40, 30, 20},
			layout: geography.Layout{RingLengths: []int{2, 3}, GroupLengths: []int{1, 1}},
		},
		{
			name: "multipolygon",
			text: "MULTIPOLYGON (((0 0,4 0,4 4,0 4,0 0)),((5 5,6 5,6 6,5 6,5 5)))",
			kind: geography.KindMultiPolygon,
			lngs: []float64{0, 4, 4, 0, 0, 5, 6, 6, 5, 5},
			lats: []float64{0, 0, 4, 4, 0, 5, 5, 6, 6, 5},
			layout: geography.Layout{
				RingLengths:  []int{5, 5},
				GroupLengths: []int{1, 1},
			},
		},
		{
			name: "collection",
			text: "GEOMETRYCOLLECTION (POINT (1 1), LINESTRING (0 0, 1 1))",
			kind: geography.KindGeometryCollection,
			lngs: []float64{1, 0, 1},
			lats: []float64{1, 0, 1},
			layout: geography.Layout{
				RingLengths: []int{1, 2},
				MemberKinds: []geography.Kind{geography.KindPoint, geography.KindLineString},
			},
		},
		{
			name: "collection of every member kind",
			text: "GEOMETRYCOLLECTION(POINT EMPTY, POLYGON((0 0, 1 0, 0 0)), MULTIPOINT(1 1, 2 2)," +
				" MULTILINESTRING((3 3, 4 4)), MULTIPOLYGON(((5 5, 6 5, 5 5)), EMPTY), MULTIPOLYGON EMPTY)",
			kind: geography.KindGeometryCollection,
			lngs: []float64{0, 1, 0, 1, 2, 3, 4, 5, 6, 5},
			lats: []float64{0, 0, 0, 1, 2, 3, 4, 5, 5, 5},
			layout: geography.Layout{
				RingLengths:             []int{0, 3, 1, 1, 2, 3},
				GroupLengths:            []int{1, 2, 1, 1, 0},
				CollectionPolygonCounts: []int{2, 0},
				MemberKinds: []geography.Kind{
					geography.KindPoint,
					geography.KindPolygon,
					geography.KindMultiPoint,
					geography.KindMultiLineString,
					geography.KindMultiPolygon,
					geography.KindMultiPolygon,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.kind, rec.Kind())
			require.Equal(t, tt.lngs, rec.Lngs())
			require.Equal(t, tt.lats, rec.Lats())
			require.Equal(t, tt.layout, rec.Layout())
			require.Equal(t, geography.Borrowed, rec.Ownership())
			require.NoError(t, rec.Validate())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	texts := []string{
		"POINT EMPTY",
		"LINESTRING EMPTY",
		"POLYGON EMPTY",
		"POLYGON (EMPTY, EMPTY)",
		"MULTIPOINT EMPTY",
		"MULTIPOINT (EMPTY)",
		"MULTILINESTRING EMPTY",
		"MULTIPOLYGON EMPTY",
		"MULTIPOLYGON (EMPTY)",
		"GEOMETRYCOLLECTION EMPTY",
		"GEOMETRYCOLLECTION (POINT EMPTY, LINESTRING EMPTY)",
		"EMPTY",
		"  empty  ",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			a := arena.New()
			rec, err := ParseInto(a, text)
			require.NoError(t, err)
			require.True(t, rec.IsEmpty())
			require.Nil(t, rec.Lngs())
			require.Equal(t, 0, a.Len(), "empty geometries never touch the arena")

			out, err := Write(rec)
			require.NoError(t, err)
			require.Equal(t, "EMPTY", out)
		})
	}

	rec, err := Parse("EMPTY")
	require.NoError(t, err)
	require.Equal(t, geography.KindUnknown, rec.Kind())

	rec, err = Parse("POLYGON EMPTY")
	require.NoError(t, err)
	require.Equal(t, geography.KindPolygon, rec.Kind())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
		pos     int
	}{
		{"third ordinate", "POINT (1 2 3)", errs.ErrUnsupportedDimension, 11},
		{"z marker", "POINT Z (1 2)", errs.ErrUnsupportedDimension, 6},
		{"m marker", "LINESTRING M (1 2 3, 4 5 6)", errs.ErrUnsupportedDimension, 11},
		{"zm marker", "POLYGON ZM EMPTY", errs.ErrUnsupportedDimension, 8},
		{"nested collection", "GEOMETRYCOLLECTION (GEOMETRYCOLLECTION (POINT (0 0)))", errs.ErrNestedCollection, 20},
		{"unknown keyword", "TRIANGLE ((0 0, 1 0, 0 0))", errs.ErrUnsupportedGeometryType, 0},
		{"unknown member keyword", "GEOMETRYCOLLECTION (CIRCLE (0 0))", errs.ErrUnsupportedGeometryType, 20},
		{"number instead of keyword", "12", errs.ErrUnexpectedToken, 0},
		{"empty input", "", errs.ErrUnexpectedEOF, 0},
		{"truncated", "LINESTRING (1 2, 3", errs.ErrUnexpectedEOF, 18},
		{"missing opener", "POINT 1 2", errs.ErrUnexpectedToken, 6},
		{"missing separator", "LINESTRING (1 2 ; 3 4)", errs.ErrUnexpectedToken, 16},
		{"word instead of number", "POINT (1 X)", errs.ErrUnexpectedToken, 9},
		{"point with two coordinates", "POINT (1 2, 3 4)", errs.ErrUnexpectedToken, 10},
		{"trailing input", "POINT (1 2) POINT (3 4)", errs.ErrUnexpectedToken, 12},
		{"trailing after empty", "EMPTY EMPTY", errs.ErrUnexpectedToken, 6},
		{"empty as member", "GEOMETRYCOLLECTION (EMPTY)", errs.ErrUnexpectedToken, 20},
		{"mixed multipoint grouped first", "MULTIPOINT ((1 2), 3 4)", errs.ErrUnexpectedToken, 19},
		{"mixed multipoint ungrouped first", "MULTIPOINT (1 2, (3 4))", errs.ErrUnexpectedToken, 17},
		{"ungrouped multipoint with empty", "MULTIPOINT (1 2, EMPTY)", errs.ErrUnexpectedToken, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := arena.New()
			rec, err := ParseInto(a, tt.text)
			require.ErrorIs(t, err, tt.wantErr)
			require.True(t, rec.IsEmpty())
			require.Equal(t, 0, a.Len(), "failed parse must not leave coordinates behind")

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tt.pos, pe.Pos)
			require.Contains(t, err.Error(), "wkt: ")
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := Parse("LINESTRING (1 2")
	require.EqualError(t, err, "wkt: unexpected end of input: expected ',' or ')' but found end of input at offset 15")

	_, err = Parse("POINT (1 2 3)")
	require.EqualError(t, err, "wkt: only 2-dimensional coordinates are supported: 3 at offset 11")
}

func TestParseInto_SharedArena(t *testing.T) {
	a := arena.New(arena.WithMinChunkSize(4))

	first, err := ParseInto(a, "LINESTRING (0 0, 1 1, 2 2)")
	require.NoError(t, err)

	_, err = ParseInto(a, "LINESTRING (5 5, 6 6, oops)")
	require.Error(t, err)

	second, err := ParseInto(a, "POLYGON ((9 9, 8 8, 7 7, 9 9))")
	require.NoError(t, err)

	require.Equal(t, []float64{0, 1, 2}, first.Lngs())
	require.Equal(t, []float64{9, 8, 7, 9}, second.Lngs())
	require.Equal(t, 7, a.Len())
}

func TestParseLines(t *testing.T) {
	a := arena.New()
	recs, err := ParseLines(a, "POINT (1 2)\n\nLINESTRING (0 0, 1 1)\r\nEMPTY\n")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, geography.KindPoint, recs[0].Kind())
	require.Equal(t, geography.KindLineString, recs[1].Kind())
	require.True(t, recs[2].IsEmpty())

	t.Run("geometry split over lines", func(t *testing.T) {
		recs, err := ParseLines(arena.New(), "POINT (1 2)\nLINESTRING (0 0,\n 1 1)")
		require.ErrorIs(t, err, errs.ErrUnexpectedEOL)
		require.Len(t, recs, 1)
	})

	t.Run("two geometries on one line", func(t *testing.T) {
		_, err := ParseLines(arena.New(), "POINT (1 2) POINT (3 4)\n")
		require.ErrorIs(t, err, errs.ErrUnexpectedToken)
	})

	t.Run("blank input", func(t *testing.T) {
		recs, err := ParseLines(arena.New(), "\n\n")
		require.NoError(t, err)
		require.Empty(t, recs)
	})
}

func TestParse_InvariantsHold(t *testing.T) {
	texts := []string{
		"MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0), (0.1 0.1, 0.2 0.1, 0.1 0.1)), ((5 5, 6 5, 5 5)))",
		"GEOMETRYCOLLECTION (MULTIPOLYGON (((0 0, 1 0, 0 0))), POINT (3 3), MULTIPOINT ((1 1), (2 2)))",
		"MULTILINESTRING ((0 0, 1 1), EMPTY, (2 2, 3 3))",
	}

	for _, text := range texts {
		rec, err := Parse(text)
		require.NoError(t, err, text)

		total := 0
		for _, n := range rec.RingLengths() {
			total += n
		}
		require.Equal(t, rec.NumPoints(), total)
		require.Len(t, rec.Lats(), total)

		if rec.Kind() == geography.KindMultiPolygon {
			groups := 0
			for _, n := range rec.GroupLengths() {
				groups += n
			}
			require.Len(t, rec.RingLengths(), groups)
		}
		require.NoError(t, rec.Validate())
	}
}
