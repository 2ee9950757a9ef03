// Package column implements a batch of geography rows sharing one coordinate arena.
//
// A Column is the owner that outlives its records: every non-null row borrows
// its coordinates from the column arena, so records read from a Column stay
// valid for as long as the Column is alive. Rows are append-only.
//
// Note: Column is NOT safe for concurrent use.
package column

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/arloliu/geog/arena"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
	"github.com/arloliu/geog/internal/options"
	"github.com/arloliu/geog/wkt"
)

// maxLoggedText caps how much of a rejected literal ends up in a log record.
const maxLoggedText = 128

// Column is an append-only batch of nullable geography rows.
type Column struct {
	arena *arena.Arena
	rows  []geography.Record
	nulls []bool

	kind      geography.Kind
	numPoints int

	minChunkSize  int
	invalidAsNull bool
	logger        *slog.Logger
}

// Option configures a Column.
type Option = options.Option[*Column]

// WithMinChunkSize sets the minimum chunk size of the column arena, in coordinate pairs.
func WithMinChunkSize(n int) Option {
	return options.NoError(func(c *Column) {
		c.minChunkSize = n
	})
}

// WithInvalidAsNull makes AppendWKT store malformed literals as null rows,
// logging a warning, instead of returning the parse error.
func WithInvalidAsNull(enabled bool) Option {
	return options.NoError(func(c *Column) {
		c.invalidAsNull = enabled
	})
}

// WithLogger sets the logger used for warnings. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Column) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// New creates an empty column.
func New(opts ...Option) *Column {
	c := &Column{
		kind:         geography.KindUnknown,
		minChunkSize: arena.DefaultMinChunkSize,
		logger:       slog.Default(),
	}
	_ = options.Apply(c, opts...)
	c.arena = arena.New(arena.WithMinChunkSize(c.minChunkSize))

	return c
}

// Len returns the number of rows, nulls included.
func (c *Column) Len() int {
	return len(c.rows)
}

// NumPoints returns the number of coordinate pairs across all rows.
func (c *Column) NumPoints() int {
	return c.numPoints
}

// Chunks returns the number of arena chunks holding the column's coordinates.
func (c *Column) Chunks() int {
	return c.arena.Chunks()
}

// Kind returns the column-level kind: KindUnknown until the first non-empty
// row, then that row's kind while every non-empty row agrees, and
// KindGeometryCollection once kinds are mixed.
func (c *Column) Kind() geography.Kind {
	return c.kind
}

// IsKind reports whether the column-level kind is k.
func (c *Column) IsKind(k geography.Kind) bool {
	return c.kind == k
}

// AppendWKT parses text into a new row.
//
// A malformed literal returns the parse error and appends nothing, unless the
// column was created WithInvalidAsNull(true): then a warning is logged and a
// null row is appended.
func (c *Column) AppendWKT(text string) error {
	rec, err := wkt.ParseInto(c.arena, text)
	if err != nil {
		if !c.invalidAsNull {
			return fmt.Errorf("row %d: %w", len(c.rows), err)
		}

		c.logger.Warn("storing invalid WKT as null",
			slog.Int("row", len(c.rows)),
			slog.String("wkt", truncate(text, maxLoggedText)),
			slog.Any("error", err),
		)
		c.AppendNull()

		return nil
	}

	c.push(rec)

	return nil
}

// AppendPoint appends a single point row.
func (c *Column) AppendPoint(lng, lat float64) {
	lngs, lats := c.arena.Add(lng, lat)
	c.push(geography.NewBorrowed(geography.KindPoint, lngs, lats, geography.Layout{RingLengths: []int{1}}))
}

// AppendEmpty appends an empty row of the given kind.
func (c *Column) AppendEmpty(kind geography.Kind) {
	c.push(geography.NewEmpty(kind))
}

// AppendNull appends a null row.
func (c *Column) AppendNull() {
	c.rows = append(c.rows, geography.NewEmpty(geography.KindUnknown))
	c.nulls = append(c.nulls, true)
}

// AppendRecord validates rec and appends a copy of it. The coordinates are
// copied into the column arena, so rec may be released afterwards.
func (c *Column) AppendRecord(rec geography.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("row %d: %w", len(c.rows), err)
	}

	if rec.IsEmpty() {
		c.AppendEmpty(rec.Kind())
		return nil
	}

	lngs, lats := c.arena.AddMany(rec.Lngs(), rec.Lats())
	c.push(geography.NewBorrowed(rec.Kind(), lngs, lats, rec.Layout().Clone()))

	return nil
}

// CopyRow appends a copy of row i of src, preserving nulls.
func (c *Column) CopyRow(src *Column, i int) error {
	if i < 0 || i >= src.Len() {
		return fmt.Errorf("%w: %d of %d", errs.ErrRowIndexOutOfRange, i, src.Len())
	}

	if src.nulls[i] {
		c.AppendNull()
		return nil
	}

	return c.AppendRecord(src.rows[i])
}

// Record returns row i. ok is false for a null row or an index out of range.
// The record borrows from the column.
func (c *Column) Record(i int) (geography.Record, bool) {
	if i < 0 || i >= len(c.rows) || c.nulls[i] {
		return geography.NewEmpty(geography.KindUnknown), false
	}

	return c.rows[i], true
}

// IsNull reports whether row i is null. Out-of-range rows are reported as null.
func (c *Column) IsNull(i int) bool {
	return i < 0 || i >= len(c.rows) || c.nulls[i]
}

// All iterates over the non-null rows with their indexes.
func (c *Column) All() iter.Seq2[int, geography.Record] {
	return func(yield func(int, geography.Record) bool) {
		for i, rec := range c.rows {
			if c.nulls[i] {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// FormatWKT renders row i as WKT text.
func (c *Column) FormatWKT(i int) (string, error) {
	if i < 0 || i >= len(c.rows) {
		return "", fmt.Errorf("%w: %d of %d", errs.ErrRowIndexOutOfRange, i, len(c.rows))
	}
	if c.nulls[i] {
		return "", fmt.Errorf("row %d: %w", i, errs.ErrNullRow)
	}

	return wkt.Write(c.rows[i])
}

func (c *Column) push(rec geography.Record) {
	c.rows = append(c.rows, rec)
	c.nulls = append(c.nulls, false)
	c.numPoints += rec.NumPoints()

	if rec.IsEmpty() {
		return
	}

	switch {
	case c.kind == geography.KindUnknown:
		c.kind = rec.Kind()
	case c.kind != rec.Kind():
		c.kind = geography.KindGeometryCollection
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
