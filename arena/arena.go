// Package arena provides the append-only coordinate allocator backing geography records.
//
// An Arena stores longitudes and latitudes in two chunk lists with identical
// partitioning, so a run written at offset i of chunk k always has its
// longitudes at lngChunks[k][i:] and its latitudes at latChunks[k][i:].
//
// Chunks are allocated with a fixed length and are never grown, copied or
// released while the arena is alive. Every slice handed out by Add, AddMany or
// Run.Finish therefore stays valid, and keeps reading back the values written
// through it, for the whole lifetime of the arena. A geography record can hold
// such a slice directly without owning the memory behind it.
//
// Note: Arena is NOT safe for concurrent use. It is designed for a single
// writer appending rows of one columnar batch sequentially.
package arena

import (
	"github.com/arloliu/geog/internal/options"
)

// DefaultMinChunkSize is the default minimum number of coordinate pairs per chunk.
const DefaultMinChunkSize = 4096

// Arena is an append-only, chunked allocator for (longitude, latitude) runs.
type Arena struct {
	lngChunks [][]float64
	latChunks [][]float64

	minChunkSize int
	pos          int  // write offset inside the current (last) chunk
	size         int  // number of coordinate pairs handed out or pending in an open run
	runOpen      bool // true while a Run is being appended
}

// Option configures an Arena.
type Option = options.Option[*Arena]

// WithMinChunkSize sets the smallest chunk the arena allocates, in coordinate pairs.
//
// Values below 1 fall back to DefaultMinChunkSize.
func WithMinChunkSize(n int) Option {
	return options.NoError(func(a *Arena) {
		if n < 1 {
			n = DefaultMinChunkSize
		}
		a.minChunkSize = n
	})
}

// New creates an empty arena. No chunk is allocated until the first append.
func New(opts ...Option) *Arena {
	a := &Arena{minChunkSize: DefaultMinChunkSize}
	// NoError options cannot fail.
	_ = options.Apply(a, opts...)

	return a
}

// MinChunkSize returns the configured minimum chunk size.
func (a *Arena) MinChunkSize() int {
	return a.minChunkSize
}

// Len returns the number of coordinate pairs written to the arena, including
// the pairs of a run that is still open.
func (a *Arena) Len() int {
	return a.size
}

// Chunks returns the number of chunks allocated so far.
func (a *Arena) Chunks() int {
	return len(a.lngChunks)
}

// Cap returns the total capacity of all chunks in coordinate pairs, including
// abandoned chunk tails.
func (a *Arena) Cap() int {
	total := 0
	for _, c := range a.lngChunks {
		total += len(c)
	}

	return total
}

// Add appends a single coordinate pair and returns one-element views of it.
//
// Panics if a Run is open.
func (a *Arena) Add(lng, lat float64) ([]float64, []float64) {
	a.mustNotRun()
	a.ensure(1)

	k := len(a.lngChunks) - 1
	a.lngChunks[k][a.pos] = lng
	a.latChunks[k][a.pos] = lat

	return a.publish(k, a.pos, 1)
}

// AddMany appends a run of coordinate pairs and returns views of the newly
// written run. The two slices must have the same length.
//
// An empty run is not stored and returns nil views.
//
// Panics if a Run is open or if the lengths differ.
func (a *Arena) AddMany(lngs, lats []float64) ([]float64, []float64) {
	a.mustNotRun()
	if len(lngs) != len(lats) {
		panic("arena: longitude and latitude runs differ in length")
	}

	n := len(lngs)
	if n == 0 {
		return nil, nil
	}

	a.ensure(n)

	k := len(a.lngChunks) - 1
	copy(a.lngChunks[k][a.pos:], lngs)
	copy(a.latChunks[k][a.pos:], lats)

	return a.publish(k, a.pos, n)
}

// StartRun opens an incremental run. Coordinates appended to the run are
// written straight into arena storage; the views are returned by Finish once
// the run is complete, so they are always contiguous.
//
// Panics if another Run is already open.
func (a *Arena) StartRun() *Run {
	a.mustNotRun()
	a.runOpen = true

	return &Run{arena: a, start: a.pos, chunk: len(a.lngChunks) - 1}
}

// ensure makes sure the current chunk has room for n more pairs, starting a new
// chunk sized max(n, minChunkSize) otherwise. The tail of the old chunk is abandoned.
func (a *Arena) ensure(n int) {
	if len(a.lngChunks) > 0 && len(a.lngChunks[len(a.lngChunks)-1])-a.pos >= n {
		return
	}

	a.newChunk(max(n, a.minChunkSize))
}

func (a *Arena) newChunk(size int) {
	a.lngChunks = append(a.lngChunks, make([]float64, size))
	a.latChunks = append(a.latChunks, make([]float64, size))
	a.pos = 0
}

// publish advances the write offset past a run of n pairs starting at start in
// chunk k and returns capacity-limited views of it, so an append through a view
// can never write into the arena.
func (a *Arena) publish(k, start, n int) ([]float64, []float64) {
	end := start + n
	a.pos = end
	a.size += n

	return a.lngChunks[k][start:end:end], a.latChunks[k][start:end:end]
}

func (a *Arena) mustNotRun() {
	if a.runOpen {
		panic("arena: a run is already open")
	}
}

// Run is an incremental append into an Arena. It is obtained from StartRun and
// must be ended by exactly one call to Finish or Discard.
type Run struct {
	arena *Arena
	chunk int // chunk index holding the run, -1 before the first append
	start int // run start offset inside chunk
	n     int // pairs appended so far
	done  bool
}

// Len returns the number of pairs appended to the run so far.
func (r *Run) Len() int {
	return r.n
}

// Append writes one coordinate pair at the end of the run.
//
// When the current chunk is full, the pairs of the run written so far are moved
// to a fresh chunk of max(2*len, minChunkSize) pairs. They have not been
// published yet, so no view handed out earlier is affected.
//
// Panics if the run has already been finished or discarded.
func (r *Run) Append(lng, lat float64) {
	if r.done {
		panic("arena: append to a closed run")
	}

	a := r.arena
	if r.chunk < 0 || len(a.lngChunks[r.chunk])-r.start-r.n < 1 {
		r.relocate()
	}

	pos := r.start + r.n
	a.lngChunks[r.chunk][pos] = lng
	a.latChunks[r.chunk][pos] = lat
	r.n++
	a.pos = pos + 1
	a.size++
}

func (r *Run) relocate() {
	a := r.arena
	a.newChunk(max(2*r.n, 1, a.minChunkSize))

	k := len(a.lngChunks) - 1
	if r.n > 0 {
		copy(a.lngChunks[k], a.lngChunks[r.chunk][r.start:r.start+r.n])
		copy(a.latChunks[k], a.latChunks[r.chunk][r.start:r.start+r.n])
	}

	r.chunk = k
	r.start = 0
	a.pos = r.n
}

// Finish closes the run and returns contiguous views of every pair appended to
// it. An empty run returns nil views and consumes no storage.
func (r *Run) Finish() ([]float64, []float64) {
	if r.done {
		panic("arena: run already closed")
	}
	r.done = true
	r.arena.runOpen = false

	if r.n == 0 {
		return nil, nil
	}

	end := r.start + r.n

	return r.arena.lngChunks[r.chunk][r.start:end:end], r.arena.latChunks[r.chunk][r.start:end:end]
}

// Discard closes the run and rolls the arena write offset back to the run start,
// so the next append reuses the space. Chunks allocated for the run are kept
// as ordinary chunks. Discard after Finish is a no-op.
func (r *Run) Discard() {
	if r.done {
		return
	}
	r.done = true

	a := r.arena
	a.runOpen = false
	a.size -= r.n
	if r.chunk >= 0 && r.chunk == len(a.lngChunks)-1 {
		a.pos = r.start
	}
	r.n = 0
}
