package buffer

import "fmt"

// Ring is a fixed-capacity FIFO circular buffer of samples.
//
// Ring is not safe for concurrent use.
type Ring struct {
	data     []float64
	writePos int
	n        int
}

// NewRing returns an empty ring holding at most capacity samples.
func NewRing(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be > 0: %d", capacity)
	}
	return &Ring{data: make([]float64, capacity)}, nil
}

// Push appends x. Once the ring is full the oldest sample is overwritten and
// returned with evicted == true.
func (r *Ring) Push(x float64) (old float64, evicted bool) {
	if r.n == len(r.data) {
		old, evicted = r.data[r.writePos], true
	} else {
		r.n++
	}

	r.data[r.writePos] = x
	r.writePos++
	if r.writePos >= len(r.data) {
		r.writePos = 0
	}
	return old, evicted
}

// Len returns the number of stored samples.
func (r *Ring) Len() int { return r.n }

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return len(r.data) }

// Full reports whether Len has reached Cap.
func (r *Ring) Full() bool { return r.n == len(r.data) }

// At returns the i-th stored sample, 0 being the oldest.
// It panics if i is out of [0, Len).
func (r *Ring) At(i int) float64 {
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("buffer: ring index %d out of range [0,%d)", i, r.n))
	}
	return r.data[r.index(i)]
}

// Newest returns the most recently pushed sample, or 0 if the ring is empty.
func (r *Ring) Newest() float64 {
	if r.n == 0 {
		return 0
	}
	return r.At(r.n - 1)
}

// CopyTo copies the stored samples oldest-first into dst and returns the
// number of copied samples.
func (r *Ring) CopyTo(dst []float64) int {
	n := min(len(dst), r.n)
	start := r.index(0)
	head := min(n, len(r.data)-start)
	copy(dst[:head], r.data[start:start+head])
	copy(dst[head:n], r.data[:n-head])
	return n
}

// Sum returns the sum of the stored samples, accumulated oldest-first.
func (r *Ring) Sum() float64 {
	var s float64
	p := r.index(0)
	for range r.n {
		s += r.data[p]
		p++
		if p >= len(r.data) {
			p = 0
		}
	}
	return s
}

// Mean returns Sum()/Len(), or 0 for an empty ring.
func (r *Ring) Mean() float64 {
	if r.n == 0 {
		return 0
	}
	return r.Sum() / float64(r.n)
}

// Reset empties the ring and zeroes its storage.
func (r *Ring) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
	r.writePos = 0
	r.n = 0
}

func (r *Ring) index(i int) int {
	p := r.writePos - r.n + i
	if p < 0 {
		p += len(r.data)
	}
	return p
}
