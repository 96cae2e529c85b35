// random.go: the interpreter's single process-wide random source.
//
// Grounded on original_source/src/runtime/random.h's Random class: a
// single generator, seeded lazily on first use rather than at process
// start, exposing a half-open randInt(min,max) and a half-open
// randDouble() in [0,1). spec.md §9 ("Global state") asks for this to be a
// field on the evaluator object rather than a package-level static, so it
// is a plain struct with no global mutable state of its own.
package rill

import (
	"math/rand"
	"time"
)

// randomSource lazily seeds a math/rand generator on first use.
type randomSource struct {
	rng    *rand.Rand
	seeded bool
}

func (r *randomSource) ensureSeeded() {
	if r.seeded {
		return
	}
	r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	r.seeded = true
}

// Int returns a pseudo-random integer in the half-open range [min, max).
func (r *randomSource) Int(min, max int64) int64 {
	r.ensureSeeded()
	return min + r.rng.Int63n(max-min)
}

// Double returns a pseudo-random float64 in the half-open range [0, 1).
func (r *randomSource) Double() float64 {
	r.ensureSeeded()
	return r.rng.Float64()
}
