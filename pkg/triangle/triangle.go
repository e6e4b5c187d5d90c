// Package triangle decides whether a set of integers is triangle-free modulo
// n: no 3-element combination of the set sums to a multiple of n.
//
// The search is exhaustive. Combinations are produced lazily in lexicographic
// order of input positions and the search stops at the first combination
// whose sum is divisible by n.
package triangle

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrInvalidModulus is returned when the modulus is not positive.
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrInvalidElement is returned by input parsers for tokens that are not
	// integers.
	ErrInvalidElement = errors.New("invalid element")

	// ErrInvalidInput is returned by callers that require at least three
	// elements. Check itself treats smaller inputs as vacuously triangle-free.
	ErrInvalidInput = errors.New("at least 3 elements required")
)

// pollInterval is how many combinations are tested between context checks.
const pollInterval = 4096

// Result is the outcome of a Check.
type Result struct {
	// TriangleFree is true if no combination sums to a multiple of the modulus.
	TriangleFree bool

	// Witness is the first violating combination, nil if TriangleFree.
	Witness *Triple

	// WitnessIndices are the input positions of Witness, nil if TriangleFree.
	WitnessIndices *Indices

	// Tested is the number of combinations examined, the witness included.
	Tested int

	elements []int
}

// Elements returns the input the result was computed over, after any
// deduplication.
func (r *Result) Elements() []int {
	return slices.Clone(r.elements)
}

// All yields every combination of the checked input, not only the ones
// examined before the witness was found.
func (r *Result) All() iter.Seq[Triple] {
	return Combinations(r.elements)
}

// Combinations materializes every combination of the checked input.
func (r *Result) Combinations() []Triple {
	out := make([]Triple, 0, Count(len(r.elements)))
	for t := range r.All() {
		out = append(out, t)
	}
	return out
}

type options struct {
	dedup bool
}

// Option configures CheckContext.
type Option func(*options)

// WithDeduplicate removes repeated values before enumeration. By default
// repeated values are distinct positional elements.
func WithDeduplicate() Option {
	return func(o *options) {
		o.dedup = true
	}
}

// Check runs CheckContext without cancellation.
func Check(elements []int, modulus int, opts ...Option) (*Result, error) {
	return CheckContext(context.Background(), elements, modulus, opts...)
}

// CheckContext tests every 3-element combination of elements and reports the
// first one whose sum is divisible by modulus. Inputs with fewer than three
// elements are vacuously triangle-free. The input slice is not modified.
func CheckContext(ctx context.Context, elements []int, modulus int, opts ...Option) (*Result, error) {
	if modulus <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidModulus, modulus)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	elems := slices.Clone(elements)
	if o.dedup {
		elems = Deduplicate(elems)
	}

	res := &Result{TriangleFree: true, elements: elems}
	for idx, t := range IndexedCombinations(elems) {
		res.Tested++
		if res.Tested%pollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("checking after %d combinations: %w", res.Tested, err)
			}
		}

		if Divisible(t, modulus) {
			res.TriangleFree = false
			res.Witness = &t
			res.WitnessIndices = &idx
			break
		}
	}

	return res, nil
}

// Divisible reports whether t.A+t.B+t.C is a multiple of modulus, computed
// without overflow. modulus must be positive.
func Divisible(t Triple, modulus int) bool {
	return Residue(t, modulus) == 0
}

// Residue returns (t.A+t.B+t.C) mod modulus in [0, modulus), computed without
// overflow. modulus must be positive.
func Residue(t Triple, modulus int) int {
	r := addMod(reduce(t.A, modulus), reduce(t.B, modulus), modulus)
	return addMod(r, reduce(t.C, modulus), modulus)
}

func reduce(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}

// addMod adds x and y, both in [0, n), modulo n.
func addMod(x, y, n int) int {
	if x >= n-y {
		return x - (n - y)
	}
	return x + y
}
