// Package format renders check results and combinations as text.
package format

import (
	"fmt"
	"io"
	"iter"
	"math/big"
	"strconv"
	"strings"

	"trianglefree/pkg/triangle"
)

// Triple formats t as "(a, b, c)".
func Triple(t triangle.Triple) string {
	return fmt.Sprintf("(%d, %d, %d)", t.A, t.B, t.C)
}

// Sum formats the exact value of t.A+t.B+t.C, which may not fit in an int.
func Sum(t triangle.Triple) string {
	sum := big.NewInt(int64(t.A))
	sum.Add(sum, big.NewInt(int64(t.B)))
	sum.Add(sum, big.NewInt(int64(t.C)))
	return sum.String()
}

// Set formats elements as "{a, b, c}".
func Set(elements []int) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = strconv.Itoa(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Result writes a one-line verdict for r, followed by the witness details if
// the set is not triangle-free.
func Result(w io.Writer, r *triangle.Result, modulus int) error {
	elems := r.Elements()

	if r.TriangleFree {
		_, err := fmt.Fprintf(w, "%s is triangle-free mod %d (%d combinations tested)\n", Set(elems), modulus, r.Tested)
		return err
	}

	idx := r.WitnessIndices
	_, err := fmt.Fprintf(w, "%s is not triangle-free mod %d: witness %s at positions (%d, %d, %d), sum %s (combination %d of %d)\n",
		Set(elems), modulus, Triple(*r.Witness), idx.I, idx.J, idx.K, Sum(*r.Witness), r.Tested, triangle.Count(len(elems)))
	return err
}

// Combinations writes one line per combination. If modulus is positive each
// line also shows the sum's residue and marks multiples of modulus.
func Combinations(w io.Writer, seq iter.Seq[triangle.Triple], modulus int) error {
	for t := range seq {
		line := Triple(t)
		if modulus > 0 {
			res := triangle.Residue(t, modulus)
			line += fmt.Sprintf(" sum=%s mod %d = %d", Sum(t), modulus, res)
			if res == 0 {
				line += " *"
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
