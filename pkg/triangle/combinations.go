package triangle

import "iter"

// Triple is one 3-element combination of the input, in enumeration order.
type Triple struct {
	A, B, C int
}

// Indices holds the positions of a Triple within the input, I < J < K.
type Indices struct {
	I, J, K int
}

// Combinations yields all 3-element combinations of elements in
// lexicographic order of their positions. The sequence is restartable.
func Combinations(elements []int) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for _, t := range IndexedCombinations(elements) {
			if !yield(t) {
				return
			}
		}
	}
}

// IndexedCombinations is like Combinations but also yields the positions
// each triple was drawn from.
func IndexedCombinations(elements []int) iter.Seq2[Indices, Triple] {
	return func(yield func(Indices, Triple) bool) {
		m := len(elements)
		for i := 0; i < m-2; i++ {
			for j := i + 1; j < m-1; j++ {
				for k := j + 1; k < m; k++ {
					t := Triple{elements[i], elements[j], elements[k]}
					if !yield(Indices{i, j, k}, t) {
						return
					}
				}
			}
		}
	}
}

// Count returns C(m, 3), the number of combinations of m elements.
func Count(m int) int {
	if m < 3 {
		return 0
	}
	return m * (m - 1) / 2 * (m - 2) / 3
}

// Deduplicate returns the distinct values of elements, keeping the first
// occurrence of each in its original order.
func Deduplicate(elements []int) []int {
	seen := make(map[int]struct{}, len(elements))
	out := make([]int, 0, len(elements))
	for _, e := range elements {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
