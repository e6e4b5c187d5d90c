// Package pipeio reads integer sets from command-line arguments and from
// standard input.
package pipeio

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"trianglefree/pkg/triangle"
)

// ParseElements parses integers from args. Each argument may hold several
// integers separated by commas or whitespace, optionally wrapped in braces or
// brackets, so "1 2 3", "1,2,3" and "{1, 2, 3}" are equivalent.
func ParseElements(args []string) ([]int, error) {
	var out []int

	for _, arg := range args {
		elems, err := parseText(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, elems...)
	}

	return out, nil
}

func parseText(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, isSeparator)

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", triangle.ErrInvalidElement, f)
		}
		out = append(out, n)
	}

	return out, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ',', ';', '{', '}', '[', ']', '(', ')':
		return true
	}
	return unicode.IsSpace(r)
}
