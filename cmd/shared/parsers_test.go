package shared

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"trianglefree/pkg/config"
	"trianglefree/pkg/triangle"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want []int
		err  bool
	}{
		{args: []string{"1", "2", "3"}, want: []int{1, 2, 3}},
		{args: []string{"{1,2,4}"}, want: []int{1, 2, 4}},
		{args: []string{"-3", "4"}, want: []int{-3, 4}},
		{args: nil, want: nil},

		// error cases
		{args: []string{"1", "2", "three"}, err: true},
		{args: []string{"0x10"}, err: true},
	}

	for _, tt := range tests {
		got, err := ParseArgs(tt.args)
		if (err != nil) != tt.err {
			t.Errorf("ParseArgs(%q) expected err=%t but was %t", tt.args, tt.err, err != nil)
		}
		if err != nil {
			if !errors.Is(err, triangle.ErrInvalidElement) {
				t.Errorf("ParseArgs(%q) error = %v, want ErrInvalidElement", tt.args, err)
			}
			continue
		}

		if !slices.Equal(got, tt.want) {
			t.Errorf("ParseArgs(%q) = %v but want %v", tt.args, got, tt.want)
		}
	}
}

func TestReadStdin(t *testing.T) {
	t.Parallel()

	deps := &config.Dependencies{
		Stdin: func() io.Reader { return strings.NewReader("5 5 10\n") },
	}

	got, err := ReadStdin(context.Background(), deps, nil)
	if err != nil {
		t.Fatalf("ReadStdin() error = %v", err)
	}
	if want := []int{5, 5, 10}; !slices.Equal(got, want) {
		t.Errorf("ReadStdin() = %v, want %v", got, want)
	}
}

func TestReadStdin_Invalid(t *testing.T) {
	t.Parallel()

	deps := &config.Dependencies{
		Stdin: func() io.Reader { return strings.NewReader("1 2 x") },
	}

	if _, err := ReadStdin(context.Background(), deps, nil); !errors.Is(err, triangle.ErrInvalidElement) {
		t.Errorf("ReadStdin() error = %v, want ErrInvalidElement", err)
	}
}
