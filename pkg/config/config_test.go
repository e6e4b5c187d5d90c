package config

import (
	"slices"
	"testing"
	"time"
)

func TestCheck_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      *Check
		wantErrs int
	}{
		{
			name:     "valid config",
			cfg:      &Check{Modulus: 6, Elements: []int{1, 2, 3}},
			wantErrs: 0,
		},
		{
			name:     "few elements are fine without strict",
			cfg:      &Check{Modulus: 6, Elements: []int{1}},
			wantErrs: 0,
		},
		{
			name:     "zero modulus",
			cfg:      &Check{Modulus: 0, Elements: []int{1, 2, 3}},
			wantErrs: 1,
		},
		{
			name:     "negative modulus",
			cfg:      &Check{Modulus: -4, Elements: []int{1, 2, 3}},
			wantErrs: 1,
		},
		{
			name:     "negative timeout",
			cfg:      &Check{Modulus: 3, Timeout: -time.Second},
			wantErrs: 1,
		},
		{
			name:     "strict with two elements",
			cfg:      &Check{Modulus: 3, Elements: []int{1, 2}, Strict: true},
			wantErrs: 1,
		},
		{
			name:     "strict counts positional duplicates",
			cfg:      &Check{Modulus: 5, Elements: []int{5, 5, 10}, Strict: true},
			wantErrs: 0,
		},
		{
			name:     "strict with dedup drops duplicates",
			cfg:      &Check{Modulus: 5, Elements: []int{5, 5, 10}, Strict: true, Deduplicate: true},
			wantErrs: 1,
		},
		{
			name:     "all errors reported",
			cfg:      &Check{Modulus: 0, Timeout: -1, Strict: true},
			wantErrs: 3,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			errs := tc.cfg.Validate()
			if len(errs) != tc.wantErrs {
				t.Errorf("Validate() returned %d errors (%v), want %d", len(errs), errs, tc.wantErrs)
			}
		})
	}
}

func intPtr(i int) *int { return &i }

func TestCheck_Merge(t *testing.T) {
	t.Parallel()

	t.Run("nil file", func(t *testing.T) {
		t.Parallel()
		cfg := &Check{Modulus: 3}
		cfg.Merge(nil, Explicit{})
		if cfg.Modulus != 3 {
			t.Errorf("Modulus = %d, want 3", cfg.Modulus)
		}
	})

	t.Run("fills fields not given explicitly", func(t *testing.T) {
		t.Parallel()
		cfg := &Check{}
		cfg.Merge(&File{Modulus: intPtr(6), Elements: []int{1, 2, 3}, Deduplicate: true, Strict: true}, Explicit{})
		if cfg.Modulus != 6 {
			t.Errorf("Modulus = %d, want 6", cfg.Modulus)
		}
		if !slices.Equal(cfg.Elements, []int{1, 2, 3}) {
			t.Errorf("Elements = %v, want [1 2 3]", cfg.Elements)
		}
		if !cfg.Deduplicate || !cfg.Strict {
			t.Errorf("Deduplicate = %t, Strict = %t, want both true", cfg.Deduplicate, cfg.Strict)
		}
	})

	t.Run("explicit values win", func(t *testing.T) {
		t.Parallel()
		cfg := &Check{Modulus: 10, Elements: []int{4, 5, 6}}
		cfg.Merge(&File{Modulus: intPtr(6), Elements: []int{1, 2, 3}}, Explicit{Modulus: true, Elements: true})
		if cfg.Modulus != 10 {
			t.Errorf("Modulus = %d, want 10", cfg.Modulus)
		}
		if !slices.Equal(cfg.Elements, []int{4, 5, 6}) {
			t.Errorf("Elements = %v, want [4 5 6]", cfg.Elements)
		}
	})

	t.Run("explicit zero values win", func(t *testing.T) {
		t.Parallel()
		cfg := &Check{Modulus: 0, Deduplicate: false, Strict: false}
		cfg.Merge(&File{Modulus: intPtr(7), Deduplicate: true, Strict: true},
			Explicit{Modulus: true, Deduplicate: true, Strict: true})
		if cfg.Modulus != 0 {
			t.Errorf("Modulus = %d, want 0", cfg.Modulus)
		}
		if cfg.Deduplicate || cfg.Strict {
			t.Errorf("Deduplicate = %t, Strict = %t, want both false", cfg.Deduplicate, cfg.Strict)
		}
		if errs := cfg.Validate(); len(errs) == 0 {
			t.Error("Validate() should reject the explicit zero modulus")
		}
	})
}
