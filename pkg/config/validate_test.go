package config

import (
	"errors"
	"fmt"
	"testing"

	"trianglefree/pkg/triangle"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfgs     []ValidatableConfig
		wantErrs int
	}{
		{
			name:     "no configs",
			cfgs:     []ValidatableConfig{},
			wantErrs: 0,
		},
		{
			name: "one valid config",
			cfgs: []ValidatableConfig{
				&Check{Modulus: 6},
			},
			wantErrs: 0,
		},
		{
			name: "one invalid config",
			cfgs: []ValidatableConfig{
				&Check{Modulus: 0},
			},
			wantErrs: 1,
		},
		{
			name: "multiple configs with errors",
			cfgs: []ValidatableConfig{
				&Check{Modulus: 0},
				&Check{Modulus: 3, Strict: true},
			},
			wantErrs: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			errs := Validate(tc.cfgs...)
			if len(errs) != tc.wantErrs {
				t.Errorf("Validate() returned %d errors, want %d", len(errs), tc.wantErrs)
			}
		})
	}
}

func TestValidateModulus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modulus int
		wantErr bool
	}{
		{"modulus 1", 1, false},
		{"modulus 6", 6, false},
		{"modulus 0", 0, true},
		{"modulus -1", -1, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validateModulus(tc.modulus)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateModulus(%d) error = %v, wantErr %v", tc.modulus, err, tc.wantErr)
			}
			if tc.wantErr && !errors.Is(err, triangle.ErrInvalidModulus) {
				t.Errorf("validateModulus(%d) error = %v, want ErrInvalidModulus", tc.modulus, err)
			}
		})
	}
}

// mockValidatableConfig is a mock implementation for testing.
type mockValidatableConfig struct {
	errors []error
}

func (m *mockValidatableConfig) Validate() []error {
	return m.errors
}

func TestValidate_Accumulates(t *testing.T) {
	t.Parallel()

	mock1 := &mockValidatableConfig{
		errors: []error{fmt.Errorf("error1"), fmt.Errorf("error2")},
	}
	mock2 := &mockValidatableConfig{
		errors: []error{fmt.Errorf("error3")},
	}

	errs := Validate(mock1, mock2)
	if len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3", len(errs))
	}
}
