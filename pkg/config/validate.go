package config

import (
	"fmt"

	"trianglefree/pkg/triangle"
)

// ValidatableConfig is implemented by every config section.
type ValidatableConfig interface {
	Validate() []error
}

// Validate runs all configs' validation and collects their errors.
func Validate(cfgs ...ValidatableConfig) []error {
	var out []error

	for _, cfg := range cfgs {
		out = append(out, cfg.Validate()...)
	}

	return out
}

func validateModulus(n int) error {
	if n < 1 {
		return fmt.Errorf("%w, got %d", triangle.ErrInvalidModulus, n)
	}

	return nil
}
