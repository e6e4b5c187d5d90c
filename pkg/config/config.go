// Package config holds the validated run configuration of a triangle-freeness
// check, loaded from CLI flags and an optional YAML file.
package config

import (
	"fmt"
	"time"

	"trianglefree/pkg/triangle"
)

// Check contains the configuration of a single check run.
type Check struct {
	Modulus          int
	Elements         []int
	Deduplicate      bool
	Strict           bool
	ListCombinations bool
	Timeout          time.Duration
	Verbose          bool
}

// Validate checks the configuration and returns every problem found.
func (c *Check) Validate() []error {
	var errors []error

	if err := validateModulus(c.Modulus); err != nil {
		errors = append(errors, fmt.Errorf("'--modulus': %w", err))
	}

	if c.Timeout < 0 {
		errors = append(errors, fmt.Errorf("'--timeout' must not be negative"))
	}

	if c.Strict && c.distinct() < 3 {
		errors = append(errors, fmt.Errorf("'--strict': %w, got %d", triangle.ErrInvalidInput, c.distinct()))
	}

	return errors
}

// distinct is the number of elements enumeration will run over.
func (c *Check) distinct() int {
	if !c.Deduplicate {
		return len(c.Elements)
	}
	return len(triangle.Deduplicate(c.Elements))
}

// Explicit records which fields were given on the command line. Explicit
// fields are kept by Merge even when they hold zero values.
type Explicit struct {
	Modulus     bool
	Elements    bool
	Deduplicate bool
	Strict      bool
}

// Merge fills the fields not marked in explicit from a config file.
func (c *Check) Merge(f *File, explicit Explicit) {
	if f == nil {
		return
	}

	if !explicit.Modulus && f.Modulus != nil {
		c.Modulus = *f.Modulus
	}
	if !explicit.Elements {
		c.Elements = append([]int(nil), f.Elements...)
	}
	if !explicit.Deduplicate {
		c.Deduplicate = f.Deduplicate
	}
	if !explicit.Strict {
		c.Strict = f.Strict
	}
}
