// Package helpers provides common utilities for end-to-end tests.
package helpers

import (
	"io"

	"trianglefree/mocks"
	"trianglefree/pkg/config"
)

// SetupMockDependencies creates dependencies backed by a mock stdio.
func SetupMockDependencies() (*mocks.MockStdio, *config.Dependencies) {
	mockStdio := mocks.NewMockStdio()

	deps := &config.Dependencies{
		Stdin:  func() io.Reader { return mockStdio.GetStdin() },
		Stdout: func() io.Writer { return mockStdio.GetStdout() },
	}

	return mockStdio, deps
}
