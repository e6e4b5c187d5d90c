// Package mocks provides mock implementations for testing.
package mocks

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// MockStdio provides a mock stdin fed through a pipe and a mock stdout that
// records everything written to it.
type MockStdio struct {
	stdinReader *io.PipeReader
	stdinWriter *io.PipeWriter

	mu        sync.Mutex
	outputBuf bytes.Buffer
	updated   chan struct{} // closed and replaced on every write
}

// NewMockStdio creates a new mock stdio.
func NewMockStdio() *MockStdio {
	stdinR, stdinW := io.Pipe()

	return &MockStdio{
		stdinReader: stdinR,
		stdinWriter: stdinW,
		updated:     make(chan struct{}),
	}
}

// WriteToStdin writes data to the mock stdin pipe. It blocks until the
// application reads it.
func (m *MockStdio) WriteToStdin(data []byte) (int, error) {
	return m.stdinWriter.Write(data)
}

// CloseStdin signals EOF to the application.
func (m *MockStdio) CloseStdin() error {
	return m.stdinWriter.Close()
}

// ReadFromStdout returns everything the application has written to stdout.
func (m *MockStdio) ReadFromStdout() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outputBuf.String()
}

// GetStdin returns a reader for stdin (used by the dependency injection).
func (m *MockStdio) GetStdin() io.Reader {
	return m.stdinReader
}

// GetStdout returns a writer for stdout (used by the dependency injection).
func (m *MockStdio) GetStdout() io.Writer {
	return stdoutWriter{m}
}

type stdoutWriter struct {
	m *MockStdio
}

func (w stdoutWriter) Write(p []byte) (int, error) {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()

	n, err := w.m.outputBuf.Write(p)
	close(w.m.updated)
	w.m.updated = make(chan struct{})
	return n, err
}

// WaitForOutput waits for the expected string to appear in stdout within the given timeout.
// It returns nil if the string is found, or an error if the timeout expires.
func (m *MockStdio) WaitForOutput(expected string, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		m.mu.Lock()
		out := m.outputBuf.String()
		updated := m.updated
		m.mu.Unlock()

		if strings.Contains(out, expected) {
			return nil
		}

		select {
		case <-updated:
		case <-deadline.C:
			return fmt.Errorf("timeout waiting for output %q, got: %q", expected, m.ReadFromStdout())
		}
	}
}

// Close closes the mock stdin pipe.
func (m *MockStdio) Close() error {
	m.stdinReader.Close()
	return m.stdinWriter.Close()
}
