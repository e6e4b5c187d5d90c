package pipeio

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/cancelreader"
)

// ReadElements reads integers from r until EOF and returns the context's
// error once ctx is done.
//
// If r is a terminal or pipe *os.File, a canceled ctx also interrupts a read
// that is already blocked. Any other reader is only checked between reads:
// a read blocked on it returns when its next data or EOF arrives.
func ReadElements(ctx context.Context, r io.Reader) ([]int, error) {
	var src io.Reader = r

	if f, ok := r.(*os.File); ok {
		if cr, err := cancelreader.NewReader(f); err == nil {
			src = cr

			done := make(chan struct{})
			stopped := make(chan struct{})
			defer func() {
				close(done)
				<-stopped
				cr.Close()
			}()

			go func() {
				defer close(stopped)
				select {
				case <-ctx.Done():
					cr.Cancel()
				case <-done:
				}
			}()
		}
	}

	data, err := io.ReadAll(ctxReader{ctx: ctx, r: src})
	if ctx.Err() != nil {
		return nil, fmt.Errorf("reading elements: %w", ctx.Err())
	}
	if err != nil {
		return nil, fmt.Errorf("reading elements: %w", err)
	}

	return parseText(string(data))
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
