package shared

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"
)

// SetupSignalHandling cancels the context on the first interrupt and exits
// the process on the second one. The returned stop function unregisters the
// handler and ends its goroutine.
func SetupSignalHandling(cancel context.CancelFunc) (stop func()) {
	sigCh := make(chan os.Signal, 2)

	// always handle Interrupt (portable)
	sigs := []os.Signal{os.Interrupt}

	// add Unix-only signals
	if runtime.GOOS != "windows" {
		sigs = append(sigs, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
		// writes to a closed pipe return EPIPE instead of killing the process
		signal.Ignore(syscall.SIGPIPE)
	}

	signal.Notify(sigCh, sigs...)

	done := make(chan struct{})
	go func() {
		var s os.Signal
		select {
		case s = <-sigCh:
		case <-done:
			return
		}
		cancel()

		// a second signal, or a check that ignores cancellation, forces exit
		select {
		case <-sigCh:
			if ss, ok := s.(syscall.Signal); ok {
				os.Exit(128 + int(ss))
			}
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(130)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
