//go:build unix

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// watchVisibility calls fn whenever the process is resumed in the
// foreground (SIGCONT after a suspend), the terminal counterpart of a tab
// becoming visible again.
func watchVisibility(ctx context.Context, fn func()) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGCONT)

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				fn()
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		cancel()
	}
}
