// Package graceful coordinates startup and ordered shutdown of long
// running processes (HTTP server, kafka consumers, db pools).
package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(starters ...ProcessStarter) {
	for _, start := range starters {
		if start == nil {
			continue
		}
		go func(s ProcessStarter) {
			_ = s()
		}(start)
	}
}

// StopProcessAtBackground blocks until SIGINT or SIGTERM, then stops every
// registered process in reverse registration order.
func StopProcessAtBackground(timeout time.Duration, stoppers ...ProcessStopper) {
	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	StopProcess(timeout, stoppers...)
}

func StopProcess(timeout time.Duration, stoppers ...ProcessStopper) {
	for i := len(stoppers) - 1; i >= 0; i-- {
		stop := stoppers[i]
		if stop == nil {
			continue
		}
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			_ = stop(ctx)
		}()
	}
}
