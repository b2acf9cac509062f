package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on every tick until ctx is done.
// Errors are logged, never fatal; the next tick tries again.
func Every(ctx context.Context, interval time.Duration, name string, log *slog.Logger, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil {
			log.Error("scheduled task failed", "task", name, "error", err)
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
