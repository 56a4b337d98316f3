package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"zerowaste-exchange/internal/pkg/config"
	"zerowaste-exchange/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the two background loops: markdown recalculation and
// the no-show sweep. Both operations are idempotent, so a missed or doubled
// tick is harmless.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, markdown commands.MarkdownCommands, pickup commands.PickupCommands) {
	loops := 0
	if cfg.Markdown.RecalcInterval > 0 {
		loops++
	}
	if cfg.Markdown.SweepInterval > 0 {
		loops++
	}
	if loops == 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{}, loops)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			startLoop(ctx, done, cfg.Markdown.RecalcInterval, func() {
				if result, err := markdown.Recalculate(ctx); err != nil {
					slog.Error("markdown recalculation failed", "error", err.Error())
				} else if result.Created > 0 || result.Updated > 0 {
					slog.Info("markdown recalculation done", "created", result.Created, "updated", result.Updated)
				}
			})
			startLoop(ctx, done, cfg.Markdown.SweepInterval, func() {
				if result, err := pickup.SweepNoShows(ctx); err != nil {
					slog.Error("no-show sweep failed", "error", err.Error())
				} else if result.Swept > 0 {
					slog.Info("no-show sweep done", "swept", result.Swept, "relisted", result.Relisted)
				}
			})
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			for i := 0; i < loops; i++ {
				select {
				case <-done:
				case <-stopCtx.Done():
					return stopCtx.Err()
				}
			}
			return nil
		},
	})
}

// startLoop spawns a ticker goroutine; an interval of zero disables the loop.
func startLoop(ctx context.Context, done chan<- struct{}, interval time.Duration, fn func()) {
	if interval <= 0 {
		return
	}
	go run(ctx, done, interval, fn)
}

func run(ctx context.Context, done chan<- struct{}, interval time.Duration, fn func()) {
	defer func() { done <- struct{}{} }()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once at startup so fresh inventory gets offers without waiting a
	// full interval.
	fn()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
