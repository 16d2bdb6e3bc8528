package postgres

import (
	"context"
	"log/slog"
	"time"

	"campsite/internal/domain/repository"

	"go.uber.org/fx"
)

const sessionSweepInterval = time.Hour

// StartSessionJanitor periodically purges expired session rows. Expired
// sessions are already invisible to reads; the sweep keeps the table from
// growing without bound.
func StartSessionJanitor(lc fx.Lifecycle, sessionRepo repository.SessionRepository, logger *slog.Logger) {
	sweepCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweepSessions(sweepCtx, sessionRepo, logger, sessionSweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
}

func sweepSessions(ctx context.Context, sessionRepo repository.SessionRepository, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessionRepo.DeleteExpired(ctx); err != nil {
				logger.Warn("Failed to purge expired sessions", slog.Any("error", err))
			}
		}
	}
}
