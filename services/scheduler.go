// services/scheduler.go
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartCatalogRefresh reloads the card cache every interval until the returned
// scheduler is shut down.
func (s *CatalogService) StartCatalogRefresh(ctx context.Context, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			n, err := s.Refresh(jobCtx)
			if err != nil {
				slog.Error("[Scheduler] catalog refresh failed", "error", err)
				return
			}
			slog.Debug("[Scheduler] catalog refreshed", "cards", n)
		}),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	return sched, nil
}
