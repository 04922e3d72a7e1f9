package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// TimeoutSweeper is the slice of the reservation service the reaper needs.
type TimeoutSweeper interface {
	SweepTimeouts(ctx context.Context) (int, error)
}

// Scheduler drives the timeout reaper. The sweep itself is idempotent and
// set-based, so overlapping with a concurrent cancel/use/create is safe;
// a failed run is simply retried on the next tick.
type Scheduler struct {
	reservationService TimeoutSweeper
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService TimeoutSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("timeout reaper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("timeout reaper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	count, err := s.reservationService.SweepTimeouts(ctx)
	if err != nil {
		s.logger.Error("timeout sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if count > 0 {
		s.logger.Info("expired reservations reaped",
			logger.Int("count", count),
		)
	}
}
