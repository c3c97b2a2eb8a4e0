package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/TOOL2U/LandWise/internal/usecase/commands"
)

// Sweeper periodically fails pending bookings that never got a webhook
// outcome, typically abandoned checkout sessions.
type Sweeper struct {
	bookingCommands commands.BookingCommands
	interval        time.Duration
	maxAge          time.Duration
}

func NewSweeper(bookingCommands commands.BookingCommands, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		bookingCommands: bookingCommands,
		interval:        interval,
		maxAge:          maxAge,
	}
}

// Run sweeps on a fixed interval until ctx is cancelled. The first sweep runs
// after one full interval, not at startup, so a crash-looping worker does not
// hammer the store.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			swept, err := s.bookingCommands.ExpireStalePending(ctx, s.maxAge)
			if err != nil {
				slog.Error("pending booking sweep failed", "error", err.Error())
				continue
			}
			if swept > 0 {
				slog.Info("swept stale pending bookings", "count", swept)
			}
		case <-ctx.Done():
			return
		}
	}
}
