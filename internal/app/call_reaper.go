package app

import (
	"context"
	"fmt"
	"time"

	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// CallReaper periodically sweeps ringing sessions past their ring deadline,
// so a closed browser tab cannot leave a hold parked forever.
type CallReaper struct {
	callService calls.CallService
	interval    time.Duration
	logger      logger.Logger
}

// NewCallReaper creates a new CallReaper instance
func NewCallReaper(callService calls.CallService, interval time.Duration, logger logger.Logger) *CallReaper {
	if interval == 0 {
		interval = 5 * time.Second
	}
	return &CallReaper{
		callService: callService,
		interval:    interval,
		logger:      logger,
	}
}

// Run sweeps on a timer until the context is cancelled.
func (r *CallReaper) Run(ctx context.Context) error {
	r.logger.Info(fmt.Sprintf("Call reaper started, sweep interval %s", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Call reaper stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.callService.SweepMissed(ctx); err != nil {
				r.logger.Warn(fmt.Sprintf("Call sweep failed: %v", err))
			}
		}
	}
}
