package poller

import (
	"context"
	"time"

	feeddomain "github.com/ppgiii/ViZ/internal/domain/feed"
	"github.com/ppgiii/ViZ/pkg/logger"
)

// Poller drives the feed usecase on a fixed interval.
type Poller struct {
	usecase  feeddomain.Usecase
	clock    feeddomain.Clock
	logger   logger.Interface
	interval time.Duration
}

// NewPoller creates a new poller.
func NewPoller(usecase feeddomain.Usecase, clock feeddomain.Clock, logger logger.Interface, interval time.Duration) *Poller {
	return &Poller{
		usecase:  usecase,
		clock:    clock,
		logger:   logger,
		interval: interval,
	}
}

// Run polls until ctx is canceled. A failed cycle is logged and dropped,
// polling resumes at the next interval.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("poller started",
		logger.NewField("interval", p.interval.String()),
	)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return
		default:
			if err := p.usecase.Tick(ctx); err != nil {
				p.logger.ErrorContext(ctx, err)
			}
			p.clock.Sleep(p.interval)
		}
	}
}
