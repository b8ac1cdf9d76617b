package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/keylock/internal/logger"
)

// DefaultPruneInterval is used when a non-positive interval is configured.
const DefaultPruneInterval = time.Minute

// HistoryPruner removes expired links from the local history: once when it
// starts and then on every tick.
type HistoryPruner struct {
	pruner   Pruner
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewHistoryPruner(pruner Pruner, interval time.Duration, logger *logger.Logger) *HistoryPruner {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}

	return &HistoryPruner{
		pruner:   pruner,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

func (p *HistoryPruner) Run(ctx context.Context) {
	p.prune(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.prune(ctx)
		}
	}
}

func (p *HistoryPruner) prune(ctx context.Context) {
	if _, err := p.pruner.Prune(ctx, p.now()); err != nil && ctx.Err() == nil {
		p.logger.Warn().Err(err).Str("func", "HistoryPruner.Run").Msg("history pruning failed")
	}
}
