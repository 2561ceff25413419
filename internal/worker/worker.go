package worker

import (
	"context"
	"github.com/rookgm/orderdash/internal/logger"
	"go.uber.org/zap"
	"time"
)

// Task is unit of work run on every tick
type Task func(ctx context.Context)

// Poller runs a task on a fixed interval until its context is done
type Poller struct {
	name      string
	interval  time.Duration
	task      Task
	immediate bool
}

// NewPoller creates new poller. When immediate is set the task also runs
// once before the first tick.
func NewPoller(name string, interval time.Duration, immediate bool, task Task) *Poller {
	return &Poller{
		name:      name,
		interval:  interval,
		task:      task,
		immediate: immediate,
	}
}

// Run blocks until ctx is done. Ticks that arrive while the task is
// still running are dropped.
func (p *Poller) Run(ctx context.Context) {
	logger.Log.Debug("poller started", zap.String("poller", p.name), zap.Duration("interval", p.interval))

	if p.immediate && ctx.Err() == nil {
		p.task(ctx)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("poller is done", zap.String("poller", p.name))
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			p.task(ctx)
		}
	}
}
