package workers

import (
	"context"
	"log/slog"
	"tienda-live/observability"
	"time"
)

type ProcessSampler interface {
	Sample() (observability.ProcessStats, error)
}

// ProcessMonitor samples CPU and memory of the server on a fixed interval.
type ProcessMonitor struct {
	log      *slog.Logger
	sampler  ProcessSampler
	interval time.Duration
}

func NewProcessMonitor(log *slog.Logger, sampler ProcessSampler, interval time.Duration) *ProcessMonitor {
	return &ProcessMonitor{log: log, sampler: sampler, interval: interval}
}

func (w *ProcessMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping process monitor")
			return nil
		case <-ticker.C:
			if _, err := w.sampler.Sample(); err != nil {
				w.log.Error("Failed to collect process stats", "error", err)
			}
		}
	}
}
