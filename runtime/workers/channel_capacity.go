package workers

import (
	"context"
	"log/slog"
	"tienda-live/domain/event"
	"tienda-live/observability"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel chan event.Notification
}

// ChannelCapacityWorker periodically reports how full the internal channels are.
// Reading len and cap is non-blocking so sampling never slows the producers.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	metrics        *observability.Metrics
	metricInterval time.Duration
	// warnPercent is the fill level above which a warning is logged.
	warnPercent int
}

func NewChannelCapacityWorker(log *slog.Logger, metrics *observability.Metrics,
	metricInterval time.Duration, warnPercent int, channels ...NamedChannel) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		channels:       channels,
		metrics:        metrics,
		metricInterval: metricInterval,
		warnPercent:    warnPercent,
	}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			w.Sample()
		}
	}
}

func (w *ChannelCapacityWorker) Sample() {
	for _, nc := range w.channels {
		length, capacity := len(nc.Channel), cap(nc.Channel)
		w.metrics.ChannelFill(nc.Name, length)
		if capacity > 0 && length*100 >= capacity*w.warnPercent {
			w.log.Warn("Channel almost full", "name", nc.Name, "length", length, "capacity", capacity)
		}
	}
}
