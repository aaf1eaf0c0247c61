package workers

import (
	"context"
	"fmt"
	"log/slog"
	"tienda-live/contract"
	"tienda-live/domain/event"
	"time"
)

// EventFanout hands every notification emitted by the gateway to the
// permanent sinks: metrics, the cross-instance relay and the broker.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability or retries. Room members are served by the gateway itself,
// never by this worker.
type EventFanout struct {
	log           *slog.Logger
	notifications <-chan event.Notification
	sinks         []contract.EventSink
	sinkTimeout   time.Duration
}

func NewEventFanout(log *slog.Logger, notifications <-chan event.Notification, sinkTimeout time.Duration, sinks ...contract.EventSink) *EventFanout {
	return &EventFanout{log: log, notifications: notifications, sinks: sinks, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case n, ok := <-w.notifications:
			if !ok {
				w.log.Debug("Notification channel closed")
				return nil
			}
			w.Fanout(ctx, n)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		}
	}
}

// Fanout calls the sinks one after the other, in registration order, each
// bounded by the sink timeout.
func (w *EventFanout) Fanout(ctx context.Context, n event.Notification) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, n); err != nil {
			w.log.Warn("Sink failed", "sink", sinkName(sink), "event", n.Name, "room", n.Room(), "error", err)
		}
		cancel()
	}
}

func sinkName(s contract.EventSink) string {
	return fmt.Sprintf("%T", s)
}
