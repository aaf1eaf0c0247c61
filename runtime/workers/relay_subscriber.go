package workers

import (
	"context"
	"log/slog"
	"tienda-live/contract"
	"tienda-live/domain/event"
	"tienda-live/observability"
)

// LocalEmitter delivers a notification to the rooms of this instance only.
type LocalEmitter interface {
	EmitLocal(ctx context.Context, n event.Notification) int
}

// RelaySubscriber receives the notifications emitted on other instances
// and delivers them to the local room members.
type RelaySubscriber struct {
	log     *slog.Logger
	relay   contract.IRelay
	local   LocalEmitter
	metrics *observability.Metrics
}

func NewRelaySubscriber(log *slog.Logger, relay contract.IRelay, local LocalEmitter, metrics *observability.Metrics) *RelaySubscriber {
	return &RelaySubscriber{log: log, relay: relay, local: local, metrics: metrics}
}

// Run blocks on the subscription. An error other than cancellation makes
// the supervisor resubscribe.
func (w *RelaySubscriber) Run(ctx context.Context) error {
	w.log.Info("Subscribing to notification relay")
	err := w.relay.Subscribe(ctx, func(n event.Notification) {
		w.metrics.Relayed("in")
		delivered := w.local.EmitLocal(ctx, n)
		w.log.Debug("Relayed notification delivered", "event", n.Name, "room", n.Room(), "delivered", delivered)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
