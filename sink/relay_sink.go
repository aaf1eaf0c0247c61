package sink

import (
	"context"
	"tienda-live/contract"
	"tienda-live/domain/event"
	"tienda-live/observability"
)

// RelaySink shares locally emitted notifications with the other instances.
type RelaySink struct {
	relay   contract.IRelay
	metrics *observability.Metrics
}

func NewRelaySink(relay contract.IRelay, metrics *observability.Metrics) *RelaySink {
	return &RelaySink{relay: relay, metrics: metrics}
}

func (s *RelaySink) Consume(ctx context.Context, n event.Notification) error {
	if err := s.relay.Publish(ctx, n); err != nil {
		return err
	}
	s.metrics.Relayed("out")
	return nil
}
