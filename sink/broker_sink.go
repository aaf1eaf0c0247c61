package sink

import (
	"context"
	"log/slog"
	"tienda-live/domain/event"

	"github.com/samber/lo"
)

type Publisher interface {
	Publish(ctx context.Context, n event.Notification) error
}

// brokerEvents are the notifications back-office consumers care about.
var brokerEvents = []string{
	event.NewOrder,
	event.OrderUpdated,
	event.DiscountCodeUsed,
	event.PromotionCreated,
	event.PromotionUpdated,
	event.PromotionDeleted,
	event.ReviewSubmitted,
}

// BrokerSink forwards business notifications to the message broker.
type BrokerSink struct {
	log       *slog.Logger
	publisher Publisher
}

func NewBrokerSink(log *slog.Logger, publisher Publisher) *BrokerSink {
	return &BrokerSink{log: log, publisher: publisher}
}

func (s *BrokerSink) Consume(ctx context.Context, n event.Notification) error {
	if !lo.Contains(brokerEvents, n.Name) {
		return nil
	}
	if err := s.publisher.Publish(ctx, n); err != nil {
		return err
	}
	s.log.Debug("Notification published to broker", "event", n.Name, "tienda", n.StoreID)
	return nil
}
