package projection

import (
	"context"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	storeEvent := func(name string) event.Notification {
		return event.NewNotification(domain.StoreRoom("7"), "7", name, nil, now)
	}

	t.Run("should keep the newest notifications first", func(t *testing.T) {
		req := require.New(t)
		timeline := NewTimeline(2)

		req.NoError(timeline.Consume(ctx, storeEvent(event.PromotionCreated)))
		req.NoError(timeline.Consume(ctx, storeEvent(event.PromotionUpdated)))
		req.NoError(timeline.Consume(ctx, storeEvent(event.PromotionDeleted)))

		recent := timeline.Recent("7", 0)
		req.Len(recent, 2)
		req.Equal(event.PromotionDeleted, recent[0].Name)
		req.Equal(event.PromotionUpdated, recent[1].Name)
	})

	t.Run("should ignore admin and order rooms", func(t *testing.T) {
		req := require.New(t)
		timeline := NewTimeline(10)

		req.NoError(timeline.Consume(ctx, event.NewNotification(domain.StoreAdminRoom("7"), "7", event.DiscountCodeUsed, nil, now)))
		req.NoError(timeline.Consume(ctx, event.NewNotification(domain.OrderTrackingRoom("ORD-1"), "7", event.OrderUpdated, nil, now)))

		req.Empty(timeline.Recent("7", 10))
	})

	t.Run("should apply the limit", func(t *testing.T) {
		req := require.New(t)
		timeline := NewTimeline(10)
		for i := 0; i < 5; i++ {
			req.NoError(timeline.Consume(ctx, storeEvent(event.ConfigUpdated)))
		}

		req.Len(timeline.Recent("7", 3), 3)
		req.Empty(timeline.Recent("8", 3))
	})
}
