package workers

import (
	"context"
	"log/slog"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/mocks"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	first := mocks.NewMockEventSink(ctrl)
	second := mocks.NewMockEventSink(ctrl)

	fanout := NewEventFanout(log, nil, time.Second, first, second)
	n := event.NewNotification(domain.StoreRoom("7"), "7", event.NewOrder, nil, time.Now())

	// Given two permanent sinks, in order
	gomock.InOrder(
		first.EXPECT().Consume(gomock.Any(), n).Return(nil),
		second.EXPECT().Consume(gomock.Any(), n).Return(nil),
	)

	// When a notification is handled
	fanout.Fanout(context.Background(), n)
}

func TestEventFanout_Failing_Sink_Does_Not_Stop_Others(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	slow := mocks.NewMockEventSink(ctrl)
	next := mocks.NewMockEventSink(ctrl)

	fanout := NewEventFanout(log, nil, 20*time.Millisecond, slow, next)

	// Given a sink waiting longer than the sink timeout
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n event.Notification) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)
	// Then the next sink is still called
	next.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	fanout.Fanout(context.Background(), event.NewNotification(domain.StoreRoom("7"), "7", event.ConfigUpdated, nil, time.Now()))
}

func TestEventFanout_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSink := mocks.NewMockEventSink(ctrl)

	notifications := make(chan event.Notification, 3)
	fanout := NewEventFanout(log, notifications, time.Second, mockSink)

	received := make(chan string, 3)
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n event.Notification) error {
			received <- n.Name
			return nil
		}).Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- fanout.Run(ctx) }()

	for _, name := range []string{event.NewOrder, event.OrderUpdated, event.PromotionCreated} {
		notifications <- event.NewNotification(domain.StoreRoom("7"), "7", name, nil, time.Now())
	}

	// Then notifications are consumed in order
	req.Equal(event.NewOrder, <-received)
	req.Equal(event.OrderUpdated, <-received)
	req.Equal(event.PromotionCreated, <-received)

	cancel()
	req.NoError(<-done)
}
