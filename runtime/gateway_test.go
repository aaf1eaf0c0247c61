package runtime

import (
	"context"
	"log/slog"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/mocks"
	"tienda-live/sink"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGateway_NotifyStoreAdmins(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rooms := NewRooms(log, NewRegistry(), nil)
	fanout := make(chan event.Notification, 1)
	gateway := NewGateway(log, rooms, fanout, nil)

	admin := domain.NewConnectionID()
	adminSink := sink.NewConnectionSink(1)
	rooms.Register(admin, adminSink)
	rooms.JoinStoreAdmin("7", admin)

	// When a new order is announced to the admins of store 7
	gateway.NotifyStoreAdmins(context.Background(), "7", event.NewOrder, event.Fields{"tipo": "nueva_orden"})

	// Then the admin receives it with a timestamp
	n := <-adminSink.Events
	req.Equal(event.NewOrder, n.Name)
	req.Equal(domain.StoreAdminRoom("7"), n.Room())
	req.Equal("nueva_orden", n.Payload()["tipo"])
	req.NotEmpty(n.Payload()["timestamp"])

	// And the permanent sinks get it too
	forwarded := <-fanout
	req.Equal(n, forwarded)
}

func TestGateway_NotifyOrder_Reaches_Trackers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rooms := NewRooms(log, NewRegistry(), nil)
	gateway := NewGateway(log, rooms, nil, nil)

	tracker := domain.NewConnectionID()
	trackerSink := sink.NewConnectionSink(1)
	rooms.Register(tracker, trackerSink)
	rooms.JoinOrder("ORD-654321-042", tracker)

	gateway.NotifyOrder(context.Background(), "7", "ORD-654321-042", event.OrderUpdated, event.Fields{"nuevoEstado": "enviada"})

	n := <-trackerSink.Events
	req.Equal(domain.StoreID("7"), n.StoreID)
	req.Equal("enviada", n.Data["nuevoEstado"])
}

func TestGateway_Never_Fails_The_Caller(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rooms := NewRooms(log, NewRegistry(), nil)
	gateway := NewGateway(log, rooms, nil, nil)

	connectionID := domain.NewConnectionID()
	mockSink := mocks.NewMockEventSink(ctrl)
	rooms.Register(connectionID, mockSink)
	rooms.JoinStore("7", connectionID)

	// Given a sink that panics
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n event.Notification) error {
			panic("boom")
		}).Times(1)

	// When notifying, then nothing propagates
	gateway.NotifyStore(context.Background(), "7", event.ConfigUpdated, event.Fields{"campos": []string{"logo_url"}})

	// And a store without any listener is silently ignored
	gateway.NotifyStoreCustomers(context.Background(), "8", event.PromotionCreated, nil)
	gateway.NotifyStore(context.Background(), "", event.ConfigUpdated, nil)
}

func TestGateway_Full_Fanout_Does_Not_Block(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rooms := NewRooms(log, NewRegistry(), nil)
	fanout := make(chan event.Notification)
	gateway := NewGateway(log, rooms, fanout, nil)

	done := make(chan struct{})
	go func() {
		gateway.NotifyStore(context.Background(), "7", event.ConfigUpdated, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("NotifyStore blocked on the fanout channel")
	}
}

func TestGateway_EmitLocal_Is_Not_Forwarded(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rooms := NewRooms(log, NewRegistry(), nil)
	fanout := make(chan event.Notification, 1)
	gateway := NewGateway(log, rooms, fanout, nil)

	connectionID := domain.NewConnectionID()
	s := sink.NewConnectionSink(1)
	rooms.Register(connectionID, s)
	rooms.JoinStore("7", connectionID)

	n := event.NewNotification(domain.StoreRoom("7"), "7", event.PromotionDeleted, event.Fields{"eventoId": "e1"}, time.Now())
	req.Equal(1, gateway.EmitLocal(context.Background(), n))

	req.Len(s.Events, 1)
	req.Empty(fanout)
}
