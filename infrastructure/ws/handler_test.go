package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/runtime"
	"time"

	fws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type received struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

func startServer(t *testing.T) (*runtime.Rooms, *runtime.Gateway, string) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rooms := runtime.NewRooms(log, runtime.NewRegistry(), nil)
	gateway := runtime.NewGateway(log, rooms, nil, nil)
	handler := NewHandler(log, rooms, 16)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.Register(app)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(listener) }()
	t.Cleanup(func() {
		handler.Close()
		_ = app.Shutdown()
	})
	return rooms, gateway, "ws://" + listener.Addr().String() + "/ws"
}

func dial(t *testing.T, url string) *fws.Conn {
	t.Helper()
	var (
		conn *fws.Conn
		err  error
	)
	require.Eventually(t, func() bool {
		conn, _, err = fws.DefaultDialer.Dial(url, nil)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *fws.Conn, name string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Frame{Event: name, Data: raw}))
}

func next(t *testing.T, conn *fws.Conn) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHandler_Join_Store_Then_Receive_Notification(t *testing.T) {
	req := require.New(t)
	rooms, gateway, url := startServer(t)

	// Given a connected browser
	conn := dial(t, url)
	req.Equal(event.ConnectionStatus, next(t, conn).Event)

	// When it joins store 7 with a numeric id
	send(t, conn, event.JoinStore, 7)
	status := next(t, conn)
	req.Equal(event.ConnectionStatus, status.Event)
	req.Equal("7", status.Data["tiendaId"])
	req.Equal(1, rooms.SizeOf(domain.StoreRoom("7")))

	// Then a notification to store 7 reaches it with a timestamp
	gateway.NotifyStore(context.Background(), "7", event.NewOrder, event.Fields{"numeroOrden": "ORD-1"})
	msg := next(t, conn)
	req.Equal(event.NewOrder, msg.Event)
	req.Equal("ORD-1", msg.Data["numeroOrden"])
	req.NotEmpty(msg.Data["timestamp"])
}

func TestHandler_Protocol(t *testing.T) {
	rooms, gateway, url := startServer(t)
	conn := dial(t, url)
	next(t, conn)

	t.Run("should answer ping with pong", func(t *testing.T) {
		req := require.New(t)
		send(t, conn, event.Ping, nil)
		req.Equal(event.Pong, next(t, conn).Event)
	})

	t.Run("should confirm a customer subscription without joining the general room", func(t *testing.T) {
		req := require.New(t)
		send(t, conn, event.JoinStoreCustomers, "3")
		msg := next(t, conn)
		req.Equal(event.SubscriptionConfirmed, msg.Event)
		req.Equal(1, rooms.SizeOf(domain.StoreCustomersRoom("3")))
		req.Zero(rooms.SizeOf(domain.StoreRoom("3")))
	})

	t.Run("should follow an order", func(t *testing.T) {
		req := require.New(t)
		send(t, conn, event.JoinOrder, "ORD-9")
		req.Equal(event.SubscriptionConfirmed, next(t, conn).Event)

		gateway.NotifyOrder(context.Background(), "3", "ORD-9", event.OrderUpdated, event.Fields{"nuevoEstado": "enviada"})
		msg := next(t, conn)
		req.Equal(event.OrderUpdated, msg.Event)
		req.Equal("enviada", msg.Data["nuevoEstado"])
	})

	t.Run("should refuse events only the server emits", func(t *testing.T) {
		req := require.New(t)
		send(t, conn, "update-orden-status", map[string]any{"tiendaId": 3})
		req.Equal(event.Error, next(t, conn).Event)
	})

	t.Run("should not merge a store id holding the separator into the customer room", func(t *testing.T) {
		req := require.New(t)

		// Given a store id that spells the customer room of store 3
		send(t, conn, event.JoinStore, "3:customers")

		// Then the join is refused and the customer room keeps its single member
		msg := next(t, conn)
		req.Equal(event.Error, msg.Event)
		req.Equal("invalid identifier", msg.Data["message"])
		req.Equal(1, rooms.SizeOf(domain.StoreCustomersRoom("3")))
	})

	t.Run("should leave rooms on disconnect", func(t *testing.T) {
		req := require.New(t)
		_ = conn.Close()
		req.Eventually(func() bool {
			return rooms.SizeOf(domain.StoreCustomersRoom("3")) == 0 &&
				rooms.SizeOf(domain.OrderTrackingRoom("ORD-9")) == 0
		}, 2*time.Second, 20*time.Millisecond)
	})
}

func TestIdentifier(t *testing.T) {
	req := require.New(t)
	req.Equal("7", identifier(json.RawMessage(`7`)))
	req.Equal("7", identifier(json.RawMessage(`" 7 "`)))
	req.Equal("", identifier(json.RawMessage(`null`)))
	req.Equal("", identifier(json.RawMessage(`{"tiendaId":7}`)))
	req.Equal("", identifier(nil))
}
