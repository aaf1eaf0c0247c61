package ws

import (
	"context"
	"log/slog"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/runtime"
	"tienda-live/sink"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const (
	maxFrameSize        = 64 * 1024
	defaultWriteTimeout = 10 * time.Second
)

// Handler serves the /ws endpoint.
//
// Each connection gets its own buffered sink registered in the rooms. A single
// writer goroutine drains it, so room emissions and protocol replies never
// write to the socket concurrently.
type Handler struct {
	log          *slog.Logger
	rooms        *runtime.Rooms
	bufferSize   int
	writeTimeout time.Duration
	root         context.Context
	cancel       context.CancelFunc
}

func NewHandler(log *slog.Logger, rooms *runtime.Rooms, bufferSize int) *Handler {
	root, cancel := context.WithCancel(context.Background())
	return &Handler{
		log:          log,
		rooms:        rooms,
		bufferSize:   bufferSize,
		writeTimeout: defaultWriteTimeout,
		root:         root,
		cancel:       cancel,
	}
}

func (h *Handler) Register(router fiber.Router) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(h.Serve))
}

// Close ends every open connection.
func (h *Handler) Close() {
	h.cancel()
}

func (h *Handler) Serve(c *websocket.Conn) {
	connectionID := domain.NewConnectionID()
	out := sink.NewConnectionSink(h.bufferSize)
	h.rooms.Register(connectionID, out)

	ctx, cancel := context.WithCancel(h.root)
	written := make(chan struct{})
	go func() {
		defer close(written)
		h.write(ctx, c, connectionID, out)
	}()
	defer func() {
		h.rooms.Disconnect(connectionID)
		cancel()
		<-written
		_ = c.Close()
		h.log.Debug("Websocket closed", "connection", connectionID)
	}()

	h.log.Debug("Websocket opened", "connection", connectionID, "ip", c.IP())
	h.reply(ctx, out, event.ConnectionStatus, event.Fields{"status": "connected", "connectionId": connectionID})

	c.SetReadLimit(maxFrameSize)
	for {
		_, payload, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				h.log.Warn("Websocket read failed", "connection", connectionID, "error", err)
			}
			return
		}
		frame, err := decodeFrame(payload)
		if err != nil {
			h.reply(ctx, out, event.Error, event.Fields{"message": err.Error()})
			continue
		}
		h.dispatch(ctx, connectionID, out, frame)
	}
}

func (h *Handler) dispatch(ctx context.Context, connectionID domain.ConnectionID, out *sink.ConnectionSink, frame Frame) {
	id := identifier(frame.Data)
	storeID := domain.StoreID(id)

	switch frame.Event {
	case event.Ping:
		h.reply(ctx, out, event.Pong, event.Fields{})
		return
	case event.JoinStore, event.LeaveStore, event.JoinStoreCustomers, event.LeaveStoreCustomers,
		event.JoinStoreAdmin, event.JoinOrder, event.LeaveOrder:
		if id == "" {
			h.log.Debug("Room request without identifier ignored", "connection", connectionID, "event", frame.Event)
			return
		}
		if !storeID.Valid() {
			h.reply(ctx, out, event.Error, event.Fields{"message": "invalid identifier", "event": frame.Event})
			return
		}
	default:
		h.reply(ctx, out, event.Error, event.Fields{"message": "unsupported event", "event": frame.Event})
		return
	}

	switch frame.Event {
	case event.JoinStore:
		h.rooms.JoinStore(storeID, connectionID)
		h.reply(ctx, out, event.ConnectionStatus, event.Fields{"status": "connected", "tiendaId": id})
	case event.LeaveStore:
		h.rooms.LeaveStore(storeID, connectionID)
	case event.JoinStoreCustomers:
		h.rooms.JoinStoreCustomers(storeID, connectionID)
		h.reply(ctx, out, event.SubscriptionConfirmed, event.Fields{"tiendaId": id, "message": "Suscrito a actualizaciones"})
	case event.LeaveStoreCustomers:
		h.rooms.LeaveStoreCustomers(storeID, connectionID)
	case event.JoinStoreAdmin:
		h.rooms.JoinStoreAdmin(storeID, connectionID)
		h.reply(ctx, out, event.ConnectionStatus, event.Fields{"status": "connected", "tiendaId": id, "rol": "admin"})
	case event.JoinOrder:
		h.rooms.JoinOrder(id, connectionID)
		h.reply(ctx, out, event.SubscriptionConfirmed, event.Fields{"numeroOrden": id, "message": "Suscrito a la orden"})
	case event.LeaveOrder:
		h.rooms.LeaveOrder(id, connectionID)
	}
}

// reply goes through the connection sink like any room notification.
func (h *Handler) reply(ctx context.Context, out *sink.ConnectionSink, name string, data event.Fields) {
	n := event.NewNotification("", "", name, data, time.Now())
	if err := out.Consume(ctx, n); err != nil {
		h.log.Warn("Reply dropped", "event", name, "error", err)
	}
}

func (h *Handler) write(ctx context.Context, c *websocket.Conn, connectionID domain.ConnectionID, out *sink.ConnectionSink) {
	for {
		select {
		case <-ctx.Done():
			_ = c.Close()
			return
		case n := <-out.Events:
			_ = c.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.WriteJSON(outbound{Event: n.Name, Data: n.Payload()}); err != nil {
				h.log.Warn("Websocket write failed", "connection", connectionID, "event", n.Name, "error", err)
				_ = c.Close()
				return
			}
		}
	}
}
