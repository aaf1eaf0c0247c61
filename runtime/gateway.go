package runtime

import (
	"context"
	"log/slog"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/errors"
	"tienda-live/observability"
	"time"
)

// Gateway pushes notifications from business code to rooms.
//
// Delivery is best-effort: a missing audience, a full connection buffer or
// even a panicking sink is logged and never reported to the caller, so a
// notification can not fail the write that triggered it.
//
// Every notification emitted locally is also forwarded, without blocking,
// to the fan-out channel feeding the permanent sinks (metrics, relay, broker).
type Gateway struct {
	log     *slog.Logger
	rooms   *Rooms
	fanout  chan<- event.Notification
	metrics *observability.Metrics
}

func NewGateway(log *slog.Logger, rooms *Rooms, fanout chan<- event.Notification, metrics *observability.Metrics) *Gateway {
	return &Gateway{log: log, rooms: rooms, fanout: fanout, metrics: metrics}
}

func (g *Gateway) NotifyStore(ctx context.Context, storeID domain.StoreID, eventName string, data event.Fields) {
	g.notify(ctx, domain.StoreRoom(storeID), storeID, eventName, data)
}

func (g *Gateway) NotifyStoreAdmins(ctx context.Context, storeID domain.StoreID, eventName string, data event.Fields) {
	g.notify(ctx, domain.StoreAdminRoom(storeID), storeID, eventName, data)
}

func (g *Gateway) NotifyStoreCustomers(ctx context.Context, storeID domain.StoreID, eventName string, data event.Fields) {
	g.notify(ctx, domain.StoreCustomersRoom(storeID), storeID, eventName, data)
}

func (g *Gateway) NotifyOrder(ctx context.Context, storeID domain.StoreID, orderNumber string, eventName string, data event.Fields) {
	g.notify(ctx, domain.OrderTrackingRoom(orderNumber), storeID, eventName, data)
}

// EmitLocal delivers a notification that originated on another instance.
// It is not forwarded again.
func (g *Gateway) EmitLocal(ctx context.Context, n event.Notification) int {
	return g.emit(ctx, n)
}

func (g *Gateway) notify(ctx context.Context, room domain.RoomKey, storeID domain.StoreID, eventName string, data event.Fields) {
	if room.IsEmpty() {
		g.log.Debug("Notification without target ignored", "event", eventName)
		return
	}
	n := event.NewNotification(room, storeID, eventName, data, time.Now())
	g.metrics.NotificationEmitted(eventName)

	if delivered := g.emit(ctx, n); delivered == 0 {
		g.log.Debug("Notification reached nobody", "room", room, "event", eventName, "reason", errors.ErrTransportUnavailable)
	}
	g.forward(n)
}

func (g *Gateway) emit(ctx context.Context, n event.Notification) (delivered int) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("Notification emission panicked", "room", n.Room(), "event", n.Name, "panic", r)
		}
	}()
	return g.rooms.Emit(ctx, n)
}

func (g *Gateway) forward(n event.Notification) {
	if g.fanout == nil {
		return
	}
	select {
	case g.fanout <- n:
	default:
		g.log.Warn("Fanout channel full, notification kept local", "room", n.Room(), "event", n.Name)
	}
}
