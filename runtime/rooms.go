package runtime

import (
	"context"
	"log/slog"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/observability"
)

// Rooms is the join/leave/emit protocol on top of the registry.
// The general, admin and customer rooms of a store are independent:
// joining one never implies membership of another.
type Rooms struct {
	log      *slog.Logger
	registry contract.IRegistry
	metrics  *observability.Metrics
}

func NewRooms(log *slog.Logger, registry contract.IRegistry, metrics *observability.Metrics) *Rooms {
	return &Rooms{log: log, registry: registry, metrics: metrics}
}

func (r *Rooms) Register(connectionID domain.ConnectionID, sink contract.EventSink) {
	r.registry.Register(connectionID, sink)
	r.metrics.ConnectionOpened()
}

func (r *Rooms) JoinStore(storeID domain.StoreID, connectionID domain.ConnectionID) bool {
	return r.join(domain.StoreRoom(storeID), connectionID)
}

func (r *Rooms) LeaveStore(storeID domain.StoreID, connectionID domain.ConnectionID) {
	r.leave(domain.StoreRoom(storeID), connectionID)
}

func (r *Rooms) JoinStoreAdmin(storeID domain.StoreID, connectionID domain.ConnectionID) bool {
	return r.join(domain.StoreAdminRoom(storeID), connectionID)
}

func (r *Rooms) LeaveStoreAdmin(storeID domain.StoreID, connectionID domain.ConnectionID) {
	r.leave(domain.StoreAdminRoom(storeID), connectionID)
}

func (r *Rooms) JoinStoreCustomers(storeID domain.StoreID, connectionID domain.ConnectionID) bool {
	return r.join(domain.StoreCustomersRoom(storeID), connectionID)
}

func (r *Rooms) LeaveStoreCustomers(storeID domain.StoreID, connectionID domain.ConnectionID) {
	r.leave(domain.StoreCustomersRoom(storeID), connectionID)
}

func (r *Rooms) JoinOrder(orderNumber string, connectionID domain.ConnectionID) bool {
	return r.join(domain.OrderTrackingRoom(orderNumber), connectionID)
}

func (r *Rooms) LeaveOrder(orderNumber string, connectionID domain.ConnectionID) {
	r.leave(domain.OrderTrackingRoom(orderNumber), connectionID)
}

// Disconnect drops the connection from every room it joined.
func (r *Rooms) Disconnect(connectionID domain.ConnectionID) {
	left := r.registry.Disconnect(connectionID)
	r.metrics.ConnectionClosed()
	r.log.Debug("Connection removed", "connection", connectionID, "rooms", len(left))
}

func (r *Rooms) SizeOf(room domain.RoomKey) int {
	return r.registry.SizeOf(room)
}

func (r *Rooms) Stats() domain.ConnectionStats {
	return r.registry.Stats()
}

// Emit hands the notification to every connection in its room at call time and
// returns how many accepted it. Connections joining afterwards do not get it.
// Sinks never block, so an empty or slow room never stalls the caller.
func (r *Rooms) Emit(ctx context.Context, n event.Notification) int {
	sinks := r.registry.Sinks(n.Room())
	if len(sinks) == 0 {
		r.log.Debug("No member in room", "room", n.Room(), "event", n.Name)
		return 0
	}

	delivered := 0
	for _, sink := range sinks {
		if err := sink.Consume(ctx, n); err != nil {
			r.metrics.Dropped(n.Name)
			r.log.Warn("Notification not delivered", "room", n.Room(), "event", n.Name, "error", err)
			continue
		}
		delivered++
	}
	r.metrics.Delivered(n.Name, delivered)
	return delivered
}

func (r *Rooms) join(room domain.RoomKey, connectionID domain.ConnectionID) bool {
	if room.IsEmpty() {
		return false
	}
	joined := r.registry.Join(room, connectionID)
	if joined {
		kind, _, _ := room.Parse()
		r.metrics.RoomJoined(string(kind))
		r.log.Debug("Joined room", "room", room, "connection", connectionID, "size", r.registry.SizeOf(room))
	}
	return joined
}

func (r *Rooms) leave(room domain.RoomKey, connectionID domain.ConnectionID) {
	if room.IsEmpty() {
		return
	}
	r.registry.Leave(room, connectionID)
	r.log.Debug("Left room", "room", room, "connection", connectionID)
}
