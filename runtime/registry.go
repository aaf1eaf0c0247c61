package runtime

import (
	"sync"
	"tienda-live/contract"
	"tienda-live/domain"
)

type Set map[domain.ConnectionID]struct{}

// Registry is the in-memory map of rooms to live connections.
// Every instance is independent; nothing here is persisted, so clients
// re-join after a restart.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[domain.ConnectionID]contract.EventSink          // connection -> sink
	roomMembers map[domain.RoomKey]Set                              // room -> connections
	memberships map[domain.ConnectionID]map[domain.RoomKey]struct{} // connection -> rooms
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[domain.ConnectionID]contract.EventSink),
		roomMembers: make(map[domain.RoomKey]Set),
		memberships: make(map[domain.ConnectionID]map[domain.RoomKey]struct{}),
	}
}

// Register records the outbound sink of a connection at handshake.
func (r *Registry) Register(connectionID domain.ConnectionID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[connectionID] = sink
}

// Join adds the connection to the room, creating the room on the fly.
// It is idempotent and returns false when nothing changed. An empty room key is a no-op.
func (r *Registry) Join(room domain.RoomKey, connectionID domain.ConnectionID) bool {
	if room.IsEmpty() || connectionID == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.roomMembers[room]
	if !ok {
		members = make(Set)
		r.roomMembers[room] = members
	}
	if _, already := members[connectionID]; already {
		return false
	}
	members[connectionID] = struct{}{}

	rooms, ok := r.memberships[connectionID]
	if !ok {
		rooms = make(map[domain.RoomKey]struct{})
		r.memberships[connectionID] = rooms
	}
	rooms[room] = struct{}{}
	return true
}

// Leave removes the connection from the room and drops the room once empty.
// Unknown rooms and connections are ignored.
func (r *Registry) Leave(room domain.RoomKey, connectionID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leave(room, connectionID)
}

func (r *Registry) leave(room domain.RoomKey, connectionID domain.ConnectionID) {
	if members, ok := r.roomMembers[room]; ok {
		delete(members, connectionID)
		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(r.roomMembers, room)
		}
	}
	if rooms, ok := r.memberships[connectionID]; ok {
		delete(rooms, room)
		if len(rooms) == 0 {
			delete(r.memberships, connectionID)
		}
	}
}

// Disconnect removes the connection from every room it joined, forgets its
// sink and returns the rooms it left.
func (r *Registry) Disconnect(connectionID domain.ConnectionID) []domain.RoomKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, connectionID)
	var left []domain.RoomKey
	for room := range r.memberships[connectionID] {
		left = append(left, room)
	}
	for _, room := range left {
		r.leave(room, connectionID)
	}
	return left
}

// SizeOf returns the number of connections in the room, 0 when absent.
func (r *Registry) SizeOf(room domain.RoomKey) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.roomMembers[room])
}

// Sinks returns a snapshot of the sinks of the room's members.
// Connections joined without a registered sink are skipped.
func (r *Registry) Sinks(room domain.RoomKey) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[room]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(members))
	for connectionID := range members {
		if sink, exists := r.sessions[connectionID]; exists {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

func (r *Registry) Stats() domain.ConnectionStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := domain.ConnectionStats{
		TotalConnections:   len(r.sessions),
		ConnectionsByStore: make(map[string]int),
		AdminsByStore:      make(map[string]int),
		CustomersByStore:   make(map[string]int),
	}
	for room, members := range r.roomMembers {
		kind, target, ok := room.Parse()
		if !ok {
			continue
		}
		switch kind {
		case domain.GeneralRoom:
			stats.ConnectionsByStore[target] = len(members)
		case domain.AdminRoom:
			stats.AdminsByStore[target] = len(members)
		case domain.CustomerRoom:
			stats.CustomersByStore[target] = len(members)
		case domain.OrderRoom:
			stats.TrackedOrders++
		}
	}
	stats.ActiveStores = len(stats.ConnectionsByStore)
	return stats
}
