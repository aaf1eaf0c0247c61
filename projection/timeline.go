// Package projection keeps read models built from emitted notifications.
package projection

import (
	"context"
	"sync"
	"tienda-live/domain"
	"tienda-live/domain/event"
)

// Timeline keeps the last notifications broadcast to each store room so a
// dashboard opening late can catch up. Admin, customer and order rooms are
// not recorded.
type Timeline struct {
	mu       sync.RWMutex
	capacity int
	stores   map[domain.StoreID][]event.Notification
}

func NewTimeline(capacity int) *Timeline {
	return &Timeline{capacity: capacity, stores: make(map[domain.StoreID][]event.Notification)}
}

func (t *Timeline) Consume(_ context.Context, n event.Notification) error {
	if n.StoreID == "" || n.Room() != domain.StoreRoom(n.StoreID) {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	list := append(t.stores[n.StoreID], n)
	if len(list) > t.capacity {
		list = list[len(list)-t.capacity:]
	}
	t.stores[n.StoreID] = list
	return nil
}

// Recent returns at most limit notifications of the store, newest first.
func (t *Timeline) Recent(storeID domain.StoreID, limit int) []event.Notification {
	t.mu.RLock()
	defer t.mu.RUnlock()
	list := t.stores[storeID]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	out := make([]event.Notification, 0, limit)
	for i := len(list) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, list[i])
	}
	return out
}
