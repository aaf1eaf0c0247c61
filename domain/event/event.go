package event

import (
	"tienda-live/domain"
	"time"
)

// Fields is the free-form payload of a notification.
type Fields map[string]any

// Notification is an immutable event pushed to the members of one room.
type Notification struct {
	Name      string
	StoreID   domain.StoreID
	RoomKey   domain.RoomKey
	Data      Fields
	Timestamp time.Time
}

func NewNotification(room domain.RoomKey, storeID domain.StoreID, name string, data Fields, at time.Time) Notification {
	return Notification{
		Name:      name,
		StoreID:   storeID,
		RoomKey:   room,
		Data:      data,
		Timestamp: at.UTC(),
	}
}

func (n Notification) Room() domain.RoomKey { return n.RoomKey }

// Payload is what clients receive as the event data: the fields plus an ISO8601 timestamp.
// The notification's own data is never mutated.
func (n Notification) Payload() Fields {
	out := make(Fields, len(n.Data)+1)
	for k, v := range n.Data {
		out[k] = v
	}
	if _, ok := out["timestamp"]; !ok {
		out["timestamp"] = n.Timestamp.Format(time.RFC3339Nano)
	}
	return out
}
