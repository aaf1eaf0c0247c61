package broker

import (
	"encoding/json"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"time"
)

// envelope is the wire form of a notification between instances and on the broker.
type envelope struct {
	Origin    string         `json:"origin,omitempty"`
	Name      string         `json:"event"`
	StoreID   string         `json:"tienda_id"`
	Room      string         `json:"room"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func encode(origin string, n event.Notification) ([]byte, error) {
	return json.Marshal(envelope{
		Origin:    origin,
		Name:      n.Name,
		StoreID:   n.StoreID.String(),
		Room:      n.Room().String(),
		Data:      n.Data,
		Timestamp: n.Timestamp,
	})
}

func decode(payload []byte) (string, event.Notification, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return "", event.Notification{}, err
	}
	n := event.NewNotification(domain.RoomKey(env.Room), domain.StoreID(env.StoreID), env.Name, env.Data, env.Timestamp)
	return env.Origin, n, nil
}
