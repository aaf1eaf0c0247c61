package sink

import (
	"context"
	"tienda-live/domain/event"
	"tienda-live/errors"
)

// ConnectionSink is the outbound buffer of one websocket connection.
// The transport goroutine owning the connection drains Events.
type ConnectionSink struct {
	Events chan event.Notification
}

func NewConnectionSink(bufferSize int) *ConnectionSink {
	return &ConnectionSink{Events: make(chan event.Notification, bufferSize)}
}

// Consume is called by the rooms while emitting.
// A full buffer drops the notification for this connection only.
func (s *ConnectionSink) Consume(ctx context.Context, n event.Notification) error {
	select {
	case s.Events <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSinkFull
	}
}
