package sink

import (
	"context"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/errors"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectionSink_Consume(t *testing.T) {
	req := require.New(t)
	s := NewConnectionSink(1)
	n := event.NewNotification(domain.StoreRoom("1"), "1", event.NewOrder, nil, time.Now())

	// When the buffer has room
	req.NoError(s.Consume(context.Background(), n))

	// Then a full buffer drops without blocking
	err := s.Consume(context.Background(), n)
	req.ErrorIs(err, errors.ErrSinkFull)

	req.Equal(n, <-s.Events)
}
