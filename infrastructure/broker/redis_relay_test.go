package broker

import (
	"context"
	"log/slog"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// Requires Redis on localhost:6379, skipped otherwise.
const testRedisAddr = "localhost:6379"

func TestRedisRelay_Ignores_Own_Messages(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, testRedisAddr)
	if err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	defer func() { _ = client.Close() }()

	channel := "tienda-test-" + time.Now().Format("150405.000000")
	a := NewRedisRelay(log, client, channel)
	b := NewRedisRelay(log, client, channel)

	received := make(chan event.Notification, 2)
	subCtx, stop := context.WithCancel(ctx)
	defer stop()
	ready := make(chan struct{})
	go func() {
		close(ready)
		_ = a.Subscribe(subCtx, func(n event.Notification) { received <- n })
	}()
	<-ready
	time.Sleep(100 * time.Millisecond)

	// When both instances publish
	req.NoError(a.Publish(ctx, event.NewNotification(domain.StoreRoom("7"), "7", event.ConfigUpdated, nil, time.Now())))
	req.NoError(b.Publish(ctx, event.NewNotification(domain.StoreRoom("7"), "7", event.NewOrder, nil, time.Now())))

	// Then a only sees what b published
	select {
	case n := <-received:
		req.Equal(event.NewOrder, n.Name)
	case <-ctx.Done():
		req.Fail("relayed notification not received")
	}
	select {
	case n := <-received:
		req.Failf("unexpected notification", "%s", n.Name)
	case <-time.After(100 * time.Millisecond):
	}
}
