package broker

import (
	"context"
	"fmt"
	"log/slog"
	"tienda-live/domain/event"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to addr and pings it with a short timeout.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// RedisRelay shares notifications between server instances over a Redis
// pub/sub channel. Each instance tags what it publishes with its own origin
// and ignores those messages when they come back.
type RedisRelay struct {
	log     *slog.Logger
	client  *redis.Client
	channel string
	origin  string
}

func NewRedisRelay(log *slog.Logger, client *redis.Client, channel string) *RedisRelay {
	return &RedisRelay{log: log, client: client, channel: channel, origin: uuid.NewString()}
}

func (r *RedisRelay) Origin() string { return r.origin }

func (r *RedisRelay) Publish(ctx context.Context, n event.Notification) error {
	payload, err := encode(r.origin, n)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Subscribe blocks until ctx is done or the subscription breaks.
func (r *RedisRelay) Subscribe(ctx context.Context, handle func(n event.Notification)) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer func() { _ = pubsub.Close() }()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe %s: %w", r.channel, err)
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("redis subscription %s closed", r.channel)
			}
			origin, n, err := decode([]byte(msg.Payload))
			if err != nil {
				r.log.Warn("Malformed relayed notification", "error", err)
				continue
			}
			if origin == r.origin {
				continue
			}
			handle(n)
		}
	}
}
