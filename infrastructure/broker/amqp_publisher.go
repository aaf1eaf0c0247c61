package broker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"tienda-live/domain/event"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes business notifications to a topic exchange so that
// back-office consumers (printing, accounting, delivery) can follow a store.
// Routing keys are tienda.{storeID}.{event}.
type AMQPPublisher struct {
	log      *slog.Logger
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPPublisher(log *slog.Logger, url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := DeclareExchange(ch, exchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &AMQPPublisher{log: log, conn: conn, ch: ch, exchange: exchange}, nil
}

// DeclareExchange is idempotent and shared with consumers.
func DeclareExchange(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("amqp exchange declare %s: %w", exchange, err)
	}
	return nil
}

func RoutingKey(n event.Notification) string {
	return fmt.Sprintf("tienda.%s.%s", n.StoreID, n.Name)
}

func (p *AMQPPublisher) Publish(ctx context.Context, n event.Notification) error {
	body, err := encode("", n)
	if err != nil {
		return err
	}
	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(n), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.Timestamp,
		Type:         n.Name,
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.log.Debug("AMQP channel close", "error", err)
	}
	return p.conn.Close()
}

// Decode turns a broker delivery back into a notification.
func Decode(body []byte) (event.Notification, error) {
	_, n, err := decode(body)
	return n, err
}
