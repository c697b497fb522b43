package rabbit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/Gustavuu/venice-orders/internal/port"
	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultQueueName = "orders.created"

type publisher struct {
	conn  *amqp.Connection
	queue string
}

// NewPublisher publishes creation events to the named queue over the given
// connection. A fresh channel is opened per publish and the queue is
// re-declared every time; the declaration is idempotent.
func NewPublisher(conn *amqp.Connection, queue string) port.EventPublisher {
	if queue == "" {
		queue = DefaultQueueName
	}

	return &publisher{conn: conn, queue: queue}
}

func (p *publisher) PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return &domain.PublishError{Queue: p.queue, Err: fmt.Errorf("open channel: %w", err)}
	}
	defer ch.Close()

	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return &domain.PublishError{Queue: p.queue, Err: fmt.Errorf("declare queue: %w", err)}
	}

	body, err := json.Marshal(event)
	if err != nil {
		return &domain.PublishError{Queue: p.queue, Err: fmt.Errorf("marshal event: %w", err)}
	}

	msg := amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}

	// default exchange, queue name as routing key
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return &domain.PublishError{Queue: p.queue, Err: err}
	}

	return nil
}
