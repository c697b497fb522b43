package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const OrderCreatedEventType = "order.created"

// OrderCreatedEvent is the versioned payload published after an order is
// persisted. The explicit event type tag keeps the queue contract stable.
type OrderCreatedEvent struct {
	EventType   string          `json:"event_type"`
	OrderID     uuid.UUID       `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventType:   OrderCreatedEventType,
		OrderID:     o.ID,
		TotalAmount: o.TotalAmount,
	}
}
