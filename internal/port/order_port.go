package port

import (
	"context"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/google/uuid"
)

// HeaderStore persists the order header in the relational store. It knows
// nothing about items.
type HeaderStore interface {
	SaveHeader(ctx context.Context, order *domain.Order) error
	GetHeaderByID(ctx context.Context, orderID uuid.UUID) (domain.Header, error)
}

// ItemStore persists the full item list as one document per order.
// SaveItems with an empty list is a no-op; reading an absent document
// yields an empty slice, not an error.
type ItemStore interface {
	SaveItems(ctx context.Context, orderID uuid.UUID, items []domain.OrderItem) error
	GetItemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
}

// ViewCache fronts reads with serialized response views. Connectivity
// failures degrade to a miss on Get and a no-op on Set; they are never
// surfaced to the workflow.
type ViewCache interface {
	Get(ctx context.Context, orderID uuid.UUID) (domain.OrderView, bool)
	Set(ctx context.Context, orderID uuid.UUID, view domain.OrderView)
}

// EventPublisher fires the creation event at a named durable queue.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error
}
