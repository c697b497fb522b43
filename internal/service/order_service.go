package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/Gustavuu/venice-orders/internal/port"
	"github.com/google/uuid"
)

// OrderService runs the order write and read workflows across the four
// collaborators. The stores are not transactionally joined: the write is a
// best-effort sequential pass with a documented partial-failure window.
type OrderService struct {
	headers   port.HeaderStore
	items     port.ItemStore
	cache     port.ViewCache
	publisher port.EventPublisher
	logger    *slog.Logger
}

func NewOrderService(
	headers port.HeaderStore,
	items port.ItemStore,
	cache port.ViewCache,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		headers:   headers,
		items:     items,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder builds the aggregate and writes header, items and the creation
// event in that fixed order. A header failure aborts before anything is
// written. Item or publish failures are surfaced, but the header has already
// committed by then, so the returned id is valid whenever it is non-nil —
// callers can tell "header created, items/event may be missing" from
// "nothing created" by the id alone.
func (s *OrderService) CreateOrder(ctx context.Context, customerID uuid.UUID, items []domain.OrderItem) (uuid.UUID, error) {
	order, err := domain.NewOrder(customerID)
	if err != nil {
		return uuid.Nil, err
	}

	for _, item := range items {
		if err := order.AddItem(item); err != nil {
			return uuid.Nil, err
		}
	}

	if err := s.headers.SaveHeader(ctx, order); err != nil {
		return uuid.Nil, fmt.Errorf("headers.SaveHeader: %w", err)
	}

	if orderItems := order.Items(); len(orderItems) > 0 {
		if err := s.items.SaveItems(ctx, order.ID, orderItems); err != nil {
			s.logger.ErrorContext(ctx, "order header committed but items were not",
				"order_id", order.ID, "error", err)
			return order.ID, fmt.Errorf("items.SaveItems: %w", err)
		}
	}

	event := domain.NewOrderCreatedEvent(order)
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "order persisted but creation event was not published",
			"order_id", order.ID, "error", err)
		return order.ID, fmt.Errorf("publisher.PublishOrderCreated: %w", err)
	}

	return order.ID, nil
}

// GetOrderByID is cache-aside: a cached view is served as-is, accepting
// staleness up to the TTL. On a miss the stores are read, the view assembled
// and cached once before returning. NotFound is never cached.
func (s *OrderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (domain.OrderView, error) {
	if view, ok := s.cache.Get(ctx, orderID); ok {
		return view, nil
	}

	header, err := s.headers.GetHeaderByID(ctx, orderID)
	if err != nil {
		return domain.OrderView{}, fmt.Errorf("headers.GetHeaderByID: %w", err)
	}

	items, err := s.items.GetItemsByOrderID(ctx, orderID)
	if err != nil {
		return domain.OrderView{}, fmt.Errorf("items.GetItemsByOrderID: %w", err)
	}

	view := domain.AssembleView(header, items)

	s.cache.Set(ctx, orderID, view)

	return view, nil
}
