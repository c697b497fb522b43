package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root. The header part (identity, customer, status,
// total) lives in Postgres, the item list in Mongo; both sides share ID as
// the join key.
type Order struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	CreatedAt   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal

	items []OrderItem
}

type OrderItem struct {
	ProductID   uuid.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i OrderItem) Validate() error {
	if i.ProductID == uuid.Nil {
		return &ValidationError{Field: "productId", Reason: "is empty"}
	}
	if i.Description == "" {
		return &ValidationError{Field: "description", Reason: "is empty"}
	}
	if i.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if i.UnitPrice.IsNegative() {
		return &ValidationError{Field: "unitPrice", Reason: "must not be negative"}
	}
	return nil
}

func NewOrder(customerID uuid.UUID) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, &ValidationError{Field: "customerId", Reason: "is empty"}
	}

	return &Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		CreatedAt:   time.Now().UTC(),
		Status:      OrderStatusPending,
		TotalAmount: decimal.Zero,
	}, nil
}

// AddItem appends the item and recomputes TotalAmount over all current items.
// Insertion order of the item list is preserved.
func (o *Order) AddItem(item OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recomputeTotal()

	return nil
}

// Items returns a copy so the internal list cannot be mutated from outside.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) MarkInvoiced() error {
	if o.Status != OrderStatusPending {
		return ErrInvalidStateTransition
	}
	o.Status = OrderStatusInvoiced
	return nil
}

func (o *Order) MarkCancelled() error {
	if o.Status == OrderStatusCancelled {
		return ErrInvalidStateTransition
	}
	o.Status = OrderStatusCancelled
	return nil
}

func (o *Order) recomputeTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	o.TotalAmount = total
}
