package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Header is the subset of an order persisted in the relational store.
type Header struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	CreatedAt   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal
}

// OrderView is the read-only projection of header + items returned to read
// callers and cached as serialized JSON. It is not the aggregate itself.
type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItemView `json:"items"`
}

type OrderItemView struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// AssembleView joins a header and its items into the response projection,
// status rendered as its name.
func AssembleView(header Header, items []OrderItem) OrderView {
	itemViews := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, OrderItemView{
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		})
	}

	return OrderView{
		ID:          header.ID,
		CustomerID:  header.CustomerID,
		CreatedAt:   header.CreatedAt,
		Status:      string(header.Status),
		TotalAmount: header.TotalAmount,
		Items:       itemViews,
	}
}
