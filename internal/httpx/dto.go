package httpx

import (
	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateOrderRequest struct {
	CustomerID uuid.UUID            `json:"customer_id"`
	Items      []CreateOrderItemDTO `json:"items"`
}

type CreateOrderItemDTO struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// OrderID is set when the header committed before a later step failed,
	// so clients can tell partial writes from no write at all.
	OrderID string `json:"order_id,omitempty"`
}

func mapRequestItems(items []CreateOrderItemDTO) []domain.OrderItem {
	return lo.Map(items, func(item CreateOrderItemDTO, _ int) domain.OrderItem {
		return domain.OrderItem{
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	})
}
