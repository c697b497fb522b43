package domain_test

import (
	"testing"
	"time"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssembleView(t *testing.T) {
	header := domain.Header{
		ID:          uuid.MustParse(gofakeit.UUID()),
		CustomerID:  uuid.MustParse(gofakeit.UUID()),
		CreatedAt:   time.Now().UTC(),
		Status:      domain.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("36.55"),
	}
	items := []domain.OrderItem{
		item("Widget", 2, "10.00"),
		item("Gadget", 3, "5.50"),
	}

	view := domain.AssembleView(header, items)

	assert.Equal(t, header.ID, view.ID)
	assert.Equal(t, header.CustomerID, view.CustomerID)
	assert.Equal(t, "Pending", view.Status)
	assert.True(t, header.TotalAmount.Equal(view.TotalAmount))

	// item order and line totals follow the stored list
	if assert.Len(t, view.Items, 2) {
		assert.Equal(t, items[0].ProductID, view.Items[0].ProductID)
		assert.True(t, decimal.RequireFromString("20.00").Equal(view.Items[0].LineTotal))
		assert.True(t, decimal.RequireFromString("16.50").Equal(view.Items[1].LineTotal))
	}
}

func TestAssembleView_NoItems(t *testing.T) {
	header := domain.Header{
		ID:          uuid.MustParse(gofakeit.UUID()),
		CustomerID:  uuid.MustParse(gofakeit.UUID()),
		CreatedAt:   time.Now().UTC(),
		Status:      domain.OrderStatusCancelled,
		TotalAmount: decimal.Zero,
	}

	view := domain.AssembleView(header, nil)

	assert.Equal(t, "Cancelled", view.Status)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
}
