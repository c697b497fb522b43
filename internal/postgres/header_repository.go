package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/Gustavuu/venice-orders/internal/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	insertHeaderSQL = `INSERT INTO orders (id, customer_id, created_at, status, total_amount)
VALUES ($1, $2, $3, $4, $5::numeric)`

	getHeaderSQL = `SELECT id, customer_id, created_at, status, total_amount::text
FROM orders
WHERE id = $1`
)

type headerRepository struct {
	pool *pgxpool.Pool
}

func NewHeaderStore(pool *pgxpool.Pool) port.HeaderStore {
	return &headerRepository{pool: pool}
}

func (r *headerRepository) SaveHeader(ctx context.Context, order *domain.Order) error {
	args := mapOrderToInsertArgs(order)

	if _, err := r.pool.Exec(ctx, insertHeaderSQL, args...); err != nil {
		return &domain.PersistenceError{Store: "postgres", Op: "insert order header", Err: err}
	}

	return nil
}

func (r *headerRepository) GetHeaderByID(ctx context.Context, orderID uuid.UUID) (domain.Header, error) {
	var h domain.Header

	if orderID == uuid.Nil {
		return h, fmt.Errorf("orderID is empty")
	}

	var row headerRow
	err := r.pool.QueryRow(ctx, getHeaderSQL, orderID).
		Scan(&row.id, &row.customerID, &row.createdAt, &row.status, &row.totalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return h, fmt.Errorf("query order header: %w", domain.ErrNotFound)
		}
		return h, &domain.PersistenceError{Store: "postgres", Op: "query order header", Err: err}
	}

	header, err := mapRowToHeader(row)
	if err != nil {
		return h, fmt.Errorf("mapRowToHeader: %w", err)
	}

	return header, nil
}

type headerRow struct {
	id          uuid.UUID
	customerID  uuid.UUID
	createdAt   time.Time
	status      string
	totalAmount string
}

func mapOrderToInsertArgs(order *domain.Order) []any {
	return []any{
		order.ID,
		order.CustomerID,
		order.CreatedAt,
		string(order.Status),
		order.TotalAmount.String(),
	}
}

func mapRowToHeader(row headerRow) (domain.Header, error) {
	var h domain.Header

	status, err := domain.ToOrderStatus(row.status)
	if err != nil {
		return h, fmt.Errorf("domain.ToOrderStatus[%s]: %w", row.status, err)
	}

	total, err := decimal.NewFromString(row.totalAmount)
	if err != nil {
		return h, fmt.Errorf("decimal.NewFromString[%s]: %w", row.totalAmount, err)
	}

	return domain.Header{
		ID:          row.id,
		CustomerID:  row.customerID,
		CreatedAt:   row.createdAt,
		Status:      status,
		TotalAmount: total,
	}, nil
}
