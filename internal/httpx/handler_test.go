package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/Gustavuu/venice-orders/internal/httpx"
	"github.com/Gustavuu/venice-orders/internal/service"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const (
	testUser     = "test_user"
	testPassword = "password123"
)

type memHeaderStore struct {
	headers map[uuid.UUID]domain.Header
}

func (m *memHeaderStore) SaveHeader(_ context.Context, order *domain.Order) error {
	m.headers[order.ID] = domain.Header{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		CreatedAt:   order.CreatedAt,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
	}
	return nil
}

func (m *memHeaderStore) GetHeaderByID(_ context.Context, orderID uuid.UUID) (domain.Header, error) {
	header, ok := m.headers[orderID]
	if !ok {
		return domain.Header{}, domain.ErrNotFound
	}
	return header, nil
}

type memItemStore struct {
	docs map[uuid.UUID][]domain.OrderItem
}

func (m *memItemStore) SaveItems(_ context.Context, orderID uuid.UUID, items []domain.OrderItem) error {
	m.docs[orderID] = items
	return nil
}

func (m *memItemStore) GetItemsByOrderID(_ context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	return m.docs[orderID], nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) (domain.OrderView, bool) {
	return domain.OrderView{}, false
}
func (noopCache) Set(context.Context, uuid.UUID, domain.OrderView) {}

type memPublisher struct {
	err error
}

func (m *memPublisher) PublishOrderCreated(context.Context, domain.OrderCreatedEvent) error {
	return m.err
}

func newServer(t *testing.T, publisher *memPublisher) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orders := service.NewOrderService(
		&memHeaderStore{headers: make(map[uuid.UUID]domain.Header)},
		&memItemStore{docs: make(map[uuid.UUID][]domain.OrderItem)},
		noopCache{},
		publisher,
		logger,
	)

	issuer := httpx.NewTokenIssuer("test-secret")
	handler := httpx.NewHandler(orders, issuer, testUser, testPassword)

	server := httptest.NewServer(httpx.NewRouter(handler, issuer))
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()

	body, _ := json.Marshal(httpx.LoginRequest{Username: testUser, Password: testPassword})

	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp httpx.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

func doJSON(t *testing.T, method, url, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func createOrderRequest() httpx.CreateOrderRequest {
	var req httpx.CreateOrderRequest
	req.CustomerID = uuid.MustParse(gofakeit.UUID())
	req.Items = []httpx.CreateOrderItemDTO{
		{
			ProductID:   uuid.MustParse(gofakeit.UUID()),
			Description: "Widget",
			Quantity:    2,
			UnitPrice:   mustDecimal("10.00"),
		},
	}
	return req
}

func TestLogin(t *testing.T) {
	server := newServer(t, &memPublisher{})

	tests := []struct {
		name       string
		username   string
		password   string
		wantStatus int
	}{
		{
			name:       "valid credentials: token issued",
			username:   testUser,
			password:   testPassword,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password: unauthorized",
			username:   testUser,
			password:   "nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user: unauthorized",
			username:   "someone",
			password:   testPassword,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(httpx.LoginRequest{Username: tt.username, Password: tt.password})

			resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestOrders_RequireBearerToken(t *testing.T) {
	server := newServer(t, &memPublisher{})

	resp := doJSON(t, http.MethodPost, server.URL+"/api/orders", "", createOrderRequest())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/orders/"+uuid.NewString(), "garbage-token", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateOrder_HTTP(t *testing.T) {
	server := newServer(t, &memPublisher{})
	token := login(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/orders", token, createOrderRequest())
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created httpx.CreateOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEqual(t, uuid.Nil, created.ID)

	location := resp.Header.Get("Location")
	assert.Equal(t, fmt.Sprintf("/api/orders/%s", created.ID), location)
}

func TestCreateOrder_HTTPValidation(t *testing.T) {
	server := newServer(t, &memPublisher{})
	token := login(t, server)

	t.Run("invalid item: 400", func(t *testing.T) {
		req := createOrderRequest()
		req.Items[0].Quantity = -1

		resp := doJSON(t, http.MethodPost, server.URL+"/api/orders", token, req)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing customer: 400", func(t *testing.T) {
		req := createOrderRequest()
		req.CustomerID = uuid.Nil

		resp := doJSON(t, http.MethodPost, server.URL+"/api/orders", token, req)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetOrder_HTTP(t *testing.T) {
	server := newServer(t, &memPublisher{})
	token := login(t, server)

	create := createOrderRequest()
	resp := doJSON(t, http.MethodPost, server.URL+"/api/orders", token, create)
	var created httpx.CreateOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	t.Run("existing order: 200 with view", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/orders/"+created.ID.String(), token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view domain.OrderView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))

		assert.Equal(t, created.ID, view.ID)
		assert.Equal(t, create.CustomerID, view.CustomerID)
		assert.Equal(t, "Pending", view.Status)
		assert.True(t, mustDecimal("20.00").Equal(view.TotalAmount))
		require.Len(t, view.Items, 1)
	})

	t.Run("unknown order: 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/orders/"+uuid.NewString(), token, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id: 400", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/orders/not-a-uuid", token, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateOrder_PublishFailureExposesCommittedID(t *testing.T) {
	publisher := &memPublisher{
		err: &domain.PublishError{Queue: "orders.created", Err: fmt.Errorf("connection refused")},
	}
	server := newServer(t, publisher)
	token := login(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/orders", token, createOrderRequest())
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))

	assert.Equal(t, "event_not_published", errResp.Error)

	// the header committed before the publish failed, the id must be visible
	orderID, err := uuid.Parse(errResp.OrderID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, orderID)
}
