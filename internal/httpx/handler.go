package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/Gustavuu/venice-orders/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler exposes the order workflows over HTTP.
type Handler struct {
	orders *service.OrderService
	issuer *TokenIssuer

	authUsername string
	authPassword string
}

func NewHandler(orders *service.OrderService, issuer *TokenIssuer, authUsername, authPassword string) *Handler {
	return &Handler{
		orders:       orders,
		issuer:       issuer,
		authUsername: authUsername,
		authPassword: authPassword,
	}
}

// Login checks the configured demo credentials and returns a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if req.Username != h.authUsername || req.Password != h.authPassword {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "")
		return
	}

	token, err := h.issuer.Issue(req.Username)
	if err != nil {
		slog.ErrorContext(r.Context(), "token issuance failed", "error", err)
		writeError(w, http.StatusInternalServerError, "token_error", "")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	orderID, err := h.orders.CreateOrder(r.Context(), req.CustomerID, mapRequestItems(req.Items))
	if err != nil {
		h.writeWorkflowError(w, orderID, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%s", orderID))
	writeJSON(w, http.StatusCreated, CreateOrderResponse{ID: orderID})
}

func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", err.Error())
		return
	}

	view, err := h.orders.GetOrderByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "order_not_found", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "read_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// writeWorkflowError maps the write workflow's error taxonomy to responses.
// When the header already committed, the id is included so callers can see
// the partial write.
func (h *Handler) writeWorkflowError(w http.ResponseWriter, orderID uuid.UUID, err error) {
	committedID := ""
	if orderID != uuid.Nil {
		committedID = orderID.String()
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, "invalid_request", validationErr.Error())
		return
	}

	var publishErr *domain.PublishError
	if errors.As(err, &publishErr) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "event_not_published",
			Message: publishErr.Error(),
			OrderID: committedID,
		})
		return
	}

	var persistenceErr *domain.PersistenceError
	if errors.As(err, &persistenceErr) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "persistence_failed",
			Message: persistenceErr.Error(),
			OrderID: committedID,
		})
		return
	}

	writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
