package http

import (
	"net/http"

	"bank-documents/domain"
	"bank-documents/service"
)

// orderResponse adds the display fields to a stored order. The monthly
// payment is stored unrounded and rounded here.
type orderResponse struct {
	domain.Order
	MonthlyPaymentDisplay string `json:"monthlyPaymentDisplay,omitempty"`
	PaymentSummary        string `json:"paymentSummary"`
}

func newOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{Order: o, PaymentSummary: service.PaymentSummary(o)}
	if o.MonthlyPayment != nil {
		rounded := service.RoundMoney(*o.MonthlyPayment)
		resp.MonthlyPayment = &rounded
		resp.MonthlyPaymentDisplay = rounded.StringFixed(2)
	}
	return resp
}

func newOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}
	return out
}

type OrderHandler struct {
	service *service.OrderService
}

func NewOrderHandler(service *service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Orders handles GET and POST /orders.
func (h *OrderHandler) Orders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		orders, err := h.service.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newOrderResponses(orders))

	case http.MethodPost:
		var input service.CreateOrderInput
		if err := decodeJSON(r, &input); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		order, err := h.service.CreateOrder(r.Context(), input)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Location", "/orders/"+order.ID)
		writeJSON(w, http.StatusCreated, newOrderResponse(order))

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Order handles GET and DELETE /orders/{id}.
func (h *OrderHandler) Order(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		order, err := h.service.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newOrderResponse(order))

	case http.MethodDelete:
		if err := h.service.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ClientOrders handles GET /orders/client/{clientId}.
func (h *OrderHandler) ClientOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orders, err := h.service.ListByClient(r.Context(), r.PathValue("clientId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderResponses(orders))
}
