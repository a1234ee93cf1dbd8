package http

import (
	"net/http"

	"bank-documents/service"
)

type ClientHandler struct {
	service *service.ClientService
}

func NewClientHandler(service *service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Clients handles GET and POST /clients.
func (h *ClientHandler) Clients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clients, err := h.service.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, clients)

	case http.MethodPost:
		var input service.ClientInput
		if err := decodeJSON(r, &input); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		client, err := h.service.Create(r.Context(), input)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Location", "/clients/"+client.ID)
		writeJSON(w, http.StatusCreated, client)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Client handles GET, PUT and DELETE /clients/{id}.
func (h *ClientHandler) Client(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		client, err := h.service.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, client)

	case http.MethodPut:
		var input service.ClientInput
		if err := decodeJSON(r, &input); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		client, err := h.service.Update(r.Context(), id, input)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, client)

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
