package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"bank-documents/domain"
	"bank-documents/service"
)

type generateDocumentRequest struct {
	DocumentType string `json:"documentType"`
	ClientType   string `json:"clientType"`
}

type documentResponse struct {
	RequestID string                `json:"requestId"`
	Kind      domain.DocumentKind   `json:"kind"`
	Category  domain.ClientCategory `json:"category"`
	Content   string                `json:"content"`
	IssuedAt  time.Time             `json:"issuedAt"`
}

type DocumentHandler struct {
	service *service.DocumentService
	metrics *Metrics
}

func NewDocumentHandler(service *service.DocumentService, metrics *Metrics) *DocumentHandler {
	return &DocumentHandler{service: service, metrics: metrics}
}

// Generate handles POST /documents/generate.
func (h *DocumentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Unrecognized values pass through unchanged so the service reports them.
	kind, ok := domain.ParseDocumentKind(req.DocumentType)
	if !ok {
		kind = domain.DocumentKind(req.DocumentType)
	}
	category, ok := domain.ParseClientCategory(req.ClientType)
	if !ok {
		category = domain.ClientCategory(req.ClientType)
	}

	doc, err := h.service.Generate(kind, category)
	h.metrics.ObserveDocument(kind, category, err)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newDocumentResponse(doc))
}

// GenerateForClient handles POST /clients/{id}/documents.
func (h *DocumentHandler) GenerateForClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		DocumentType string `json:"documentType"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	kind, ok := domain.ParseDocumentKind(req.DocumentType)
	if !ok {
		kind = domain.DocumentKind(req.DocumentType)
	}

	doc, err := h.service.GenerateForClient(r.Context(), r.PathValue("id"), kind)
	h.metrics.ObserveDocument(kind, doc.Category, err)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newDocumentResponse(doc))
}

func newDocumentResponse(doc domain.GeneratedDocument) documentResponse {
	return documentResponse{
		RequestID: uuid.NewString(),
		Kind:      doc.Kind,
		Category:  doc.Category,
		Content:   doc.Content,
		IssuedAt:  doc.IssuedAt,
	}
}
