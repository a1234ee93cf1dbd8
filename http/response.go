package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bank-documents/auth"
	"bank-documents/repository"
	"bank-documents/service"
)

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written response.
func writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("Error handling request: %v", err)
		http.Error(w, "internal server error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidLoanTerms),
		errors.Is(err, service.ErrInvalidClient),
		errors.Is(err, service.ErrInvalidOrder):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrClientNotFound),
		errors.Is(err, repository.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
