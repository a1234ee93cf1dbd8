package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"bank-documents/domain"
	"bank-documents/service"
)

type calculateLoanRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	TermMonths        int             `json:"termMonths"`
	Schedule          bool            `json:"schedule"`
}

type LoanHandler struct {
	service *service.LoanService
	terms   *service.TermOptionsService
	metrics *Metrics
}

func NewLoanHandler(
	service *service.LoanService,
	terms *service.TermOptionsService,
	metrics *Metrics,
) *LoanHandler {
	return &LoanHandler{service: service, terms: terms, metrics: metrics}
}

// CalculateLoan handles POST /loan/calculate.
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req calculateLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.service.Quote(r.Context(), domain.LoanTerms{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermMonths:        req.TermMonths,
	}, req.Schedule)
	h.metrics.ObserveLoanQuote(err)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// TermOptions handles POST /loan/term-options.
func (h *LoanHandler) TermOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.TermOptionsInput
	if err := decodeJSON(r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.terms.TermOptions(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
