package http

import (
	"net/http"

	"bank-documents/auth"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Clients   *ClientHandler
	Orders    *OrderHandler
	Documents *DocumentHandler
	Loans     *LoanHandler

	Tokens      *auth.TokenIssuer
	RateLimiter *RateLimiter
	Metrics     *Metrics
}

func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	public := func(route string, fn http.HandlerFunc) {
		mux.Handle(route, h.Metrics.Instrument(route, fn))
	}
	protected := func(route string, fn http.HandlerFunc) {
		mux.Handle(route, h.Metrics.Instrument(route, RequireAuth(h.Tokens, fn)))
	}
	limited := func(route string, fn http.HandlerFunc) {
		mux.Handle(route, h.Metrics.Instrument(route,
			RequireAuth(h.Tokens, RateLimitMiddleware(h.RateLimiter, fn))))
	}

	public("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("/metrics", h.Metrics.Handler())

	public("/auth/login", h.Auth.Login)
	public("/auth/logout", h.Auth.Logout)
	protected("/auth/me", h.Auth.Me)

	protected("/clients", h.Clients.Clients)
	protected("/clients/{id}", h.Clients.Client)
	limited("/clients/{id}/documents", h.Documents.GenerateForClient)

	protected("/orders", h.Orders.Orders)
	protected("/orders/{id}", h.Orders.Order)
	protected("/orders/client/{clientId}", h.Orders.ClientOrders)

	limited("/documents/generate", h.Documents.Generate)

	limited("/loan/calculate", h.Loans.CalculateLoan)
	limited("/loan/term-options", h.Loans.TermOptions)

	return mux
}
