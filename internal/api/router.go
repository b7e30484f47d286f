package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs a chi router with all API endpoints registered.
func NewRouter(svc Ledger, logger *slog.Logger) http.Handler {
	h := NewHandler(svc, logger)
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/currencies", func(r chi.Router) {
		r.Get("/", h.ListCurrenciesHandler)
		r.Get("/default", h.GetDefaultCurrencyHandler)
		r.Get("/{currencyId}", h.GetCurrencyHandler)
		r.Get("/{currencyId}/top", h.TopBalancesHandler)
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.ListAccountsHandler)
		r.Post("/virtual", h.CreateVirtualAccountHandler)

		r.Route("/{accountId}", func(r chi.Router) {
			r.Put("/", h.CreateAccountHandler)
			r.Get("/", h.GetAccountHandler)
			r.Delete("/", h.DeleteAccountHandler)

			r.Get("/balances/{currencyId}", h.GetBalanceHandler)
			r.Put("/balances/{currencyId}", h.SetBalanceHandler)
			r.Post("/balances/{currencyId}/deposit", h.DepositHandler)
			r.Post("/balances/{currencyId}/withdraw", h.WithdrawHandler)
		})
	})

	r.Post("/transfers", h.TransferHandler)

	return r
}
