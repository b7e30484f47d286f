package api

import (
	"net/http"
	"strings"

	"github.com/fastprodman/gameledger/internal/services/economy"
	"github.com/go-chi/chi/v5"
)

// ListCurrenciesHandler handles GET /currencies. With ?name= it answers the
// single currency of that singular name instead.
func (h *HandlerProvider) ListCurrenciesHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		h.writeJSON(w, http.StatusOK, h.svc.ListCurrencies(r.Context()))
		return
	}

	c, ok := h.svc.GetCurrencyByName(r.Context(), name)
	if !ok {
		h.writeError(w, http.StatusNotFound, economy.MsgCurrencyNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, c)
}

// GetDefaultCurrencyHandler handles GET /currencies/default
func (h *HandlerProvider) GetDefaultCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := h.svc.GetDefaultCurrency(r.Context())
	if !ok {
		h.writeError(w, http.StatusNotFound, economy.MsgCurrencyNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, c)
}

// GetCurrencyHandler handles GET /currencies/{currencyId}
func (h *HandlerProvider) GetCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	currencyID, err := parseCurrencyID(chi.URLParam(r, "currencyId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid currencyId in path")
		return
	}

	c, ok := h.svc.GetCurrency(r.Context(), currencyID)
	if !ok {
		h.writeError(w, http.StatusNotFound, economy.MsgCurrencyNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, c)
}

// TopBalancesHandler handles GET /currencies/{currencyId}/top?limit=
func (h *HandlerProvider) TopBalancesHandler(w http.ResponseWriter, r *http.Request) {
	currencyID, err := parseCurrencyID(chi.URLParam(r, "currencyId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid currencyId in path")
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	top, res := h.svc.TopBalances(r.Context(), currencyID, limit)
	if !res.OK() {
		h.writeError(w, statusFor(res.Reason), res.Message)
		return
	}

	currency, ok := h.svc.GetCurrency(r.Context(), currencyID)
	if !ok {
		h.writeError(w, http.StatusNotFound, economy.MsgCurrencyNotFound)
		return
	}

	out := make([]balanceResponse, 0, len(top))
	for _, b := range top {
		out = append(out, balanceResponse{
			AccountID:  b.AccountID.String(),
			CurrencyID: b.CurrencyID,
			Balance:    economy.Scale(currency, b.Amount).StringFixed(int32(currency.NumFractionDigits)),
			Formatted:  h.svc.Format(currency, b.Amount),
		})
	}

	h.writeJSON(w, http.StatusOK, out)
}
