package api

import (
	"context"
	"net/http"

	"github.com/fastprodman/gameledger/internal/services/economy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type amountRequest struct {
	Amount string `json:"amount"`
}

type transferRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	CurrencyID int    `json:"currencyId"`
	Amount     string `json:"amount"`
}

type balanceResponse struct {
	AccountID  string `json:"accountId"`
	CurrencyID int    `json:"currencyId"`
	Balance    string `json:"balance"`
	Formatted  string `json:"formatted"`
}

// GetBalanceHandler handles GET /accounts/{accountId}/balances/{currencyId}
func (h *HandlerProvider) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.balancePath(w, r)
	if !ok {
		return
	}

	currency, ok := h.svc.GetCurrency(r.Context(), ids.currency)
	if !ok {
		h.writeError(w, http.StatusNotFound, economy.MsgCurrencyNotFound)
		return
	}

	amount, ok := h.svc.GetBalance(r.Context(), ids.account, ids.currency)
	if !ok {
		h.writeError(w, http.StatusNotFound, economy.MsgBalanceNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, balanceResponse{
		AccountID:  ids.account.String(),
		CurrencyID: ids.currency,
		Balance:    economy.Scale(currency, amount).StringFixed(int32(currency.NumFractionDigits)),
		Formatted:  h.svc.Format(currency, amount),
	})
}

// SetBalanceHandler handles PUT /accounts/{accountId}/balances/{currencyId}
func (h *HandlerProvider) SetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	h.amountHandler(w, r, h.svc.SetBalance)
}

// DepositHandler handles POST /accounts/{accountId}/balances/{currencyId}/deposit
func (h *HandlerProvider) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.amountHandler(w, r, h.svc.Deposit)
}

// WithdrawHandler handles POST /accounts/{accountId}/balances/{currencyId}/withdraw
func (h *HandlerProvider) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.amountHandler(w, r, h.svc.Withdraw)
}

type amountOp func(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) economy.Result

func (h *HandlerProvider) amountHandler(w http.ResponseWriter, r *http.Request, op amountOp) {
	ids, ok := h.balancePath(w, r)
	if !ok {
		return
	}

	var req amountRequest
	err := decodeBody(w, r, &req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeResult(w, op(r.Context(), ids.account, ids.currency, amount))
}

// TransferHandler handles POST /transfers
func (h *HandlerProvider) TransferHandler(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	err := decodeBody(w, r, &req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, err := parseAccountID(req.From)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid from")
		return
	}

	to, err := parseAccountID(req.To)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid to")
		return
	}

	if req.CurrencyID <= 0 {
		h.writeError(w, http.StatusBadRequest, "invalid currencyId")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeResult(w, h.svc.Transfer(r.Context(), from, to, req.CurrencyID, amount))
}
