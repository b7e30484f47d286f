package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type accountResponse struct {
	AccountID string `json:"accountId"`
}

type virtualAccountRequest struct {
	Identifier string `json:"identifier"`
}

// ListAccountsHandler handles GET /accounts
func (h *HandlerProvider) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	list := h.svc.ListAccounts(r.Context())
	if list == nil {
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, list)
}

// CreateAccountHandler handles PUT /accounts/{accountId}. Repeating the call
// is harmless.
func (h *HandlerProvider) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(chi.URLParam(r, "accountId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return
	}

	if !h.svc.CreateAccount(r.Context(), accountID) {
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, accountResponse{AccountID: accountID.String()})
}

// GetAccountHandler handles GET /accounts/{accountId}
func (h *HandlerProvider) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(chi.URLParam(r, "accountId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return
	}

	res := h.svc.LookupAccount(r.Context(), accountID)
	if !res.OK() {
		h.writeError(w, statusFor(res.Reason), res.Message)
		return
	}

	h.writeJSON(w, http.StatusOK, accountResponse{AccountID: accountID.String()})
}

// DeleteAccountHandler handles DELETE /accounts/{accountId}
func (h *HandlerProvider) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(chi.URLParam(r, "accountId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return
	}

	if !h.svc.DeleteAccount(r.Context(), accountID) {
		h.writeError(w, http.StatusNotFound, "User not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateVirtualAccountHandler handles POST /accounts/virtual
func (h *HandlerProvider) CreateVirtualAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req virtualAccountRequest
	err := decodeBody(w, r, &req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" {
		h.writeError(w, http.StatusBadRequest, "identifier required")
		return
	}

	id, ok := h.svc.CreateVirtualAccount(r.Context(), identifier)
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, accountResponse{AccountID: id.String()})
}
