package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/fastprodman/gameledger/internal/repos/accounts"
	"github.com/fastprodman/gameledger/internal/repos/balances"
	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/fastprodman/gameledger/internal/services/economy"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// Ledger is the part of the economy the HTTP layer exposes.
type Ledger interface {
	CreateAccount(ctx context.Context, accountID uuid.UUID) bool
	CreateVirtualAccount(ctx context.Context, identifier string) (uuid.UUID, bool)
	LookupAccount(ctx context.Context, accountID uuid.UUID) economy.Result
	DeleteAccount(ctx context.Context, accountID uuid.UUID) bool
	ListAccounts(ctx context.Context) []accounts.Account

	GetBalance(ctx context.Context, accountID uuid.UUID, currencyID int) (decimal.Decimal, bool)
	Deposit(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) economy.Result
	Withdraw(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) economy.Result
	Transfer(ctx context.Context, fromID, toID uuid.UUID, currencyID int, amount decimal.Decimal) economy.Result
	SetBalance(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) economy.Result
	TopBalances(ctx context.Context, currencyID int, limit int) ([]balances.Balance, economy.Result)

	GetDefaultCurrency(ctx context.Context) (currencies.Currency, bool)
	GetCurrency(ctx context.Context, currencyID int) (currencies.Currency, bool)
	GetCurrencyByName(ctx context.Context, name string) (currencies.Currency, bool)
	ListCurrencies(ctx context.Context) []currencies.Currency
	Format(c currencies.Currency, amount decimal.Decimal) string
}

// HandlerProvider wraps a Ledger and exposes HTTP handlers.
type HandlerProvider struct {
	svc    Ledger
	logger *slog.Logger
}

func NewHandler(svc Ledger, logger *slog.Logger) *HandlerProvider {
	if logger == nil {
		logger = slog.Default()
	}

	return &HandlerProvider{svc: svc, logger: logger}
}

// --- Helpers ---

func (h *HandlerProvider) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (h *HandlerProvider) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeResult answers a balance-changing call.
func (h *HandlerProvider) writeResult(w http.ResponseWriter, res economy.Result) {
	if res.OK() {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	h.writeError(w, statusFor(res.Reason), res.Message)
}

func statusFor(reason economy.Reason) int {
	switch reason {
	case economy.ReasonInvalidAmount, economy.ReasonSelfTransfer:
		return http.StatusBadRequest
	case economy.ReasonAccountNotFound, economy.ReasonCurrencyNotFound, economy.ReasonBalanceNotFound:
		return http.StatusNotFound
	case economy.ReasonInsufficientFunds:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseAccountID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, errors.New("missing accountId")
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid accountId: %w", err)
	}

	return id, nil
}

func parseCurrencyID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid currencyId: %w", err)
	}
	if id <= 0 {
		return 0, errors.New("invalid currencyId: must be positive")
	}

	return id, nil
}

// parseLimit reads an optional positive ?limit=. Zero means the default.
func parseLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(s)
	if err != nil || limit <= 0 {
		return 0, errors.New("invalid limit: must be a positive integer")
	}

	return limit, nil
}

// parseAmount accepts a plain decimal string. Sign and scale are checked by
// the economy so the HTTP layer reports the same messages as any other caller.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("amount required")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.New("invalid amount")
	}

	return amount, nil
}

// decodeBody reads one JSON object into dst, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}

		return errors.New("invalid JSON")
	}

	return nil
}

type pathIDs struct {
	account  uuid.UUID
	currency int
}

// balancePath reads {accountId} and {currencyId}, answering 400 on failure.
func (h *HandlerProvider) balancePath(w http.ResponseWriter, r *http.Request) (pathIDs, bool) {
	accountID, err := parseAccountID(chi.URLParam(r, "accountId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return pathIDs{}, false
	}

	currencyID, err := parseCurrencyID(chi.URLParam(r, "currencyId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid currencyId in path")
		return pathIDs{}, false
	}

	return pathIDs{account: accountID, currency: currencyID}, true
}
