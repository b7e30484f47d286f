package economy

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fastprodman/gameledger/internal/repos/accounts"
	"github.com/fastprodman/gameledger/internal/repos/balances"
	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Economy is the entry point for everything that reads or moves money.
// Business rules live here; the stores only persist.
type Economy struct {
	logger     *slog.Logger
	accounts   accounts.Accounts
	balances   balances.Balances
	currencies currencies.Currencies
}

func New(logger *slog.Logger, accts accounts.Accounts, bals balances.Balances, curs currencies.Currencies) *Economy {
	if logger == nil {
		logger = slog.Default()
	}

	return &Economy{
		logger:     logger.With("component", "economy"),
		accounts:   accts,
		balances:   bals,
		currencies: curs,
	}
}

// CreateAccount creates the account with its seeded balances. Calling it for
// an existing account succeeds without changes.
func (e *Economy) CreateAccount(ctx context.Context, accountID uuid.UUID) bool {
	err := e.accounts.Create(ctx, accountID)
	if err != nil {
		e.logger.ErrorContext(ctx, "create account failed",
			"account_id", accountID, "error", err)

		return false
	}

	return true
}

func (e *Economy) HasAccount(ctx context.Context, accountID uuid.UUID) bool {
	return e.LookupAccount(ctx, accountID).OK()
}

// LookupAccount is HasAccount with the failure kept apart from absence:
// ReasonAccountNotFound when there is no such account, ReasonInternal when
// storage could not answer.
func (e *Economy) LookupAccount(ctx context.Context, accountID uuid.UUID) Result {
	_, err := e.accounts.Get(ctx, accountID)
	switch {
	case err == nil:
		return success()
	case errors.Is(err, accounts.ErrAccountNotFound):
		return failure(ReasonAccountNotFound, MsgAccountNotFound)
	default:
		e.logger.ErrorContext(ctx, "get account failed",
			"account_id", accountID, "error", err)

		return failure(ReasonInternal, MsgInternal)
	}
}

func (e *Economy) DeleteAccount(ctx context.Context, accountID uuid.UUID) bool {
	removed, err := e.accounts.Delete(ctx, accountID)
	if err != nil {
		e.logger.ErrorContext(ctx, "delete account failed",
			"account_id", accountID, "error", err)

		return false
	}

	return removed
}

// ListAccounts returns nil only when the store cannot be read; an empty
// ledger yields an empty slice.
func (e *Economy) ListAccounts(ctx context.Context) []accounts.Account {
	list, err := e.accounts.List(ctx)
	if err != nil {
		e.logger.ErrorContext(ctx, "list accounts failed", "error", err)

		return nil
	}

	if list == nil {
		list = []accounts.Account{}
	}

	return list
}

// GetBalance reports false when the account holds no balance in currencyID.
func (e *Economy) GetBalance(ctx context.Context, accountID uuid.UUID, currencyID int) (decimal.Decimal, bool) {
	amount, err := e.balances.Get(ctx, accountID, currencyID)
	switch {
	case err == nil:
		return amount, true
	case errors.Is(err, balances.ErrBalanceNotFound):
		return decimal.Zero, false
	default:
		e.logger.ErrorContext(ctx, "get balance failed",
			"account_id", accountID, "currency_id", currencyID, "error", err)

		return decimal.Zero, false
	}
}

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// TopBalances lists the richest accounts in currencyID. A limit outside
// 1..MaxTopLimit falls back to DefaultTopLimit or MaxTopLimit.
func (e *Economy) TopBalances(ctx context.Context, currencyID int, limit int) ([]balances.Balance, Result) {
	switch {
	case limit <= 0:
		limit = DefaultTopLimit
	case limit > MaxTopLimit:
		limit = MaxTopLimit
	}

	_, res := e.lookupCurrency(ctx, currencyID)
	if !res.OK() {
		return nil, res
	}

	top, err := e.balances.Top(ctx, currencyID, limit)
	if err != nil {
		e.logger.ErrorContext(ctx, "top balances failed",
			"currency_id", currencyID, "error", err)

		return nil, failure(ReasonInternal, MsgInternal)
	}

	if top == nil {
		top = []balances.Balance{}
	}

	return top, success()
}

func (e *Economy) GetDefaultCurrency(ctx context.Context) (currencies.Currency, bool) {
	c, err := e.currencies.GetDefault(ctx)
	if err != nil {
		e.logCurrencyErr(ctx, "get default currency failed", err)

		return currencies.Currency{}, false
	}

	return c, true
}

func (e *Economy) GetCurrency(ctx context.Context, currencyID int) (currencies.Currency, bool) {
	c, err := e.currencies.Get(ctx, currencyID)
	if err != nil {
		e.logCurrencyErr(ctx, "get currency failed", err, "currency_id", currencyID)

		return currencies.Currency{}, false
	}

	return c, true
}

func (e *Economy) GetCurrencyByName(ctx context.Context, name string) (currencies.Currency, bool) {
	c, err := e.currencies.GetByName(ctx, name)
	if err != nil {
		e.logCurrencyErr(ctx, "get currency by name failed", err, "currency_name", name)

		return currencies.Currency{}, false
	}

	return c, true
}

// ListCurrencies returns an empty slice when the catalog cannot be read.
func (e *Economy) ListCurrencies(ctx context.Context) []currencies.Currency {
	list, err := e.currencies.List(ctx)
	if err != nil {
		e.logCurrencyErr(ctx, "list currencies failed", err)

		return []currencies.Currency{}
	}

	if list == nil {
		list = []currencies.Currency{}
	}

	return list
}

// Format renders amount with the currency symbol, truncated to its scale.
func (e *Economy) Format(c currencies.Currency, amount decimal.Decimal) string {
	return Format(c, amount)
}

// logCurrencyErr stays quiet for plain absence, which callers see as ok == false.
func (e *Economy) logCurrencyErr(ctx context.Context, msg string, err error, attrs ...any) {
	if errors.Is(err, currencies.ErrCurrencyNotFound) {
		return
	}

	e.logger.ErrorContext(ctx, msg, append(attrs, "error", err)...)
}
