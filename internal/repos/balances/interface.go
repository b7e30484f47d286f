package balances

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBalanceNotFound   = errors.New("balance not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Balance is one account's holding in one currency.
type Balance struct {
	AccountID  uuid.UUID       `json:"accountId"`
	CurrencyID int             `json:"currencyId"`
	Amount     decimal.Decimal `json:"amount"`
}

type Balances interface {
	Get(ctx context.Context, accountID uuid.UUID, currencyID int) (decimal.Decimal, error)
	// Update overwrites the balance unconditionally and returns rows affected.
	// Non-negativity is the caller's contract.
	Update(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (int64, error)
	Deposit(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error)
	// Withdraw subtracts amount only while the balance covers it.
	Withdraw(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error)
	// Transfer moves amount between two accounts atomically: either both legs
	// commit or neither does.
	Transfer(ctx context.Context, fromID, toID uuid.UUID, currencyID int, amount decimal.Decimal) error
	// Top returns at most limit balances of the currency, richest first.
	// Equal balances are ordered by account id.
	Top(ctx context.Context, currencyID int, limit int) ([]Balance, error)
}
