package economy

import (
	"context"
	"errors"

	"github.com/fastprodman/gameledger/internal/repos/accounts"
	"github.com/fastprodman/gameledger/internal/repos/balances"
	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposit adds amount to the account's balance in currencyID.
func (e *Economy) Deposit(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) Result {
	if !amount.IsPositive() {
		return failure(ReasonInvalidAmount, MsgAmountNotPositive)
	}

	currency, res := e.lookupCurrency(ctx, currencyID)
	if !res.OK() {
		return res
	}

	amount = Scale(currency, amount)
	if !amount.IsPositive() {
		return failure(ReasonInvalidAmount, MsgAmountNotPositive)
	}

	_, err := e.balances.Deposit(ctx, accountID, currencyID, amount)
	switch {
	case err == nil:
		return success()
	case errors.Is(err, balances.ErrBalanceNotFound):
		return e.missingBalance(ctx, accountID)
	default:
		e.logger.ErrorContext(ctx, "deposit failed",
			"account_id", accountID, "currency_id", currencyID,
			"amount", amount.String(), "error", err)

		return failure(ReasonInternal, MsgInternal)
	}
}

// Withdraw subtracts amount from the account's balance in currencyID. The
// funds check and the write are a single conditional statement in the store.
func (e *Economy) Withdraw(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) Result {
	if !amount.IsPositive() {
		return failure(ReasonInvalidAmount, MsgAmountNotPositive)
	}

	currency, res := e.lookupCurrency(ctx, currencyID)
	if !res.OK() {
		return res
	}

	amount = Scale(currency, amount)
	if !amount.IsPositive() {
		return failure(ReasonInvalidAmount, MsgAmountNotPositive)
	}

	_, err := e.balances.Withdraw(ctx, accountID, currencyID, amount)
	switch {
	case err == nil:
		return success()
	case errors.Is(err, balances.ErrInsufficientFunds):
		return failure(ReasonInsufficientFunds, MsgInsufficientFunds)
	case errors.Is(err, balances.ErrBalanceNotFound):
		return e.missingBalance(ctx, accountID)
	default:
		e.logger.ErrorContext(ctx, "withdraw failed",
			"account_id", accountID, "currency_id", currencyID,
			"amount", amount.String(), "error", err)

		return failure(ReasonInternal, MsgInternal)
	}
}

// Transfer moves amount from one account to another. The source balance is
// read first so the common failures come back without opening a transaction;
// the store re-checks funds inside the transaction.
func (e *Economy) Transfer(ctx context.Context, fromID, toID uuid.UUID, currencyID int, amount decimal.Decimal) Result {
	if !amount.IsPositive() {
		return failure(ReasonInvalidAmount, MsgAmountNotPositive)
	}

	if fromID == toID {
		return failure(ReasonSelfTransfer, MsgSelfTransfer)
	}

	currency, res := e.lookupCurrency(ctx, currencyID)
	if !res.OK() {
		return res
	}

	amount = Scale(currency, amount)
	if !amount.IsPositive() {
		return failure(ReasonInvalidAmount, MsgAmountNotPositive)
	}

	_, err := e.accounts.Get(ctx, toID)
	switch {
	case errors.Is(err, accounts.ErrAccountNotFound):
		return failure(ReasonAccountNotFound, MsgAccountNotFound)
	case err != nil:
		e.logger.ErrorContext(ctx, "transfer: get destination failed",
			"account_id", toID, "error", err)

		return failure(ReasonInternal, MsgInternal)
	}

	current, err := e.balances.Get(ctx, fromID, currencyID)
	switch {
	case errors.Is(err, balances.ErrBalanceNotFound):
		return e.missingBalance(ctx, fromID)
	case err != nil:
		e.logger.ErrorContext(ctx, "transfer: get source balance failed",
			"account_id", fromID, "currency_id", currencyID, "error", err)

		return failure(ReasonInternal, MsgInternal)
	}

	if current.LessThan(amount) {
		return failure(ReasonInsufficientFunds, MsgInsufficientFunds)
	}

	err = e.balances.Transfer(ctx, fromID, toID, currencyID, amount)
	switch {
	case err == nil:
		return success()
	case errors.Is(err, balances.ErrInsufficientFunds):
		return failure(ReasonInsufficientFunds, MsgInsufficientFunds)
	case errors.Is(err, balances.ErrBalanceNotFound):
		return failure(ReasonBalanceNotFound, MsgBalanceNotFound)
	default:
		e.logger.ErrorContext(ctx, "transfer failed",
			"from_account_id", fromID, "to_account_id", toID,
			"currency_id", currencyID, "amount", amount.String(), "error", err)

		return failure(ReasonInternal, MsgInternal)
	}
}

// SetBalance overwrites the balance. Zero is allowed, negative amounts are not.
func (e *Economy) SetBalance(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) Result {
	if amount.IsNegative() {
		return failure(ReasonInvalidAmount, MsgAmountNegative)
	}

	currency, res := e.lookupCurrency(ctx, currencyID)
	if !res.OK() {
		return res
	}

	amount = Scale(currency, amount)

	rows, err := e.balances.Update(ctx, accountID, currencyID, amount)
	if err != nil {
		e.logger.ErrorContext(ctx, "set balance failed",
			"account_id", accountID, "currency_id", currencyID,
			"amount", amount.String(), "error", err)

		return failure(ReasonInternal, MsgInternal)
	}

	if rows == 0 {
		return e.missingBalance(ctx, accountID)
	}

	return success()
}

func (e *Economy) lookupCurrency(ctx context.Context, currencyID int) (currencies.Currency, Result) {
	c, err := e.currencies.Get(ctx, currencyID)
	switch {
	case err == nil:
		return c, success()
	case errors.Is(err, currencies.ErrCurrencyNotFound):
		return currencies.Currency{}, failure(ReasonCurrencyNotFound, MsgCurrencyNotFound)
	default:
		e.logger.ErrorContext(ctx, "get currency failed",
			"currency_id", currencyID, "error", err)

		return currencies.Currency{}, failure(ReasonInternal, MsgInternal)
	}
}

// missingBalance tells an unknown account apart from an account that simply
// holds nothing in the currency.
func (e *Economy) missingBalance(ctx context.Context, accountID uuid.UUID) Result {
	_, err := e.accounts.Get(ctx, accountID)
	switch {
	case err == nil:
		return failure(ReasonBalanceNotFound, MsgBalanceNotFound)
	case errors.Is(err, accounts.ErrAccountNotFound):
		return failure(ReasonAccountNotFound, MsgAccountNotFound)
	default:
		e.logger.ErrorContext(ctx, "get account failed",
			"account_id", accountID, "error", err)

		return failure(ReasonInternal, MsgInternal)
	}
}
