package balances

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/gameledger/internal/infra/pgutils"
	"github.com/fastprodman/gameledger/internal/repos/balances"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (r *balancesRepo) Withdraw(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := decreaseBalance(ctx, r.db, accountID, currencyID, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("withdraw: %w", err)
	}

	return balance, nil
}

// decreaseBalance subtracts amount only when the row still covers it, so the
// funds check and the write are a single statement.
func decreaseBalance(ctx context.Context, q pgutils.Querier, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := q.QueryRowContext(ctx, `
		UPDATE balance
		SET balance = balance - $3::numeric
		WHERE account_id = $1
		  AND currency_id = $2
		  AND balance >= $3::numeric
		RETURNING balance
	`, accountID, currencyID, amount.String()).Scan(&balance)
	if err == nil {
		return balance, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("decrease balance: %w", err)
	}

	// zero rows: either no such balance or not enough in it
	var exists bool

	err = q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM balance WHERE account_id = $1 AND currency_id = $2
		)
	`, accountID, currencyID).Scan(&exists)
	if err != nil {
		return decimal.Zero, fmt.Errorf("check balance exists: %w", err)
	}

	if !exists {
		return decimal.Zero, balances.ErrBalanceNotFound
	}

	return decimal.Zero, balances.ErrInsufficientFunds
}
