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

func (r *balancesRepo) Deposit(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := increaseBalance(ctx, r.db, accountID, currencyID, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("deposit: %w", err)
	}

	return balance, nil
}

// increaseBalance adds amount in one statement and returns the new balance.
func increaseBalance(ctx context.Context, q pgutils.Querier, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := q.QueryRowContext(ctx, `
		UPDATE balance
		SET balance = balance + $3::numeric
		WHERE account_id = $1
		  AND currency_id = $2
		RETURNING balance
	`, accountID, currencyID, amount.String()).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, balances.ErrBalanceNotFound
		}

		return decimal.Zero, fmt.Errorf("increase balance: %w", err)
	}

	return balance, nil
}
