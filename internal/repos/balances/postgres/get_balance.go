package balances

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/gameledger/internal/repos/balances"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (r *balancesRepo) Get(ctx context.Context, accountID uuid.UUID, currencyID int) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := r.db.QueryRowContext(ctx, `
		SELECT balance
		FROM balance
		WHERE account_id = $1
		  AND currency_id = $2
	`, accountID, currencyID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, balances.ErrBalanceNotFound
		}

		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}
