package balances

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (r *balancesRepo) Update(ctx context.Context, accountID uuid.UUID, currencyID int, amount decimal.Decimal) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE balance
		SET balance = $3::numeric
		WHERE account_id = $1
		  AND currency_id = $2
	`, accountID, currencyID, amount.String())
	if err != nil {
		return 0, fmt.Errorf("update balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return affected, nil
}
