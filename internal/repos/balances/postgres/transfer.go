package balances

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/gameledger/internal/infra/pgutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer runs the withdrawal leg and then the deposit leg in one
// transaction. Any failure rolls back both. Deadlocks between opposing
// transfers rerun the whole transaction.
func (r *balancesRepo) Transfer(ctx context.Context, fromID, toID uuid.UUID, currencyID int, amount decimal.Decimal) error {
	err := pgutils.WithTxRetry(ctx, r.db, r.txAttempts, func(tx *sql.Tx) error {
		_, err := decreaseBalance(ctx, tx, fromID, currencyID, amount)
		if err != nil {
			return fmt.Errorf("withdraw leg: %w", err)
		}

		_, err = increaseBalance(ctx, tx, toID, currencyID, amount)
		if err != nil {
			return fmt.Errorf("deposit leg: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transfer: %w", err)
	}

	return nil
}
