package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/gameledger/internal/infra/pgutils"
	"github.com/google/uuid"
)

// Create runs both inserts in one transaction. Replaying it for an existing
// account adds balance rows only for currencies the account is missing.
func (r *accountsRepo) Create(ctx context.Context, id uuid.UUID) error {
	err := pgutils.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO account (id)
			VALUES ($1)
			ON CONFLICT (id) DO NOTHING
		`, id)
		if err != nil {
			return fmt.Errorf("insert account: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO balance (account_id, currency_id, balance)
			SELECT $1::uuid, db.currency_id, db.default_balance
			FROM default_balance db
			ON CONFLICT (account_id, currency_id) DO NOTHING
		`, id)
		if err != nil {
			return fmt.Errorf("seed balances: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}
