package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/gameledger/internal/infra/pgutils"
)

// Apply upserts every catalog entry and its default balance in one
// transaction. Currencies missing from the catalog are left alone since
// deleting one would cascade into player balances.
func Apply(ctx context.Context, db *sql.DB, c Catalog) error {
	err := c.Validate()
	if err != nil {
		return err
	}

	err = pgutils.WithTx(ctx, db, func(tx *sql.Tx) error {
		// Cleared first so moving the default never trips currency_single_default.
		_, err := tx.ExecContext(ctx, `UPDATE currency SET is_default = FALSE WHERE is_default`)
		if err != nil {
			return fmt.Errorf("clear default: %w", err)
		}

		for _, cur := range c.Currencies {
			err = upsertCurrency(ctx, tx, cur)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("apply catalog: %w", err)
	}

	return nil
}

func upsertCurrency(ctx context.Context, tx *sql.Tx, cur CurrencyEntry) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO currency (id, name_singular, name_plural, symbol, num_fraction_digits, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name_singular       = EXCLUDED.name_singular,
			name_plural         = EXCLUDED.name_plural,
			symbol              = EXCLUDED.symbol,
			num_fraction_digits = EXCLUDED.num_fraction_digits,
			is_default          = EXCLUDED.is_default
	`, cur.ID, cur.NameSingular, cur.NamePlural, cur.Symbol, cur.NumFractionDigits, cur.Default)
	if err != nil {
		return fmt.Errorf("upsert currency %d: %w", cur.ID, err)
	}

	amount, err := cur.Amount()
	if err != nil {
		return fmt.Errorf("currency %d: %w", cur.ID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO default_balance (currency_id, default_balance)
		VALUES ($1, $2::numeric)
		ON CONFLICT (currency_id) DO UPDATE SET default_balance = EXCLUDED.default_balance
	`, cur.ID, amount.String())
	if err != nil {
		return fmt.Errorf("upsert default balance %d: %w", cur.ID, err)
	}

	return nil
}
