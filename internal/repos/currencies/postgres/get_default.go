package currencies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/gameledger/internal/repos/currencies"
)

func (r *currenciesRepo) GetDefault(ctx context.Context) (currencies.Currency, error) {
	c, err := scanCurrency(r.db.QueryRowContext(ctx, selectCurrency+`
		WHERE is_default
		ORDER BY id
		LIMIT 1
	`))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return currencies.Currency{}, currencies.ErrCurrencyNotFound
		}

		return currencies.Currency{}, fmt.Errorf("get default currency: %w", err)
	}

	return c, nil
}
