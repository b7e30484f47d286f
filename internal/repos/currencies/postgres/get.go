package currencies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/gameledger/internal/repos/currencies"
)

func (r *currenciesRepo) Get(ctx context.Context, id int) (currencies.Currency, error) {
	c, err := scanCurrency(r.db.QueryRowContext(ctx, selectCurrency+`WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return currencies.Currency{}, currencies.ErrCurrencyNotFound
		}

		return currencies.Currency{}, fmt.Errorf("get currency: %w", err)
	}

	return c, nil
}

func (r *currenciesRepo) GetByName(ctx context.Context, nameSingular string) (currencies.Currency, error) {
	c, err := scanCurrency(r.db.QueryRowContext(ctx, selectCurrency+`WHERE lower(name_singular) = lower($1)`, nameSingular))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return currencies.Currency{}, currencies.ErrCurrencyNotFound
		}

		return currencies.Currency{}, fmt.Errorf("get currency by name: %w", err)
	}

	return c, nil
}
