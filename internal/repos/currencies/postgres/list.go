package currencies

import (
	"context"
	"fmt"

	"github.com/fastprodman/gameledger/internal/repos/currencies"
)

func (r *currenciesRepo) List(ctx context.Context) ([]currencies.Currency, error) {
	rows, err := r.db.QueryContext(ctx, selectCurrency+`ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	out := make([]currencies.Currency, 0, 4)
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}

		out = append(out, c)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate currencies: %w", err)
	}

	return out, nil
}
