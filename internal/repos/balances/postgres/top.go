package balances

import (
	"context"
	"fmt"

	"github.com/fastprodman/gameledger/internal/repos/balances"
)

func (r *balancesRepo) Top(ctx context.Context, currencyID int, limit int) ([]balances.Balance, error) {
	if limit <= 0 {
		return []balances.Balance{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT account_id, currency_id, balance
		FROM balance
		WHERE currency_id = $1
		ORDER BY balance DESC, account_id
		LIMIT $2
	`, currencyID, limit)
	if err != nil {
		return nil, fmt.Errorf("top balances: %w", err)
	}
	defer rows.Close()

	out := make([]balances.Balance, 0, limit)
	for rows.Next() {
		var b balances.Balance

		err = rows.Scan(&b.AccountID, &b.CurrencyID, &b.Amount)
		if err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}

		out = append(out, b)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate balances: %w", err)
	}

	return out, nil
}
