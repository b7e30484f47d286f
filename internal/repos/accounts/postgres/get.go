package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/gameledger/internal/repos/accounts"
	"github.com/google/uuid"
)

func (r *accountsRepo) Get(ctx context.Context, id uuid.UUID) (accounts.Account, error) {
	var a accounts.Account

	err := r.db.QueryRowContext(ctx, `
		SELECT id, created
		FROM account
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrAccountNotFound
		}

		return accounts.Account{}, fmt.Errorf("get account: %w", err)
	}

	return a, nil
}
