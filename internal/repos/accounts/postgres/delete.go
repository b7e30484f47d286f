package accounts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (r *accountsRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM account
		WHERE id = $1
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected != 0, nil
}
