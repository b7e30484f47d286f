package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errors.New("account not found")

type Account struct {
	ID      uuid.UUID `json:"id"`
	Created time.Time `json:"created"`
}

type Accounts interface {
	// Create inserts the account and seeds one balance row per default_balance
	// entry in a single transaction. Existing accounts are left untouched.
	Create(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (Account, error)
	List(ctx context.Context) ([]Account, error)
	// Delete reports whether a row was removed. Balances cascade.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
