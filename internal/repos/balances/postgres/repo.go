package balances

import (
	"database/sql"

	"github.com/fastprodman/gameledger/internal/infra/pgutils"
	"github.com/fastprodman/gameledger/internal/repos/balances"
)

var _ balances.Balances = (*balancesRepo)(nil)

type balancesRepo struct {
	db         *sql.DB
	txAttempts int
}

func New(db *sql.DB) *balancesRepo {
	return &balancesRepo{db: db, txAttempts: pgutils.DefaultTxAttempts}
}
