package balances

import (
	"database/sql"
	"testing"

	"github.com/fastprodman/gameledger/internal/infra/pgtestutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	accountA = uuid.MustParse("62694fb0-07cc-4396-8d63-4f70646d75f0")
	accountB = uuid.MustParse("551fe9be-f77f-4bcb-81db-548db6e77aea")
)

// seedPair creates the Dollar currency and accounts A (50.00) and B (100.00).
func seedPair(db *sql.DB, t *testing.T) {
	t.Helper()

	pgtestutil.SeedCurrency(t, db, pgtestutil.Dollar, "0")
	pgtestutil.SeedAccount(t, db, accountA, map[int]string{1: "50.00"})
	pgtestutil.SeedAccount(t, db, accountB, map[int]string{1: "100.00"})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustBalance(t *testing.T, repo *balancesRepo, id uuid.UUID, currencyID int) decimal.Decimal {
	t.Helper()

	got, err := repo.Get(t.Context(), id, currencyID)
	if err != nil {
		t.Fatalf("get balance(%s): %v", id, err)
	}

	return got
}
