package balances

import (
	"testing"

	"github.com/fastprodman/gameledger/internal/infra/pgtestutil"
	"github.com/google/uuid"
)

func TestBalances_Update(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedPair(db, t)
	repo := New(db)

	affected, err := repo.Update(t.Context(), accountA, 1, dec("12.34"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if affected != 1 {
		t.Fatalf("rows affected: want 1, got %d", affected)
	}
	if got := mustBalance(t, repo, accountA, 1); !got.Equal(dec("12.34")) {
		t.Fatalf("balance: want 12.34, got %s", got)
	}
	if got := mustBalance(t, repo, accountB, 1); !got.Equal(dec("100.00")) {
		t.Fatalf("other account changed: %s", got)
	}

	affected, err = repo.Update(t.Context(), uuid.New(), 1, dec("1"))
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if affected != 0 {
		t.Fatalf("rows affected for missing row: want 0, got %d", affected)
	}
}
