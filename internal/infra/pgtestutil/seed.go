package pgtestutil

import (
	"database/sql"
	"testing"

	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/google/uuid"
)

// Dollar and Gold are the currencies most store tests start from.
var (
	Dollar = currencies.Currency{
		ID: 1, NameSingular: "Dollar", NamePlural: "Dollars", Symbol: "$",
		NumFractionDigits: 2, IsDefault: true,
	}
	Gold = currencies.Currency{
		ID: 2, NameSingular: "Gold", NamePlural: "Gold", Symbol: "G",
		NumFractionDigits: 0, IsDefault: false,
	}
)

// SeedCurrency inserts c and, when defaultBalance is non-empty, its
// default_balance row.
func SeedCurrency(t *testing.T, db *sql.DB, c currencies.Currency, defaultBalance string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO currency (id, name_singular, name_plural, symbol, num_fraction_digits, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.NameSingular, c.NamePlural, c.Symbol, c.NumFractionDigits, c.IsDefault)
	if err != nil {
		t.Fatalf("seed currency(%d): %v", c.ID, err)
	}

	if defaultBalance == "" {
		return
	}

	_, err = db.Exec(`
		INSERT INTO default_balance (currency_id, default_balance) VALUES ($1, $2)
	`, c.ID, defaultBalance)
	if err != nil {
		t.Fatalf("seed default balance(%d): %v", c.ID, err)
	}
}

// SeedAccount inserts an account with the given balances keyed by currency id.
func SeedAccount(t *testing.T, db *sql.DB, id uuid.UUID, balances map[int]string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO account (id) VALUES ($1)`, id)
	if err != nil {
		t.Fatalf("seed account(%s): %v", id, err)
	}

	for currencyID, amount := range balances {
		_, err = db.Exec(`
			INSERT INTO balance (account_id, currency_id, balance) VALUES ($1, $2, $3)
		`, id, currencyID, amount)
		if err != nil {
			t.Fatalf("seed balance(%s, %d): %v", id, currencyID, err)
		}
	}
}

// CountRows runs a COUNT(*) query and fails the test on error.
func CountRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int

	err := db.QueryRow(query, args...).Scan(&n)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}

	return n
}
