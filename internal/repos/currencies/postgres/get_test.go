package currencies

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/fastprodman/gameledger/internal/infra/pgtestutil"
	"github.com/fastprodman/gameledger/internal/infra/pgutils"
	"github.com/fastprodman/gameledger/internal/repos/currencies"
)

func TestCurrencies_Get_TableDriven(t *testing.T) {
	t.Parallel()

	seedBoth := func(db *sql.DB, t *testing.T) {
		pgtestutil.SeedCurrency(t, db, pgtestutil.Dollar, "0")
		pgtestutil.SeedCurrency(t, db, pgtestutil.Gold, "100.50")
	}

	tests := []struct {
		name    string
		seed    func(db *sql.DB, t *testing.T)
		id      int
		want    currencies.Currency
		wantErr error
	}{
		{name: "dollar", seed: seedBoth, id: 1, want: pgtestutil.Dollar},
		{name: "gold", seed: seedBoth, id: 2, want: pgtestutil.Gold},
		{name: "missing", seed: seedBoth, id: 42, wantErr: currencies.ErrCurrencyNotFound},
		{name: "empty_catalog", seed: nil, id: 1, wantErr: currencies.ErrCurrencyNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			if tt.seed != nil {
				tt.seed(db, t)
			}

			got, err := New(db).Get(t.Context(), tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("currency mismatch: want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCurrencies_GetByName(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedCurrency(t, db, pgtestutil.Dollar, "")
	repo := New(db)

	got, err := repo.GetByName(t.Context(), "dollar")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got.ID != pgtestutil.Dollar.ID {
		t.Fatalf("want id %d, got %d", pgtestutil.Dollar.ID, got.ID)
	}

	_, err = repo.GetByName(t.Context(), "Emerald")
	if !errors.Is(err, currencies.ErrCurrencyNotFound) {
		t.Fatalf("want ErrCurrencyNotFound, got %v", err)
	}
}

func TestCurrencies_NameUniqueIgnoringCase(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedCurrency(t, db, pgtestutil.Dollar, "")

	for _, name := range []string{"Dollar", "dollar", "DOLLAR"} {
		_, err := db.ExecContext(t.Context(), `
			INSERT INTO currency (id, name_singular, name_plural, symbol, num_fraction_digits)
			VALUES (3, $1, 'Dollars', 'D', 2)
		`, name)
		if !pgutils.IsUniqueViolation(err) {
			t.Fatalf("insert %q: want unique violation, got %v", name, err)
		}
	}

	got, err := New(db).GetByName(t.Context(), "DoLLaR")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got != pgtestutil.Dollar {
		t.Fatalf("currency mismatch: want %+v, got %+v", pgtestutil.Dollar, got)
	}
}
