package currencies

import (
	"database/sql"

	"github.com/fastprodman/gameledger/internal/repos/currencies"
)

var _ currencies.Currencies = (*currenciesRepo)(nil)

type currenciesRepo struct{ db *sql.DB }

func New(db *sql.DB) *currenciesRepo {
	return &currenciesRepo{db: db}
}

const selectCurrency = `
	SELECT id, name_singular, name_plural, symbol, num_fraction_digits, is_default
	FROM currency
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCurrency(row rowScanner) (currencies.Currency, error) {
	var c currencies.Currency

	err := row.Scan(&c.ID, &c.NameSingular, &c.NamePlural, &c.Symbol, &c.NumFractionDigits, &c.IsDefault)
	if err != nil {
		return currencies.Currency{}, err
	}

	return c, nil
}
