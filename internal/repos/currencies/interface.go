package currencies

import (
	"context"
	"errors"
)

var ErrCurrencyNotFound = errors.New("currency not found")

// Currency is immutable reference data loaded from the currency table.
type Currency struct {
	ID                int    `json:"id"`
	NameSingular      string `json:"nameSingular"`
	NamePlural        string `json:"namePlural"`
	Symbol            string `json:"symbol"`
	NumFractionDigits int    `json:"numFractionDigits"`
	IsDefault         bool   `json:"isDefault"`
}

// Currencies is the read-only currency catalog.
type Currencies interface {
	GetDefault(ctx context.Context) (Currency, error)
	Get(ctx context.Context, id int) (Currency, error)
	GetByName(ctx context.Context, nameSingular string) (Currency, error)
	List(ctx context.Context) ([]Currency, error)
}
