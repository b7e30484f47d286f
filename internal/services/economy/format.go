package economy

import (
	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/shopspring/decimal"
)

// Scale truncates amount toward zero to the currency's fraction digits.
// Every amount shown or persisted goes through it.
func Scale(c currencies.Currency, amount decimal.Decimal) decimal.Decimal {
	return amount.Truncate(int32(c.NumFractionDigits))
}

// Format renders amount as symbol followed by the scaled value, e.g. "$12.50".
func Format(c currencies.Currency, amount decimal.Decimal) string {
	digits := int32(c.NumFractionDigits)

	return c.Symbol + Scale(c, amount).StringFixed(digits)
}
