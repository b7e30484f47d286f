package seed

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
currencies:
  - id: 1
    name_singular: Dollar
    name_plural: Dollars
    symbol: "$"
    num_fraction_digits: 2
    default: true
    default_balance: "10.129"
  - id: 2
    name_singular: Gold
    name_plural: Gold
    symbol: G
    num_fraction_digits: 0
`

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := Parse(strings.NewReader(validCatalog))
	require.NoError(t, err)
	require.Len(t, c.Currencies, 2)

	assert.Equal(t, "Dollar", c.Currencies[0].NameSingular)
	assert.True(t, c.Currencies[0].Default)

	amount, err := c.Currencies[0].Amount()
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("10.12")), "got %s", amount)

	amount, err = c.Currencies[1].Amount()
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	entry := func(id int, name string, def bool, extra string) string {
		d := "false"
		if def {
			d = "true"
		}

		return "  - id: " + strconv.Itoa(id) + "\n" +
			"    name_singular: " + name + "\n" +
			"    name_plural: " + name + "s\n" +
			"    symbol: X\n" +
			"    num_fraction_digits: 2\n" +
			"    default: " + d + "\n" + extra
	}

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "empty", doc: "", want: "empty document"},
		{name: "no currencies", doc: "currencies: []\n", want: "no currencies"},
		{name: "unknown key", doc: "currencies:\n" + entry(1, "Dollar", true, "    colour: green\n"), want: "colour"},
		{name: "no default", doc: "currencies:\n" + entry(1, "Dollar", false, ""), want: "exactly one default"},
		{name: "two defaults", doc: "currencies:\n" + entry(1, "Dollar", true, "") + entry(2, "Gold", true, ""), want: "exactly one default"},
		{name: "duplicate id", doc: "currencies:\n" + entry(1, "Dollar", true, "") + entry(1, "Gold", false, ""), want: "duplicate id 1"},
		{name: "duplicate name ignoring case", doc: "currencies:\n" + entry(1, "Dollar", true, "") + entry(2, "dollar", false, ""), want: "duplicate name"},
		{name: "bad id", doc: "currencies:\n" + entry(0, "Dollar", true, ""), want: "id must be positive"},
		{name: "negative seed", doc: "currencies:\n" + entry(1, "Dollar", true, "    default_balance: \"-1\"\n"), want: "must not be negative"},
		{name: "bad seed", doc: "currencies:\n" + entry(1, "Dollar", true, "    default_balance: lots\n"), want: "default_balance"},
		{name: "negative digits", doc: "currencies:\n" + strings.Replace(entry(1, "Dollar", true, ""), "num_fraction_digits: 2", "num_fraction_digits: -1", 1), want: "num_fraction_digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "currencies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

	c, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Currencies, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShippedCatalogIsValid(t *testing.T) {
	t.Parallel()

	c, err := ParseFile(filepath.Join("..", "..", "cmd", "migrator", "currencies.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, c.Currencies)
}
