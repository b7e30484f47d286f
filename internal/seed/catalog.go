// Package seed applies the currency catalog file to the database.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errors.New("invalid currency catalog")

// CurrencyEntry is one catalog entry as written in the YAML file.
type CurrencyEntry struct {
	ID                int    `yaml:"id"`
	NameSingular      string `yaml:"name_singular"`
	NamePlural        string `yaml:"name_plural"`
	Symbol            string `yaml:"symbol"`
	NumFractionDigits int    `yaml:"num_fraction_digits"`
	Default           bool   `yaml:"default"`
	DefaultBalance    string `yaml:"default_balance"`
}

type Catalog struct {
	Currencies []CurrencyEntry `yaml:"currencies"`
}

// Parse decodes and validates a catalog. Unknown keys are rejected.
func Parse(r io.Reader) (Catalog, error) {
	var c Catalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&c)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}

		return Catalog{}, fmt.Errorf("decode yaml: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return Catalog{}, err
	}

	return c, nil
}

func ParseFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	//nolint:errcheck
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return Catalog{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return c, nil
}

// Validate checks the rules the schema cannot express on its own: exactly
// one default and names unique regardless of case.
//
//nolint:cyclop
func (c Catalog) Validate() error {
	if len(c.Currencies) == 0 {
		return fmt.Errorf("%w: no currencies", ErrInvalidCatalog)
	}

	ids := make(map[int]struct{}, len(c.Currencies))
	names := make(map[string]struct{}, len(c.Currencies))
	defaults := 0

	for i, cur := range c.Currencies {
		switch {
		case cur.ID <= 0:
			return fmt.Errorf("%w: entry %d: id must be positive", ErrInvalidCatalog, i)
		case strings.TrimSpace(cur.NameSingular) == "":
			return fmt.Errorf("%w: currency %d: name_singular required", ErrInvalidCatalog, cur.ID)
		case strings.TrimSpace(cur.NamePlural) == "":
			return fmt.Errorf("%w: currency %d: name_plural required", ErrInvalidCatalog, cur.ID)
		case cur.Symbol == "":
			return fmt.Errorf("%w: currency %d: symbol required", ErrInvalidCatalog, cur.ID)
		case cur.NumFractionDigits < 0:
			return fmt.Errorf("%w: currency %d: num_fraction_digits must not be negative", ErrInvalidCatalog, cur.ID)
		}

		if _, dup := ids[cur.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, cur.ID)
		}
		ids[cur.ID] = struct{}{}

		key := strings.ToLower(cur.NameSingular)
		if _, dup := names[key]; dup {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidCatalog, cur.NameSingular)
		}
		names[key] = struct{}{}

		if cur.Default {
			defaults++
		}

		_, err := cur.Amount()
		if err != nil {
			return fmt.Errorf("%w: currency %d: %w", ErrInvalidCatalog, cur.ID, err)
		}
	}

	if defaults != 1 {
		return fmt.Errorf("%w: want exactly one default currency, got %d", ErrInvalidCatalog, defaults)
	}

	return nil
}

// Amount is the seed balance truncated to the currency's scale. An empty
// value means zero.
func (s CurrencyEntry) Amount() (decimal.Decimal, error) {
	if strings.TrimSpace(s.DefaultBalance) == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s.DefaultBalance))
	if err != nil {
		return decimal.Zero, fmt.Errorf("default_balance: %w", err)
	}

	if d.IsNegative() {
		return decimal.Zero, errors.New("default_balance must not be negative")
	}

	return d.Truncate(int32(s.NumFractionDigits)), nil
}
