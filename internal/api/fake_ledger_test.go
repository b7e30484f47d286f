package api

import (
	"context"
	"strings"

	"github.com/fastprodman/gameledger/internal/repos/accounts"
	"github.com/fastprodman/gameledger/internal/repos/balances"
	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/fastprodman/gameledger/internal/services/economy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var dollar = currencies.Currency{
	ID: 1, NameSingular: "Dollar", NamePlural: "Dollars",
	Symbol: "$", NumFractionDigits: 2, IsDefault: true,
}

type call struct {
	op       string
	account  uuid.UUID
	to       uuid.UUID
	currency int
	amount   string
}

// fakeLedger answers from fixed fields and records balance-changing calls.
type fakeLedger struct {
	result     economy.Result
	accounts   map[uuid.UUID]bool
	balance    decimal.Decimal
	hasBalance bool
	currencies []currencies.Currency
	failCreate bool
	failLookup bool
	top        []balances.Balance
	topLimit   int
	calls      []call
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		accounts:   map[uuid.UUID]bool{},
		currencies: []currencies.Currency{dollar},
	}
}

func (f *fakeLedger) CreateAccount(_ context.Context, id uuid.UUID) bool {
	if f.failCreate {
		return false
	}
	f.accounts[id] = true
	return true
}

func (f *fakeLedger) CreateVirtualAccount(ctx context.Context, identifier string) (uuid.UUID, bool) {
	id := economy.VirtualAccountID(identifier)
	return id, f.CreateAccount(ctx, id)
}

func (f *fakeLedger) LookupAccount(_ context.Context, id uuid.UUID) economy.Result {
	switch {
	case f.failLookup:
		return economy.Result{Reason: economy.ReasonInternal, Message: economy.MsgInternal}
	case f.accounts[id]:
		return economy.Result{}
	default:
		return economy.Result{Reason: economy.ReasonAccountNotFound, Message: economy.MsgAccountNotFound}
	}
}

func (f *fakeLedger) DeleteAccount(_ context.Context, id uuid.UUID) bool {
	ok := f.accounts[id]
	delete(f.accounts, id)
	return ok
}

func (f *fakeLedger) ListAccounts(_ context.Context) []accounts.Account {
	out := []accounts.Account{}
	for id := range f.accounts {
		out = append(out, accounts.Account{ID: id})
	}
	return out
}

func (f *fakeLedger) GetBalance(_ context.Context, _ uuid.UUID, _ int) (decimal.Decimal, bool) {
	return f.balance, f.hasBalance
}

func (f *fakeLedger) record(op string, account, to uuid.UUID, currency int, amount decimal.Decimal) economy.Result {
	f.calls = append(f.calls, call{op: op, account: account, to: to, currency: currency, amount: amount.String()})
	return f.result
}

func (f *fakeLedger) Deposit(_ context.Context, id uuid.UUID, currency int, amount decimal.Decimal) economy.Result {
	return f.record("deposit", id, uuid.Nil, currency, amount)
}

func (f *fakeLedger) Withdraw(_ context.Context, id uuid.UUID, currency int, amount decimal.Decimal) economy.Result {
	return f.record("withdraw", id, uuid.Nil, currency, amount)
}

func (f *fakeLedger) Transfer(_ context.Context, from, to uuid.UUID, currency int, amount decimal.Decimal) economy.Result {
	return f.record("transfer", from, to, currency, amount)
}

func (f *fakeLedger) SetBalance(_ context.Context, id uuid.UUID, currency int, amount decimal.Decimal) economy.Result {
	return f.record("set", id, uuid.Nil, currency, amount)
}

func (f *fakeLedger) TopBalances(ctx context.Context, currency int, limit int) ([]balances.Balance, economy.Result) {
	f.topLimit = limit
	if !f.result.OK() {
		return nil, f.result
	}
	if _, ok := f.GetCurrency(ctx, currency); !ok {
		return nil, economy.Result{Reason: economy.ReasonCurrencyNotFound, Message: economy.MsgCurrencyNotFound}
	}
	return f.top, economy.Result{}
}

func (f *fakeLedger) GetDefaultCurrency(_ context.Context) (currencies.Currency, bool) {
	for _, c := range f.currencies {
		if c.IsDefault {
			return c, true
		}
	}
	return currencies.Currency{}, false
}

func (f *fakeLedger) GetCurrency(_ context.Context, id int) (currencies.Currency, bool) {
	for _, c := range f.currencies {
		if c.ID == id {
			return c, true
		}
	}
	return currencies.Currency{}, false
}

func (f *fakeLedger) GetCurrencyByName(_ context.Context, name string) (currencies.Currency, bool) {
	for _, c := range f.currencies {
		if strings.EqualFold(c.NameSingular, name) {
			return c, true
		}
	}
	return currencies.Currency{}, false
}

func (f *fakeLedger) ListCurrencies(_ context.Context) []currencies.Currency {
	return f.currencies
}

func (f *fakeLedger) Format(c currencies.Currency, amount decimal.Decimal) string {
	return economy.Format(c, amount)
}
